package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	logger   logger.Logger
}

func NewMemberRepo(db *dbpg.DB, logger logger.Logger) *MemberRepository {
	return &MemberRepository{
		db:       db,
		strategy: defaultStrategy(),
		logger:   logger,
	}
}

func (r *MemberRepository) CreateLink(ctx context.Context, link *domain.HostUserLink) error {
	query := `INSERT INTO host_member_links (host_id, user_id, status, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := r.db.Master.ExecContext(ctx, query, link.HostID, link.UserID, link.Status, link.Timestamp)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.ErrAlreadyMember
		case codeForeignKey:
			return domain.ErrHostNotFound
		}
		return fmt.Errorf("insert member link: %w", err)
	}

	return nil
}

func (r *MemberRepository) GetLink(ctx context.Context, hostID, userID string) (*domain.HostUserLink, error) {
	query := `SELECT host_id, user_id, status, created_at
			  FROM host_member_links
			  WHERE host_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, hostID, userID)
	if err != nil {
		return nil, fmt.Errorf("get member link: %w", err)
	}

	var l domain.HostUserLink
	if err = row.Scan(&l.HostID, &l.UserID, &l.Status, &l.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member link: %w", err)
	}
	if l.Status != domain.MemberInvited && l.Status != domain.MemberJoined {
		return nil, fmt.Errorf("%w: member %s has status %q", domain.ErrMalformedRecord, l.UserID, l.Status)
	}

	return &l, nil
}

// Join marks the invited link joined and writes the user's role for the host
// in one transaction.
func (r *MemberRepository) Join(ctx context.Context, hostID, userID string, t domain.HostMemberType) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE host_member_links SET status = $3 WHERE host_id = $1 AND user_id = $2`
	res, err := tx.ExecContext(ctx, query, hostID, userID, domain.MemberJoined)
	if err != nil {
		return fmt.Errorf("update member status: %w", err)
	}
	if err = requireAffected(res, domain.ErrMemberNotFound); err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx, setMemberTypeQuery, userID, hostID, t)
	if err != nil {
		return fmt.Errorf("set member type: %w", err)
	}
	if err = requireAffected(res, domain.ErrUserNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteLink drops a link that has no role attached, i.e. a pending invitation.
func (r *MemberRepository) DeleteLink(ctx context.Context, hostID, userID string) error {
	res, err := r.db.Master.ExecContext(ctx,
		`DELETE FROM host_member_links WHERE host_id = $1 AND user_id = $2`, hostID, userID)
	if err != nil {
		return fmt.Errorf("delete member link: %w", err)
	}
	return requireAffected(res, domain.ErrMemberNotFound)
}

// Remove deletes the link and the user's role for the host in one transaction.
func (r *MemberRepository) Remove(ctx context.Context, hostID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM host_member_links WHERE host_id = $1 AND user_id = $2`, hostID, userID)
	if err != nil {
		return fmt.Errorf("delete member link: %w", err)
	}
	if err = requireAffected(res, domain.ErrMemberNotFound); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, clearMemberTypeQuery, userID, hostID); err != nil {
		return fmt.Errorf("clear member type: %w", err)
	}

	return tx.Commit()
}

// List joins the member list with user profiles and roles. Malformed rows are
// logged and left out.
func (r *MemberRepository) List(ctx context.Context, hostID string) ([]domain.HostMember, error) {
	query := `SELECT l.host_id, l.user_id, l.status, l.created_at,
			         u.username, u.display_name, COALESCE(u.host_member_types ->> l.host_id, '')
			  FROM host_member_links l
			  JOIN users u ON u.id = l.user_id
			  WHERE l.host_id = $1
			  ORDER BY l.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hostID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	res := []domain.HostMember{}
	for rows.Next() {
		var m domain.HostMember
		if err = rows.Scan(
			&m.HostID, &m.UserID, &m.Status, &m.Timestamp,
			&m.Username, &m.DisplayName, &m.MemberType,
		); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}

		if !memberWellFormed(m) {
			r.logger.Warn("malformed member record dropped",
				logger.String("host_id", hostID),
				logger.String("user_id", m.UserID),
				logger.String("status", string(m.Status)),
				logger.String("member_type", string(m.MemberType)),
			)
			continue
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

// memberWellFormed checks that joined members hold a known role.
func memberWellFormed(m domain.HostMember) bool {
	switch m.Status {
	case domain.MemberJoined:
		return m.MemberType.Valid()
	case domain.MemberInvited:
		return true
	default:
		return false
	}
}
