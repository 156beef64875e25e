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

const guestColumns = `id, event_id, user_id, name, university, age, gender, status, invited_by, created_at`

type GuestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	logger   logger.Logger
}

func NewGuestRepo(db *dbpg.DB, logger logger.Logger) *GuestRepository {
	return &GuestRepository{
		db:       db,
		strategy: defaultStrategy(),
		logger:   logger,
	}
}

// Add inserts the guest and drops the user's pending join request, if any. The
// event row is locked so that a limit is checked in the same transaction.
func (r *GuestRepository) Add(ctx context.Context, g *domain.EventGuest, limit *int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, g.EventID).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if limit != nil {
		var count int
		if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_guests WHERE event_id = $1`, g.EventID).Scan(&count); err != nil {
			return fmt.Errorf("count guests: %w", err)
		}
		if count >= *limit {
			return domain.ErrGuestlistFull
		}
	}

	query := `INSERT INTO event_guests (` + guestColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		g.ID, g.EventID, g.UserID, g.Name, g.University, nullInt(g.Age),
		g.Gender, g.Status, g.InvitedBy, g.Timestamp,
	)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrAlreadyOnGuestlist
		}
		return fmt.Errorf("insert guest: %w", err)
	}

	if g.UserID != nil {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM event_requests WHERE event_id = $1 AND user_id = $2`, g.EventID, *g.UserID); err != nil {
			return fmt.Errorf("delete request: %w", err)
		}
	}

	return tx.Commit()
}

func (r *GuestRepository) Get(ctx context.Context, eventID, guestID string) (*domain.EventGuest, error) {
	query := `SELECT ` + guestColumns + ` FROM event_guests WHERE event_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, guestID)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}

	g, err := scanGuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("scan guest: %w", err)
	}

	return g, nil
}

// List returns every well-formed guest of the event. Malformed rows are
// logged and left out.
func (r *GuestRepository) List(ctx context.Context, eventID string) ([]domain.EventGuest, error) {
	query := `SELECT ` + guestColumns + `
			  FROM event_guests
			  WHERE event_id = $1
			  ORDER BY name, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	res := []domain.EventGuest{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			if errors.Is(err, domain.ErrMalformedRecord) {
				r.logger.Warn("malformed guest record dropped",
					logger.String("event_id", eventID),
					logger.String("error", err.Error()),
				)
				continue
			}
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, *g)
	}

	return res, rows.Err()
}

func (r *GuestRepository) SetStatus(ctx context.Context, eventID, guestID string, status domain.GuestStatus) error {
	query := `UPDATE event_guests SET status = $3 WHERE event_id = $1 AND id = $2`

	res, err := r.db.Master.ExecContext(ctx, query, eventID, guestID, status)
	if err != nil {
		return fmt.Errorf("update guest status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("guest rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrGuestNotFound
	}

	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, eventID, guestID string) error {
	res, err := r.db.Master.ExecContext(ctx,
		`DELETE FROM event_guests WHERE event_id = $1 AND id = $2`, eventID, guestID)
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("guest rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrGuestNotFound
	}

	return nil
}

func scanGuest(s scanner) (*domain.EventGuest, error) {
	var (
		g      domain.EventGuest
		userID sql.NullString
		age    sql.NullInt64
	)
	if err := s.Scan(
		&g.ID, &g.EventID, &userID, &g.Name, &g.University, &age,
		&g.Gender, &g.Status, &g.InvitedBy, &g.Timestamp,
	); err != nil {
		return nil, err
	}

	if userID.Valid {
		g.UserID = &userID.String
	}
	g.Age = intPtr(age)

	if !g.Status.Valid() {
		return nil, fmt.Errorf("%w: guest %s has status %q", domain.ErrMalformedRecord, g.ID, g.Status)
	}
	if !g.Gender.Valid() {
		return nil, fmt.Errorf("%w: guest %s has gender %q", domain.ErrMalformedRecord, g.ID, g.Gender)
	}

	return &g, nil
}
