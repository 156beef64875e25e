package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/goccy/go-json"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `id, username, display_name, university, age, gender, telegram_chat_id, host_member_types, created_at`

const (
	setMemberTypeQuery = `UPDATE users
	SET host_member_types = host_member_types || jsonb_build_object($2::text, $3::text)
	WHERE id = $1`

	clearMemberTypeQuery = `UPDATE users SET host_member_types = host_member_types - $2::text WHERE id = $1`
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	roles, err := json.Marshal(user.HostMemberTypes)
	if err != nil {
		return fmt.Errorf("encode roles: %w", err)
	}

	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.Master.ExecContext(
		ctx, query,
		user.ID, user.Username, user.DisplayName, user.University, nullInt(user.Age),
		user.Gender, user.TelegramChatID, string(roles), user.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var (
		u      domain.User
		age    sql.NullInt64
		chatID sql.NullInt64
		roles  []byte
	)
	if err = row.Scan(
		&u.ID, &u.Username, &u.DisplayName, &u.University, &age,
		&u.Gender, &chatID, &roles, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u.Age = intPtr(age)
	if chatID.Valid {
		u.TelegramChatID = &chatID.Int64
	}
	if err = json.Unmarshal(roles, &u.HostMemberTypes); err != nil {
		return nil, fmt.Errorf("%w: user %s roles: %v", domain.ErrMalformedRecord, u.ID, err)
	}
	if u.HostMemberTypes == nil {
		u.HostMemberTypes = map[string]domain.HostMemberType{}
	}

	return &u, nil
}

func (r *UserRepository) SetMemberType(ctx context.Context, userID, hostID string, t domain.HostMemberType) error {
	res, err := r.db.Master.ExecContext(ctx, setMemberTypeQuery, userID, hostID, t)
	if err != nil {
		return fmt.Errorf("set member type: %w", err)
	}
	return requireAffected(res, domain.ErrUserNotFound)
}

// Relationship reads userID's side of the relationship; no row means notFriends.
func (r *UserRepository) Relationship(ctx context.Context, userID, otherID string) (domain.RelationshipState, error) {
	query := `SELECT state FROM user_relationships WHERE user_id = $1 AND other_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, otherID)
	if err != nil {
		return "", fmt.Errorf("get relationship: %w", err)
	}

	var state domain.RelationshipState
	if err = row.Scan(&state); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RelationshipNotFriends, nil
		}
		return "", fmt.Errorf("scan relationship: %w", err)
	}

	return state, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
