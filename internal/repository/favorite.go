package repository

import (
	"context"
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FavoriteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFavoriteRepo(db *dbpg.DB) *FavoriteRepository {
	return &FavoriteRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Add is idempotent: favoriting twice keeps the first timestamp.
func (r *FavoriteRepository) Add(ctx context.Context, f *domain.Favorite) error {
	query := `INSERT INTO event_favorites (user_id, event_id, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id, event_id) DO NOTHING`

	if _, err := r.db.Master.ExecContext(ctx, query, f.UserID, f.EventID, f.Timestamp); err != nil {
		if pgCode(err) == codeForeignKey {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, eventID string) error {
	query := `DELETE FROM event_favorites WHERE user_id = $1 AND event_id = $2`

	if _, err := r.db.Master.ExecContext(ctx, query, userID, eventID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM event_favorites WHERE user_id = $1 AND event_id = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan favorite: %w", err)
	}

	return exists, nil
}

func (r *FavoriteRepository) ListEventIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT event_id FROM event_favorites WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
