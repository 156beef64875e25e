package repository

import (
	"context"
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	query := `INSERT INTO event_requests (event_id, user_id, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Master.ExecContext(ctx, query, req.EventID, req.UserID, req.Timestamp)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.ErrAlreadyRequested
		case codeForeignKey:
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM event_requests WHERE event_id = $1 AND user_id = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("check request: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan request: %w", err)
	}

	return exists, nil
}

func (r *RequestRepository) Delete(ctx context.Context, eventID, userID string) error {
	res, err := r.db.Master.ExecContext(ctx,
		`DELETE FROM event_requests WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepository) List(ctx context.Context, eventID string) ([]domain.JoinRequest, error) {
	query := `SELECT event_id, user_id, created_at
			  FROM event_requests
			  WHERE event_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	res := []domain.JoinRequest{}
	for rows.Next() {
		var req domain.JoinRequest
		if err = rows.Scan(&req.EventID, &req.UserID, &req.Timestamp); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, req)
	}

	return res, rows.Err()
}
