package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, host_id, title, description, start_date, end_date, address, lat, lng,
	is_private, is_invite_only, guest_limit, invite_limit, amenities, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	var lat, lng sql.NullFloat64
	if e.Location != nil {
		lat = sql.NullFloat64{Float64: e.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: e.Location.Longitude, Valid: true}
	}

	_, err := r.db.Master.ExecContext(
		ctx, query,
		e.ID, e.HostID, e.Title, e.Description, e.StartDate, e.EndDate, e.Address, lat, lng,
		e.IsPrivate, e.IsInviteOnly, nullInt(e.GuestLimit), nullInt(e.InviteLimit),
		pq.Array(e.Amenities), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case codeCheckViolation:
			return fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
		case codeForeignKey:
			return domain.ErrHostNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	query := `UPDATE events
			  SET title = COALESCE($2, title),
			      description = COALESCE($3, description),
			      amenities = COALESCE($4, amenities),
			      start_date = COALESCE($5, start_date),
			      end_date = COALESCE($6, end_date),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + eventColumns

	var amenities any
	if in.Amenities != nil {
		amenities = pq.Array(*in.Amenities)
	}

	row := r.db.Master.QueryRowContext(
		ctx, query,
		id, in.Title, in.Description, amenities, in.StartDate, in.EndDate,
	)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		if pgCode(err) == codeCheckViolation {
			return nil, fmt.Errorf("%w: end_date must be after start_date", domain.ErrValidation)
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE host_id = $1
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hostID)
	if err != nil {
		return nil, fmt.Errorf("list events by host: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = ANY($1)
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list events by ids: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]domain.Event, error) {
	res := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, *e)
	}

	return res, rows.Err()
}

func scanEvent(s scanner) (*domain.Event, error) {
	var (
		e                       domain.Event
		lat, lng                sql.NullFloat64
		guestLimit, inviteLimit sql.NullInt64
		amenities               pq.StringArray
	)
	if err := s.Scan(
		&e.ID, &e.HostID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Address, &lat, &lng,
		&e.IsPrivate, &e.IsInviteOnly, &guestLimit, &inviteLimit, &amenities, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		e.Location = &domain.GeoPoint{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	e.GuestLimit = intPtr(guestLimit)
	e.InviteLimit = intPtr(inviteLimit)
	e.Amenities = []string(amenities)
	if e.Amenities == nil {
		e.Amenities = []string{}
	}

	return &e, nil
}
