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

const hostColumns = `id, name, username, description, tagline, contact_email, type, address, lat, lng,
	image_url, event_types, created_at`

type HostRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHostRepo(db *dbpg.DB) *HostRepository {
	return &HostRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// CreateWithAdmin inserts the host, a joined member link for adminID and the
// admin entry of the user's role map in one transaction.
func (r *HostRepository) CreateWithAdmin(ctx context.Context, h *domain.Host, adminID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var lat, lng sql.NullFloat64
	if h.Location != nil {
		lat = sql.NullFloat64{Float64: h.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: h.Location.Longitude, Valid: true}
	}

	query := `INSERT INTO hosts (` + hostColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(
		ctx, query,
		h.ID, h.Name, h.Username, h.Description, h.Tagline, h.ContactEmail, h.Type, h.Address,
		lat, lng, h.ImageURL, pq.Array(h.EventTypes), h.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert host: %w", err)
	}

	linkQuery := `INSERT INTO host_member_links (host_id, user_id, status, created_at)
				  VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, linkQuery, h.ID, adminID, domain.MemberJoined, h.CreatedAt); err != nil {
		if pgCode(err) == codeForeignKey {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert admin link: %w", err)
	}

	if _, err = tx.ExecContext(ctx, setMemberTypeQuery, adminID, h.ID, domain.MemberTypeAdmin); err != nil {
		return fmt.Errorf("set admin role: %w", err)
	}

	return tx.Commit()
}

func (r *HostRepository) GetByID(ctx context.Context, id string) (*domain.Host, error) {
	query := `SELECT ` + hostColumns + ` FROM hosts WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get host: %w", err)
	}

	h, err := scanHost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHostNotFound
		}
		return nil, fmt.Errorf("scan host: %w", err)
	}

	return h, nil
}

func (r *HostRepository) Update(ctx context.Context, id string, in domain.UpdateHostInput) (*domain.Host, error) {
	query := `UPDATE hosts
			  SET name = COALESCE($2, name),
			      description = COALESCE($3, description),
			      tagline = COALESCE($4, tagline),
			      contact_email = COALESCE($5, contact_email),
			      address = COALESCE($6, address),
			      lat = COALESCE($7, lat),
			      lng = COALESCE($8, lng),
			      image_url = COALESCE($9, image_url),
			      event_types = COALESCE($10, event_types)
			  WHERE id = $1
			  RETURNING ` + hostColumns

	var lat, lng sql.NullFloat64
	if in.Location != nil {
		lat = sql.NullFloat64{Float64: in.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: in.Location.Longitude, Valid: true}
	}
	var eventTypes any
	if in.EventTypes != nil {
		eventTypes = pq.Array(*in.EventTypes)
	}

	row := r.db.Master.QueryRowContext(
		ctx, query,
		id, in.Name, in.Description, in.Tagline, in.ContactEmail, in.Address,
		lat, lng, in.ImageURL, eventTypes,
	)

	h, err := scanHost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHostNotFound
		}
		return nil, fmt.Errorf("update host: %w", err)
	}

	return h, nil
}

func scanHost(s scanner) (*domain.Host, error) {
	var (
		h          domain.Host
		lat, lng   sql.NullFloat64
		eventTypes pq.StringArray
	)
	if err := s.Scan(
		&h.ID, &h.Name, &h.Username, &h.Description, &h.Tagline, &h.ContactEmail, &h.Type, &h.Address,
		&lat, &lng, &h.ImageURL, &eventTypes, &h.CreatedAt,
	); err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		h.Location = &domain.GeoPoint{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	h.EventTypes = []string(eventTypes)
	if h.EventTypes == nil {
		h.EventTypes = []string{}
	}

	return &h, nil
}
