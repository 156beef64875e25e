package repository

import (
	"context"
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Each query returns (objectId, title, subtitle, imageUrl). $1 is the contains
// pattern, $2 the prefix pattern; prefix matches rank first.
var searchQueries = map[domain.SearchCategory]string{
	domain.SearchEvents: `SELECT id, title, address, ''
		FROM events
		WHERE NOT is_private AND end_date >= now() AND title ILIKE $1
		ORDER BY (title ILIKE $2) DESC, title
		LIMIT $3`,
	domain.SearchHosts: `SELECT id, name, '@' || username, image_url
		FROM hosts
		WHERE name ILIKE $1 OR username ILIKE $1
		ORDER BY (name ILIKE $2 OR username ILIKE $2) DESC, name
		LIMIT $3`,
	domain.SearchUsers: `SELECT id, display_name, '@' || username, ''
		FROM users
		WHERE display_name ILIKE $1 OR username ILIKE $1
		ORDER BY (display_name ILIKE $2 OR username ILIKE $2) DESC, display_name
		LIMIT $3`,
}

type SearchRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSearchRepo(db *dbpg.DB) *SearchRepository {
	return &SearchRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SearchRepository) Search(ctx context.Context, query string, category domain.SearchCategory, limit int) ([]domain.SearchResult, error) {
	q, ok := searchQueries[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}

	pattern := likePattern(query)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, q, "%"+pattern+"%", pattern+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", category, err)
	}
	defer rows.Close()

	res := []domain.SearchResult{}
	for rows.Next() {
		var sr domain.SearchResult
		if err = rows.Scan(&sr.ObjectID, &sr.Title, &sr.Subtitle, &sr.ImageURL); err != nil {
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		res = append(res, sr)
	}

	return res, rows.Err()
}
