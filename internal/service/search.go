package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/Peytose/mixer-app-sub003/internal/service/ports"
)

const searchLimit = 20

type SearchService struct {
	repo ports.SearchRepo
}

func NewSearchService(repo ports.SearchRepo) *SearchService {
	return &SearchService{repo: repo}
}

func (s *SearchService) Search(ctx context.Context, query string, category domain.SearchCategory) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}

	res, err := s.repo.Search(ctx, query, category, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", category, err)
	}
	if res == nil {
		res = []domain.SearchResult{}
	}
	return res, nil
}
