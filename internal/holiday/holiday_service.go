package holiday

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	// Resolve returns the public holidays for a year, sorted ascending by
	// date. Source failures are recovered internally; Resolve never fails.
	Resolve(ctx context.Context, year int) []Holiday
}

type service struct {
	feed   Feed
	cache  *Cache
	logger *zap.Logger
}

func NewService(feed Feed, cache *Cache, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{feed: feed, cache: cache, logger: logger.Named("holiday")}
}

func (s *service) Resolve(ctx context.Context, year int) []Holiday {
	if cached, ok := s.cache.Get(ctx, year); ok {
		return cached
	}

	holidays, err := s.feed.Fetch(ctx, year)
	if err != nil {
		s.logger.Warn("holiday feed failed, using generated calendar",
			zap.Int("year", year),
			zap.Error(err),
		)
		holidays = Generate(year)
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	s.cache.Put(ctx, year, holidays)
	return holidays
}
