package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"homehero/utils"

	"go.uber.org/zap"
)

const (
	topRatedCacheKey = "services:top-rated"
	topRatedCacheTTL = time.Minute
	topRatedLimit    = 6
)

// TopRated returns the listings with the highest average review rating,
// heaviest first, capped at six. Results go through the redis cache when one
// is configured; the cache fails open.
func (s *DefaultCatalogService) TopRated() ([]TopRatedService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, topRatedCacheKey).Result(); err == nil {
			var cached []TopRatedService
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	reviewed, err := s.Repo.GetReviewed()
	if err != nil {
		return nil, err
	}

	rated := make([]TopRatedService, 0, len(reviewed))
	for _, svc := range reviewed {
		rated = append(rated, TopRatedService{Service: svc, AvgRating: svc.AverageRating()})
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].AvgRating > rated[j].AvgRating
	})
	if len(rated) > topRatedLimit {
		rated = rated[:topRatedLimit]
	}

	if s.Cache != nil {
		if data, err := json.Marshal(rated); err == nil {
			if err := s.Cache.Set(ctx, topRatedCacheKey, data, topRatedCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache top-rated services", zap.Error(err))
			}
		}
	}
	return rated, nil
}

// invalidateTopRated drops the cached top-rated listing after any write.
func (s *DefaultCatalogService) invalidateTopRated() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, topRatedCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate top-rated cache", zap.Error(err))
	}
}
