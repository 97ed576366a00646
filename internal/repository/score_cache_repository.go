package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"skill_assessment_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

// ScoreCacheRepository 在 Redis 中缓存全体已完成会话的得分分布
type ScoreCacheRepository struct {
	Redis *redis.Client
	Key   string
}

func NewScoreCacheRepository(rdb *redis.Client) *ScoreCacheRepository {
	return &ScoreCacheRepository{Redis: rdb, Key: util.PopulationScoresCacheKey}
}

// GetPopulationScores 缓存未命中时返回 ok=false
func (r *ScoreCacheRepository) GetPopulationScores(ctx context.Context) ([]float64, bool, error) {
	val, err := r.Redis.Get(ctx, r.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read population scores: %w", err)
	}

	var scores []float64
	if err := json.Unmarshal(val, &scores); err != nil {
		return nil, false, fmt.Errorf("decode population scores: %w", err)
	}
	return scores, true, nil
}

func (r *ScoreCacheRepository) SetPopulationScores(ctx context.Context, scores []float64, ttl time.Duration) error {
	if scores == nil {
		scores = []float64{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, r.Key, data, ttl).Err()
}

func (r *ScoreCacheRepository) InvalidatePopulationScores(ctx context.Context) error {
	return r.Redis.Del(ctx, r.Key).Err()
}
