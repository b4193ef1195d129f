package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/questx-lab/concierge/pkg/xredis"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type DrawResultRepository interface {
	Create(ctx context.Context, draw *entity.DrawResult) error
	GetByID(ctx context.Context, id string) (*entity.DrawResult, error)

	// Verify marks an unverified draw as verified at verifiedAt. It returns
	// gorm.ErrRecordNotFound if no unverified draw has this id.
	Verify(ctx context.Context, id string, verifiedAt time.Time) error

	// GetByGameAndDate returns gorm.ErrRecordNotFound if the draw has not been
	// published yet.
	GetByGameAndDate(ctx context.Context, game entity.GameType, drawDate time.Time) (*entity.DrawResult, error)
}

type drawResultRepository struct {
	redisClient xredis.Client
}

// NewDrawResultRepository caches verified draws in redis when redisClient is
// not nil.
func NewDrawResultRepository(redisClient xredis.Client) *drawResultRepository {
	return &drawResultRepository{redisClient: redisClient}
}

func (r *drawResultRepository) Create(ctx context.Context, draw *entity.DrawResult) error {
	return xcontext.DB(ctx).Create(draw).Error
}

func (r *drawResultRepository) GetByID(ctx context.Context, id string) (*entity.DrawResult, error) {
	var result entity.DrawResult
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *drawResultRepository) Verify(ctx context.Context, id string, verifiedAt time.Time) error {
	tx := xcontext.DB(ctx).Model(&entity.DrawResult{}).
		Where("id=? AND is_verified=?", id, false).
		Updates(map[string]any{
			"is_verified": true,
			"verified_at": sql.NullTime{Time: verifiedAt, Valid: true},
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *drawResultRepository) GetByGameAndDate(
	ctx context.Context, game entity.GameType, drawDate time.Time,
) (*entity.DrawResult, error) {
	key := drawResultKey(game, drawDate)
	if r.redisClient != nil {
		var cached entity.DrawResult
		err := r.redisClient.GetObj(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}

		if !errors.Is(err, redis.Nil) {
			xcontext.Logger(ctx).Warnf("Cannot get draw result %s from redis: %v", key, err)
		}
	}

	var result entity.DrawResult
	err := xcontext.DB(ctx).
		Where("game=? AND draw_date=?", game, drawDate).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	// Only verified results are immutable, so only those are safe to cache.
	if r.redisClient != nil && result.IsVerified {
		ttl := xcontext.Configs(ctx).Redis.DrawResultTTL.Duration
		if err := r.redisClient.SetObj(ctx, key, result, ttl); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache draw result %s: %v", key, err)
		}
	}

	return &result, nil
}

func drawResultKey(game entity.GameType, drawDate time.Time) string {
	return fmt.Sprintf("draw_result:%s:%s", game, drawDate.UTC().Format("2006-01-02"))
}
