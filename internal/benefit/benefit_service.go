package benefit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const benefitListCacheKey = "benefits:all"

type Service interface {
	GetAll(ctx context.Context) ([]BenefitResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("benefit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]BenefitResponse, error) {
	// 1. Redis first; benefits are master data and change rarely.
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, benefitListCacheKey).Result(); err == nil {
			var resp []BenefitResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight collapses concurrent misses into one store read.
	v, err, _ := s.sf.Do(benefitListCacheKey, func() (interface{}, error) {
		benefits, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("find all benefits failed", zap.Error(err))
			return nil, err
		}

		resp := mapToListResponse(benefits)

		// 3. Store back with a TTL; staleness for an hour is acceptable.
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, benefitListCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]BenefitResponse), nil
}
