package service

import (
	"context"
	"time"

	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

const policyCacheKey = "commission-policy"

type IPolicyService interface {
	// Current returns the commission policy, cached briefly so quote and
	// creation requests do not hit the settings table on every call.
	Current(ctx context.Context) (entity.CommissionPolicy, error)

	// Invalidate drops the cached policy after an admin changes settings.
	Invalidate()
}

type policyService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewPolicyService(uowFactory unitofwork.RepositoryFactory) IPolicyService {
	// Commission settings change rarely; a short TTL keeps other
	// instances converging without a shared invalidation channel.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &policyService{
		uowFactory: uowFactory,
		cache:      c,
	}
}

func (s *policyService) Current(ctx context.Context) (entity.CommissionPolicy, error) {
	if x, found := s.cache.Get(policyCacheKey); found {
		return x.(entity.CommissionPolicy), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.CommissionRepository().FindAll(ctx)
	if err != nil {
		return entity.CommissionPolicy{}, err
	}

	policy := entity.PolicyFromSettings(settings)
	s.cache.Set(policyCacheKey, policy, cache.DefaultExpiration)
	return policy, nil
}

func (s *policyService) Invalidate() {
	s.cache.Delete(policyCacheKey)
}
