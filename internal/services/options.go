package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/queries/quote_cart"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/queries/resolve_price"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/parts-pricing-service/internal/config"
	"github.com/light-bringer/parts-pricing-service/internal/pkg/clock"
	transporthttp "github.com/light-bringer/parts-pricing-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	RedisClient    *goredis.Client
	PricingHandler *transporthttp.PricingHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()

	productSource := repo.NewProductRepo(spannerClient)
	featuredSource := repo.NewFeaturedRepo(spannerClient)

	var profileSource contracts.ProfileSource = repo.NewProfileRepo(spannerClient)

	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		profileSource = repo.NewCachedProfileSource(profileSource, redisClient, cfg.ProfileTTL(), logger)
	}

	resolver := domain.NewResolver()

	resolvePriceQuery := resolve_price.NewQuery(productSource, profileSource, featuredSource, resolver, clk)
	quoteCartQuery := quote_cart.NewQuery(productSource, profileSource, featuredSource, resolver, clk)

	pricingHandler := transporthttp.NewPricingHandler(resolvePriceQuery, quoteCartQuery, logger)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		RedisClient:    redisClient,
		PricingHandler: pricingHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.RedisClient != nil {
		s.RedisClient.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
