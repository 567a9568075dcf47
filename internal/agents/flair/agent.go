package flair

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/phenrril/vendorsync/internal/domain"
)

type Agent struct {
	source domain.ProductSource
	log    zerolog.Logger
}

var _ domain.VendorAgent = (*Agent)(nil)

func NewAgent(source domain.ProductSource, log zerolog.Logger) *Agent {
	return &Agent{source: source, log: log.With().Str("vendor", "FLAIR").Logger()}
}

func (a *Agent) Vendor() string { return "FLAIR" }

func (a *Agent) LoadProducts(ctx context.Context) ([]domain.VendorProduct, error) {
	products, err := a.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	a.log.Info().Int("count", len(products)).Str("path", a.source.Path()).Msg("products loaded")
	return products, nil
}

func (a *Agent) MapProduct(p domain.VendorProduct) domain.CanonicalProduct {
	return MapProduct(p)
}

func (a *Agent) CreateVariants(p domain.VendorProduct) []domain.Variant {
	return Variants(p)
}
