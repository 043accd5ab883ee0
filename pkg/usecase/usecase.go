package usecase

import (
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
)

// UseCases orchestrates the document-level operations: validating a Thing
// Description's hazard extension, annotating a document from authored
// binding specs, and resolving risks for concrete values.
type UseCases struct {
	catalog *model.Catalog
}

type Option func(*UseCases)

// WithCatalog overrides the hazard catalog (tests only; production always
// runs against the pinned default catalog).
func WithCatalog(catalog *model.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		catalog: model.DefaultCatalog(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Catalog returns the catalog in use
func (uc *UseCases) Catalog() *model.Catalog {
	return uc.catalog
}
