// Package dnd5e implements engine.Engine with fifth edition rules over an
// injected catalog.
package dnd5e

import (
	"github.com/KirkDiggler/arcanum-api/internal/catalog"
	"github.com/KirkDiggler/arcanum-api/internal/engine"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

// Config contains configuration for creating a new Engine
type Config struct {
	Catalog *catalog.Catalog
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Engine is the fifth edition rules engine
type Engine struct {
	catalog *catalog.Catalog
}

var _ engine.Engine = (*Engine)(nil)

// New creates a new Engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{catalog: cfg.Catalog}, nil
}
