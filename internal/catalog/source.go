package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/config"
	"github.com/Veraticus/bottleshop/internal/model"
)

// Source produces a catalog document.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Document, error)
}

// Store is the subset of the SQLite store the catalog reads and writes.
type Store interface {
	GetCatalog(ctx context.Context) (model.Catalog, error)
	ReplaceCatalog(ctx context.Context, categories []model.Category) error
	GetProducts(ctx context.Context, filter model.FilterState) ([]model.Product, error)
	SaveProducts(ctx context.Context, products []model.Product) error
}

// StoreSource reads the catalog last synced into the local store.
type StoreSource struct {
	Store Store
}

// Name implements Source.
func (s *StoreSource) Name() string { return config.SourceStore }

// Load implements Source.
func (s *StoreSource) Load(ctx context.Context) (*Document, error) {
	categories, err := s.Store.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored catalog: %w", err)
	}
	products, err := s.Store.GetProducts(ctx, model.FilterState{})
	if err != nil {
		return nil, fmt.Errorf("failed to read stored products: %w", err)
	}
	return &Document{Categories: categories, Products: products}, nil
}

// FileSource reads a YAML or JSON catalog document.
type FileSource struct {
	Path string
}

// Name implements Source.
func (s *FileSource) Name() string { return config.SourceFile }

// Load implements Source.
func (s *FileSource) Load(_ context.Context) (*Document, error) {
	return LoadFile(s.Path)
}

// RemoteSource fetches the catalog from the storefront API with retries.
type RemoteSource struct {
	Client *Client
	Retry  common.RetryOptions
}

// NewRemoteSource wraps client, retrying failed requests up to retries times.
func NewRemoteSource(client *Client, retries int) *RemoteSource {
	return &RemoteSource{
		Client: client,
		Retry: common.RetryOptions{
			MaxAttempts:  retries + 1,
			InitialDelay: 250 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Multiplier:   2,
		},
	}
}

// Name implements Source.
func (s *RemoteSource) Name() string { return config.SourceRemote }

// Load implements Source.
func (s *RemoteSource) Load(ctx context.Context) (*Document, error) {
	var doc Document

	err := common.WithRetry(ctx, func() error {
		categories, err := s.Client.FetchCategories(ctx)
		if err != nil {
			return err
		}
		doc.Categories = categories
		return nil
	}, s.Retry)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories from %s: %w", s.Client.BaseURL(), err)
	}

	err = common.WithRetry(ctx, func() error {
		products, err := s.Client.FetchProducts(ctx)
		if err != nil {
			return err
		}
		doc.Products = products
		return nil
	}, s.Retry)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products from %s: %w", s.Client.BaseURL(), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// NewSource builds the source named by cfg.Catalog.Source.
func NewSource(cfg *config.Config, store Store) (Source, error) {
	switch cfg.Catalog.Source {
	case config.SourceStore, "":
		if store == nil {
			return nil, fmt.Errorf("%w: store source needs a database", common.ErrMissingConfig)
		}
		return &StoreSource{Store: store}, nil
	case config.SourceFile:
		if cfg.Catalog.File == "" {
			return nil, fmt.Errorf("%w: catalog.file", common.ErrMissingConfig)
		}
		return &FileSource{Path: cfg.Catalog.File}, nil
	case config.SourceRemote:
		client, err := NewClient(cfg.Catalog.BaseURL,
			WithToken(cfg.Catalog.Token),
			WithTimeout(cfg.Catalog.Timeout))
		if err != nil {
			return nil, err
		}
		return NewRemoteSource(client, cfg.Catalog.Retries), nil
	default:
		return nil, fmt.Errorf("%w: unknown catalog source %q", common.ErrInvalidConfig, cfg.Catalog.Source)
	}
}

// Sync loads src and replaces the stored catalog and products with it.
func Sync(ctx context.Context, src Source, dst Store) (*Document, error) {
	doc, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := dst.ReplaceCatalog(ctx, doc.Categories); err != nil {
		return nil, fmt.Errorf("failed to store catalog: %w", err)
	}
	if len(doc.Products) > 0 {
		if err := dst.SaveProducts(ctx, doc.Products); err != nil {
			return nil, fmt.Errorf("failed to store products: %w", err)
		}
	}

	common.LogInfo("catalog synced", common.Fields{
		"source":     src.Name(),
		"categories": len(doc.Categories),
		"products":   len(doc.Products),
	})
	return doc, nil
}
