package dashboard

import (
	"context"
	"slices"
	"sync"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/query"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

const missingProductID = "Product id is missing."

func productsKey() query.Key { return query.Key{"products"} }

func productListsKey() query.Key { return query.Key{"products", "list"} }

func productListKey(f transport.ProductFilters) query.Key {
	return query.Key{"products", "list", f}
}

func productDetailKey(id string) query.Key { return query.Key{"products", "detail", id} }

type Products struct {
	api   ProductAPI
	cache *query.Cache

	mu       sync.Mutex
	lastList query.Key
}

func (p *Products) List(ctx context.Context, filters transport.ProductFilters) ([]models.Product, error) {
	f := filters.Normalize()
	key := productListKey(f)
	items, err := query.Fetch(ctx, p.cache, key, func(ctx context.Context) ([]models.Product, error) {
		return p.api.ListProducts(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.lastList = key
	p.mu.Unlock()
	return slices.Clone(items), nil
}

// Placeholder returns what a list view can show while List for filters is loading:
// the cached result for those filters, or else the last list that loaded.
func (p *Products) Placeholder(filters transport.ProductFilters) ([]models.Product, bool) {
	if items, ok := query.Peek[[]models.Product](p.cache, productListKey(filters.Normalize())); ok {
		return slices.Clone(items), true
	}
	p.mu.Lock()
	last := p.lastList
	p.mu.Unlock()
	if last == nil {
		return nil, false
	}
	items, ok := query.Peek[[]models.Product](p.cache, last)
	return slices.Clone(items), ok
}

func (p *Products) Get(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, errx.Validation(missingProductID)
	}
	cached, err := query.Fetch(ctx, p.cache, productDetailKey(id), func(ctx context.Context) (*models.Product, error) {
		return p.api.GetProduct(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := *cached
	return &out, nil
}

func (p *Products) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	prod, err := p.api.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	p.cache.Invalidate(productListsKey())
	return prod, nil
}

func (p *Products) Update(ctx context.Context, id string, patch transport.PatchProductRequest) (*models.Product, error) {
	if id == "" {
		return nil, errx.Validation(missingProductID)
	}
	prod, err := p.api.PatchProduct(ctx, patch, id)
	if err != nil {
		return nil, err
	}
	p.cache.Invalidate(productListsKey())
	p.cache.Invalidate(productDetailKey(id))
	return prod, nil
}

func (p *Products) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errx.Validation(missingProductID)
	}
	if err := p.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	p.cache.Invalidate(productListsKey())
	p.cache.Remove(productDetailKey(id))
	return nil
}

// Refresh marks every cached product read stale.
func (p *Products) Refresh() int {
	return p.cache.Invalidate(productsKey())
}
