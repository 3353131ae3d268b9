package service

import (
	"context"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/repo"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	"github.com/Skotchmaster/astrion_panel/pkg/events"
)

type CatalogService struct {
	Repo repo.ProductRepo
	Runtime
}

func (s *CatalogService) ListProducts(ctx context.Context, filters transport.ProductFilters) (items []models.Product, err error) {
	defer func() { s.observe(kindProduct, "list", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	filters = filters.Normalize()
	if filters.Category != "" && !models.ValidCategory(filters.Category) {
		return nil, errx.Validation("Unknown category %q.", filters.Category)
	}
	items, err = s.Repo.ListProducts(ctx, filters)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (prod *models.Product, err error) {
	defer func() { s.observe(kindProduct, "get", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (prod *models.Product, err error) {
	defer func() { s.observe(kindProduct, "create", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	if err = validateStruct(req); err != nil {
		return nil, err
	}

	prod, err = s.Repo.CreateProduct(ctx, &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		InventoryCount: req.InventoryCount,
		CreatedAt:      s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.ProductTopic, events.Event{Type: "product_created", ID: prod.ID, Name: prod.Name})
	return prod, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id string) (prod *models.Product, err error) {
	defer func() { s.observe(kindProduct, "update", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	if err = validateStruct(req); err != nil {
		return nil, err
	}

	prod, err = s.Repo.PatchProduct(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.ProductTopic, events.Event{Type: "product_updated", ID: prod.ID, Name: prod.Name})
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (err error) {
	defer func() { s.observe(kindProduct, "delete", err) }()

	if err = s.simulate(ctx); err != nil {
		return err
	}
	if err = s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.ProductTopic, events.Event{Type: "product_deleted", ID: id})
	return nil
}
