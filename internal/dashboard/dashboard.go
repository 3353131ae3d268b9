// Package dashboard is the client side of the panel: cached reads, mutations that
// keep the cache honest, and the favorites set.
package dashboard

import (
	"context"

	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/query"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

type ProductAPI interface {
	ListProducts(ctx context.Context, filters transport.ProductFilters) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error)
	PatchProduct(ctx context.Context, req transport.PatchProductRequest, id string) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type UserAPI interface {
	ListUsers(ctx context.Context, filters transport.UserFilters) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req transport.CreateUserRequest) (*models.User, error)
	PatchUser(ctx context.Context, req transport.PatchUserRequest, id string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type Dashboard struct {
	Products  *Products
	Users     *Users
	Favorites *Favorites
	Cache     *query.Cache
}

func New(products ProductAPI, users UserAPI, cache *query.Cache) *Dashboard {
	return &Dashboard{
		Products:  &Products{api: products, cache: cache},
		Users:     &Users{api: users, cache: cache},
		Favorites: NewFavorites(),
		Cache:     cache,
	}
}
