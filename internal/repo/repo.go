package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

type ProductRepo interface {
	ListProducts(ctx context.Context, filters transport.ProductFilters) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error)
	PatchProduct(ctx context.Context, req transport.PatchProductRequest, id string) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type UserRepo interface {
	ListUsers(ctx context.Context, filters transport.UserFilters) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	PatchUser(ctx context.Context, req transport.PatchUserRequest, id string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

const maxIDAttempts = 8

// NewID is swapped in tests to force collisions.
var NewID = uuid.NewString

func uniqueID(exists func(id string) (bool, error)) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := NewID()
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("no free id after %d attempts", maxIDAttempts)
}

func productNotFound() error { return errx.NotFound(errx.ProductNotFoundMessage) }

func userNotFound() error { return errx.NotFound(errx.UserNotFoundMessage) }

func applyProductPatch(prod *models.Product, req transport.PatchProductRequest) {
	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Category != nil {
		prod.Category = *req.Category
	}
	if req.ImageURL != nil {
		prod.ImageURL = *req.ImageURL
	}
	if req.InventoryCount != nil {
		prod.InventoryCount = *req.InventoryCount
	}
}

func applyUserPatch(user *models.User, req transport.PatchUserRequest) {
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
}
