package repo

import (
	"context"
	"sync"

	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

var (
	_ ProductRepo = (*MemoryRepo)(nil)
	_ UserRepo    = (*MemoryRepo)(nil)
)

// MemoryRepo keeps both collections in process-local slices, newest first.
type MemoryRepo struct {
	mu       sync.RWMutex
	products []models.Product
	users    []models.User
}

func NewMemoryRepo(products []models.Product, users []models.User) *MemoryRepo {
	return &MemoryRepo{
		products: append([]models.Product(nil), products...),
		users:    append([]models.User(nil), users...),
	}
}

func (r *MemoryRepo) productIndex(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryRepo) userIndex(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryRepo) ListProducts(_ context.Context, filters transport.ProductFilters) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if MatchProduct(p, filters) {
			items = append(items, p)
		}
	}
	return items, nil
}

func (r *MemoryRepo) GetProduct(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.productIndex(id)
	if i == -1 {
		return nil, productNotFound()
	}
	prod := r.products[i]
	return &prod, nil
}

func (r *MemoryRepo) CreateProduct(_ context.Context, prod *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prod.ID == "" || r.productIndex(prod.ID) != -1 {
		id, err := uniqueID(func(id string) (bool, error) { return r.productIndex(id) != -1, nil })
		if err != nil {
			return nil, err
		}
		prod.ID = id
	}

	r.products = append([]models.Product{*prod}, r.products...)
	out := *prod
	return &out, nil
}

func (r *MemoryRepo) PatchProduct(_ context.Context, req transport.PatchProductRequest, id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.productIndex(id)
	if i == -1 {
		return nil, productNotFound()
	}

	prod := r.products[i]
	applyProductPatch(&prod, req)

	next := make([]models.Product, len(r.products))
	copy(next, r.products)
	next[i] = prod
	r.products = next

	return &prod, nil
}

func (r *MemoryRepo) DeleteProduct(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.productIndex(id)
	if i == -1 {
		return productNotFound()
	}

	next := make([]models.Product, 0, len(r.products)-1)
	next = append(next, r.products[:i]...)
	r.products = append(next, r.products[i+1:]...)
	return nil
}

func (r *MemoryRepo) ListUsers(_ context.Context, filters transport.UserFilters) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if MatchUser(u, filters) {
			items = append(items, u)
		}
	}
	return items, nil
}

func (r *MemoryRepo) GetUser(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.userIndex(id)
	if i == -1 {
		return nil, userNotFound()
	}
	user := r.users[i]
	return &user, nil
}

func (r *MemoryRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" || r.userIndex(user.ID) != -1 {
		id, err := uniqueID(func(id string) (bool, error) { return r.userIndex(id) != -1, nil })
		if err != nil {
			return nil, err
		}
		user.ID = id
	}

	r.users = append([]models.User{*user}, r.users...)
	out := *user
	return &out, nil
}

func (r *MemoryRepo) PatchUser(_ context.Context, req transport.PatchUserRequest, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.userIndex(id)
	if i == -1 {
		return nil, userNotFound()
	}

	user := r.users[i]
	applyUserPatch(&user, req)

	next := make([]models.User, len(r.users))
	copy(next, r.users)
	next[i] = user
	r.users = next

	return &user, nil
}

func (r *MemoryRepo) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.userIndex(id)
	if i == -1 {
		return userNotFound()
	}

	next := make([]models.User, 0, len(r.users)-1)
	next = append(next, r.users[:i]...)
	r.users = append(next, r.users[i+1:]...)
	return nil
}
