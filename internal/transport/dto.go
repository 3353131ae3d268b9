package transport

import (
	"strings"

	"github.com/Skotchmaster/astrion_panel/internal/models"
)

type ProductFilters struct {
	Search   string          `json:"search,omitempty"   query:"search"`
	Category models.Category `json:"category,omitempty" query:"category"`
}

// Normalize trims the search term and folds the "all" category into no filter.
func (f ProductFilters) Normalize() ProductFilters {
	out := ProductFilters{Search: strings.TrimSpace(f.Search), Category: f.Category}
	if out.Category == models.CategoryAll {
		out.Category = ""
	}
	return out
}

type UserFilters struct {
	Search string `json:"search,omitempty" query:"search"`
}

func (f UserFilters) Normalize() UserFilters {
	return UserFilters{Search: strings.TrimSpace(f.Search)}
}

type CreateProductRequest struct {
	Name           string          `json:"name"           validate:"required"`
	Description    string          `json:"description"`
	Price          int64           `json:"price"          validate:"min=0"`
	Category       models.Category `json:"category"       validate:"required,oneof=electronics fashion home sports books"`
	ImageURL       string          `json:"imageUrl"       validate:"required,http_url"`
	InventoryCount int             `json:"inventoryCount" validate:"min=0"`
}

type PatchProductRequest struct {
	Name           *string          `json:"name,omitempty"           validate:"omitempty,min=1"`
	Description    *string          `json:"description,omitempty"`
	Price          *int64           `json:"price,omitempty"          validate:"omitempty,min=0"`
	Category       *models.Category `json:"category,omitempty"       validate:"omitempty,oneof=electronics fashion home sports books"`
	ImageURL       *string          `json:"imageUrl,omitempty"       validate:"omitempty,http_url"`
	InventoryCount *int             `json:"inventoryCount,omitempty" validate:"omitempty,min=0"`
}

func (r PatchProductRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.Category == nil && r.ImageURL == nil && r.InventoryCount == nil
}

type CreateUserRequest struct {
	FullName   string        `json:"fullName"   validate:"required"`
	Email      string        `json:"email"      validate:"required,email"`
	Phone      string        `json:"phone"      validate:"required"`
	Role       models.Role   `json:"role"       validate:"required,oneof=admin editor viewer"`
	Status     models.Status `json:"status"     validate:"required,oneof=active inactive"`
	Location   string        `json:"location"   validate:"required"`
	Department string        `json:"department" validate:"required"`
	Bio        string        `json:"bio"`
}

type PatchUserRequest struct {
	FullName   *string        `json:"fullName,omitempty"   validate:"omitempty,min=1"`
	Email      *string        `json:"email,omitempty"      validate:"omitempty,email"`
	Phone      *string        `json:"phone,omitempty"      validate:"omitempty,min=1"`
	Role       *models.Role   `json:"role,omitempty"       validate:"omitempty,oneof=admin editor viewer"`
	Status     *models.Status `json:"status,omitempty"     validate:"omitempty,oneof=active inactive"`
	Location   *string        `json:"location,omitempty"   validate:"omitempty,min=1"`
	Department *string        `json:"department,omitempty" validate:"omitempty,min=1"`
	Bio        *string        `json:"bio,omitempty"`
}

func (r PatchUserRequest) Empty() bool {
	return r.FullName == nil && r.Email == nil && r.Phone == nil && r.Role == nil &&
		r.Status == nil && r.Location == nil && r.Department == nil && r.Bio == nil
}

type ListMeta struct {
	Total int `json:"total"`
}

type ProductList struct {
	Data []models.Product `json:"data"`
	Meta ListMeta         `json:"meta"`
}

type UserList struct {
	Data []models.User `json:"data"`
	Meta ListMeta      `json:"meta"`
}

type Options struct {
	Categories []models.Option `json:"categories"`
	Roles      []models.Option `json:"roles"`
	Statuses   []models.Option `json:"statuses"`
}
