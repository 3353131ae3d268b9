package models

import (
	"time"
)

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
	CategoryBooks       Category = "books"
)

// CategoryAll is the list filter value meaning "any category".
const CategoryAll Category = "all"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// LowStockThreshold is the inventory count below which a product is flagged.
const LowStockThreshold = 10

type Product struct {
	ID             string    `gorm:"primaryKey"          json:"id"`
	Name           string    `gorm:"not null"            json:"name"`
	Description    string    `gorm:"not null;default:''" json:"description"`
	Price          int64     `gorm:"not null"            json:"price"`
	Category       Category  `gorm:"index;not null"      json:"category"`
	ImageURL       string    `gorm:"not null"            json:"imageUrl"`
	InventoryCount int       `gorm:"not null"            json:"inventoryCount"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	Rank           int64     `gorm:"column:list_rank;index;not null" json:"-"`
}

func (p Product) LowStock() bool {
	return p.InventoryCount < LowStockThreshold
}

type User struct {
	ID         string    `gorm:"primaryKey"           json:"id"`
	FullName   string    `gorm:"not null"             json:"fullName"`
	Email      string    `gorm:"not null"             json:"email"`
	Phone      string    `gorm:"not null"             json:"phone"`
	Role       Role      `gorm:"not null"             json:"role"`
	Status     Status    `gorm:"not null"             json:"status"`
	Location   string    `gorm:"not null"             json:"location"`
	Department string    `gorm:"not null"             json:"department"`
	Bio        string    `gorm:"not null;default:''"  json:"bio"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	Rank       int64     `gorm:"column:list_rank;index;not null" json:"-"`
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var Categories = []Option{
	{Label: "Electronics", Value: string(CategoryElectronics)},
	{Label: "Fashion", Value: string(CategoryFashion)},
	{Label: "Home & Living", Value: string(CategoryHome)},
	{Label: "Sports & Outdoor", Value: string(CategorySports)},
	{Label: "Books", Value: string(CategoryBooks)},
}

var Roles = []Option{
	{Label: "Admin", Value: string(RoleAdmin)},
	{Label: "Editor", Value: string(RoleEditor)},
	{Label: "Viewer", Value: string(RoleViewer)},
}

var Statuses = []Option{
	{Label: "Active", Value: string(StatusActive)},
	{Label: "Inactive", Value: string(StatusInactive)},
}

func Label(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func ValidCategory(c Category) bool {
	for _, o := range Categories {
		if o.Value == string(c) {
			return true
		}
	}
	return false
}
