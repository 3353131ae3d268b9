package repo

import (
	"strings"

	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func MatchProduct(p models.Product, filters transport.ProductFilters) bool {
	f := filters.Normalize()
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	return containsFold(p.Name, f.Search) || containsFold(p.Description, f.Search)
}

func MatchUser(u models.User, filters transport.UserFilters) bool {
	f := filters.Normalize()
	if f.Search == "" {
		return true
	}
	return containsFold(u.FullName, f.Search) ||
		containsFold(u.Email, f.Search) ||
		containsFold(u.Department, f.Search)
}
