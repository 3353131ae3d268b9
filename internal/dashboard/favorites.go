package dashboard

import (
	"slices"
	"sync"

	"github.com/Skotchmaster/astrion_panel/internal/models"
)

// Favorites is the session's set of favorite product ids, kept in the order they were added.
// It is never persisted and is not checked against the product collection.
type Favorites struct {
	mu  sync.RWMutex
	ids []string
}

func NewFavorites() *Favorites {
	return &Favorites{}
}

// Toggle adds id when absent and removes it when present. It reports whether id is now a favorite.
func (f *Favorites) Toggle(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := slices.Index(f.ids, id); i >= 0 {
		f.ids = slices.Delete(f.ids, i, i+1)
		return false
	}
	f.ids = append(f.ids, id)
	return true
}

func (f *Favorites) IsFavorite(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Contains(f.ids, id)
}

func (f *Favorites) IDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.ids)
}

func (f *Favorites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.ids)
}

// Only keeps the products that are favorites, in their original order.
func (f *Favorites) Only(items []models.Product) []models.Product {
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if f.IsFavorite(p.ID) {
			out = append(out, p)
		}
	}
	return out
}
