package repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	pkgdb "github.com/Skotchmaster/astrion_panel/pkg/db"
)

type store interface {
	ProductRepo
	UserRepo
}

func newGormRepo(t *testing.T) *GormRepo {
	t.Helper()
	ctx := context.Background()

	db, err := pkgdb.Open(ctx, pkgdb.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	r := &GormRepo{DB: db}
	require.NoError(t, r.Migrate(ctx))
	require.NoError(t, r.Seed(ctx, SeedProducts(), SeedUsers()))
	return r
}

// stores runs fn against both implementations, each seeded with the default data.
func stores(t *testing.T, fn func(t *testing.T, s store)) {
	t.Helper()
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryRepo(SeedProducts(), SeedUsers()))
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, newGormRepo(t))
	})
}

func productIDs(items []models.Product) []string {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}

func userIDs(items []models.User) []string {
	ids := make([]string, 0, len(items))
	for _, u := range items {
		ids = append(ids, u.ID)
	}
	return ids
}

func ptr[T any](v T) *T { return &v }

func TestListProducts_Filters(t *testing.T) {
	tests := []struct {
		name    string
		filters transport.ProductFilters
		want    []string
	}{
		{name: "unfiltered", filters: transport.ProductFilters{}, want: []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6"}},
		{name: "all category", filters: transport.ProductFilters{Category: models.CategoryAll}, want: []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6"}},
		{name: "category", filters: transport.ProductFilters{Category: models.CategoryHome}, want: []string{"p-3", "p-5"}},
		{name: "keyword in name", filters: transport.ProductFilters{Search: "WATCH"}, want: []string{"p-2"}},
		{name: "keyword in description", filters: transport.ProductFilters{Search: "led desk"}, want: []string{"p-5"}},
		{name: "keyword trimmed", filters: transport.ProductFilters{Search: "  sofa "}, want: []string{"p-3"}},
		{name: "keyword and category", filters: transport.ProductFilters{Search: "minimalist", Category: models.CategoryHome}, want: []string{"p-3", "p-5"}},
		{name: "keyword excluded by category", filters: transport.ProductFilters{Search: "headphones", Category: models.CategoryBooks}, want: []string{}},
		{name: "no match", filters: transport.ProductFilters{Search: "zzz"}, want: []string{}},
	}

	stores(t, func(t *testing.T, s store) {
		for _, tt := range tests {
			items, err := s.ListProducts(context.Background(), tt.filters)
			require.NoError(t, err, tt.name)
			assert.Equal(t, tt.want, productIDs(items), tt.name)
			for _, p := range items {
				if tt.filters.Category != "" && tt.filters.Category != models.CategoryAll {
					assert.Equal(t, tt.filters.Category, p.Category, tt.name)
				}
			}
		}
	})
}

func TestListUsers_Filters(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "unfiltered", search: "", want: []string{"u-1", "u-2", "u-3", "u-4"}},
		{name: "full name", search: "lena", want: []string{"u-3"}},
		{name: "email", search: "ETHAN@", want: []string{"u-2"}},
		{name: "department", search: "operations", want: []string{"u-4"}},
		{name: "shared domain", search: "astrionpanel.com", want: []string{"u-1", "u-2", "u-3", "u-4"}},
		{name: "location is not searchable", search: "London", want: []string{}},
	}

	stores(t, func(t *testing.T, s store) {
		for _, tt := range tests {
			items, err := s.ListUsers(context.Background(), transport.UserFilters{Search: tt.search})
			require.NoError(t, err, tt.name)
			assert.Equal(t, tt.want, userIDs(items), tt.name)
		}
	})
}

func TestCreateProduct_PrependsWithUniqueID(t *testing.T) {
	stores(t, func(t *testing.T, s store) {
		ctx := context.Background()
		created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

		prod, err := s.CreateProduct(ctx, &models.Product{
			Name:           "Desk Plant",
			Price:          1299,
			Category:       models.CategoryHome,
			ImageURL:       "https://example.com/plant.jpg",
			InventoryCount: 3,
			CreatedAt:      created,
		})
		require.NoError(t, err)
		require.NotEmpty(t, prod.ID)

		items, err := s.ListProducts(ctx, transport.ProductFilters{})
		require.NoError(t, err)
		require.Len(t, items, 7)
		assert.Equal(t, prod.ID, items[0].ID)
		assert.True(t, created.Equal(items[0].CreatedAt))

		seen := map[string]bool{}
		for _, p := range items {
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}
	})
}

func TestCreate_RegeneratesCollidingID(t *testing.T) {
	orig := NewID
	t.Cleanup(func() { NewID = orig })

	stores(t, func(t *testing.T, s store) {
		ids := []string{"p-1", "u-2", "fresh-id", "fresh-user"}
		NewID = func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}

		prod, err := s.CreateProduct(context.Background(), &models.Product{Name: "x", Category: models.CategoryBooks})
		require.NoError(t, err)
		assert.Equal(t, "u-2", prod.ID)

		user, err := s.CreateUser(context.Background(), &models.User{FullName: "x"})
		require.NoError(t, err)
		assert.Equal(t, "fresh-id", user.ID)
	})
}

func TestPatchProduct_KeepsIdentity(t *testing.T) {
	stores(t, func(t *testing.T, s store) {
		ctx := context.Background()
		before, err := s.GetProduct(ctx, "p-4")
		require.NoError(t, err)

		after, err := s.PatchProduct(ctx, transport.PatchProductRequest{
			Price:          ptr(int64(1599)),
			InventoryCount: ptr(5),
		}, "p-4")
		require.NoError(t, err)

		assert.Equal(t, "p-4", after.ID)
		assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
		assert.Equal(t, int64(1599), after.Price)
		assert.Equal(t, 5, after.InventoryCount)
		assert.Equal(t, before.Name, after.Name)
		assert.Equal(t, before.Category, after.Category)

		stored, err := s.GetProduct(ctx, "p-4")
		require.NoError(t, err)
		assert.Equal(t, int64(1599), stored.Price)

		items, err := s.ListProducts(ctx, transport.ProductFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6"}, productIDs(items))
	})
}

func TestPatchUser_KeepsIdentity(t *testing.T) {
	stores(t, func(t *testing.T, s store) {
		ctx := context.Background()
		before, err := s.GetUser(ctx, "u-3")
		require.NoError(t, err)

		after, err := s.PatchUser(ctx, transport.PatchUserRequest{Status: ptr(models.StatusActive)}, "u-3")
		require.NoError(t, err)

		assert.Equal(t, "u-3", after.ID)
		assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
		assert.Equal(t, models.StatusActive, after.Status)
		assert.Equal(t, before.Email, after.Email)
	})
}

func TestDelete_RemovesOnlyTarget(t *testing.T) {
	stores(t, func(t *testing.T, s store) {
		ctx := context.Background()

		require.NoError(t, s.DeleteProduct(ctx, "p-3"))
		items, err := s.ListProducts(ctx, transport.ProductFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"p-1", "p-2", "p-4", "p-5", "p-6"}, productIDs(items))

		require.NoError(t, s.DeleteUser(ctx, "u-1"))
		users, err := s.ListUsers(ctx, transport.UserFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"u-2", "u-3", "u-4"}, userIDs(users))
	})
}

func TestMissingIDs_SignalNotFound(t *testing.T) {
	stores(t, func(t *testing.T, s store) {
		ctx := context.Background()

		_, err := s.GetProduct(ctx, "p-404")
		assert.ErrorIs(t, err, errx.ErrNotFound)
		assert.Equal(t, errx.ProductNotFoundMessage, errx.Message(err))

		_, err = s.PatchProduct(ctx, transport.PatchProductRequest{Name: ptr("x")}, "p-404")
		assert.ErrorIs(t, err, errx.ErrNotFound)

		assert.ErrorIs(t, s.DeleteProduct(ctx, "p-404"), errx.ErrNotFound)

		_, err = s.GetUser(ctx, "u-404")
		assert.ErrorIs(t, err, errx.ErrNotFound)
		assert.Equal(t, errx.UserNotFoundMessage, errx.Message(err))

		_, err = s.PatchUser(ctx, transport.PatchUserRequest{}, "u-404")
		assert.ErrorIs(t, err, errx.ErrNotFound)

		assert.ErrorIs(t, s.DeleteUser(ctx, "u-404"), errx.ErrNotFound)

		items, err := s.ListProducts(ctx, transport.ProductFilters{})
		require.NoError(t, err)
		assert.Len(t, items, 6)
	})
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepo(SeedProducts(), nil)

	items, err := r.ListProducts(context.Background(), transport.ProductFilters{})
	require.NoError(t, err)
	items[0].Name = "mutated"

	prod, err := r.GetProduct(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones Pro", prod.Name)
}

func TestPatchRacingDelete_NeverResurrects(t *testing.T) {
	stores(t, func(t *testing.T, s store) {
		ctx := context.Background()
		for _, id := range []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6"} {
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _ = s.PatchProduct(ctx, transport.PatchProductRequest{Name: ptr("renamed")}, id)
			}()
			go func() {
				defer wg.Done()
				assert.NoError(t, s.DeleteProduct(ctx, id))
			}()
			wg.Wait()

			_, err := s.GetProduct(ctx, id)
			assert.ErrorIs(t, err, errx.ErrNotFound, id)
		}

		items, err := s.ListProducts(ctx, transport.ProductFilters{})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
