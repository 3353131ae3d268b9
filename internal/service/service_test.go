package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/repo"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	"github.com/Skotchmaster/astrion_panel/pkg/events"
	"github.com/Skotchmaster/astrion_panel/pkg/metrics"
)

type published struct {
	topic string
	key   string
	event events.Event
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{topic: topic, key: key, event: event.(events.Event)})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.sent))
	for _, s := range p.sent {
		out = append(out, s.event.Type)
	}
	return out
}

var fixedNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func newServices(pub events.Publisher) (*CatalogService, *UserService) {
	r := repo.NewMemoryRepo(repo.SeedProducts(), repo.SeedUsers())
	rt := Runtime{Publisher: pub, Now: func() time.Time { return fixedNow }}
	return &CatalogService{Repo: r, Runtime: rt}, &UserService{Repo: r, Runtime: rt}
}

func ptr[T any](v T) *T { return &v }

func validProduct() transport.CreateProductRequest {
	return transport.CreateProductRequest{
		Name:           "Desk Plant",
		Description:    "A small fern.",
		Price:          1299,
		Category:       models.CategoryHome,
		ImageURL:       "https://example.com/fern.jpg",
		InventoryCount: 4,
	}
}

func validUser() transport.CreateUserRequest {
	return transport.CreateUserRequest{
		FullName:   "Nia Brooks",
		Email:      "nia@astrionpanel.com",
		Phone:      "+1 555 0100",
		Role:       models.RoleEditor,
		Status:     models.StatusActive,
		Location:   "Austin, USA",
		Department: "Design",
	}
}

func TestCreateProduct_AssignsIDAndCreatedAt(t *testing.T) {
	t.Parallel()
	pub := &recordingPublisher{}
	catalog, _ := newServices(pub)
	ctx := context.Background()

	prod, err := catalog.CreateProduct(ctx, validProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, prod.ID)
	assert.True(t, fixedNow.Equal(prod.CreatedAt))

	items, err := catalog.ListProducts(ctx, transport.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, items, 7)
	assert.Equal(t, prod.ID, items[0].ID)

	require.Len(t, pub.sent, 1)
	assert.Equal(t, events.ProductTopic, pub.sent[0].topic)
	assert.Equal(t, prod.ID, pub.sent[0].key)
	assert.Equal(t, "product_created", pub.sent[0].event.Type)
	assert.Equal(t, "Desk Plant", pub.sent[0].event.Name)
}

func TestCreateProduct_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(r *transport.CreateProductRequest)
		want   []string
	}{
		{name: "empty payload", mutate: func(r *transport.CreateProductRequest) { *r = transport.CreateProductRequest{} },
			want: []string{"name is required", "category is required", "imageUrl is required"}},
		{name: "negative price", mutate: func(r *transport.CreateProductRequest) { r.Price = -1 },
			want: []string{"price must be at least 0"}},
		{name: "unknown category", mutate: func(r *transport.CreateProductRequest) { r.Category = "toys" },
			want: []string{"category must be one of electronics, fashion, home, sports, books"}},
		{name: "bad image url", mutate: func(r *transport.CreateProductRequest) { r.ImageURL = "not a url" },
			want: []string{"imageUrl must be an http(s) URL"}},
		{name: "negative inventory", mutate: func(r *transport.CreateProductRequest) { r.InventoryCount = -2 },
			want: []string{"inventoryCount must be at least 0"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pub := &recordingPublisher{}
			catalog, _ := newServices(pub)

			req := validProduct()
			tt.mutate(&req)
			_, err := catalog.CreateProduct(context.Background(), req)
			require.ErrorIs(t, err, errx.ErrValidation)
			for _, w := range tt.want {
				assert.Contains(t, errx.Message(err), w)
			}
			assert.Empty(t, pub.sent)
		})
	}
}

func TestPatchProduct_MergesSuppliedFields(t *testing.T) {
	t.Parallel()
	pub := &recordingPublisher{}
	catalog, _ := newServices(pub)
	ctx := context.Background()

	before, err := catalog.GetProduct(ctx, "p-1")
	require.NoError(t, err)

	after, err := catalog.PatchProduct(ctx, transport.PatchProductRequest{InventoryCount: ptr(2)}, "p-1")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, 2, after.InventoryCount)
	assert.True(t, after.LowStock())
	assert.Equal(t, []string{"product_updated"}, pub.types())
}

func TestPatchProduct_RejectsInvalidPatch(t *testing.T) {
	t.Parallel()
	catalog, _ := newServices(nil)

	_, err := catalog.PatchProduct(context.Background(), transport.PatchProductRequest{
		Name:  ptr(""),
		Price: ptr(int64(-5)),
	}, "p-1")
	require.ErrorIs(t, err, errx.ErrValidation)
	assert.Contains(t, errx.Message(err), "name must not be empty")
	assert.Contains(t, errx.Message(err), "price must be at least 0")
}

func TestListProducts_UnknownCategory(t *testing.T) {
	t.Parallel()
	catalog, _ := newServices(nil)

	_, err := catalog.ListProducts(context.Background(), transport.ProductFilters{Category: "toys"})
	require.ErrorIs(t, err, errx.ErrValidation)

	items, err := catalog.ListProducts(context.Background(), transport.ProductFilters{Category: models.CategoryAll})
	require.NoError(t, err)
	assert.Len(t, items, 6)
}

func TestListProducts_EmptyResultIsNotNil(t *testing.T) {
	t.Parallel()
	catalog, users := newServices(nil)

	items, err := catalog.ListProducts(context.Background(), transport.ProductFilters{Search: "nothing matches this"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	people, err := users.ListUsers(context.Background(), transport.UserFilters{Search: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, people)
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()
	pub := &recordingPublisher{}
	catalog, _ := newServices(pub)
	ctx := context.Background()

	require.NoError(t, catalog.DeleteProduct(ctx, "p-2"))
	_, err := catalog.GetProduct(ctx, "p-2")
	require.ErrorIs(t, err, errx.ErrNotFound)
	assert.Equal(t, errx.ProductNotFoundMessage, errx.Message(err))

	err = catalog.DeleteProduct(ctx, "p-2")
	require.ErrorIs(t, err, errx.ErrNotFound)
	assert.Equal(t, []string{"product_deleted"}, pub.types())
}

func TestUserService_Lifecycle(t *testing.T) {
	t.Parallel()
	pub := &recordingPublisher{}
	_, users := newServices(pub)
	ctx := context.Background()

	created, err := users.CreateUser(ctx, validUser())
	require.NoError(t, err)
	assert.True(t, fixedNow.Equal(created.CreatedAt))

	found, err := users.ListUsers(ctx, transport.UserFilters{Search: " design "})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	updated, err := users.PatchUser(ctx, transport.PatchUserRequest{Role: ptr(models.RoleAdmin)}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, created.Email, updated.Email)

	require.NoError(t, users.DeleteUser(ctx, created.ID))
	_, err = users.GetUser(ctx, created.ID)
	require.ErrorIs(t, err, errx.ErrNotFound)
	assert.Equal(t, errx.UserNotFoundMessage, errx.Message(err))

	assert.Equal(t, []string{"user_created", "user_updated", "user_deleted"}, pub.types())
	for _, s := range pub.sent {
		assert.Equal(t, events.UserTopic, s.topic)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	t.Parallel()
	_, users := newServices(nil)

	req := validUser()
	req.Email = "nia-at-example"
	req.Role = "owner"
	req.Location = ""
	_, err := users.CreateUser(context.Background(), req)
	require.ErrorIs(t, err, errx.ErrValidation)
	msg := errx.Message(err)
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "role must be one of admin, editor, viewer")
	assert.Contains(t, msg, "location is required")
}

func TestPublishFailure_DoesNotFailMutation(t *testing.T) {
	t.Parallel()
	catalog, _ := newServices(&recordingPublisher{err: errors.New("broker down")})

	prod, err := catalog.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, prod.ID)
}

func TestSimulatedLatency(t *testing.T) {
	t.Parallel()

	t.Run("waits before answering", func(t *testing.T) {
		t.Parallel()
		catalog, _ := newServices(nil)
		catalog.Latency = 30 * time.Millisecond

		start := time.Now()
		_, err := catalog.GetProduct(context.Background(), "p-1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("cancellation ends the wait", func(t *testing.T) {
		t.Parallel()
		catalog, _ := newServices(nil)
		catalog.Latency = time.Hour

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := catalog.ListProducts(ctx, transport.ProductFilters{})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("cancelled mutation leaves the store alone", func(t *testing.T) {
		t.Parallel()
		catalog, _ := newServices(nil)
		catalog.Latency = time.Hour

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, catalog.DeleteProduct(ctx, "p-1"), context.Canceled)

		catalog.Latency = 0
		_, err := catalog.GetProduct(context.Background(), "p-1")
		require.NoError(t, err)
	})
}

func TestOperationsAreCounted(t *testing.T) {
	t.Parallel()
	catalog, _ := newServices(nil)
	m := metrics.New()
	catalog.Metrics = m

	_, _ = catalog.GetProduct(context.Background(), "p-1")
	_, _ = catalog.GetProduct(context.Background(), "missing")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `panel_service_operations_total{kind="product",op="get",outcome="ok"} 1`)
	assert.Contains(t, string(body), `panel_service_operations_total{kind="product",op="get",outcome="not_found"} 1`)
}
