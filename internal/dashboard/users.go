package dashboard

import (
	"context"
	"slices"
	"sync"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/query"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

const missingUserID = "User id is missing."

func usersKey() query.Key { return query.Key{"users"} }

func userListsKey() query.Key { return query.Key{"users", "list"} }

func userListKey(f transport.UserFilters) query.Key { return query.Key{"users", "list", f} }

func userDetailKey(id string) query.Key { return query.Key{"users", "detail", id} }

type Users struct {
	api   UserAPI
	cache *query.Cache

	mu       sync.Mutex
	lastList query.Key
}

func (u *Users) List(ctx context.Context, filters transport.UserFilters) ([]models.User, error) {
	f := filters.Normalize()
	key := userListKey(f)
	items, err := query.Fetch(ctx, u.cache, key, func(ctx context.Context) ([]models.User, error) {
		return u.api.ListUsers(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	u.lastList = key
	u.mu.Unlock()
	return slices.Clone(items), nil
}

func (u *Users) Placeholder(filters transport.UserFilters) ([]models.User, bool) {
	if items, ok := query.Peek[[]models.User](u.cache, userListKey(filters.Normalize())); ok {
		return slices.Clone(items), true
	}
	u.mu.Lock()
	last := u.lastList
	u.mu.Unlock()
	if last == nil {
		return nil, false
	}
	items, ok := query.Peek[[]models.User](u.cache, last)
	return slices.Clone(items), ok
}

func (u *Users) Get(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, errx.Validation(missingUserID)
	}
	cached, err := query.Fetch(ctx, u.cache, userDetailKey(id), func(ctx context.Context) (*models.User, error) {
		return u.api.GetUser(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := *cached
	return &out, nil
}

func (u *Users) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	user, err := u.api.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	u.cache.Invalidate(userListsKey())
	return user, nil
}

func (u *Users) Update(ctx context.Context, id string, patch transport.PatchUserRequest) (*models.User, error) {
	if id == "" {
		return nil, errx.Validation(missingUserID)
	}
	user, err := u.api.PatchUser(ctx, patch, id)
	if err != nil {
		return nil, err
	}
	u.cache.Invalidate(userListsKey())
	u.cache.Invalidate(userDetailKey(id))
	return user, nil
}

func (u *Users) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errx.Validation(missingUserID)
	}
	if err := u.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	u.cache.Invalidate(userListsKey())
	u.cache.Remove(userDetailKey(id))
	return nil
}

func (u *Users) Refresh() int {
	return u.cache.Invalidate(usersKey())
}
