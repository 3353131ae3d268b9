package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/astrion_panel/internal/service"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	"github.com/Skotchmaster/astrion_panel/pkg/logging"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	var filters transport.UserFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filters); err != nil {
		return badBody(l, "get_users_error", err)
	}

	items, err := h.Svc.ListUsers(ctx, filters)
	if err != nil {
		return fail(l, "get_users_error", err)
	}

	return c.JSON(http.StatusOK, transport.UserList{
		Data: items,
		Meta: transport.ListMeta{Total: len(items)},
	})
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	user, err := h.Svc.GetUser(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_user_error", err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "user_create_error", err)
	}

	created, err := h.Svc.CreateUser(ctx, req)
	if err != nil {
		return fail(l, "user_create_error", err)
	}

	l.Info("create_user_success", "id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *UserHTTP) PatchUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.patch_user")

	var req transport.PatchUserRequest
	if err := c.Bind(&req); err != nil {
		return badBody(l, "user_patch_error", err)
	}

	user, err := h.Svc.PatchUser(ctx, req, c.Param("id"))
	if err != nil {
		return fail(l, "user_patch_error", err)
	}

	l.Info("patch_user_success", "id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id := c.Param("id")
	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		return fail(l, "user_delete_error", err)
	}

	l.Info("delete_user_success", "id", id)
	return c.NoContent(http.StatusNoContent)
}
