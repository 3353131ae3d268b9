package service

import (
	"context"

	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/repo"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
	"github.com/Skotchmaster/astrion_panel/pkg/events"
)

type UserService struct {
	Repo repo.UserRepo
	Runtime
}

func (s *UserService) ListUsers(ctx context.Context, filters transport.UserFilters) (items []models.User, err error) {
	defer func() { s.observe(kindUser, "list", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	items, err = s.Repo.ListUsers(ctx, filters.Normalize())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.User{}
	}
	return items, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (user *models.User, err error) {
	defer func() { s.observe(kindUser, "get", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	return s.Repo.GetUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, req transport.CreateUserRequest) (user *models.User, err error) {
	defer func() { s.observe(kindUser, "create", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	if err = validateStruct(req); err != nil {
		return nil, err
	}

	user, err = s.Repo.CreateUser(ctx, &models.User{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Status:     req.Status,
		Location:   req.Location,
		Department: req.Department,
		Bio:        req.Bio,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.UserTopic, events.Event{Type: "user_created", ID: user.ID, Name: user.FullName})
	return user, nil
}

func (s *UserService) PatchUser(ctx context.Context, req transport.PatchUserRequest, id string) (user *models.User, err error) {
	defer func() { s.observe(kindUser, "update", err) }()

	if err = s.simulate(ctx); err != nil {
		return nil, err
	}
	if err = validateStruct(req); err != nil {
		return nil, err
	}

	user, err = s.Repo.PatchUser(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.UserTopic, events.Event{Type: "user_updated", ID: user.ID, Name: user.FullName})
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) (err error) {
	defer func() { s.observe(kindUser, "delete", err) }()

	if err = s.simulate(ctx); err != nil {
		return err
	}
	if err = s.Repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.UserTopic, events.Event{Type: "user_deleted", ID: id})
	return nil
}
