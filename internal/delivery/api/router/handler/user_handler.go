package handler

import (
	"log/slog"
	"net/http"

	"cafeteria/internal/delivery/api/response"
	"cafeteria/internal/domain/entity"
	"cafeteria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserAdminUC usecase.UserAdminUsecase
	AuthUC      usecase.AuthUsecase
	Logger      *slog.Logger
}

// UserHandler serves user administration. Every write needs the version the
// client last read in If-Match.
type UserHandler struct {
	userAdminUC usecase.UserAdminUsecase
	authUC      usecase.AuthUsecase
	logger      *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userAdminUC: params.UserAdminUC,
		authUC:      params.AuthUC,
		logger:      params.Logger,
	}
}

type CreateUserRequest struct {
	Username   string   `json:"username" validate:"required,email,max=255"`
	Password   string   `json:"password" validate:"required,min=8,max=100"`
	RePassword string   `json:"rePassword" validate:"required"`
	FullName   string   `json:"fullName" validate:"required,min=2,max=255"`
	Roles      []string `json:"authorities" validate:"required,min=1,dive,oneof=USER_ADMIN CUSTOMER SUPPLIER"`
}

type UpdateUserRequest struct {
	FullName *string  `json:"fullName" validate:"omitempty,min=2,max=255"`
	Roles    []string `json:"authorities" validate:"omitempty,min=1,dive,oneof=USER_ADMIN CUSTOMER SUPPLIER"`
	Enabled  *bool    `json:"enabled"`
}

type SearchUsersRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// CreateUser creates an account with the given roles.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	user, err := h.userAdminUC.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Username:   req.Username,
		Password:   req.Password,
		RePassword: req.RePassword,
		FullName:   req.FullName,
		Roles:      req.Roles,
		CreatedBy:  actor,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, user.Version)

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// GetUser returns a user and its version as ETag.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userAdminUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, user.Version)

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateUser changes the full name, roles or enabled flag.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	version, err := expectedVersion(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	user, err := h.userAdminUC.UpdateUser(c.Request().Context(), id, version, usecase.UpdateUserInput{
		FullName:   req.FullName,
		Roles:      req.Roles,
		Enabled:    req.Enabled,
		ModifiedBy: actor,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setETag(c, user.Version)

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteUser anonymizes and disables a user.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	version, err := expectedVersion(c)
	if err != nil {
		return errors.WithStack(err)
	}

	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	user, err := h.userAdminUC.DeleteUser(c.Request().Context(), id, version, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// SearchUsers pages through users matching the body filters.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req SearchUsersRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return errors.WithStack(err)
		}
	}

	users, err := h.userAdminUC.SearchUsers(c.Request().Context(), usecase.UserSearchQuery{
		Username: req.Username,
		FullName: req.FullName,
	}, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, entity.MapPage(users, newUserResponse))
}

// CheckUsername reports whether a username is taken.
func (h *UserHandler) CheckUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.BadRequest(c, "INVALID_ARGUMENT", "username is required")
	}

	exists, err := h.userAdminUC.UsernameExists(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists})
}

// actor returns the username recorded as creator or modifier.
func (h *UserHandler) actor(c echo.Context) (string, error) {
	userID, _, err := caller(c)
	if err != nil {
		return "", errors.WithStack(err)
	}

	user, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return user.Username, nil
}
