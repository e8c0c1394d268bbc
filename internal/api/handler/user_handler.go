package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/ecommerce-api/internal/api/metrics"
	"github.com/shopcore/ecommerce-api/internal/core/domain"
	"github.com/shopcore/ecommerce-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user CRUD operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
}

// userResponse mirrors the stored record, password included: accounts are
// persisted and served exactly as received.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
		Enabled:  u.Enabled,
	}
}

// List handles GET /user.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  map[string]string
// @Router       /user [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("user", "list").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, newUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /user/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		metrics.StoreErrorsTotal.WithLabelValues("user", "get").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// GetByEmail handles GET /user/email/:email.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Email address"
// @Success      200    {object}  userResponse
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /user/email/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.service.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		metrics.StoreErrorsTotal.WithLabelValues("user", "get_by_email").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Create handles POST /user. New accounts always start enabled.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User fields (id is assigned by the store)"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("user", "create").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create user"})
	}

	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, newUserResponse(user))
}

// Update handles PUT /user/:id. The payload replaces every mutable field
// of the stored account, Enabled included.
//
// @Summary      Update a user (full replace)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Replacement field values"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Enabled:  req.Enabled,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		metrics.StoreErrorsTotal.WithLabelValues("user", "update").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update user"})
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Delete handles DELETE /user/:id. The record is removed when present;
// deleting an absent id reports 404 without side effects.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	existed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("user", "delete").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete user"})
	}
	if !existed {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return c.NoContent(http.StatusOK)
}
