package main

import (
	"net/http"

	"InvoiceNestAPI/internal/middleware"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/repository"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// registerUserRoutes exposes admin-only user management: listing, creating
// additional accounts, and flipping the active flag. Users are never
// physically deleted.
func registerUserRoutes(api *echo.Group, authSvc *services.AuthService, users *repository.UserRepository) {
	admin := api.Group("/users")
	admin.Use(middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		list, err := users.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusOK, list, "")
	})

	admin.POST("", func(c echo.Context) error {
		req := new(createUserRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if req.Role == "" {
			req.Role = model.RoleUser
		}
		if req.Role != model.RoleAdmin && req.Role != model.RoleUser {
			return badRequest(c, "invalid role")
		}
		if err := services.ValidateName(req.Name); err != nil {
			return writeError(c, err)
		}
		if err := services.ValidateEmail(req.Email); err != nil {
			return writeError(c, err)
		}
		if err := services.ValidatePassword(req.Password); err != nil {
			return writeError(c, err)
		}

		user, err := authSvc.CreateUser(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
		if err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusCreated, toUserResponse(user), "User created")
	})

	admin.POST("/:id/deactivate", func(c echo.Context) error {
		if err := users.SetActive(c.Request().Context(), c.Param("id"), false); err != nil {
			return notFoundOr(c, err, "user not found")
		}
		return respond(c, http.StatusOK, nil, "User deactivated")
	})

	admin.POST("/:id/activate", func(c echo.Context) error {
		if err := users.SetActive(c.Request().Context(), c.Param("id"), true); err != nil {
			return notFoundOr(c, err, "user not found")
		}
		return respond(c, http.StatusOK, nil, "User activated")
	})
}
