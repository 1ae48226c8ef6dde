package main

import (
	"net/http"
	"strings"

	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type setupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// setupHandler bootstraps the first admin. The completeness re-check makes a
// second bootstrap a 400 even with valid input.
func setupHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(setupRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
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

		done, err := authSvc.CheckSetupStatus(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		if done {
			return badRequest(c, "Setup already completed")
		}

		user, err := authSvc.CreateUser(c.Request().Context(), req.Email, req.Password, req.Name, model.RoleAdmin)
		if err != nil {
			return writeError(c, err)
		}

		token, err := authSvc.Tokens.Generate(user.ID, user.Email, user.Role)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"success": true,
			"data": echo.Map{
				"user":  toUserResponse(user),
				"token": token,
			},
			"message": "Admin account created successfully",
		})
	}
}

func setupStatusHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		done, err := authSvc.CheckSetupStatus(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusOK, echo.Map{"isSetupComplete": done}, "")
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if err := services.ValidateEmail(req.Email); err != nil {
			return writeError(c, err)
		}
		if req.Password == "" {
			return badRequest(c, "Password is required")
		}

		user, err := authSvc.AuthenticateUser(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return writeError(c, err)
		}

		token, err := authSvc.Tokens.Generate(user.ID, user.Email, user.Role)
		if err != nil {
			return writeError(c, err)
		}

		return respond(c, http.StatusOK, echo.Map{
			"user":  toUserResponse(user),
			"token": token,
		}, "Login successful")
	}
}

// meHandler re-verifies the bearer token through the full current-user
// composition, so a user deactivated after issuance is rejected here even
// though the gate already accepted the signature.
func meHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		user, err := authSvc.GetCurrentUser(c.Request().Context(), token)
		if err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusOK, echo.Map{"user": toUserResponse(user)}, "")
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	grp := g.Group("/auth")

	// public (the gate passes these through)
	grp.POST("/setup", setupHandler(authSvc))
	grp.GET("/setup/status", setupStatusHandler(authSvc))
	grp.POST("/login", loginHandler(authSvc))

	// protected by the gate
	grp.GET("/me", meHandler(authSvc))
}
