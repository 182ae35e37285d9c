// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	deliverycontext "medbotanica/internal/delivery/context"
	"medbotanica/internal/delivery/http/response"
	"medbotanica/internal/domain/entity"
	domainerrors "medbotanica/internal/domain/errors"
	"medbotanica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const tokenTypeBearer = "bearer"

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// userResponse is the public view of a user. The password hash never leaves the server.
type userResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ProfileURL string    `json:"profile_url,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerResponse struct {
	User userResponse `json:"user"`
	tokenResponse
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		ProfileURL: user.ProfileURL,
		Role:       user.Role.String(),
		CreatedAt:  user.CreatedAt,
	}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		User:          newUserResponse(output.User),
		tokenResponse: tokenResponse{AccessToken: output.AccessToken, TokenType: tokenTypeBearer},
	}, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   tokenTypeBearer,
	}, "Login successful")
}

// Me returns the user the access token was issued to.
func (h *UserHandler) Me(c echo.Context) error {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := h.uc.GetCurrentUser(c.Request().Context(), subject)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// subjectUserID returns the authenticated user's ID.
func subjectUserID(c echo.Context) (uuid.UUID, error) {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}
