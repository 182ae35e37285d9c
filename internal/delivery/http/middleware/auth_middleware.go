package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "medbotanica/internal/delivery/context"
	domainerrors "medbotanica/internal/domain/errors"
	"medbotanica/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "bearer "

// AuthMiddleware verifies bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the access token and stores its subject on the context.
// The client only ever sees ErrUnauthorized; the specific reason is logged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			logger.Info("Rejected request", slog.String("reason", "missing bearer token"))

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			logger.Info("Rejected request", slog.String("reason", failureKind(err)), slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetSubject(c, claims.Subject)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, service.ErrInvalidSignature):
		return "invalid signature"
	case errors.Is(err, service.ErrMalformedClaims):
		return "malformed claims"
	default:
		return "unknown"
	}
}
