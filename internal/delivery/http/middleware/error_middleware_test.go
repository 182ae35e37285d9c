package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"medbotanica/internal/delivery/http/response"
	"medbotanica/internal/delivery/http/validator"
	domainerrors "medbotanica/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, response.Response) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	code, body := handleError(t, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, body.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, "Invalid email or password", body.Message)
}

func TestErrorMiddleware_AppErrorDetails(t *testing.T) {
	code, body := handleError(t, domainerrors.ErrUploadInvalid.WithDetails("multipart field \"file\" is required"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "UPLOAD_INVALID", body.Error.Code)
	assert.Equal(t, "multipart field \"file\" is required", body.Error.Details)
}

func TestErrorMiddleware_ServerErrorHidesCause(t *testing.T) {
	code, body := handleError(t, errors.Wrap(domainerrors.ErrStorageFailed, "s3: access denied for key uploads/x"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "STORAGE_FAILED", body.Error.Code)
	assert.Empty(t, body.Error.Details)
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := validator.New().Validate(&input{Email: "nope"})
	require.Error(t, err)

	code, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "email: email", body.Error.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Not Found", body.Message)
}

func TestErrorMiddleware_Unknown(t *testing.T) {
	code, body := handleError(t, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Message, "exploded")
}
