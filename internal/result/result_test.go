package result_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticklist/ticklist/internal/result"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code result.ErrorCode
		want int
	}{
		{result.ServerError, http.StatusInternalServerError},
		{result.BadRequest, http.StatusBadRequest},
		{result.Unauthorized, http.StatusUnauthorized},
		{result.Forbidden, http.StatusForbidden},
		{result.NotFound, http.StatusNotFound},
		{result.Conflict, http.StatusConflict},
		{result.UserNotFound, http.StatusNotFound},
		{result.MethodNotAllowed, http.StatusMethodNotAllowed},
		{result.UnsupportedMediaType, http.StatusUnsupportedMediaType},
		{result.Timeout, http.StatusRequestTimeout},
		{result.RateLimitExceeded, http.StatusTooManyRequests},
		{result.ServiceUnavailable, http.StatusServiceUnavailable},
		{result.MissingRequiredField, http.StatusUnprocessableEntity},
		{result.InvalidCredentials, http.StatusUnauthorized},
		{result.SessionExpired, result.StatusSessionExpired},
		{result.PasswordTooWeak, http.StatusBadRequest},
		{result.DBConnectionError, http.StatusInternalServerError},
		{result.FileTooLarge, http.StatusRequestEntityTooLarge},
		{result.InternalError, http.StatusInternalServerError},
		{result.InvalidToken, http.StatusUnauthorized},
		{result.TokenNotProvided, http.StatusUnauthorized},
		{result.EmailExists, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, result.StatusFor(tt.code))
		})
	}
}

func TestStatusForUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, result.StatusFor("NO_SUCH_CODE"))
	assert.Equal(t, http.StatusInternalServerError, result.StatusFor(""))
}

func TestSessionExpiredStatus(t *testing.T) {
	assert.Equal(t, 440, result.StatusFor(result.SessionExpired))
}

func TestOk(t *testing.T) {
	r := result.Ok("payload")

	assert.True(t, r.Success)
	assert.False(t, r.Failed())
	assert.Equal(t, "payload", r.Data)
	assert.Empty(t, r.Message)
	assert.Empty(t, r.Code)
}

func TestFail(t *testing.T) {
	r := result.Fail[string]("something broke", result.ServerError)

	assert.False(t, r.Success)
	assert.True(t, r.Failed())
	assert.Empty(t, r.Data)
	assert.Equal(t, "something broke", r.Message)
	assert.Equal(t, result.ServerError, r.Code)
}

func TestForward(t *testing.T) {
	t.Run("preserves message and code across payload types", func(t *testing.T) {
		failure := result.Fail[int]("no such user", result.UserNotFound)

		forwarded := result.Forward[string](failure)

		assert.True(t, forwarded.Failed())
		assert.Equal(t, "no such user", forwarded.Message)
		assert.Equal(t, result.UserNotFound, forwarded.Code)
	})

	t.Run("forwarding a success degrades to server error", func(t *testing.T) {
		ok := result.Ok(42)

		forwarded := result.Forward[string](ok)

		assert.True(t, forwarded.Failed())
		assert.Equal(t, result.ServerError, forwarded.Code)
	})
}
