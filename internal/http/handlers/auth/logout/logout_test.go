package logout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/members-portal/internal/http/middlewarectx"
	"github.com/magabrotheeeer/members-portal/internal/lib/cookie"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestHandler(t *testing.T) (*Handler, *AuthServiceMock) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	rend, err := web.NewRenderer(logger)
	require.NoError(t, err)
	authMock := new(AuthServiceMock)
	return New(logger, rend, authMock), authMock
}

func requestWithSession(sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	ctx := context.WithValue(req.Context(), middlewarectx.SessionID, sessionID)
	return req.WithContext(ctx)
}

func TestLogoutHandler_DestroysSessionAndClearsCookie(t *testing.T) {
	handler, authMock := newTestHandler(t)
	authMock.On("Logout", mock.Anything, "sess-1").Return(nil).Once()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithSession("sess-1"))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookie.Name, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	authMock.AssertExpectations(t)
}

// Выход без активной сессии просто перенаправляет на главную
func TestLogoutHandler_AnonymousRequest(t *testing.T) {
	handler, authMock := newTestHandler(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	authMock.AssertNotCalled(t, "Logout")
}

func TestLogoutHandler_StoreError(t *testing.T) {
	handler, authMock := newTestHandler(t)
	authMock.On("Logout", mock.Anything, "sess-1").Return(errors.New("connection refused")).Once()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithSession("sess-1"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Error logging out.")
}
