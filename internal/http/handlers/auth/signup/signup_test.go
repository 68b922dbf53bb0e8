package signup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/members-portal/internal/lib/cookie"
	"github.com/magabrotheeeer/members-portal/internal/storage/repository"
	"github.com/magabrotheeeer/members-portal/internal/web"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Signup(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestHandler(t *testing.T) (*Handler, *AuthServiceMock) {
	t.Helper()
	logger := newNoopLogger()
	rend, err := web.NewRenderer(logger)
	require.NoError(t, err)
	authMock := new(AuthServiceMock)
	maker := cookie.NewMaker("test_cookie_secret", 60*time.Minute)
	return New(logger, rend, authMock, maker, 60*time.Minute), authMock
}

func postForm(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestSignupHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		mockID         string
		mockErr        error
		wantStatusCode int
		wantLocation   string
		wantBody       string
		wantCookie     bool
	}{
		{
			name: "valid signup redirects to members",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"ann@x.com"},
				"password": {"secret1"},
			},
			mockID:         "sess-1",
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/members",
			wantCookie:     true,
		},
		{
			name: "six character password accepted",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"ann@x.com"},
				"password": {"abcdef"},
			},
			mockID:         "sess-1",
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/members",
			wantCookie:     true,
		},
		{
			name: "fifty character password accepted",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"ann@x.com"},
				"password": {strings.Repeat("a", 50)},
			},
			mockID:         "sess-1",
			wantStatusCode: http.StatusSeeOther,
			wantLocation:   "/members",
			wantCookie:     true,
		},
		{
			name: "five character password rejected",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"ann@x.com"},
				"password": {"abcde"},
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "at least 6",
		},
		{
			name: "fifty one character password rejected",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"ann@x.com"},
				"password": {strings.Repeat("a", 51)},
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "at most 50",
		},
		{
			name: "missing name rejected",
			form: url.Values{
				"email":    {"ann@x.com"},
				"password": {"secret1"},
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "required",
		},
		{
			name: "name longer than fifty characters rejected",
			form: url.Values{
				"name":     {strings.Repeat("a", 51)},
				"email":    {"ann@x.com"},
				"password": {"secret1"},
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "at most 50",
		},
		{
			name: "malformed email rejected",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"not-an-email"},
				"password": {"secret1"},
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "valid email",
		},
		{
			name: "duplicate email",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"ann@x.com"},
				"password": {"secret1"},
			},
			mockErr:        repository.ErrEmailTaken,
			wantStatusCode: http.StatusConflict,
			wantBody:       "already registered",
		},
		{
			name: "store failure",
			form: url.Values{
				"name":     {"Ann"},
				"email":    {"ann@x.com"},
				"password": {"secret1"},
			},
			mockErr:        errors.New("connection refused"),
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       "Error signing up.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, authMock := newTestHandler(t)

			if tt.mockID != "" || tt.mockErr != nil {
				authMock.On("Signup", mock.Anything,
					tt.form.Get("name"), tt.form.Get("email"), tt.form.Get("password")).
					Return(tt.mockID, tt.mockErr).Once()
			}

			rr := postForm(handler.Submit, tt.form)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}

			gotCookie := false
			for _, c := range rr.Result().Cookies() {
				if c.Name == cookie.Name && c.Value != "" {
					gotCookie = true
				}
			}
			assert.Equal(t, tt.wantCookie, gotCookie)

			authMock.AssertExpectations(t)
		})
	}
}

func TestSignupHandler_Form(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	rr := httptest.NewRecorder()
	handler.Form(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Sign up")
}
