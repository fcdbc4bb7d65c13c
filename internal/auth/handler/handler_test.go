package authhandler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/auth"
	mockauthservice "github.com/xw1nchester/hisba-backend/internal/auth/handler/mocks"
	"github.com/xw1nchester/hisba-backend/internal/user"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func fullResponse(role access.Role) *auth.AuthFullResponse {
	return &auth.AuthFullResponse{
		UserResponse: user.UserResponse{User: user.User{ID: 1, Username: "amal"}},
		Tokens: auth.Tokens{
			JwtToken:     auth.JwtToken{AccessToken: "access"},
			RefreshToken: "refresh",
		},
		Role: role,
	}
}

func TestHandler_signupHandler(t *testing.T) {
	type mockBehavior func(s *mockauthservice.MockService)

	testTable := []struct {
		name               string
		inputBody          string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:      "OK",
			inputBody: `{"username":"amal","email":"amal@mail.com","password":"password123","age":"30"}`,
			mockBehavior: func(s *mockauthservice.MockService) {
				s.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any()).Return(fullResponse(access.RoleCustomer), nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "Invalid email",
			inputBody:          `{"username":"amal","email":"invalid","password":"password123"}`,
			mockBehavior:       func(s *mockauthservice.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Short password",
			inputBody:          `{"username":"amal","email":"amal@mail.com","password":"short"}`,
			mockBehavior:       func(s *mockauthservice.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:      "Username taken",
			inputBody: `{"username":"amal","email":"amal@mail.com","password":"password123"}`,
			mockBehavior: func(s *mockauthservice.MockService) {
				s.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, apperror.NewConflictErr("the user with this username already exists"))
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:      "Service unexpected failure",
			inputBody: `{"username":"amal","email":"amal@mail.com","password":"password123"}`,
			mockBehavior: func(s *mockauthservice.MockService) {
				s.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			authService := mockauthservice.NewMockService(c)
			tc.mockBehavior(authService)

			router := chi.NewRouter()
			New(authService, zap.NewNop()).Register(router)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(tc.inputBody))

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}

func TestHandler_loginHandler(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	authService := mockauthservice.NewMockService(c)
	authService.EXPECT().
		Login(gomock.Any(), auth.LoginRequest{Username: "amal", Password: "password123"}, "test-agent").
		Return(fullResponse(access.RoleSeller), nil)

	router := chi.NewRouter()
	New(authService, zap.NewNop()).Register(router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"username":"amal","password":"password123"}`))
	req.Header.Set("User-Agent", "test-agent")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"seller"`)
	assert.Contains(t, w.Body.String(), `"accessToken":"access"`)
	assert.NotContains(t, w.Body.String(), "refresh")

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, RefreshTokenCookieName, cookies[0].Name)
		assert.Equal(t, "refresh", cookies[0].Value)
	}
}

func TestHandler_refreshHandler(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	authService := mockauthservice.NewMockService(c)

	router := chi.NewRouter()
	New(authService, zap.NewNop()).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	authService.EXPECT().Refresh(gomock.Any(), "old", gomock.Any()).Return(nil, errors.New("session not found"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookieName, Value: "old"})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
