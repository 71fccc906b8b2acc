package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cosmiccommons/c3site/shared/api"
	"github.com/cosmiccommons/c3site/shared/domain"
	internal_errors "github.com/cosmiccommons/c3site/shared/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserHandler(t *testing.T) {
	h := &Handler{}
	route := "/v1/users"
	router := chi.NewRouter()
	router.Post(route, h.RegisterUser)

	t.Run("password hash is never serialized", func(t *testing.T) {
		h.user = &MockUserService{
			MockCreateUserWithPassword: func(ctx context.Context, reg domain.Registration) (domain.User, error) {
				assert.Equal(t, "alice", reg.Username)
				assert.Equal(t, "longpassword1", reg.Password)
				return domain.User{Id: uuid.New(), Username: reg.Username, PasswordHash: "$2a$10$secret"}, nil
			},
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, []byte(`{"username":"alice","password":"longpassword1"}`)))

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.False(t, strings.Contains(rr.Body.String(), "$2a$10$secret"))
		assert.False(t, strings.Contains(rr.Body.String(), "longpassword1"))

		var resp api.UserResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("short password", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, []byte(`{"username":"alice","password":"short"}`)))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var resp api.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Contains(t, resp.Errors, "password")
		assert.NotContains(t, resp.Errors, "username")
	})

	t.Run("duplicate username", func(t *testing.T) {
		h.user = &MockUserService{
			MockCreateUserWithPassword: func(ctx context.Context, reg domain.Registration) (domain.User, error) {
				return domain.User{}, internal_errors.Conflict("Username already taken")
			},
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, []byte(`{"username":"alice","password":"longpassword1"}`)))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Username already taken\n", rr.Body.String())
	})
}

func TestGetUserHandler(t *testing.T) {
	known := uuid.New()
	h := &Handler{user: &MockUserService{
		MockGetUser: func(ctx context.Context, id domain.UserId) (domain.User, error) {
			if id != known {
				return domain.User{}, internal_errors.NotFound("User not found")
			}
			return domain.User{Id: id, Username: "alice"}, nil
		},
	}}
	router := chi.NewRouter()
	router.Get("/v1/admin/users/{userId}", h.GetUser)

	testCases := []struct {
		name   string
		path   string
		status int
	}{
		{name: "found", path: "/v1/admin/users/" + known.String(), status: http.StatusOK},
		{name: "not found", path: "/v1/admin/users/" + uuid.NewString(), status: http.StatusNotFound},
		{name: "malformed id", path: "/v1/admin/users/42", status: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}
