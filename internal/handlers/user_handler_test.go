package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"gossip/internal/models"
)

type stubUserService struct {
	profiles map[int]*models.Profile
	byEmail  map[string]*models.Profile
}

func (s *stubUserService) GetProfileByID(id int) (*models.Profile, error) {
	return s.profiles[id], nil
}

func (s *stubUserService) GetProfileByEmail(email string) (*models.Profile, error) {
	return s.byEmail[email], nil
}

func newUserRouter(svc *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc)
	r.GET("/users/me", func(c *gin.Context) {
		c.Set("account_id", 1)
		h.Me(c)
	})
	r.GET("/users/by-email/:email", h.GetByEmail)
	r.GET("/users/:id", h.GetByID)
	return r
}

func TestGetProfileByID(t *testing.T) {
	uma := &models.Profile{ID: 1, Username: "Uma", Bio: "hi"}
	r := newUserRouter(&stubUserService{
		profiles: map[int]*models.Profile{1: uma},
		byEmail:  map[string]*models.Profile{"u@test.com": uma},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Uma")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/2", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/not-a-number", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfileByEmail(t *testing.T) {
	uma := &models.Profile{ID: 1, Username: "Uma"}
	r := newUserRouter(&stubUserService{
		profiles: map[int]*models.Profile{},
		byEmail:  map[string]*models.Profile{"u@test.com": uma},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/by-email/u@test.com", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/by-email/nobody@test.com", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(&stubUserService{profiles: map[int]*models.Profile{}})
	// no middleware ran, nothing in the context
	r.GET("/users/me", h.Me)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	uma := &models.Profile{ID: 1, Username: "Uma"}
	r := newUserRouter(&stubUserService{
		profiles: map[int]*models.Profile{1: uma},
		byEmail:  map[string]*models.Profile{},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Uma")
}
