package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMentorRouter(mentors *MockMentorService, engagement *MockEngagementService, tm *jwt.TokenManager) *gin.Engine {
	handler := NewMentorHandler(mentors, engagement)
	router := gin.New()
	router.Use(middleware.RequesterMiddleware(tm, "session"))
	router.GET("/mentors", handler.ListCards)
	router.GET("/mentors/:id", handler.GetMentor)
	router.GET("/mentors/:id/card", handler.GetCard)
	router.GET("/mentors/:id/panel", handler.GetPanel)
	router.POST("/cache/flush", handler.InvalidateCache)
	return router
}

func TestMentorHandler_GetMentor(t *testing.T) {
	mentors := new(MockMentorService)
	mentors.On("GetMentorByID", mock.Anything, 42).
		Return(&models.MentorRecord{ID: 42, FirstName: "Noa", LastName: "Levi"}, nil).Once()
	router := newMentorRouter(mentors, new(MockEngagementService), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mentors/42", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	var body models.MentorRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Noa", body.FirstName)
	mentors.AssertExpectations(t)
}

func TestMentorHandler_InvalidID(t *testing.T) {
	router := newMentorRouter(new(MockMentorService), new(MockEngagementService), nil)

	for _, path := range []string{"/mentors/abc", "/mentors/0/card", "/mentors/-1/panel"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"Invalid ID"}`, w.Body.String(), path)
	}
}

func TestMentorHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: apperrors.NotFoundError("mentor", 7), status: http.StatusNotFound},
		{name: "unavailable", err: apperrors.UnavailableError("postgres", errors.New("timeout")), status: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engagement := new(MockEngagementService)
			engagement.On("GetCard", mock.Anything, 7).Return(nil, tt.err).Once()
			router := newMentorRouter(new(MockMentorService), engagement, nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mentors/7/card", http.NoBody))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestMentorHandler_ListCards(t *testing.T) {
	engagement := new(MockEngagementService)
	engagement.On("ListCards", mock.Anything).Return([]models.CardView{{ID: 1}, {ID: 2}}, nil).Once()
	router := newMentorRouter(new(MockMentorService), engagement, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mentors", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Mentors []models.CardView `json:"mentors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Mentors, 2)
}

func TestMentorHandler_GetPanel_Anonymous(t *testing.T) {
	engagement := new(MockEngagementService)
	engagement.On("GetPanel", mock.Anything, 42, "").
		Return(&models.PanelView{CardView: models.CardView{ID: 42}, ContactTitle: "Contact Noa"}, nil).Once()
	router := newMentorRouter(new(MockMentorService), engagement, jwt.NewTokenManager("secret", "mentorhub", 1))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mentors/42/panel", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"contactTitle":"Contact Noa"`)
	engagement.AssertExpectations(t)
}

func TestMentorHandler_GetPanel_SignedIn(t *testing.T) {
	tm := jwt.NewTokenManager("secret", "mentorhub", 1)
	token, err := tm.GenerateToken("user-1", "Dana", "")
	require.NoError(t, err)

	engagement := new(MockEngagementService)
	engagement.On("GetPanel", mock.Anything, 42, "Dana").
		Return(&models.PanelView{CardView: models.CardView{ID: 42}}, nil).Once()
	router := newMentorRouter(new(MockMentorService), engagement, tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mentors/42/panel", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	engagement.AssertExpectations(t)
}

func TestMentorHandler_InvalidateCache(t *testing.T) {
	mentors := new(MockMentorService)
	mentors.On("InvalidateCache").Once()
	router := newMentorRouter(mentors, new(MockEngagementService), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cache/flush", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	mentors.AssertExpectations(t)
}
