package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
)

func newTestRouter() (http.Handler, *MockEventService) {
	mockEvents := new(MockEventService)
	return NewRouter(Handlers{
		Auth:       NewAuthHandler(new(MockAuthService)),
		Membership: NewMembershipHandler(new(MockMembershipService)),
		Member:     NewMemberHandler(new(MockMemberService)),
		Project:    NewProjectHandler(new(MockProjectService)),
		Event:      NewEventHandler(mockEvents),
		Dashboard:  NewDashboardHandler(new(MockDashboardService), new(MockSessionService), 5),
	}), mockEvents
}

func TestRouter_DispatchesByMethod(t *testing.T) {
	router, mockEvents := newTestRouter()

	mockEvents.On("ListEvents", mock.Anything).Return([]domain.Event{}, nil).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockEvents.AssertExpectations(t)
}

func TestRouter_UnknownPath(t *testing.T) {
	router, _ := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/events", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
