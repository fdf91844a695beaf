package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
)

func TestProjectHandler_RegisterInterest(t *testing.T) {
	t.Run("Registers and returns interest id", func(t *testing.T) {
		mockSvc := new(MockProjectService)
		handler := NewProjectHandler(mockSvc)

		mockSvc.On("RegisterInterest", mock.Anything, "proj-1", "user-1").
			Return(&domain.ProjectInterest{ID: "int-1"}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/project-interests",
			strings.NewReader(`{"projectId":"proj-1","userId":"user-1"}`))
		handler.RegisterInterest(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Interest registered! The project lead will review it.", env.Message)
		assert.Equal(t, "int-1", env.Data.(map[string]interface{})["interestId"])
	})

	t.Run("Missing fields return 400", func(t *testing.T) {
		mockSvc := new(MockProjectService)
		handler := NewProjectHandler(mockSvc)

		mockSvc.On("RegisterInterest", mock.Anything, "", "").
			Return(nil, domain.ErrInvalidInput).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/project-interests", strings.NewReader(`{}`))
		handler.RegisterInterest(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProjectHandler_ListPendingInterests(t *testing.T) {
	mockSvc := new(MockProjectService)
	handler := NewProjectHandler(mockSvc)

	mockSvc.On("ListPendingInterests", mock.Anything).Return([]domain.ProjectInterest{
		{ID: "int-1", ProjectID: "proj-1", UserID: "user-1", ProjectTitle: "Site Redesign", UserName: "Ada Lovelace"},
	}, nil).Once()

	rec := httptest.NewRecorder()
	handler.ListPendingInterests(rec, httptest.NewRequest(http.MethodGet, "/api/v1/project-interests", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Site Redesign")
	assert.Contains(t, body, "Ada Lovelace")
}

func TestProjectHandler_DecideInterest(t *testing.T) {
	t.Run("Approval records the decision", func(t *testing.T) {
		mockSvc := new(MockProjectService)
		handler := NewProjectHandler(mockSvc)

		mockSvc.On("DecideInterest", mock.Anything, "int-1", domain.ProjectInterestStatusApproved, "proj-1", "user-1").
			Return(nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/project-interests",
			strings.NewReader(`{"interestId":"int-1","status":"approved","projectId":"proj-1","userId":"user-1"}`))
		handler.DecideInterest(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Interest decision recorded", decodeEnvelope(t, rec).Message)
	})

	t.Run("Already decided returns 409", func(t *testing.T) {
		mockSvc := new(MockProjectService)
		handler := NewProjectHandler(mockSvc)

		mockSvc.On("DecideInterest", mock.Anything, "int-1", domain.ProjectInterestStatusHeld, "proj-1", "user-1").
			Return(domain.ErrAlreadyDecided).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/project-interests",
			strings.NewReader(`{"interestId":"int-1","status":"held","projectId":"proj-1","userId":"user-1"}`))
		handler.DecideInterest(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestProjectHandler_List(t *testing.T) {
	mockSvc := new(MockProjectService)
	handler := NewProjectHandler(mockSvc)

	mockSvc.On("ListProjects", mock.Anything).Return(nil, nil).Once()

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
