//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func draftApplication() *applications.Application {
	return &applications.Application{
		ID:          testResourceID,
		StudentID:   testStudentID,
		FormationID: "5a6b7c8d-1e2f-4a3b-9c4d-5e6f7a8b9c04",
		Status:      applications.StatusDraft,
		Priority:    1,
	}
}

func TestApplicationHandler_ListMine_EmptyIsArray(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	mockApplicationService.On("ListByStudent", mock.Anything, testStudentID).Return([]*applications.Application{}, nil)

	c, w := newTestContext(t, http.MethodGet, "/applications", nil, studentIdentity())
	handler.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
	mockApplicationService.AssertExpectations(t)
}

func submittedApplication() *applications.Application {
	application := draftApplication()
	application.Status = applications.StatusSubmitted
	return application
}

func TestApplicationHandler_GetByID(t *testing.T) {
	const otherStudentID = "9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c05"

	tests := []struct {
		name        string
		application *applications.Application
		caller      string
		reviewer    bool
		expected    int
	}{
		{"owner reads draft", draftApplication(), testStudentID, false, http.StatusOK},
		{"reviewer cannot see draft", draftApplication(), testEstablishmentID, true, http.StatusNotFound},
		{"other student cannot see draft", draftApplication(), otherStudentID, false, http.StatusNotFound},
		{"owner reads submitted", submittedApplication(), testStudentID, false, http.StatusOK},
		{"reviewer reads submitted", submittedApplication(), testEstablishmentID, true, http.StatusOK},
		{"other student on submitted", submittedApplication(), otherStudentID, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockApplicationService := new(MockApplicationService)
			handler := NewApplicationHandler(mockApplicationService)
			mockApplicationService.On("GetByID", mock.Anything, testResourceID).Return(tt.application, nil)

			identity := studentIdentity()
			if tt.reviewer {
				identity = establishmentIdentity()
			}
			identity.UserID = tt.caller

			c, w := newTestContext(t, http.MethodGet, "/applications/"+testResourceID, nil, identity)
			withParam(c, "id", testResourceID)
			handler.GetByID(c)

			assert.Equal(t, tt.expected, w.Code)
			mockApplicationService.AssertExpectations(t)
		})
	}
}

func TestApplicationHandler_Create(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	application := draftApplication()
	mockApplicationService.On("Create", mock.Anything, testStudentID, applications.CreateInput{
		FormationID:      application.FormationID,
		MotivationLetter: "Passionnée d'informatique",
	}).Return(application, nil)

	c, w := newTestContext(t, http.MethodPost, "/applications", CreateApplicationRequest{
		FormationID:      application.FormationID,
		MotivationLetter: "Passionnée d'informatique",
	}, studentIdentity())
	handler.Create(c)

	var body ApplicationResponse
	decodeBody(t, w, &body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "draft", body.Status)
	assert.Equal(t, []string{}, body.AdditionalDocuments)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_Create_Duplicate(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	mockApplicationService.On("Create", mock.Anything, testStudentID, mock.Anything).
		Return(nil, shared.ErrConflict)

	c, w := newTestContext(t, http.MethodPost, "/applications", CreateApplicationRequest{FormationID: testResourceID}, studentIdentity())
	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	reviewed := draftApplication()
	reviewed.Status = applications.StatusAccepted
	mockApplicationService.On("UpdateStatus", mock.Anything, testResourceID, testEstablishmentID, applications.StatusAccepted, "Excellent dossier").
		Return(reviewed, nil)

	c, w := newTestContext(t, http.MethodPut, "/applications/"+testResourceID+"/status", UpdateStatusRequest{Status: "accepted", Notes: "Excellent dossier"}, establishmentIdentity())
	withParam(c, "id", testResourceID)
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted"`)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	mockApplicationService.On("UpdateStatus", mock.Anything, testResourceID, testEstablishmentID, applications.StatusUnderReview, "").
		Return(nil, applications.ErrInvalidTransition)

	c, w := newTestContext(t, http.MethodPut, "/applications/"+testResourceID+"/status", UpdateStatusRequest{Status: "under_review"}, establishmentIdentity())
	withParam(c, "id", testResourceID)
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_DeleteByID(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	mockApplicationService.On("DeleteByID", mock.Anything, testResourceID, testStudentID).Return(nil)

	c, _ := newTestContext(t, http.MethodDelete, "/applications/"+testResourceID, nil, studentIdentity())
	withParam(c, "id", testResourceID)
	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_CanApply(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	c, w := newTestContext(t, http.MethodGet, "/applications/eligibility", nil, studentIdentity())
	handler.CanApply(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockApplicationService.On("CanApply", mock.Anything, testStudentID, testResourceID).
		Return(&applications.Eligibility{CanApply: false, Reason: "application deadline passed"}, nil)

	c, w = newTestContext(t, http.MethodGet, "/applications/eligibility?formation_id="+testResourceID, nil, studentIdentity())
	handler.CanApply(c)

	var body EligibilityResponse
	decodeBody(t, w, &body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, body.CanApply)
	assert.Equal(t, "application deadline passed", body.Reason)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_MyStats(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	mockApplicationService.On("StudentStats", mock.Anything, testStudentID).
		Return(&applications.Stats{Total: 3, Draft: 1, Accepted: 2}, nil)

	c, w := newTestContext(t, http.MethodGet, "/applications/stats", nil, studentIdentity())
	handler.MyStats(c)

	var body StatsResponse
	decodeBody(t, w, &body)
	assert.Equal(t, int64(3), body.Total)
	assert.Equal(t, int64(2), body.Accepted)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_AttachDocument(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	document := &documents.Document{ID: "c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e06", OwnerID: testStudentID, ApplicationID: testResourceID, Name: "bulletin.pdf", Size: 12}
	mockApplicationService.On("AttachDocument", mock.Anything, testResourceID, testStudentID, mock.Anything).Return(document, nil)

	c, w := newTestContext(t, http.MethodPost, "/", nil, studentIdentity())
	c.Request = testutil.NewMultipartRequest(t, http.MethodPost, "/applications/"+testResourceID+"/documents", "file", "bulletin.pdf", []byte("%PDF-1.4 ..."))
	c.Params = gin.Params{{Key: "id", Value: testResourceID}}
	handler.AttachDocument(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "bulletin.pdf")
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_AttachDocument_MissingFile(t *testing.T) {
	mockApplicationService := new(MockApplicationService)
	handler := NewApplicationHandler(mockApplicationService)

	c, w := newTestContext(t, http.MethodPost, "/applications/"+testResourceID+"/documents", nil, studentIdentity())
	withParam(c, "id", testResourceID)
	handler.AttachDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockApplicationService.AssertNotCalled(t, "AttachDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
