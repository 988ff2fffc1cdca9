package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnrollmentStore implements domain.EnrollmentStore for handler tests.
type fakeEnrollmentStore struct {
	catalogue     domain.Catalogue
	listErr       error
	signupErr     error
	unregisterErr error
	lastName      string
	lastEmail     string
}

func (f *fakeEnrollmentStore) ListActivities(ctx context.Context) (domain.Catalogue, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.catalogue, nil
}

func (f *fakeEnrollmentStore) Signup(ctx context.Context, activityName, email string) (*domain.Enrollment, error) {
	f.lastName, f.lastEmail = activityName, email
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &domain.Enrollment{Activity: activityName, Email: email}, nil
}

func (f *fakeEnrollmentStore) Unregister(ctx context.Context, activityName, email string) (*domain.Enrollment, error) {
	f.lastName, f.lastEmail = activityName, email
	if f.unregisterErr != nil {
		return nil, f.unregisterErr
	}
	return &domain.Enrollment{Activity: activityName, Email: email}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func enrollmentRequest(action, name, email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/activities/x/"+action+"?email="+email, nil)
	req.SetPathValue("name", name)
	return req
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp helpers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

func TestActivityController_ListActivities(t *testing.T) {
	store := &fakeEnrollmentStore{catalogue: domain.Catalogue{
		"Chess Club": domain.NewActivity("Chess Club", "Chess", "Fridays", 12, "michael@mergington.edu"),
	}}
	ctrl := NewActivityController(testLogger(), store)

	w := httptest.NewRecorder()
	ctrl.ListActivities(w, httptest.NewRequest(http.MethodGet, "/activities", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Chess Club":{"description":"Chess","schedule":"Fridays","max_participants":12,"participants":["michael@mergington.edu"]}}`,
		w.Body.String())
}

func TestActivityController_ListActivities_Error(t *testing.T) {
	ctrl := NewActivityController(testLogger(), &fakeEnrollmentStore{listErr: errors.New("boom")})

	w := httptest.NewRecorder()
	ctrl.ListActivities(w, httptest.NewRequest(http.MethodGet, "/activities", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeDetail(t, w))
}

func TestActivityController_Signup(t *testing.T) {
	store := &fakeEnrollmentStore{}
	ctrl := NewActivityController(testLogger(), store)

	w := httptest.NewRecorder()
	ctrl.Signup(w, enrollmentRequest("signup", "Chess Club", "new@mergington.edu"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"new@mergington.edu signed up for Chess Club"}`, w.Body.String())
	assert.Equal(t, "Chess Club", store.lastName)
	assert.Equal(t, "new@mergington.edu", store.lastEmail)
}

func TestActivityController_Signup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "Activity not found"},
		{"duplicate", domain.ErrDuplicateRegistration, http.StatusBadRequest, "Student is already signed up for this activity"},
		{"full", domain.ErrCapacityExceeded, http.StatusBadRequest, "Activity is full"},
		{"invalid input", fmt.Errorf("%w: email is required", domain.ErrInvalidInput), http.StatusBadRequest, "invalid input: email is required"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewActivityController(testLogger(), &fakeEnrollmentStore{signupErr: tt.err})

			w := httptest.NewRecorder()
			ctrl.Signup(w, enrollmentRequest("signup", "Chess Club", "a@mergington.edu"))

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
		})
	}
}

func TestActivityController_Unregister(t *testing.T) {
	store := &fakeEnrollmentStore{}
	ctrl := NewActivityController(testLogger(), store)

	w := httptest.NewRecorder()
	ctrl.Unregister(w, enrollmentRequest("unregister", "Drama Club", "a@mergington.edu"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"a@mergington.edu unregistered from Drama Club"}`, w.Body.String())
}

func TestActivityController_Unregister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "Activity not found"},
		{"not registered", domain.ErrNotRegistered, http.StatusBadRequest, "Student is not registered for this activity"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewActivityController(testLogger(), &fakeEnrollmentStore{unregisterErr: tt.err})

			w := httptest.NewRecorder()
			ctrl.Unregister(w, enrollmentRequest("unregister", "Science Club", "a@mergington.edu"))

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
		})
	}
}
