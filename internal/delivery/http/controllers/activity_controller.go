package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/observability"
)

// Details returned for enrollment failures.
const (
	detailActivityNotFound = "Activity not found"
	detailAlreadySignedUp  = "Student is already signed up for this activity"
	detailActivityFull     = "Activity is full"
	detailNotRegistered    = "Student is not registered for this activity"
	detailInternalError    = "internal server error"
)

type ActivityController struct {
	Logger *slog.Logger
	Store  domain.EnrollmentStore
}

func NewActivityController(logger *slog.Logger, store domain.EnrollmentStore) *ActivityController {
	return &ActivityController{
		Logger: logger,
		Store:  store,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, with its description, schedule, capacity and current participants.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	catalogue, err := c.Store.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, detailInternalError)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, catalogue)
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Adds the student to the activity. Fails when the activity does not exist, the student is already signed up, or the activity is full.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "already signed up, activity full or missing email"
// @Failure 404 {object} helpers.ErrorResponse "activity not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities/{name}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	enrollment, err := c.Store.Signup(r.Context(), name, email)
	if err != nil {
		c.writeEnrollmentError(w, r, observability.OperationSignup, err)
		return
	}
	observability.RecordEnrollment(observability.OperationSignup, observability.OutcomeSuccess)
	helpers.WriteMessage(w, http.StatusOK, fmt.Sprintf("%s signed up for %s", enrollment.Email, enrollment.Activity))
}

// Unregister godoc
// @Summary Unregister from an activity
// @Description Removes the student from the activity. Fails when the activity does not exist or the student is not signed up.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "not registered or missing email"
// @Failure 404 {object} helpers.ErrorResponse "activity not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities/{name}/unregister [post]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	enrollment, err := c.Store.Unregister(r.Context(), name, email)
	if err != nil {
		c.writeEnrollmentError(w, r, observability.OperationUnregister, err)
		return
	}
	observability.RecordEnrollment(observability.OperationUnregister, observability.OutcomeSuccess)
	helpers.WriteMessage(w, http.StatusOK, fmt.Sprintf("%s unregistered from %s", enrollment.Email, enrollment.Activity))
}

// writeEnrollmentError maps store errors to status codes and records the outcome.
func (c *ActivityController) writeEnrollmentError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		observability.RecordEnrollment(operation, observability.OutcomeNotFound)
		helpers.WriteDetail(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, domain.ErrDuplicateRegistration):
		observability.RecordEnrollment(operation, observability.OutcomeDuplicate)
		helpers.WriteDetail(w, http.StatusBadRequest, detailAlreadySignedUp)
	case errors.Is(err, domain.ErrCapacityExceeded):
		observability.RecordEnrollment(operation, observability.OutcomeFull)
		helpers.WriteDetail(w, http.StatusBadRequest, detailActivityFull)
	case errors.Is(err, domain.ErrNotRegistered):
		observability.RecordEnrollment(operation, observability.OutcomeNotRegistered)
		helpers.WriteDetail(w, http.StatusBadRequest, detailNotRegistered)
	case errors.Is(err, domain.ErrInvalidInput):
		observability.RecordEnrollment(operation, observability.OutcomeInvalid)
		helpers.WriteDetail(w, http.StatusBadRequest, err.Error())
	default:
		observability.RecordEnrollment(operation, observability.OutcomeError)
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, detailInternalError)
	}
}
