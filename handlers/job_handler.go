package handlers

import (
	"net/http"

	"github.com/darshan1301/psfa-landing-page-sub001/realtime"
	"github.com/darshan1301/psfa-landing-page-sub001/services"
)

type JobHandler struct {
	jobService   services.JobService
	emailService *services.EmailService
	hub          *realtime.Hub
}

func NewJobHandler(js services.JobService, es *services.EmailService, hub *realtime.Hub) *JobHandler {
	return &JobHandler{
		jobService:   js,
		emailService: es,
		hub:          hub,
	}
}

func (h *JobHandler) GetAllPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.jobService.GetAllPositions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"positions": positions}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JobHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var input services.JobPositionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	position, err := h.jobService.CreatePosition(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"position": position}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JobHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := getIDFromURL(r, "positionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.JobPositionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	position, err := h.jobService.UpdatePosition(r.Context(), positionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"position": position}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JobHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := getIDFromURL(r, "positionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.jobService.DeletePosition(r.Context(), positionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "job position deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Apply — публичная точка подачи заявки на вакансию.
func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var input services.JobApplicationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	application, err := h.jobService.ApplyForPosition(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	go h.emailService.NotifyJobApplication(application)
	h.hub.Publish(realtime.Event{
		Type:      realtime.EventCreated,
		Entity:    "job_application",
		ID:        application.ID,
		CreatedAt: application.CreatedAt,
	})

	response := jsonResponse{"application": application}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JobHandler) GetAllApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.jobService.GetAllApplications(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"applications": applications}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *JobHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, err := getIDFromURL(r, "applicationID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	application, err := h.jobService.UpdateApplicationStatus(r.Context(), applicationID, input.Status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"application": application}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
