package handlers

import (
	"net/http"

	"github.com/darshan1301/psfa-landing-page-sub001/realtime"
	"github.com/darshan1301/psfa-landing-page-sub001/services"
)

type EnquiryHandler struct {
	enquiryService services.EnquiryService
	emailService   *services.EmailService
	hub            *realtime.Hub
}

func NewEnquiryHandler(es services.EnquiryService, emailService *services.EmailService, hub *realtime.Hub) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService: es,
		emailService:   emailService,
		hub:            hub,
	}
}

// CreateEnquiry — публичная форма обратной связи.
func (h *EnquiryHandler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var input services.EnquiryInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	enquiry, err := h.enquiryService.CreateEnquiry(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	go h.emailService.NotifyEnquiry(enquiry)
	h.hub.Publish(realtime.Event{
		Type:      realtime.EventCreated,
		Entity:    "enquiry",
		ID:        enquiry.ID,
		CreatedAt: enquiry.CreatedAt,
	})

	response := jsonResponse{"enquiry": enquiry}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EnquiryHandler) GetAllEnquiries(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.enquiryService.GetAllEnquiries(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"enquiries": enquiries}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EnquiryHandler) UpdateEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	enquiryID, err := getIDFromURL(r, "enquiryID")
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

	enquiry, err := h.enquiryService.UpdateEnquiryStatus(r.Context(), enquiryID, input.Status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"enquiry": enquiry}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EnquiryHandler) DeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	enquiryID, err := getIDFromURL(r, "enquiryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.enquiryService.DeleteEnquiry(r.Context(), enquiryID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "enquiry deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
