package handlers

import (
	"net/http"

	"github.com/darshan1301/psfa-landing-page-sub001/services"
)

type InfrastructureHandler struct {
	infraService services.InfrastructureService
}

func NewInfrastructureHandler(is services.InfrastructureService) *InfrastructureHandler {
	return &InfrastructureHandler{infraService: is}
}

func (h *InfrastructureHandler) GetAllInfrastructure(w http.ResponseWriter, r *http.Request) {
	items, err := h.infraService.GetAllInfrastructure(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"infrastructure": items}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InfrastructureHandler) CreateInfrastructure(w http.ResponseWriter, r *http.Request) {
	var input services.InfrastructureInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	infra, err := h.infraService.CreateInfrastructure(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"infrastructure": infra}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InfrastructureHandler) UpdateInfrastructure(w http.ResponseWriter, r *http.Request) {
	infraID, err := getIDFromURL(r, "infraID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.InfrastructureInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	infra, err := h.infraService.UpdateInfrastructure(r.Context(), infraID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"infrastructure": infra}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InfrastructureHandler) DeleteInfrastructure(w http.ResponseWriter, r *http.Request) {
	infraID, err := getIDFromURL(r, "infraID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.infraService.DeleteInfrastructure(r.Context(), infraID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "sports infrastructure deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
