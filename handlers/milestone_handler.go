package handlers

import (
	"net/http"

	"github.com/darshan1301/psfa-landing-page-sub001/services"
)

type MilestoneHandler struct {
	milestoneService services.MilestoneService
}

func NewMilestoneHandler(ms services.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: ms}
}

func (h *MilestoneHandler) GetAllMilestones(w http.ResponseWriter, r *http.Request) {
	milestones, err := h.milestoneService.GetAllMilestones(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"milestones": milestones}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MilestoneHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	var input services.MilestoneInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	milestone, err := h.milestoneService.CreateMilestone(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"milestone": milestone}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MilestoneHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	milestoneID, err := getIDFromURL(r, "milestoneID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.MilestoneInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	milestone, err := h.milestoneService.UpdateMilestone(r.Context(), milestoneID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"milestone": milestone}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MilestoneHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	milestoneID, err := getIDFromURL(r, "milestoneID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.milestoneService.DeleteMilestone(r.Context(), milestoneID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "milestone deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
