package handlers

import (
	"net/http"

	"github.com/darshan1301/psfa-landing-page-sub001/services"
)

type TestimonialHandler struct {
	testimonialService services.TestimonialService
}

func NewTestimonialHandler(ts services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: ts}
}

func (h *TestimonialHandler) GetAllTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialService.GetAllTestimonials(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"testimonials": testimonials}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TestimonialHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var input services.TestimonialInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	testimonial, err := h.testimonialService.CreateTestimonial(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"testimonial": testimonial}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TestimonialHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID, err := getIDFromURL(r, "testimonialID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.TestimonialInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	testimonial, err := h.testimonialService.UpdateTestimonial(r.Context(), testimonialID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"testimonial": testimonial}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TestimonialHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID, err := getIDFromURL(r, "testimonialID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.testimonialService.DeleteTestimonial(r.Context(), testimonialID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "testimonial deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
