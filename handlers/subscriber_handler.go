package handlers

import (
	"net/http"

	"github.com/darshan1301/psfa-landing-page-sub001/realtime"
	"github.com/darshan1301/psfa-landing-page-sub001/services"
)

type SubscriberHandler struct {
	subscriberService services.SubscriberService
	hub               *realtime.Hub
}

func NewSubscriberHandler(ss services.SubscriberService, hub *realtime.Hub) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberService: ss,
		hub:               hub,
	}
}

// Subscribe — публичная форма подписки: единственное поле contact,
// классифицируется сервисом как email или телефон.
func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Contact string `json:"contact"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	subscriber, err := h.subscriberService.Subscribe(r.Context(), input.Contact)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.hub.Publish(realtime.Event{
		Type:      realtime.EventCreated,
		Entity:    "subscriber",
		ID:        subscriber.ID,
		CreatedAt: subscriber.CreatedAt,
	})

	response := jsonResponse{"subscriber": subscriber}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SubscriberHandler) GetAllSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.subscriberService.GetAllSubscribers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"subscribers": subscribers}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SubscriberHandler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	subscriberID, err := getIDFromURL(r, "subscriberID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.subscriberService.DeleteSubscriber(r.Context(), subscriberID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"message": "subscriber deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
