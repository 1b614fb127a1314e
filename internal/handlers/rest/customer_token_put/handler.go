package customer_token_put

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/customer"
)

type Handler struct {
	log       handlerLogger
	validator requestValidator
	service   Service
}

func New(log handlerLogger, validator requestValidator, service Service) *Handler {
	return &Handler{
		log:       log,
		validator: validator,
		service:   service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	var req dto.CustomerToken
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	err = h.service.SetNotificationToken(r.Context(), customerID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrInvalidCustomerID),
			errors.Is(err, customer.ErrInvalidToken):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
