package driver_payments_post

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/accounting"
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

// ServeHTTP в ответе платеж, пересчитанный баланс и итог проверки приостановки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	var req dto.PaymentCreate
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	receipt, err := h.service.RecordPayment(r.Context(), driverID, req.Amount, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, accounting.ErrInvalidDriverID),
			errors.Is(err, accounting.ErrInvalidAmount):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, accounting.ErrDriverNotFound):
			httpx.WriteError(w, h.log, http.StatusNotFound, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusCreated, dto.PaymentReceiptFromEntity(*receipt))
}
