package driver_payments_get

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/accounting"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

var errInvalidLimit = errors.New("limit must be an integer in [1, 500]")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	payments, err := h.service.ListPayments(r.Context(), driverID, limit)
	if err != nil {
		switch {
		case errors.Is(err, accounting.ErrInvalidDriverID):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.PaymentsFromEntity(payments))
}

func parseLimit(raw string) (uint64, error) {
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 || limit > maxLimit {
		return 0, fmt.Errorf("%w: %q", errInvalidLimit, raw)
	}
	return limit, nil
}
