package drivers_balance_check_post

import (
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
)

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

// ServeHTTP запускает проверку всего парка синхронно. Сбои по отдельным
// водителям попадают в failed, запрос при этом успешен.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CheckFleet(r.Context())
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.SweepResultFromEntity(result))
}
