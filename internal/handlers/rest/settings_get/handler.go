package settings_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.SettingsFromEntity(*settings))
}
