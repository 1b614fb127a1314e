package settings_put

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/settings"
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

// ServeHTTP при изменении комиссии или порога в ответе есть итог проверки парка.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsUpdate
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	update, err := h.service.Update(r.Context(), req.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrMissingRequiredFields),
			errors.Is(err, settings.ErrInvalidRadius),
			errors.Is(err, settings.ErrInvalidCommission),
			errors.Is(err, settings.ErrInvalidMaxBalance):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.SettingsUpdateFromEntity(*update))
}
