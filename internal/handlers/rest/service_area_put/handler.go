package service_area_put

import (
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"
	"dispatch/internal/service/servicearea"
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
	regionID, err := httpx.PathInt64(r, "region_id")
	if err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	var req dto.ServiceAreaUpsert
	if err := httpx.DecodeJSON(r, h.validator, &req); err != nil {
		httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	area, err := h.service.UpsertServiceArea(r.Context(), req.ToEntity(regionID))
	if err != nil {
		switch {
		case errors.Is(err, servicearea.ErrInvalidRegionID),
			errors.Is(err, servicearea.ErrInvalidCenter),
			errors.Is(err, servicearea.ErrInvalidRadius):
			httpx.WriteError(w, h.log, http.StatusBadRequest, err)
		default:
			httpx.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpx.WriteJSON(w, h.log, http.StatusOK, dto.ServiceAreaFromEntity(*area))
}
