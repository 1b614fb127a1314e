package ping_get

import (
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/handlers/rest/httpx"

	"github.com/AlekSi/pointer"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, h.log, http.StatusOK, dto.PingResponse{Message: pointer.To(pong)})
}
