package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dispatch/internal/dto"
	"dispatch/pkg/logger"

	"github.com/gorilla/mux"
)

var ErrInvalidPathParam = errors.New("invalid path parameter")

type Logger interface {
	Error(msg string, fields ...logger.Field)
}

type Validator interface {
	Struct(s any) error
}

// PathInt64 достает положительный целый параметр маршрута.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s is missing", ErrInvalidPathParam, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}

// DecodeJSON читает тело запроса и проверяет его тегами validate.
func DecodeJSON(r *http.Request, v Validator, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return v.Struct(dst)
}

func WriteJSON(w http.ResponseWriter, log Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// WriteError для 5xx текст ошибки наружу не отдается.
func WriteError(w http.ResponseWriter, log Logger, status int, err error) {
	msg := http.StatusText(status)
	if status < http.StatusInternalServerError && err != nil {
		msg = err.Error()
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
	}

	WriteJSON(w, log, status, dto.ErrorResponse{Error: msg})
}
