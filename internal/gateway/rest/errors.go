package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Yotrages/exquisite-wears/internal/domain"
)

// errorBody — тело ошибки бэкенда: {"message": "..."} (иногда {"error": "..."}).
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// parseErrorResponse — 401/403 -> ErrUnauthenticated, прочие не-2xx -> *domain.ServerError.
func parseErrorResponse(status int, body []byte) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return domain.ErrUnauthenticated
	}

	var eb errorBody
	msg := ""
	if err := json.Unmarshal(body, &eb); err == nil {
		msg = eb.Message
		if msg == "" {
			msg = eb.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:200]
		}
	}
	return &domain.ServerError{StatusCode: status, Message: msg}
}
