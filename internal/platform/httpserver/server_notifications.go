package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	notificationerrors "herobanner/contexts/banner-program/notification-service/domain/errors"
	notificationhttp "herobanner/contexts/banner-program/notification-service/transport/http"
)

func (s *Server) handleSendProofs(w http.ResponseWriter, r *http.Request) {
	resp, err := s.notifications.Handler.SendProofsHandler(r.Context())
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProcessApprovals(w http.ResponseWriter, r *http.Request) {
	var req notificationhttp.ProcessApprovalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeNotificationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.notifications.Handler.ProcessApprovalsHandler(r.Context(), req)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeNotificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notificationerrors.ErrInvalidKind):
		writeNotificationError(w, http.StatusBadRequest, "invalid_kind", err.Error())
	case errors.Is(err, notificationerrors.ErrOutboxWrite):
		writeNotificationError(w, http.StatusServiceUnavailable, "outbox_write_failed", err.Error())
	case errors.Is(err, notificationerrors.ErrRegistryRequired):
		writeNotificationError(w, http.StatusServiceUnavailable, "registry_unavailable", err.Error())
	default:
		writeNotificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeNotificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, notificationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
