package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	registryerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"
	registryhttp "herobanner/contexts/banner-program/banner-registry/transport/http"
)

func (s *Server) handleListBanners(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.ListBannersHandler(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := r.PathValue("banner_id")
	resp, err := s.registry.Handler.GetBannerHandler(r.Context(), bannerID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePatchBanner(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.PatchBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return
	}

	bannerID := r.PathValue("banner_id")
	resp, err := s.registry.Handler.PatchBannerHandler(r.Context(), bannerID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleUpdateByName returns 409 with the candidate list when the name
// fragment matches more than one banner, so the caller can retry with an
// exact hero name or fall back to the ID route.
func (s *Server) handleUpdateByName(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.UpdateByNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return
	}

	resp, err := s.registry.Handler.UpdateByNameHandler(r.Context(), req)
	if err != nil {
		if errors.Is(err, registryerrors.ErrAmbiguousBanner) {
			writeRegistryError(w, http.StatusConflict, "ambiguous_banner", err.Error(), resp.Candidates)
			return
		}
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.SummaryHandler(r.Context())
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrInvalidInput):
		writeRegistryError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
	case errors.Is(err, registryerrors.ErrBannerNotFound):
		writeRegistryError(w, http.StatusNotFound, "banner_not_found", err.Error(), nil)
	case errors.Is(err, registryerrors.ErrAmbiguousBanner):
		writeRegistryError(w, http.StatusConflict, "ambiguous_banner", err.Error(), nil)
	case errors.Is(err, registryerrors.ErrUnknownField):
		writeRegistryError(w, http.StatusBadRequest, "unknown_field", err.Error(), nil)
	case errors.Is(err, registryerrors.ErrInvalidFieldValue):
		writeRegistryError(w, http.StatusUnprocessableEntity, "invalid_field_value", err.Error(), nil)
	case errors.Is(err, registryerrors.ErrStoreUnavailable):
		writeRegistryError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error(), nil)
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

func writeRegistryError(w http.ResponseWriter, status int, code string, message string, candidates []registryhttp.BannerDTO) {
	writeJSON(w, status, registryhttp.ErrorResponse{
		Code:       code,
		Message:    message,
		Candidates: candidates,
	})
}
