package httpserver

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"herobanner/contexts/banner-program/import-service/adapters/csvsource"
	"herobanner/contexts/banner-program/import-service/adapters/xlsxsource"
	importerrors "herobanner/contexts/banner-program/import-service/domain/errors"
	importports "herobanner/contexts/banner-program/import-service/ports"
	importhttp "herobanner/contexts/banner-program/import-service/transport/http"
)

const maxImportUpload = 32 << 20

// handleImport accepts a multipart upload with a "heroes" part and a
// "payments" part. File extension decides the reader: .xlsx goes through
// the spreadsheet source, everything else is treated as CSV.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportUpload); err != nil {
		writeImportError(w, http.StatusBadRequest, "invalid_multipart", "request must be multipart/form-data with heroes and payments files")
		return
	}

	heroFile, heroHeader, err := r.FormFile("heroes")
	if err != nil {
		writeImportError(w, http.StatusBadRequest, "missing_heroes_file", "heroes file part is required")
		return
	}
	defer heroFile.Close()

	paymentFile, paymentHeader, err := r.FormFile("payments")
	if err != nil {
		writeImportError(w, http.StatusBadRequest, "missing_payments_file", "payments file part is required")
		return
	}
	defer paymentFile.Close()

	resp, err := s.imports.Handler.ImportHandler(
		r.Context(),
		sourceForUpload(heroFile, heroHeader.Filename),
		sourceForUpload(paymentFile, paymentHeader.Filename),
	)
	if err != nil {
		writeImportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func sourceForUpload(file multipart.File, filename string) importports.RowSource {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return xlsxsource.ReaderSource{Reader: file}
	}
	return csvsource.ReaderSource{Reader: file}
}

func writeImportDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, importerrors.ErrSourceUnreadable):
		writeImportError(w, http.StatusBadRequest, "source_unreadable", err.Error())
	case errors.Is(err, importerrors.ErrEmptySource):
		writeImportError(w, http.StatusBadRequest, "empty_source", err.Error())
	case errors.Is(err, importerrors.ErrStoreFailed):
		writeImportError(w, http.StatusServiceUnavailable, "store_failed", err.Error())
	default:
		writeImportError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeImportError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, importhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
