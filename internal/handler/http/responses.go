package http

import (
	"net/http"

	"github.com/contactapp/contact-api/internal/utils"
	"github.com/contactapp/contact-api/models"
)

// writeData wraps payload in the {"data": ...} envelope.
func writeData(w http.ResponseWriter, payload any, statusCode int) {
	utils.WriteJSON(w, models.DataResponse{Data: payload}, statusCode)
}

// writePage wraps one result page in the {"data": ..., "paging": ...}
// envelope used by list endpoints.
func writePage(w http.ResponseWriter, payload any, paging models.Paging) {
	utils.WriteJSON(w, models.PageResponse{Data: payload, Paging: paging}, http.StatusOK)
}

// writeError translates err into a status code and the {"errors": "..."}
// envelope. Internal failures are reported with the generic status text so
// storage details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	statusCode := statusFromError(err)

	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Errors: message}, statusCode)
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Errors: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
}
