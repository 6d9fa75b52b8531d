package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/utils"
	"github.com/contactapp/contact-api/models"
)

// pathID parses one numeric path parameter. A value that is not a positive
// integer cannot name an existing record, so callers map the error to 404.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.ContactService.Create(ctx, user.Username, contact)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact creation failed")
		writeError(w, err)
		return
	}

	writeData(w, created, http.StatusCreated)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}

	contact, err := h.services.ContactService.Get(ctx, user.Username, contactID)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", contactID).Msg("contact lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ContactService.Update(ctx, user.Username, contactID, contact)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", contactID).Msg("contact update failed")
		writeError(w, err)
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.ContactService.Delete(ctx, user.Username, contactID); err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", contactID).Msg("contact deletion failed")
		writeError(w, err)
		return
	}

	writeData(w, "OK", http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	query := r.URL.Query()
	filter := models.ContactFilter{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Size, _ = strconv.Atoi(query.Get("size"))

	contacts, paging, err := h.services.ContactService.Search(ctx, user.Username, filter)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact search failed")
		writeError(w, err)
		return
	}

	if contacts == nil {
		contacts = []models.Contact{}
	}

	writePage(w, contacts, paging)
}
