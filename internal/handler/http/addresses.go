package http

import (
	"encoding/json"
	"net/http"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/utils"
	"github.com/contactapp/contact-api/models"
)

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
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

	var address models.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.AddressService.Create(ctx, user.Username, contactID, address)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", contactID).Msg("address creation failed")
		writeError(w, err)
		return
	}

	writeData(w, created, http.StatusCreated)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
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

	addressID, err := pathID(r, "addressID")
	if err != nil {
		writeError(w, err)
		return
	}

	address, err := h.services.AddressService.Get(ctx, user.Username, contactID, addressID)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("address_id", addressID).Msg("address lookup failed")
		writeError(w, err)
		return
	}

	writeData(w, address, http.StatusOK)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
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

	addressID, err := pathID(r, "addressID")
	if err != nil {
		writeError(w, err)
		return
	}

	var address models.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.AddressService.Update(ctx, user.Username, contactID, addressID, address)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("address_id", addressID).Msg("address update failed")
		writeError(w, err)
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
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

	addressID, err := pathID(r, "addressID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.AddressService.Delete(ctx, user.Username, contactID, addressID); err != nil {
		log.Err(err).Str("username", user.Username).Int64("address_id", addressID).Msg("address deletion failed")
		writeError(w, err)
		return
	}

	writeData(w, "OK", http.StatusOK)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
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

	addresses, err := h.services.AddressService.List(ctx, user.Username, contactID)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int64("contact_id", contactID).Msg("address listing failed")
		writeError(w, err)
		return
	}

	if addresses == nil {
		addresses = []models.Address{}
	}

	writeData(w, addresses, http.StatusOK)
}
