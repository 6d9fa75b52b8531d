package http

import (
	"encoding/json"
	"net/http"

	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/utils"
	"github.com/contactapp/contact-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	writeData(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	token, err := h.services.UserService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user login failed")
		writeError(w, err)
		return
	}

	writeData(w, token, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	writeData(w, h.services.UserService.Current(ctx, user), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.Update(ctx, user, req)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user update failed")
		writeError(w, err)
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.services.UserService.Logout(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("user logout failed")
		writeError(w, err)
		return
	}

	writeData(w, "OK", http.StatusOK)
}
