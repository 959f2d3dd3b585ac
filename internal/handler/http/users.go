package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.services.UserService.ListAuthors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, authors, http.StatusOK)
}

func (h *Handler) changeAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.parseMultipart(w, r); err != nil {
		writeError(w, r, err)
		return
	}
	defer cleanupMultipart(r)

	avatar, closeAvatar, err := formFile(r, validators.FieldAvatar)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer closeAvatar()

	user, err := h.services.UserService.ChangeAvatar(ctx, models.ChangeAvatarRequest{
		UserID: caller.ID,
		Avatar: avatar,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Str("avatar", user.Avatar).Msg("avatar changed")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.EditProfileRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.UserID = caller.ID

	user, err := h.services.UserService.EditProfile(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
