package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

// ── reads ──

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) listPostsByCategory(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPostsByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) listPostsByCreator(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPostsByCreator(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// ── writes ──

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
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

	thumbnail, closeThumbnail, err := formFile(r, validators.FieldThumbnail)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer closeThumbnail()

	post, err := h.services.PostService.CreatePost(ctx, models.CreatePostRequest{
		CreatorID:   caller.ID,
		Title:       r.FormValue(validators.FieldTitle),
		Category:    r.FormValue(validators.FieldCategory),
		Description: r.FormValue(validators.FieldDescription),
		Thumbnail:   thumbnail,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("post_id", post.ID).Str("creator", post.Creator).Msg("post created")
	utils.WriteJSON(w, post, http.StatusCreated)
}

// editPost accepts either a multipart form with an optional thumbnail or a
// JSON body with the text fields only.
func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.EditPostRequest
	if isMultipart(r) {
		if err = h.parseMultipart(w, r); err != nil {
			writeError(w, r, err)
			return
		}
		defer cleanupMultipart(r)

		thumbnail, closeThumbnail, err := formFile(r, validators.FieldThumbnail)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer closeThumbnail()

		req = models.EditPostRequest{
			Title:       r.FormValue(validators.FieldTitle),
			Category:    r.FormValue(validators.FieldCategory),
			Description: r.FormValue(validators.FieldDescription),
			Thumbnail:   thumbnail,
		}
	} else if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	req.CallerID = caller.ID
	req.PostID = chi.URLParam(r, "id")

	post, err := h.services.PostService.EditPost(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.PostService.DeletePost(ctx, models.DeletePostRequest{
		CallerID: caller.ID,
		PostID:   chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("post_id", chi.URLParam(r, "id")).Msg("post deleted")
	utils.WriteJSON(w, message, http.StatusOK)
}
