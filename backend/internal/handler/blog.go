package handler

import (
	"net/http"

	"github.com/cosmiccommons/c3site/shared/api"
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/utils"
	"github.com/go-chi/chi/v5"
)

// GetBlogPosts is the public listing, drafts excluded.
func (h *Handler) GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	published := true
	posts, err := h.blog.List(r.Context(), &published)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BlogPostListResponse{Posts: posts})
}

func (h *Handler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, html, err := h.blog.GetPublished(r.Context(), slug)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BlogPostResponse{BlogPost: post, ContentHTML: html})
}

// AdminGetBlogPosts lists every post, optionally filtered by ?published=.
func (h *Handler) AdminGetBlogPosts(w http.ResponseWriter, r *http.Request) {
	published, err := parseOptionalBoolQuery(r, "published")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	posts, err := h.blog.List(r.Context(), published)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BlogPostListResponse{Posts: posts})
}

func (h *Handler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBlogPostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.blog.Create(r.Context(), domain.BlogPostCreationData{
		Title:       body.Title,
		Slug:        body.Slug,
		Excerpt:     body.Excerpt,
		Content:     body.Content,
		AuthorId:    toNullUUID(body.AuthorId),
		IsPublished: body.IsPublished,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeCreated(w, "blog_post", post)
}

func (h *Handler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "postId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateBlogPostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.blog.Update(r.Context(), id, domain.BlogPostUpdate{
		Title:       body.Title,
		Slug:        body.Slug,
		Excerpt:     body.Excerpt,
		Content:     body.Content,
		AuthorId:    body.AuthorId,
		IsPublished: body.IsPublished,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "postId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.blog.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeDeleted(w)
}
