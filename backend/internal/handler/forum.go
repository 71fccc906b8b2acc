package handler

import (
	"net/http"

	"github.com/cosmiccommons/c3site/shared/api"
	"github.com/cosmiccommons/c3site/shared/domain"
	"github.com/cosmiccommons/c3site/shared/utils"
)

func (h *Handler) GetForumCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.forum.Categories(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ForumCategoryListResponse{Categories: categories})
}

func (h *Handler) CreateForumCategory(w http.ResponseWriter, r *http.Request) {
	var body api.CreateForumCategoryRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	category, err := h.forum.CreateCategory(r.Context(), domain.ForumCategoryCreationData{
		Name:         body.Name,
		Description:  body.Description,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeCreated(w, "forum_category", category)
}

func (h *Handler) DeactivateForumCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "categoryId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.forum.DeactivateCategory(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeDeleted(w)
}

func (h *Handler) GetForumTopics(w http.ResponseWriter, r *http.Request) {
	categoryId, err := parseOptionalUUIDQuery(r, "category_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topics, err := h.forum.Topics(r.Context(), categoryId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ForumTopicListResponse{Topics: topics})
}

func (h *Handler) GetForumTopic(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "topicId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topic, err := h.forum.Topic(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, topic)
}

// CreateForumTopic is public; pin and lock flags are only settable through
// the admin update.
func (h *Handler) CreateForumTopic(w http.ResponseWriter, r *http.Request) {
	var body api.CreateForumTopicRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topic, err := h.forum.CreateTopic(r.Context(), domain.ForumTopicCreationData{
		Title:      body.Title,
		Content:    body.Content,
		AuthorId:   toNullUUID(body.AuthorId),
		CategoryId: toNullUUID(body.CategoryId),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeCreated(w, "forum_topic", topic)
}

func (h *Handler) UpdateForumTopic(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "topicId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateForumTopicRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topic, err := h.forum.UpdateTopic(r.Context(), id, domain.ForumTopicUpdate{
		Title:      body.Title,
		Content:    body.Content,
		CategoryId: body.CategoryId,
		IsPinned:   body.IsPinned,
		IsLocked:   body.IsLocked,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, topic)
}

func (h *Handler) GetForumReplies(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIdParam(r, "topicId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	replies, err := h.forum.Replies(r.Context(), topicId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ForumReplyListResponse{Replies: replies})
}

func (h *Handler) CreateForumReply(w http.ResponseWriter, r *http.Request) {
	topicId, err := parseIdParam(r, "topicId")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.CreateForumReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.forum.CreateReply(r.Context(), domain.ForumReplyCreationData{
		Content:       body.Content,
		AuthorId:      toNullUUID(body.AuthorId),
		TopicId:       topicId,
		ParentReplyId: toNullUUID(body.ParentReplyId),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeCreated(w, "forum_reply", reply)
}
