package controllers

import (
	"net/http"
	"strconv"

	"blogyetu/app/middleware"
	"blogyetu/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing posts with pagination
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	result, err := pc.postService.ListPosts(page, limit)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, result)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())

	var input services.CreatePostInput
	if err := decodeJSON(r, &input); err != nil {
		sendErrorMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(input, actor.ID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles updating an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())

	var input services.UpdatePostInput
	if err := decodeJSON(r, &input); err != nil {
		sendErrorMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(mux.Vars(r)["id"], input, actor)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())

	if err := pc.postService.DeletePost(mux.Vars(r)["id"], actor); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "post removed"})
}

// AddComment handles appending a comment to a post
func (pc *PostController) AddComment(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())

	var input services.AddCommentInput
	if err := decodeJSON(r, &input); err != nil {
		sendErrorMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	comment, err := pc.postService.AddComment(mux.Vars(r)["id"], actor, input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}
