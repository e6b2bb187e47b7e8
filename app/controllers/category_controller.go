package controllers

import (
	"net/http"

	"blogyetu/app/middleware"
	"blogyetu/app/services"
)

// CategoryController handles HTTP requests for categories
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// Index handles listing all categories
func (cc *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.categoryService.ListCategories()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"items": categories})
}

// Create handles creating a new category. Only admins may create them.
func (cc *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFrom(r.Context())
	if !actor.IsAdmin() {
		sendError(w, services.ErrNotAuthorized)
		return
	}

	var input services.CreateCategoryInput
	if err := decodeJSON(r, &input); err != nil {
		sendErrorMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	category, err := cc.categoryService.CreateCategory(input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, category)
}
