package routes

import (
	"blogyetu/app/controllers"
	"blogyetu/app/middleware"
	"blogyetu/app/repositories"
	"blogyetu/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services, and controllers onto a
// router, using the provided Badger DB.
func SetupRoutes(db *badger.DB, jwtSecret []byte) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	categoryRepo := repositories.NewBadgerCategoryRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	categoryService := services.NewCategoryService(categoryRepo)
	postService := services.NewPostService(postRepo, userRepo, categoryService)
	userService := services.NewUserService(userRepo, jwtSecret)

	postController := controllers.NewPostController(postService)
	categoryController := controllers.NewCategoryController(categoryService)
	authController := controllers.NewAuthController(userService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	api := router.PathPrefix("/api").Subrouter()

	// Public endpoints
	api.HandleFunc("/posts", postController.Index).Methods("GET")
	api.HandleFunc("/posts/{id}", postController.Show).Methods("GET")
	api.HandleFunc("/categories", categoryController.Index).Methods("GET")
	api.HandleFunc("/auth/register", authController.Register).Methods("POST")
	api.HandleFunc("/auth/login", authController.Login).Methods("POST")

	// Authenticated endpoints
	secured := api.NewRoute().Subrouter()
	secured.Use(middleware.RequireAuth(userRepo, jwtSecret))
	secured.HandleFunc("/posts", postController.Create).Methods("POST")
	secured.HandleFunc("/posts/{id}", postController.Edit).Methods("PUT")
	secured.HandleFunc("/posts/{id}", postController.Delete).Methods("DELETE")
	secured.HandleFunc("/posts/{id}/comments", postController.AddComment).Methods("POST")
	secured.HandleFunc("/categories", categoryController.Create).Methods("POST")
	secured.HandleFunc("/auth/me", authController.Me).Methods("GET")

	return router
}
