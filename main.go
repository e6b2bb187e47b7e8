package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blogyetu/app/models"
	"blogyetu/app/repositories"
	"blogyetu/app/routes"
	"blogyetu/app/services"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/bcrypt"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogyetu version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		seed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogyetu <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the blog API server.
  seed      Create the admin account and starter categories.

Environment:
  BLOG_ADDR         Listen address (default ":8080").
  BLOG_DB_PATH      Badger data directory (default "data/badger").
  BLOG_JWT_SECRET   Token signing secret (required for serve).
  BLOG_ADMIN_EMAIL / BLOG_ADMIN_PASSWORD   Used by seed.
`
	fmt.Println(helpText)
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB() *badger.DB {
	path := envDefault("BLOG_DB_PATH", "data/badger")
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	return db
}

// serve opens the database, wires the router, and runs the HTTP server
// until interrupted, then shuts both down in order.
func serve() {
	secret := os.Getenv("BLOG_JWT_SECRET")
	if secret == "" {
		log.Fatal("BLOG_JWT_SECRET must be set")
	}

	db := openDB()
	defer db.Close()

	router := routes.SetupRoutes(db, []byte(secret))
	addr := envDefault("BLOG_ADDR", ":8080")

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting blog API on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// seed creates the admin user and a few starter categories so a fresh
// install has someone who can manage posts and labels to attach.
func seed() {
	email := envDefault("BLOG_ADMIN_EMAIL", "admin@example.com")
	password := envDefault("BLOG_ADMIN_PASSWORD", "changeme123")

	db := openDB()
	defer db.Close()

	userRepo := repositories.NewBadgerUserRepository(db)
	categoryRepo := repositories.NewBadgerCategoryRepository(db)
	categoryService := services.NewCategoryService(categoryRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &models.User{
		Name:         "Admin",
		Email:        email,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	admin.BeforeCreate()
	switch err := userRepo.Create(admin); {
	case err == nil:
		log.Printf("Created admin user %s", email)
	case errors.Is(err, repositories.ErrEmailTaken):
		log.Printf("Admin user %s already exists", email)
	default:
		log.Fatalf("Failed to create admin user: %v", err)
	}

	existing, err := categoryService.ListCategories()
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Categories already seeded (%d present)", len(existing))
		return
	}

	for _, name := range []string{"General", "Technology", "Lifestyle"} {
		if _, err := categoryService.CreateCategory(services.CreateCategoryInput{Name: name}); err != nil {
			log.Fatalf("Failed to create category %q: %v", name, err)
		}
		log.Printf("Created category %s", name)
	}
}
