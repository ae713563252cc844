// @title           ARQZOY Backend API
// @version         1.0.0
// @description     Backend API for the ARQZOY architecture studio: public portfolio, private client project links, and the operator's admin panel for clients, projects, files and designs.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"arqzoy-backend/docs"
	"arqzoy-backend/internal/config"
	"arqzoy-backend/internal/database"
	"arqzoy-backend/internal/email"
	"arqzoy-backend/internal/handlers"
	"arqzoy-backend/internal/middleware"
	"arqzoy-backend/internal/repository"
	"arqzoy-backend/internal/services"
	"arqzoy-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		log.Println("Please set DATABASE_URL environment variable with your Supabase PostgreSQL connection string")
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	var dbClient *supabase.DatabaseClient
	if cfg.DatabaseURL != "" {
		dbClient, err = supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Database operations will be limited. Please configure DATABASE_URL properly.")
		} else {
			defer dbClient.Close()

			migrator, err := database.NewMigrator(cfg.DatabaseURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	repo := repository.New(dbClient)
	gateway := services.NewFileGateway(repo, storageClient)

	emailClient := email.NewClient(email.Config{
		BaseURL:    cfg.EmailBaseURL,
		ServiceID:  cfg.EmailServiceID,
		TemplateID: cfg.EmailTemplateID,
		PublicKey:  cfg.EmailPublicKey,
	})
	if !emailClient.Configured() {
		log.Println("Warning: email delivery not configured. The contact form will answer 503.")
	}

	authHandler := handlers.NewAuthHandler(supabaseClient)
	clientsHandler := handlers.NewClientsHandler(repo)
	projectsHandler := handlers.NewProjectsHandler(repo, storageClient)
	uploadsHandler := handlers.NewUploadsHandler(gateway)
	designsHandler := handlers.NewDesignsHandler(repo)
	profileHandler := handlers.NewProfileHandler(repo)
	portfolioHandler := handlers.NewPortfolioHandler(repo)
	clientViewHandler := handlers.NewClientViewHandler(repo)
	contactHandler := handlers.NewContactHandler(emailClient)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public surface: no session required anywhere here. The private client
	// page authenticates by token possession alone.
	api := router.Group("/api/v1")
	api.GET("/portfolio/projects", portfolioHandler.ListPublicProjects)
	api.GET("/portfolio/designs", portfolioHandler.ListPublicDesigns)
	api.GET("/profile", profileHandler.GetProfile)
	api.GET("/cliente/:token", clientViewHandler.ViewProject)
	api.POST("/contact", contactHandler.SendContact)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Admin surface: operator session required.
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))

	admin.POST("/clients", clientsHandler.CreateClient)
	admin.GET("/clients", clientsHandler.ListClients)
	admin.PATCH("/clients/:client_id", clientsHandler.UpdateClient)

	admin.POST("/projects", projectsHandler.CreateProject)
	admin.GET("/projects", projectsHandler.ListProjects)
	admin.PATCH("/projects/:project_id", projectsHandler.UpdateProject)
	admin.PATCH("/projects/:project_id/status", projectsHandler.UpdateStatus)
	admin.PATCH("/projects/:project_id/visibility", projectsHandler.UpdateVisibility)
	admin.DELETE("/projects/:project_id", projectsHandler.DeleteProject)
	admin.GET("/projects/:project_id/files", projectsHandler.ListFiles)
	admin.POST("/projects/:project_id/files", uploadsHandler.UploadProjectFiles)

	admin.POST("/designs", designsHandler.CreateDesign)
	admin.GET("/designs", designsHandler.ListDesigns)
	admin.PATCH("/designs/:design_id", designsHandler.UpdateDesign)
	admin.DELETE("/designs/:design_id", designsHandler.DeleteDesign)
	admin.POST("/designs/:design_id/image", uploadsHandler.UploadDesignImage)

	admin.GET("/profile", profileHandler.GetProfile)
	admin.PUT("/profile", profileHandler.UpsertProfile)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
