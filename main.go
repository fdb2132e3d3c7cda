package main

import (
	"net/http"
	"os"

	"keyeditor-api/config"
	"keyeditor-api/handlers"
	"keyeditor-api/helper"
	"keyeditor-api/middleware"
	"keyeditor-api/repositories"
	"keyeditor-api/services"
	"keyeditor-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	// Initialize storage
	files, err := storage.NewDiskStorage(cfg.MediaDir)
	if err != nil {
		log.Fatal().Err(err).Msg("media storage init failed")
	}
	thumbnails := storage.NewThumbnailer()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	keyRepo := repositories.NewKeyRepository(db)
	revisionRepo := repositories.NewRevisionRepository(db)
	entityRepo := repositories.NewEntityRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	collectionRepo := repositories.NewCollectionRepository(db)
	orgRepo := repositories.NewOrganizationRepository(db)
	workgroupRepo := repositories.NewWorkgroupRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg, log)
	permissionService := services.NewPermissionService(workgroupRepo, log)
	revisionService := services.NewRevisionService(keyRepo, revisionRepo, log)
	keyService := services.NewKeyService(keyRepo, revisionService, permissionService, log)
	taxonService := services.NewTaxonService(entityRepo, revisionService, permissionService, log)
	characterService := services.NewCharacterService(entityRepo, revisionService, permissionService, log)
	mediaService := services.NewMediaService(mediaRepo, revisionService, permissionService, files, thumbnails, cfg.ThumbnailWidth, log)
	groupService := services.NewGroupService(groupRepo, log)
	collectionService := services.NewCollectionService(collectionRepo, log)
	organizationService := services.NewOrganizationService(orgRepo, log)
	workgroupService := services.NewWorkgroupService(workgroupRepo, orgRepo, log)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, permissionService, httpHelper)
	keyHandler := handlers.NewKeyHandler(keyService, revisionService, httpHelper)
	revisionHandler := handlers.NewRevisionHandler(revisionService, httpHelper)
	taxonHandler := handlers.NewTaxonHandler(taxonService, httpHelper)
	characterHandler := handlers.NewCharacterHandler(characterService, httpHelper)
	mediaHandler := handlers.NewMediaHandler(mediaService, httpHelper)
	groupHandler := handlers.NewGroupHandler(groupService, httpHelper)
	collectionHandler := handlers.NewCollectionHandler(collectionService, httpHelper)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, httpHelper)
	workgroupHandler := handlers.NewWorkgroupHandler(workgroupService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			// Profile
			protected.GET("/auth/profile", authHandler.GetProfile)
			protected.GET("/auth/permissions", authHandler.GetPermissions)

			// Keys
			keys := protected.Group("/keys")
			{
				keys.POST("", keyHandler.CreateKey)
				keys.GET("", keyHandler.GetKeys)
				keys.GET("/:id", keyHandler.GetKey)
				keys.PUT("/:id", keyHandler.UpdateKey)
				keys.DELETE("/:id", keyHandler.DeleteKey)
				keys.POST("/:id/revisions", revisionHandler.CreateRevision)
				keys.GET("/:id/revisions", revisionHandler.GetKeyRevisions)
				keys.GET("/:id/revisions/:revision_id", revisionHandler.GetKeyRevision)
			}

			// Revisions
			revisions := protected.Group("/revisions")
			{
				revisions.GET("/:id", revisionHandler.GetRevision)
				revisions.PUT("/:id/status", revisionHandler.UpdateRevisionStatus)
			}

			// Taxa
			taxa := protected.Group("/taxa")
			{
				taxa.POST("", taxonHandler.CreateTaxon)
				taxa.PUT("/:id", taxonHandler.UpdateTaxon)
				taxa.DELETE("/:id", taxonHandler.DeleteTaxon)
			}

			// Characters
			characters := protected.Group("/characters")
			{
				characters.POST("", characterHandler.CreateCharacter)
				characters.PUT("/:id", characterHandler.UpdateCharacter)
				characters.DELETE("/:id", characterHandler.DeleteCharacter)
			}

			// Media
			media := protected.Group("/media")
			{
				media.POST("", mediaHandler.UploadMedia)
				media.GET("/:id", mediaHandler.GetMedia)
				media.DELETE("/:id", mediaHandler.DeleteMedia)
				media.POST("/attach", mediaHandler.AttachMedia)
				media.POST("/detach", mediaHandler.DetachMedia)
			}

			// Groups
			groups := protected.Group("/groups")
			{
				groups.POST("", groupHandler.CreateGroup)
				groups.GET("", groupHandler.GetGroups)
				groups.GET("/:id", groupHandler.GetGroup)
				groups.DELETE("/:id", groupHandler.DeleteGroup)
			}

			// Collections
			collections := protected.Group("/collections")
			{
				collections.POST("", collectionHandler.CreateCollection)
				collections.GET("", collectionHandler.GetCollections)
				collections.GET("/:id", collectionHandler.GetCollection)
				collections.DELETE("/:id", collectionHandler.DeleteCollection)
			}

			// Organizations
			organizations := protected.Group("/organizations")
			{
				organizations.POST("", organizationHandler.CreateOrganization)
				organizations.GET("", organizationHandler.GetOrganizations)
				organizations.GET("/:id", organizationHandler.GetOrganization)
			}

			// Workgroups
			workgroups := protected.Group("/workgroups")
			{
				workgroups.POST("", workgroupHandler.CreateWorkgroup)
				workgroups.GET("", workgroupHandler.GetWorkgroups)
				workgroups.GET("/:id", workgroupHandler.GetWorkgroup)
				workgroups.GET("/:id/editors", workgroupHandler.GetEditors)
			}

			// Editors
			editors := protected.Group("/editors")
			{
				editors.POST("", workgroupHandler.AddEditor)
				editors.DELETE("/:id", workgroupHandler.RemoveEditor)
			}
		}

		// Public key routes (published and beta only)
		public := v1.Group("/public")
		{
			public.GET("/keys", keyHandler.GetPublicKeys)
			public.GET("/keys/:id", keyHandler.GetPublicKey)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
