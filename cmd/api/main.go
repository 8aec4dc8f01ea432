package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"loonbedrijf/internal/config"
	"loonbedrijf/internal/database"
	"loonbedrijf/internal/middleware"
	"loonbedrijf/internal/modules/admin"
	"loonbedrijf/internal/modules/auth"
	"loonbedrijf/internal/modules/blog"
	"loonbedrijf/internal/modules/content"
	"loonbedrijf/internal/modules/portal"
	"loonbedrijf/internal/modules/upload"
	jwtsvc "loonbedrijf/internal/pkg/jwt"
	"loonbedrijf/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	clientRepo := repository.NewClientRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	operationRepo := repository.NewOperationRepository(db)
	uploadRepo := upload.NewRepository(db)
	contentRepo := content.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := auth.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, j, hub)

	blogService := blog.NewService(postRepo)
	blogHandler := blog.NewHandler(blogService)

	uploadService := upload.NewService(uploadRepo, cfg.UploadsDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	portalService := portal.NewService(clientRepo, invoiceRepo, operationRepo)
	portalHandler := portal.NewHandler(portalService)

	adminService := admin.NewService(userRepo, clientRepo)
	adminHandler := admin.NewHandler(adminService)

	contentService := content.NewService(contentRepo)
	contentHandler := content.NewHandler(contentService)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		blogHandler.RegisterPublicRoutes(v1)
		contentHandler.RegisterPublicRoutes(v1)

		// any signed-in user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
			portalHandler.RegisterRoutes(protected)
		}

		// admin only
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			blogHandler.RegisterAdminRoutes(adminGroup)
			adminHandler.RegisterRoutes(adminGroup)
			contentHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
