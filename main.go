package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxUploadSize = 10 << 20 // 10 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		logrus.Info("no .env file found, relying on process environment")
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			logrus.Fatalf("required environment variable %s is not set", envVar)
		}
	}
}

func setupRouter(
	users *usecase.UserService,
	notes *usecase.NotesService,
	storage handler.ImageUploader,
	mongoClient *mongo.Client,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/healthz", handler.HealthHandler(mongoClient))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/signup", func(c *gin.Context) {
				handler.SignupHandler(c, users)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, users)
			})
			auth.POST("/logout", handler.LogoutHandler)
		}
	}

	// Protected routes behind the session gate
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/me", func(c *gin.Context) {
			handler.MeHandler(c, users)
		})

		notesGroup := protected.Group("/notes")
		{
			notesGroup.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notes)
			})
			notesGroup.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notes)
			})
			notesGroup.GET("/favourites", func(c *gin.Context) {
				handler.ListFavoriteNotesHandler(c, notes)
			})
			notesGroup.POST("/audio", func(c *gin.Context) {
				handler.CreateAudioNoteHandler(c, notes)
			})
			notesGroup.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notes)
			})
			notesGroup.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notes)
			})
			notesGroup.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notes)
			})
			notesGroup.PUT("/:id/favourite", func(c *gin.Context) {
				handler.SetFavoriteHandler(c, notes)
			})
		}

		protected.POST("/upload-image",
			middleware.RequestSizeLimiter(maxUploadSize),
			func(c *gin.Context) {
				handler.UploadImageHandler(c, notes, storage)
			})
	}

	return router
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := utils.InitJWT(); err != nil {
		logrus.WithError(err).Fatal("failed to initialize token signing")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := config.LoadDatabaseConfig()
	client, err := repository.NewMongoClient(ctx, dbCfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logrus.WithError(err).Error("failed to disconnect MongoDB client")
		}
	}()

	if err := repository.SetupIndexes(client.Database(dbCfg.DatabaseName)); err != nil {
		logrus.WithError(err).Fatal("failed to create indexes")
	}

	if redisURL := utils.GetEnvAsString("REDIS_URL", ""); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to Redis")
		}
		services.TokenBlacklist = blacklist
		defer blacklist.Close()
		logrus.Info("token revocation enabled")
	} else {
		logrus.Warn("REDIS_URL not set, logout relies on token expiry only")
	}

	var storage handler.ImageUploader
	if storageCfg := config.LoadStorageConfig(); storageCfg.Configured() {
		storage, err = services.NewImageStorage(ctx, storageCfg)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize image storage")
		}
	} else {
		logrus.Warn("image storage not configured, uploads disabled")
	}

	usersRepo := repository.GetUsersRepo(client, dbCfg.DatabaseName)
	notesRepo := repository.GetNotesRepo(client, dbCfg.DatabaseName)

	userService := &usecase.UserService{UsersRepo: usersRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo}

	router := setupRouter(userService, notesService, storage, client)

	port := utils.GetEnvAsString("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logrus.Infof("server starting on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("forced shutdown")
	}
}
