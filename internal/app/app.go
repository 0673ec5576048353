package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hope-backend/internal/auth"
	"hope-backend/internal/config"
	"hope-backend/internal/db"
	"hope-backend/internal/handlers"
	"hope-backend/internal/store"
	"hope-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

// New builds the Fiber app with the full middleware stack and route
// table. Split from Run so tests can drive it with a fake store.
func New(cfg config.Config, st store.Store, tokens *auth.TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		// Blog creation accepts five 5 MiB images in one request, plus
		// multipart framing. The per-file limit lives in upload.Saver.
		BodyLimit:    30 << 20,
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ", "),
		AllowCredentials: true,
	}))

	saver := upload.NewSaver(cfg.UploadDir)
	protect := handlers.Protect(st, tokens)

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Hour,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "failed",
				"msg":    "Too many requests from this IP, Please try again in an hour!",
			})
		},
	}))
	v1 := api.Group("/v1")

	user := v1.Group("/user")
	user.Post("/register", handlers.Register(st))
	user.Post("/sign-in", handlers.SignIn(st, tokens, cfg.TokenTTL))
	user.Get("/verify-token", protect, handlers.VerifyToken())
	user.Post("/upload-avatar", protect, handlers.UploadAvatar(st, saver))
	user.Delete("/delete-avatar", protect, handlers.DeleteAvatar(st))
	user.Put("/update-me", protect, handlers.UpdateMe(st))
	user.Put("/update-password", protect, handlers.UpdatePassword(st))

	blogs := v1.Group("/blogs")
	blogs.Post("/create", protect, handlers.CreateBlog(st, saver))
	blogs.Get("/get-all-blogs", handlers.GetAllBlogs(st))
	blogs.Delete("/delete-blog/:id", protect, handlers.DeleteBlog(st))
	blogs.Patch("/update-blog/:id", protect, handlers.UpdateBlog(st))

	story := v1.Group("/story")
	story.Post("/create", protect, handlers.CreateStory(st, saver))
	story.Get("/get-all-stories", handlers.GetAllStories(st))
	story.Delete("/delete-story/:id", protect, handlers.DeleteStory(st))

	contact := v1.Group("/contact")
	contact.Post("/create-contact-form", handlers.CreateContactForm(st))
	contact.Get("/get-all-contact-forms", protect, handlers.GetAllContactForms(st))
	contact.Get("/get-contact-from/:id", protect, handlers.GetContactForm(st))

	volunteer := v1.Group("/volunteer")
	volunteer.Post("/create-volunteer-form", handlers.CreateVolunteerForm(st))
	volunteer.Get("/get-all-volunteer-forms", protect, handlers.GetAllVolunteerForms(st))
	volunteer.Get("/get-volunteer-form/:id", protect, handlers.GetVolunteerForm(st))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Static("/uploads", cfg.UploadDir)

	// Catch-all must register last.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error",
			"msg":    "Route not defined!",
		})
	})

	return app
}

// errorHandler keeps errors that bypass the handlers, like the body
// limit rejection, on the same envelope as everything else.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Something went wrong, please try again later!"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		code = fiberErr.Code
		msg = fiberErr.Message
	}
	status := "error"
	if code >= fiber.StatusInternalServerError {
		status = "failed"
	}
	return c.Status(code).JSON(fiber.Map{"status": status, "msg": msg})
}

func Run() {
	cfg := config.Load()
	logg := config.NewLogger(cfg)

	if err := db.MigrateUp(cfg.DatabaseURL, ""); err != nil {
		logg.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logg.Info().Msg("connected to PostgreSQL")

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		logg.Warn().Err(err).Msg("failed to create upload dir")
	}

	st := store.NewPostgres(pool)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	app := New(cfg, st, tokens)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()
	logg.Info().Str("port", cfg.Port).Msg("app listening")

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	logg.Info().Msg("gracefully shutting down...")
	_ = app.Shutdown()
	logg.Info().Msg("server shutdown complete")
}
