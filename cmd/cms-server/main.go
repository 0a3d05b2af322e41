package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hcms/hcms/internal/config"
	"github.com/hcms/hcms/internal/domain/clinic"
	"github.com/hcms/hcms/internal/domain/content"
	"github.com/hcms/hcms/internal/domain/gallery"
	"github.com/hcms/hcms/internal/domain/siteinfo"
	"github.com/hcms/hcms/internal/domain/staff"
	"github.com/hcms/hcms/internal/platform/auth"
	"github.com/hcms/hcms/internal/platform/blobstore"
	"github.com/hcms/hcms/internal/platform/db"
	"github.com/hcms/hcms/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cms-server",
		Short: "Hospital website CMS API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the CMS API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

// loadServerConfig loads the configuration and refuses unsafe combinations
// before the server binds. In particular, outside development the JWT
// secret and admin credentials must be set or token forgery is trivial.
func loadServerConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := loadServerConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.BodyLimit("1M", fmt.Sprintf("%dM", cfg.DirectUploadMB), "/api/v1/upload"))

	jwtCfg := auth.JWTConfig{Secret: []byte(cfg.JWTSecret)}

	// API groups. The admin surface is token-gated; the public surface
	// serves the website read-only.
	apiV1 := e.Group("/api/v1")
	public := e.Group("/api/public")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))
	public.Use(middleware.RateLimit(rateLimitCfg))

	login := auth.NewLoginHandler(jwtCfg, cfg.AdminUser, cfg.AdminPassword)
	login.RegisterRoutes(apiV1)

	if cfg.IsDev() && cfg.JWTSecret == "" {
		logger.Warn().Msg("JWT_SECRET unset, admin routes accept unauthenticated requests")
		apiV1.Use(auth.DevAuthMiddleware())
	} else {
		apiV1.Use(auth.JWTMiddleware(jwtCfg))
	}

	// Object storage for uploaded images
	store, err := blobstore.NewFSStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize upload store")
	}
	tickets := blobstore.NewTicketStore(blobstore.DefaultTicketTTL)
	uploads := blobstore.NewUploadHandler(store, tickets, cfg.UploadBaseURL,
		int64(cfg.UploadMaxMB)<<20, int64(cfg.DirectUploadMB)<<20)
	uploads.RegisterAdminRoutes(apiV1.Group("", auth.RequireRole("admin", "editor")))
	uploads.RegisterPublicRoutes(public)

	// Domain wiring: repos -> services -> handlers
	staffSvc := staff.NewService(staff.NewDoctorRepoPG(pool), staff.NewScheduleRepoPG(pool))
	staff.NewHandler(staffSvc).RegisterRoutes(apiV1, public)

	contentSvc := content.NewService(
		content.NewHeroSlideRepoPG(pool),
		content.NewPopupRepoPG(pool),
		content.NewNoticeRepoPG(pool),
		content.NewInfoCardRepoPG(pool),
		content.NewHealthInfoRepoPG(pool),
	)
	content.NewHandler(contentSvc).RegisterRoutes(apiV1, public)

	clinicSvc := clinic.NewService(
		clinic.NewClinicPageRepoPG(pool),
		clinic.NewTreatmentPageRepoPG(pool),
		clinic.NewServiceItemRepoPG(pool),
		clinic.NewEquipmentRepoPG(pool),
	)
	clinic.NewHandler(clinicSvc).RegisterRoutes(apiV1, public)

	gallerySvc := gallery.NewService(gallery.NewRepoPG(pool))
	gallery.NewHandler(gallerySvc).RegisterRoutes(apiV1, public)

	siteinfoSvc := siteinfo.NewService(
		siteinfo.NewContactInfoRepoPG(pool),
		siteinfo.NewFooterInfoRepoPG(pool),
		siteinfo.NewHospitalInfoRepoPG(pool),
		siteinfo.NewClinicHoursRepoPG(pool),
	)
	siteinfo.NewHandler(siteinfoSvc).RegisterRoutes(apiV1, public)

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
