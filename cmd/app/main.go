package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/caption"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/catalog"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/category"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/config"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/infrastructure/database/mongodb"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/infrastructure/database/postgres"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/logger"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/product"
)

// store bundles the repositories of one catalog backend.
type store struct {
	products   product.Repository
	categories category.Repository
	pinger     caption.Pinger
	close      func()
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("catalog unavailable at startup", zap.String("driver", cfg.CatalogDriver), zap.Error(err))
	}
	defer st.close()

	app := fiber.New(fiber.Config{DisableStartupMessage: cfg.Env == "production"})
	app.Use(recover.New())
	setupCORS(app)
	app.Use(logger.RequestLogger(log))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := st.pinger.Ping(c.UserContext()); err != nil {
			logger.FromCtx(log, c).Warn("health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "driver": cfg.CatalogDriver})
	})

	resolver := product.NewResolver(st.products, log.Named("product"))
	captionService := caption.NewService(
		resolver,
		category.NewTranslator(st.categories, log.Named("category")),
		language.NewRewriter(log.Named("language")),
		st.pinger,
		log.Named("caption"),
	)
	caption.NewHandler(captionService).RegisterPublicRoutes(app)
	category.NewHandler(category.NewService(st.categories)).RegisterPublicRoutes(app)
	product.NewHandler(resolver).RegisterPublicRoutes(app)

	if cfg.JWTSecret != "" {
		admin := app.Group("/api/v1/admin", catalog.Middleware(cfg.JWTSecret))
		catalog.NewHandler(st.products, st.categories, cfg.CatalogDriver, log.Named("catalog")).RegisterProtectedRoutes(admin)
	} else {
		log.Warn("JWT_SECRET not set, admin routes disabled")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("starting server", zap.String("addr", cfg.Addr), zap.String("driver", cfg.CatalogDriver))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (*store, error) {
	switch cfg.CatalogDriver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			return nil, err
		}
		log.Info("connected to MongoDB", zap.String("db", cfg.DBName))
		return &store{
			products:   product.NewMongoRepository(db),
			categories: category.NewMongoRepository(db),
			pinger:     mongodb.NewPinger(client),
			close: func() {
				if err := mongodb.Disconnect(client); err != nil {
					log.Warn("mongo disconnect", zap.Error(err))
				}
			},
		}, nil
	default:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if cfg.EnsureSchema {
			if err := postgres.EnsureSchema(ctx, db, log); err != nil {
				db.Close()
				return nil, err
			}
		}
		log.Info("connected to PostgreSQL")
		return &store{
			products:   product.NewPostgresRepository(db),
			categories: category.NewPostgresRepository(db),
			pinger:     caption.PingFunc(db.PingContext),
			close:      func() { db.Close() },
		}, nil
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + logger.RequestIDKey,
	}))
}
