package catalog

import (
	"context"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Counter is implemented by both catalog repositories.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Stats struct {
	Products   int64  `json:"products"`
	Categories int64  `json:"categories"`
	Driver     string `json:"driver"`
}

type Handler struct {
	products   Counter
	categories Counter
	driver     string
	log        *zap.Logger
}

func NewHandler(products, categories Counter, driver string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{products: products, categories: categories, driver: driver, log: log}
}

// Middleware guards admin routes with HS256 bearer tokens.
func Middleware(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    []byte(secret),
		SigningMethod: "HS256",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		},
	})
}

// RegisterProtectedRoutes expects a router already mounted under /api/v1/admin
// behind Middleware.
func (h *Handler) RegisterProtectedRoutes(admin fiber.Router) {
	admin.Get("/catalog/stats", h.getStats)
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(*jwt.Token); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	ctx := c.UserContext()
	products, err := h.products.Count(ctx)
	if err != nil {
		h.log.Error("count products", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	categories, err := h.categories.Count(ctx)
	if err != nil {
		h.log.Error("count categories", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(Stats{Products: products, Categories: categories, Driver: h.driver})
}
