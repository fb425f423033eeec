package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
}

// getProduct returns the catalog record for an id, accepting either stored
// representation.
func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.resolver.Lookup(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(p)
}
