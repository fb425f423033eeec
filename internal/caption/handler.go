package caption

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/generate", h.generate)
	app.Post("/api/v1/caption", h.generate)
	app.Get("/api/v1/caption/templates", h.getTemplates)
}

type generateRequest struct {
	URLs       []string `json:"urls"`
	Template   string   `json:"template"`
	TalentName string   `json:"talent_name"`
}

func (h *Handler) generate(c *fiber.Ctx) error {
	req := new(generateRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	urls := make([]string, 0, len(req.URLs))
	for _, u := range req.URLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	res, err := h.service.Generate(c.UserContext(), urls, strings.TrimSpace(req.Template), strings.TrimSpace(req.TalentName))
	switch {
	case err == nil:
		return c.JSON(res)
	case errors.Is(err, ErrNoURLs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No URLs provided"})
	case errors.Is(err, ErrUnknownTemplate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown template: " + req.Template})
	case errors.Is(err, ErrCatalogUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(failure(err))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(failure(err))
	}
}

func failure(err error) Result {
	return Result{
		Captions: map[language.Code]string{},
		Errors:   []string{err.Error()},
		Success:  false,
	}
}

func (h *Handler) getTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"types":     TemplateTypes,
		"languages": language.All,
		"templates": Templates(),
	})
}
