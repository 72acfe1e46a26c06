package modelbind

import (
	"bytes"
	"errors"
	"strings"

	"model-binder/core/logger"
	"model-binder/core/request"
	"model-binder/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SourceBody labels values read from a JSON or YAML request body.
const SourceBody = "body"

// Handler handles HTTP requests for model binding.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bind routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bind")
	group.Get("/", h.HandleListModels)
	group.Post("/:model", h.HandleBind)
	group.Get("/:model/object/*", h.HandleBindObject)
}

// HandleListModels returns the names of every bindable model.
func (h *Handler) HandleListModels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"models": h.service.Catalog().Names()})
}

// HandleBind binds a model from the request. A JSON or YAML body is read
// first, then form fields, query parameters and route params.
func (h *Handler) HandleBind(c *fiber.Ctx) error {
	model := c.Params("model")
	l := logger.WithRayID(h.service.logger, c)

	if _, ok := h.service.Catalog().Lookup(model); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": NewUnknownModelError(model).Error(),
		})
	}

	sources := make([]request.Data, 0, 2)
	if body := c.Body(); len(body) > 0 && isDocument(c) {
		doc, err := request.FromDocument(SourceBody, bytes.NewReader(body))
		if err != nil {
			l.Warn("Bind body rejected", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": NewInvalidBodyError(err).Error(),
			})
		}
		sources = append(sources, doc)
	}
	sources = append(sources, request.FromFiber(c))

	result, err := h.service.bind(l, model, request.NewComposite(sources...))
	if err != nil {
		l.Error("Model bind failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleBindObject binds a model from a document in object storage.
func (h *Handler) HandleBindObject(c *fiber.Ctx) error {
	model := c.Params("model")
	objectName := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	if _, ok := h.service.Catalog().Lookup(model); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": NewUnknownModelError(model).Error(),
		})
	}
	if objectName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "object name is required",
		})
	}

	result, err := h.service.bindObject(c.Context(), l, model, objectName)
	if err != nil {
		status := objectErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			l.Error("Object bind failed", zap.String("object", objectName), zap.Error(err))
		} else {
			l.Warn("Object bind rejected", zap.String("object", objectName), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// objectErrorStatus maps a missing document to 404 and missing storage to
// 503. Anything else is a server fault.
func objectErrorStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		return fiber.StatusServiceUnavailable
	case storage.IsNotFound(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func isDocument(c *fiber.Ctx) bool {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	return strings.Contains(ct, "json") || strings.Contains(ct, "yaml")
}
