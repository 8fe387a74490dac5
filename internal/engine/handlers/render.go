package handlers

import (
	"net/http"
	"strconv"

	"cad-engine/internal/engine/geometry"
	"cad-engine/internal/engine/render"
	"cad-engine/internal/engine/shapes"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Render Handler
// ============================================================

// Render converts a serialized entity list back into an SVG preview.
// Width/height query parameters size the rendering surface only; the
// coordinate mapping comes from the drawing bounds.
func (h *Handler) Render(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}

	entities, err := geometry.UnmarshalEntities(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid entity payload"})
	}

	width := queryInt(c, "width", previewWidth)
	height := queryInt(c, "height", previewHeight)

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(render.SVG(entities, width, height))
}

// Shapes lists the canonical shape kinds the engine accepts.
func (h *Handler) Shapes(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"shapes": shapes.Kinds()})
}

func queryInt(c fiber.Ctx, key string, def int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return def
}
