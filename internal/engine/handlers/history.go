package handlers

import (
	"context"
	"errors"
	"net/http"

	"cad-engine/internal/engine/history"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// History Handlers
// ============================================================

// ListHistory returns every generation record, newest first.
func (h *Handler) ListHistory(c fiber.Ctx) error {
	entries, err := h.store.List(context.Background())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "history lookup failed"})
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	return c.JSON(fiber.Map{"entries": entries})
}

// GetHistory returns one generation record.
func (h *Handler) GetHistory(c fiber.Ctx) error {
	entry, err := h.store.Get(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "history lookup failed"})
	}
	return c.JSON(entry)
}

// DeleteHistory removes one generation record.
func (h *Handler) DeleteHistory(c fiber.Ctx) error {
	if err := h.store.Delete(context.Background(), c.Params("id")); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "entry not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "delete failed"})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// ClearHistory removes every generation record.
func (h *Handler) ClearHistory(c fiber.Ctx) error {
	count, err := h.store.Clear(context.Background())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "clear failed"})
	}
	return c.JSON(fiber.Map{"status": "cleared", "deleted": count})
}
