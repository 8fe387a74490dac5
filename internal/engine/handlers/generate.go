package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"cad-engine/internal/engine/dxf"
	"cad-engine/internal/engine/history"
	"cad-engine/internal/engine/mesh"
	"cad-engine/internal/engine/render"
	"cad-engine/internal/engine/shapes"
	"cad-engine/internal/engine/storage"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Generate Handler
// ============================================================

const (
	previewWidth  = 800
	previewHeight = 600
)

type Handler struct {
	store *history.Store
	files *storage.Storage
}

func New(store *history.Store, files *storage.Storage) *Handler {
	return &Handler{store: store, files: files}
}

// generateRequest is the structured record an external parameter
// extractor produces. Lengths are centimeters. The split doors/windows
// lists are accepted alongside the unified openings list.
type generateRequest struct {
	ShapeType   string           `json:"shape_type"`
	Width       float64          `json:"width"`
	Length      float64          `json:"length"`
	Height      float64          `json:"height"`
	Diameter    float64          `json:"diameter"`
	Legs        int              `json:"legs"`
	Openings    []shapes.Opening `json:"openings"`
	Doors       []openingSpec    `json:"doors"`
	Windows     []openingSpec    `json:"windows"`
	Description string           `json:"description"`
}

type openingSpec struct {
	Wall  shapes.Wall `json:"wall"`
	Width float64     `json:"width"`
}

func (r generateRequest) params() shapes.Params {
	openings := append([]shapes.Opening(nil), r.Openings...)
	for _, d := range r.Doors {
		openings = append(openings, shapes.Opening{Kind: shapes.OpeningDoor, Wall: d.Wall, Width: d.Width})
	}
	for _, w := range r.Windows {
		openings = append(openings, shapes.Opening{Kind: shapes.OpeningWindow, Wall: w.Wall, Width: w.Width})
	}

	return shapes.Params{
		Width:    r.Width,
		Length:   r.Length,
		Height:   r.Height,
		Diameter: r.Diameter,
		Legs:     r.Legs,
		Openings: openings,
	}
}

// Generate turns a parameter record into a three-view drawing, writes
// the DXF and SVG artifacts and records the generation in history.
func (h *Handler) Generate(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}

	var req generateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	p := req.params()
	kind, err := shapes.ResolveKind(req.ShapeType)
	if err != nil {
		// Fail closed to a box rather than refusing the request.
		log.Printf("[GENERATE] %v, falling back to box", err)
	}
	p.Kind = kind
	p = shapes.ApplyDefaults(p)

	drawing, err := shapes.Generate(p)
	if err != nil {
		if errors.Is(err, shapes.ErrDegenerateGeometry) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[GENERATE] %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "generation failed"})
	}

	id := uuid.NewString()
	svg := render.SVG(drawing.Entities(), previewWidth, previewHeight)

	if err := h.files.Save(h.files.DXFPath(id), []byte(dxf.Encode(drawing))); err != nil {
		log.Printf("[GENERATE] save dxf: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save dxf"})
	}
	if err := h.files.Save(h.files.SVGPath(id), []byte(svg)); err != nil {
		log.Printf("[GENERATE] save svg: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save svg"})
	}

	paramsJSON, err := json.Marshal(p)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to encode params"})
	}

	entry := &history.Entry{
		ID:         id,
		Prompt:     req.Description,
		ParamsJSON: string(paramsJSON),
		DXFFile:    id + ".dxf",
		SVGFile:    id + ".svg",
	}
	if err := h.store.Create(context.Background(), entry); err != nil {
		log.Printf("[GENERATE] history: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record history"})
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"id":           id,
		"data":         p,
		"download_url": "/download/" + entry.DXFFile,
		"svg_preview":  svg,
	})
}

// Export3D builds the solid mesh for a recorded generation and stores
// it as a binary STL.
func (h *Handler) Export3D(c fiber.Ctx) error {
	id := c.Params("id")

	entry, err := h.store.Get(context.Background(), id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "generation not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "history lookup failed"})
	}

	var p shapes.Params
	if err := json.Unmarshal([]byte(entry.ParamsJSON), &p); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "stored params corrupted"})
	}

	tris, err := mesh.ForParams(p)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := mesh.WriteSTL(&buf, tris); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "stl encoding failed"})
	}
	if err := h.files.Save(h.files.STLPath(id), buf.Bytes()); err != nil {
		log.Printf("[EXPORT3D] save stl: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save stl"})
	}

	if err := h.store.SetSTL(context.Background(), id, id+".stl"); err != nil {
		log.Printf("[EXPORT3D] history: %v", err)
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"download_url": "/download/" + id + ".stl",
	})
}

// Download serves a generated artifact by filename.
func (h *Handler) Download(c fiber.Ctx) error {
	path, err := h.files.ResolveDownload(c.Params("filename"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	}
	return c.SendFile(path)
}
