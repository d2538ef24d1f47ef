package audit

import (
	"bytes"
	"strconv"

	"particle-audit/core/logger"
	"particle-audit/core/report"
	"particle-audit/core/tables"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for particle table audits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleReport)
	group.Get("/summary", h.HandleSummary)
	group.Get("/particles/:id", h.HandleParticle)
	group.Get("/health", h.HandleHealth)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleReport returns the full text report.
// @Summary Full Reconciliation Report
// @Description Loads both particle tables, compares every shared particle and returns the text report.
// @Tags audit
// @Produce plain
// @Success 200 {string} string "Report"
// @Failure 422 {object} map[string]string "Malformed line in strict mode"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Table not found"
// @Router /audit [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Run(c.Context(), l)
	if err != nil {
		return h.fail(c, l, err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, res); err != nil {
		return h.fail(c, l, err)
	}
	return sendText(c, buf.Bytes())
}

// HandleSummary returns the "M G C S" tally.
// @Summary Difference Tally
// @Description Returns the number of reportable mass, width, charge and spin differences.
// @Tags audit
// @Produce plain
// @Success 200 {string} string "M G C S tally"
// @Failure 422 {object} map[string]string "Malformed line in strict mode"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Table not found"
// @Router /audit/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Run(c.Context(), l)
	if err != nil {
		return h.fail(c, l, err)
	}

	var buf bytes.Buffer
	if err := report.WriteCounts(&buf, res.Counts); err != nil {
		return h.fail(c, l, err)
	}
	return sendText(c, buf.Bytes())
}

// HandleParticle returns the difference block of one shared particle.
// Antiparticle identifiers resolve to their folded positive entry.
// @Summary Particle Differences
// @Description Returns the difference block of one particle present in both tables.
// @Tags audit
// @Produce plain
// @Param id path int true "PDG identifier (e.g. 211)"
// @Success 200 {string} string "Particle block"
// @Failure 400 {object} map[string]string "Invalid identifier"
// @Failure 404 {object} map[string]interface{} "No differences recorded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Table not found"
// @Router /audit/particles/{id} [get]
func (h *Handler) HandleParticle(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "particle id must be an integer",
		})
	}

	res, err := h.service.Run(c.Context(), l)
	if err != nil {
		return h.fail(c, l, err)
	}

	entry, ok := res.Lookup(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no differences recorded for particle",
			"id":    id,
		})
	}

	var buf bytes.Buffer
	if err := report.WriteEntry(&buf, entry); err != nil {
		return h.fail(c, l, err)
	}
	return sendText(c, buf.Bytes())
}

// HandleHealth reports whether both tables can be found.
// @Summary Table Availability
// @Description Checks that the RapidSim and EvtGen tables exist in the configured source.
// @Tags audit
// @Produce json
// @Success 200 {object} map[string]interface{} "Both tables found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]interface{} "Missing tables"
// @Router /audit/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckTables(c.Context())
	if err != nil {
		l.Error("Table check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing particle tables", zap.Strings("missing", missing))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "missing",
			"missing": missing,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"missing": missing,
	})
}

// HandleRefresh drops cached tables.
// @Summary Refresh Tables
// @Description Drops the cached tables so the next request reads both inputs again.
// @Tags audit
// @Success 204 "Cache dropped"
// @Router /audit/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Dropping cached tables")
	h.service.Refresh()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, tables.ErrNotFound):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, tables.ErrParse):
		status = fiber.StatusUnprocessableEntity
	}

	l.Error("Audit failed", zap.Int("status", status), zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func sendText(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(body)
}
