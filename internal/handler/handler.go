package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"requestprofiler/internal/domain"
	"requestprofiler/internal/workload"
)

var (
	errItemIDRequired = map[string]string{"error": "item id must be an integer"}
	respCleared       = map[string]string{"message": "Profiler data cleared."}
	respHealthOK      = map[string]string{"status": "ok"}
)

type Handler struct {
	store  ProfileStore
	items  ItemProcessor
	logger *slog.Logger
}

func New(store ProfileStore, items ItemProcessor, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		items:  items,
		logger: logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/v1/health", h.Health)

	e.GET("/", h.Root)
	e.GET("/items/:id", h.Item)
	e.GET("/cpu-intensive", h.CPUIntensive)
	e.GET("/slow-endpoint", h.Slow)

	p := e.Group("/profiler")
	p.GET("/dashboard", h.Dashboard)
	p.GET("/metrics.csv", h.ExportCSV)
	p.GET("/clear", h.Clear)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// Root simulates a small I/O delay, like a fast database call.
func (h *Handler) Root(c echo.Context) error {
	workload.Sleep(c.Request().Context(), 10*time.Millisecond)
	return c.JSON(http.StatusOK, domain.MessageResponse{Message: "Hello World"})
}

// Item simulates mixed work: even ids wait on I/O, odd ids burn CPU, and
// repeated ids come back from the cache.
func (h *Handler) Item(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errItemIDRequired)
	}

	payload, cached := h.items.Process(c.Request().Context(), itemID)
	return c.JSON(http.StatusOK, domain.ItemResponse{
		ItemID:  itemID,
		Message: payload,
		Cached:  cached,
	})
}

// CPUIntensive performs a heavy synchronous computation so the dashboard
// shows an endpoint whose CPU time tracks its wall time.
func (h *Handler) CPUIntensive(c echo.Context) error {
	h.logger.Info("cpu-intensive endpoint activated")
	result := workload.Heavy()
	return c.JSON(http.StatusOK, domain.HeavyResponse{
		Message:     "CPU intensive task completed",
		ResultDummy: result,
	})
}

// Slow is intentionally slow to make long-request profiling obvious.
func (h *Handler) Slow(c echo.Context) error {
	workload.Sleep(c.Request().Context(), 500*time.Millisecond)
	return c.JSON(http.StatusOK, domain.MessageResponse{Message: "This was a slow request!"})
}

func (h *Handler) Dashboard(c echo.Context) error {
	data := dashboardData{Rows: dashboardRows(h.store.Snapshot())}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return dashboardTmpl.Execute(c.Response(), data)
}

func (h *Handler) ExportCSV(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=profile_metrics.csv`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.store.WriteCSV(c.Response()); err != nil {
		// Headers are already on the wire; log instead of rewriting status.
		h.logger.Error("csv export failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (h *Handler) Clear(c echo.Context) error {
	h.store.Clear()
	return c.JSON(http.StatusOK, respCleared)
}

func formatMillis(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
