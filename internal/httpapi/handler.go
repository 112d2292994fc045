// Package httpapi exposes the ledger core over HTTP. It is a thin boundary:
// validation and state live in the catalog and ledger packages.
package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AmanBeast/Sotre-Ledgger/internal/catalog"
	"github.com/AmanBeast/Sotre-Ledgger/internal/ledger"
	"github.com/AmanBeast/Sotre-Ledgger/internal/models"
)

type Handler struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
	Logger  *slog.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler) *gin.Engine {
	if h.Logger == nil {
		h.Logger = slog.Default()
	}
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/catalog", h.SearchCatalog)
	r.POST("/catalog", h.AddItem)
	r.PATCH("/catalog/:id", h.UpdateItem)
	r.DELETE("/catalog/:id", h.RemoveItem)

	r.POST("/entries", h.CreateEntry)
	r.DELETE("/entries/:id", h.DeleteEntry)

	r.GET("/customers", h.ListCustomers)
	r.GET("/customers/:name/entries", h.CustomerHistory)
	r.GET("/suggestions/customers", h.SuggestCustomers)

	return r
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.Logger.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (h *Handler) SearchCatalog(c *gin.Context) {
	items := []catalogItemJSON{}
	for it := range h.Catalog.Search(c.Query("q")) {
		items = append(items, toItemJSON(it))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item, err := h.Catalog.Add(c.Request.Context(), req.Name, req.Price)
	h.respond(c, http.StatusCreated, err, func() any { return toItemJSON(item) })
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item, err := h.Catalog.Update(c.Request.Context(), c.Param("id"), models.CatalogUpdate{Name: req.Name, Price: req.Price})
	h.respond(c, http.StatusOK, err, func() any { return toItemJSON(item) })
}

func (h *Handler) RemoveItem(c *gin.Context) {
	err := h.Catalog.Remove(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, err, func() any { return gin.H{"status": "removed"} })
}

func (h *Handler) CreateEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft := ledger.Draft{Amount: req.Amount, Note: req.Note}
	for _, l := range req.Lines {
		draft.Lines = append(draft.Lines, h.lineDraft(l))
	}

	kind := models.EntryKind(strings.ToUpper(string(req.Kind)))
	entry, err := h.Ledger.Record(c.Request.Context(), kind, req.CustomerName, draft)
	h.respond(c, http.StatusCreated, err, func() any { return toEntryJSON(entry) })
}

// lineDraft fills name and price from the catalog when the row names a
// catalog item but leaves them out.
func (h *Handler) lineDraft(l lineRequest) ledger.LineDraft {
	d := ledger.LineDraft{CatalogItemID: l.CatalogItemID, Name: l.Name, Quantity: l.Quantity}
	if l.UnitPrice != nil {
		d.UnitPrice = *l.UnitPrice
	}
	if l.CatalogItemID == "" {
		return d
	}
	item, ok := h.Catalog.Get(l.CatalogItemID)
	if !ok {
		return d
	}
	filled := ledger.LineFromCatalog(item)
	if d.Name == "" {
		d.Name = filled.Name
	}
	if l.UnitPrice == nil {
		d.UnitPrice = filled.UnitPrice
	}
	return d
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	err := h.Ledger.Delete(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, err, func() any { return gin.H{"status": "deleted"} })
}

func (h *Handler) ListCustomers(c *gin.Context) {
	ov := h.Ledger.Overview(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"customers":        toSummariesJSON(ov.Customers),
		"totalOutstanding": ov.TotalOutstanding,
	})
}

func (h *Handler) CustomerHistory(c *gin.Context) {
	hist := h.Ledger.History(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{
		"customerName": hist.CustomerName,
		"balance":      hist.Balance,
		"entries":      toEntriesJSON(hist.Entries),
	})
}

func (h *Handler) SuggestCustomers(c *gin.Context) {
	names := h.Ledger.SuggestCustomers(c.Query("q"))
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// respond writes body on success. A persistence failure still counts as
// success because the change is applied in memory; the client gets a warning.
func (h *Handler) respond(c *gin.Context, status int, err error, body func() any) {
	switch {
	case err == nil:
		c.JSON(status, body())
	case models.IsPersistence(err):
		h.Logger.Warn("change applied but not persisted", "path", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"data": body(), "warning": err.Error()})
	case models.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case models.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
