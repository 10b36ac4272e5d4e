package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/frigo/internal/domain/models"
	"github.com/mbodj/frigo/internal/service/inventory"
	"github.com/mbodj/frigo/pkg/dates"
)

// User-facing messages, kept verbatim from the mobile screens.
const (
	msgReadFailed      = "Lecture impossible."
	msgWriteFailed     = "Sauvegarde impossible."
	msgFieldsRequired  = "Nom, quantité (≥1), date et code-barres."
	msgProductNotFound = "Produit non trouvé dans la base de données Open Food Facts."
	msgLookupFailed    = "Impossible de récupérer les informations du produit."
)

// InventoryHandler adapts the item store and its projections to the HTTP
// screen boundary. Storage errors are recovered here and surfaced as
// non-fatal warnings, matching the screens' notification policy.
type InventoryHandler struct {
	store  inventory.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(store inventory.Store, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{store: store, logger: logger, now: time.Now}
}

// annotatedItem is an item decorated with its freshness class and display
// color for the list screens.
type annotatedItem struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Qty       int              `json:"qty"`
	Amount    string           `json:"amount"`
	Exp       string           `json:"exp"`
	ImageURL  string           `json:"imageUrl"`
	Freshness models.Freshness `json:"freshness"`
	Color     string           `json:"color"`
}

type addItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Qty      int    `json:"qty"`
	Amount   string `json:"amount"`
	Exp      string `json:"exp"`
	ImageURL string `json:"imageUrl"`
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

type setExpirationRequest struct {
	Exp string `json:"exp"`
}

// ListItems returns the full persisted collection in insertion order.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.store.Load(c.Request.Context())
	h.respondCollection(c, items, err)
}

// Fridge returns the in-stock projection with freshness annotations.
func (h *InventoryHandler) Fridge(c *gin.Context) {
	items, err := h.store.Load(c.Request.Context())
	h.respondProjection(c, inventory.InStock(items), err)
}

// Articles returns the search projection; zero-quantity items stay visible.
func (h *InventoryHandler) Articles(c *gin.Context) {
	items, err := h.store.Load(c.Request.Context())
	h.respondProjection(c, inventory.SearchMatch(items, c.Query("q")), err)
}

// AddItem runs the add flow: validate, then insert-or-replace by barcode.
func (h *InventoryHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid add-item payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item := models.Item{
		ID:       req.ID,
		Name:     req.Name,
		Qty:      req.Qty,
		Amount:   req.Amount,
		Exp:      req.Exp,
		ImageURL: req.ImageURL,
	}

	items, err := h.store.Upsert(c.Request.Context(), item)
	if errors.Is(err, models.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFieldsRequired})
		return
	}
	h.respondCollection(c, items, err)
}

// AdjustQuantity increments or decrements an item's quantity, clamped at zero.
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	var req adjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quantity payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.store.AdjustQuantity(c.Request.Context(), c.Param("id"), req.Delta)
	h.respondCollection(c, items, err)
}

// SetExpiration replaces an item's expiration date. The screen's date picker
// only emits valid dates, so anything unparseable is rejected before the
// store is touched; the stored value is re-canonicalized to YYYY-MM-DD.
func (h *InventoryHandler) SetExpiration(c *gin.Context) {
	var req setExpirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid expiration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	parsed, ok := dates.ParseFlexible(req.Exp)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expiration date"})
		return
	}

	items, err := h.store.SetExpiration(c.Request.Context(), c.Param("id"), dates.ToISODate(parsed))
	h.respondCollection(c, items, err)
}

// respondCollection renders the raw collection, degrading storage failures to
// a warning alongside the returned snapshot.
func (h *InventoryHandler) respondCollection(c *gin.Context, items []models.Item, err error) {
	if items == nil {
		items = []models.Item{}
	}
	resp := gin.H{"items": items}
	if warning := h.storageWarning(err); warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

// respondProjection renders a derived view with freshness annotations.
func (h *InventoryHandler) respondProjection(c *gin.Context, items []models.Item, err error) {
	resp := gin.H{"items": h.annotate(items)}
	if warning := h.storageWarning(err); warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) storageWarning(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrStorageRead):
		h.logger.Warn("degrading to snapshot after read failure", zap.Error(err))
		return msgReadFailed
	case errors.Is(err, models.ErrStorageWrite):
		h.logger.Warn("mutation kept in memory after write failure", zap.Error(err))
		return msgWriteFailed
	default:
		h.logger.Error("unexpected store error", zap.Error(err))
		return msgReadFailed
	}
}

func (h *InventoryHandler) annotate(items []models.Item) []annotatedItem {
	today := h.now()
	out := make([]annotatedItem, 0, len(items))
	for _, it := range items {
		freshness := models.ClassifyFreshness(it.Exp, today)
		out = append(out, annotatedItem{
			ID:        it.ID,
			Name:      it.Name,
			Qty:       it.Qty,
			Amount:    it.Amount,
			Exp:       it.Exp,
			ImageURL:  it.DisplayImage(),
			Freshness: freshness,
			Color:     freshness.Color(),
		})
	}
	return out
}
