package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/frigo/pkg/clients/openfoodfacts"
)

// LookupHandler proxies the scan flow's product lookup. Failures are
// advisory: the form keeps accepting manual entry, so every outcome is a 200.
type LookupHandler struct {
	client openfoodfacts.Client
	logger *zap.Logger
}

// NewLookupHandler constructs the lookup handler adapter.
func NewLookupHandler(client openfoodfacts.Client, logger *zap.Logger) *LookupHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupHandler{client: client, logger: logger}
}

// LookupProduct suggests a name, package amount and picture for a barcode.
func (h *LookupHandler) LookupProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	product, err := h.client.Lookup(c.Request.Context(), barcode)
	if err != nil {
		h.logger.Warn("product lookup unavailable", zap.String("barcode", barcode), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"found": false, "message": msgLookupFailed})
		return
	}

	if !product.Found {
		c.JSON(http.StatusOK, gin.H{"found": false, "message": msgProductNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":    true,
		"name":     product.Name,
		"amount":   product.Amount,
		"imageUrl": product.ImageURL,
	})
}
