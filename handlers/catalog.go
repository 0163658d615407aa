package handlers

import (
	"net/http"

	"dbswash/models"
	"dbswash/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only reference data the wizard consumes.
// All list endpoints use the uniform {data, meta} envelope.
type CatalogHandler struct {
	Svc    catalog.Service
	Logger *zap.Logger
}

// NewCatalogHandler builds a CatalogHandler.
func NewCatalogHandler(svc catalog.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// GetPackages handles GET /api/packages.
func (h *CatalogHandler) GetPackages(c *gin.Context) {
	packages, err := h.Svc.Packages()
	if err != nil {
		h.Logger.Error("failed to fetch packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch packages"})
		return
	}
	c.JSON(http.StatusOK, models.Envelope{Data: packages, Meta: models.Meta{Total: len(packages)}})
}

// GetExtras handles GET /api/extras.
func (h *CatalogHandler) GetExtras(c *gin.Context) {
	extras, err := h.Svc.Extras()
	if err != nil {
		h.Logger.Error("failed to fetch extras", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch extras"})
		return
	}
	c.JSON(http.StatusOK, models.Envelope{Data: extras, Meta: models.Meta{Total: len(extras)}})
}

// GetLocations handles GET /api/locations.
func (h *CatalogHandler) GetLocations(c *gin.Context) {
	locations, err := h.Svc.Locations()
	if err != nil {
		h.Logger.Error("failed to fetch locations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch locations"})
		return
	}
	c.JSON(http.StatusOK, models.Envelope{Data: locations, Meta: models.Meta{Total: len(locations)}})
}
