package handlers

import (
	"net/http"
	"strconv"

	"dbswash/models"
	"dbswash/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes catalog mutations behind the admin token middleware.
type AdminHandler struct {
	Svc    catalog.Service
	Logger *zap.Logger
}

// NewAdminHandler builds an AdminHandler.
func NewAdminHandler(svc catalog.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// SavePackage handles POST /api/admin/packages and PUT /api/admin/packages/:id.
// Listings only show active packages, so omitting the flag means visible; only
// an explicit "active": false hides a package.
func (h *AdminHandler) SavePackage(c *gin.Context) {
	var input struct {
		models.ServicePackage
		Active *bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	pkg := input.ServicePackage
	pkg.Active = input.Active == nil || *input.Active
	if idParam := c.Param("id"); idParam != "" {
		id, ok := pathID(c)
		if !ok {
			return
		}
		pkg.ID = id
	}
	if err := h.Svc.SavePackage(&pkg); err != nil {
		h.Logger.Error("failed to save package", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DeletePackage handles DELETE /api/admin/packages/:id.
func (h *AdminHandler) DeletePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeletePackage(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}

// SaveExtra handles POST /api/admin/extras and PUT /api/admin/extras/:id.
func (h *AdminHandler) SaveExtra(c *gin.Context) {
	var extra models.ExtraService
	if err := c.ShouldBindJSON(&extra); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if idParam := c.Param("id"); idParam != "" {
		id, ok := pathID(c)
		if !ok {
			return
		}
		extra.ID = id
	}
	if err := h.Svc.SaveExtra(&extra); err != nil {
		h.Logger.Error("failed to save extra", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, extra)
}

// DeleteExtra handles DELETE /api/admin/extras/:id.
func (h *AdminHandler) DeleteExtra(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteExtra(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "extra service deleted"})
}

// SaveLocation handles POST /api/admin/locations and PUT /api/admin/locations/:id.
func (h *AdminHandler) SaveLocation(c *gin.Context) {
	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if idParam := c.Param("id"); idParam != "" {
		id, ok := pathID(c)
		if !ok {
			return
		}
		loc.ID = id
	}
	if err := h.Svc.SaveLocation(&loc); err != nil {
		h.Logger.Error("failed to save location", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// DeleteLocation handles DELETE /api/admin/locations/:id.
func (h *AdminHandler) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteLocation(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "location deleted"})
}
