package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dbswash/models"
	"dbswash/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Svc    booking.SessionService
	Logger *zap.Logger
}

// NewBookingHandler builds a BookingHandler.
func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateSession handles POST /api/booking/session. A package id and a
// day/night mode may be passed as query parameters to pre-seed the draft.
func (h *BookingHandler) CreateSession(c *gin.Context) {
	var seed booking.SessionSeed
	if pkgParam := c.Query("package"); pkgParam != "" {
		if id, err := strconv.Atoi(pkgParam); err == nil {
			seed.PackageID = id
		}
	}
	seed.Mode = c.Query("mode")

	view, err := h.Svc.CreateSession(seed)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Svc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetSchedule handles PUT /api/booking/session/:sessionID/schedule.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var input booking.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.Svc.SetSchedule(c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// TogglePackage handles PUT /api/booking/session/:sessionID/package.
// Toggling the already-selected package clears the selection.
func (h *BookingHandler) TogglePackage(c *gin.Context) {
	var input struct {
		PackageID int `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.Svc.TogglePackage(c.Param("sessionID"), input.PackageID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleExtra handles PUT /api/booking/session/:sessionID/extras.
func (h *BookingHandler) ToggleExtra(c *gin.Context) {
	var input struct {
		ExtraID int `json:"extraId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.Svc.ToggleExtra(c.Param("sessionID"), input.ExtraID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetContact handles PUT /api/booking/session/:sessionID/contact.
func (h *BookingHandler) SetContact(c *gin.Context) {
	var input booking.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	view, err := h.Svc.SetContact(c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance handles POST /api/booking/session/:sessionID/next.
func (h *BookingHandler) Advance(c *gin.Context) {
	view, err := h.Svc.Advance(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Back handles POST /api/booking/session/:sessionID/back.
func (h *BookingHandler) Back(c *gin.Context) {
	view, err := h.Svc.Back(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit handles POST /api/booking/session/:sessionID/submit.
func (h *BookingHandler) Submit(c *gin.Context) {
	receipt, err := h.Svc.Submit(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

// respondError maps wizard errors onto HTTP responses. Validation failures
// carry their field errors; a declined payment is retryable.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	var serr *booking.SubmissionError

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSessionSubmitted),
		errors.Is(err, booking.ErrSubmitInFlight),
		errors.Is(err, booking.ErrNotOnFinalStep),
		errors.Is(err, booking.ErrAlreadyOnFinalStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		body := gin.H{"error": "validation failed", "step": verr.Step}
		if verr.Notice != nil {
			body["notice"] = verr.Notice
		}
		if len(verr.Fields) > 0 {
			body["fields"] = verr.Fields
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.As(err, &serr):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":     models.ErrCodeSubmissionFailure,
			"message":   serr.Error(),
			"retryable": true,
		})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
