package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for routing.
type HandlerBundle struct {
	// Catalog endpoints.
	GetPackages  gin.HandlerFunc
	GetExtras    gin.HandlerFunc
	GetLocations gin.HandlerFunc

	// Booking session endpoints.
	CreateSession  gin.HandlerFunc
	GetSession     gin.HandlerFunc
	SetSchedule    gin.HandlerFunc
	TogglePackage  gin.HandlerFunc
	ToggleExtra    gin.HandlerFunc
	SetContact     gin.HandlerFunc
	AdvanceSession gin.HandlerFunc
	BackSession    gin.HandlerFunc
	SubmitSession  gin.HandlerFunc
	CancelSession  gin.HandlerFunc

	// Admin catalog endpoints.
	AdminHandler *AdminHandler
}
