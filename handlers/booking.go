package handlers

import (
	"errors"
	"net/http"

	bookingRepo "hotelops/database/repository/booking"
	"hotelops/models"
	"hotelops/services/frontdesk"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FrontDeskHandler exposes the CRUD endpoints whose writes feed the stats
// aggregation pipeline.
type FrontDeskHandler struct {
	Svc    frontdesk.Service
	Logger *zap.Logger
}

func NewFrontDeskHandler(svc frontdesk.Service, logger *zap.Logger) *FrontDeskHandler {
	return &FrontDeskHandler{Svc: svc, Logger: logger}
}

// CreateBookingHandler creates a booking record.
func (h *FrontDeskHandler) CreateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}
	id, err := h.Svc.CreateBooking(c.Request.Context(), &b)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetBookingHandler returns one booking by ID.
func (h *FrontDeskHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler returns all bookings.
func (h *FrontDeskHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler updates a booking record.
func (h *FrontDeskHandler) UpdateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}
	if err := h.Svc.UpdateBooking(c.Request.Context(), c.Param("id"), &b); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteBookingHandler removes a booking record.
func (h *FrontDeskHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
