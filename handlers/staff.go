package handlers

import (
	"errors"
	"net/http"

	staffRepo "hotelops/database/repository/staff"
	"hotelops/models"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
)

// CreateStaffHandler creates a staff record.
func (h *FrontDeskHandler) CreateStaffHandler(c *gin.Context) {
	var st models.Staff
	if err := c.ShouldBindJSON(&st); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff payload", err.Error())
		return
	}
	id, err := h.Svc.CreateStaff(c.Request.Context(), &st)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create staff record", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetStaffHandler returns one staff record by ID.
func (h *FrontDeskHandler) GetStaffHandler(c *gin.Context) {
	st, err := h.Svc.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, staffRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "staff record not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch staff record", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// ListStaffHandler returns all staff records.
func (h *FrontDeskHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Svc.ListStaff(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

// UpdateStaffHandler updates a staff record.
func (h *FrontDeskHandler) UpdateStaffHandler(c *gin.Context) {
	var st models.Staff
	if err := c.ShouldBindJSON(&st); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff payload", err.Error())
		return
	}
	if err := h.Svc.UpdateStaff(c.Request.Context(), c.Param("id"), &st); err != nil {
		if errors.Is(err, staffRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "staff record not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update staff record", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteStaffHandler removes a staff record.
func (h *FrontDeskHandler) DeleteStaffHandler(c *gin.Context) {
	if err := h.Svc.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, staffRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "staff record not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete staff record", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
