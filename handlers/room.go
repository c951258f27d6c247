package handlers

import (
	"errors"
	"net/http"

	roomRepo "hotelops/database/repository/room"
	"hotelops/models"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
)

// CreateRoomHandler creates a room record.
func (h *FrontDeskHandler) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload", err.Error())
		return
	}
	id, err := h.Svc.CreateRoom(c.Request.Context(), &room)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetRoomHandler returns one room by ID.
func (h *FrontDeskHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Svc.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch room", err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListRoomsHandler returns all rooms.
func (h *FrontDeskHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Svc.ListRooms(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// UpdateRoomHandler updates a room record.
func (h *FrontDeskHandler) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload", err.Error())
		return
	}
	if err := h.Svc.UpdateRoom(c.Request.Context(), c.Param("id"), &room); err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteRoomHandler removes a room record.
func (h *FrontDeskHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.Svc.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
