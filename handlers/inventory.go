package handlers

import (
	"errors"
	"net/http"

	inventoryRepo "hotelops/database/repository/inventory"
	"hotelops/models"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
)

// CreateInventoryItemHandler creates an inventory item.
func (h *FrontDeskHandler) CreateInventoryItemHandler(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid inventory payload", err.Error())
		return
	}
	id, err := h.Svc.CreateInventoryItem(c.Request.Context(), &item)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create inventory item", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetInventoryItemHandler returns one inventory item by ID.
func (h *FrontDeskHandler) GetInventoryItemHandler(c *gin.Context) {
	item, err := h.Svc.GetInventoryItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "inventory item not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch inventory item", err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListInventoryHandler returns all inventory items.
func (h *FrontDeskHandler) ListInventoryHandler(c *gin.Context) {
	items, err := h.Svc.ListInventory(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list inventory", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateInventoryItemHandler updates an inventory item.
func (h *FrontDeskHandler) UpdateInventoryItemHandler(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid inventory payload", err.Error())
		return
	}
	if err := h.Svc.UpdateInventoryItem(c.Request.Context(), c.Param("id"), &item); err != nil {
		if errors.Is(err, inventoryRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "inventory item not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update inventory item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteInventoryItemHandler removes an inventory item.
func (h *FrontDeskHandler) DeleteInventoryItemHandler(c *gin.Context) {
	if err := h.Svc.DeleteInventoryItem(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, inventoryRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "inventory item not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete inventory item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
