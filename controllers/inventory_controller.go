package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/services"
)

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

// GetInventory lists the calling vendor's inventory.
func (ic *InventoryController) GetInventory(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	items, svcErr := ic.inventory.ListInventory(c.Request.Context(), vendorID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": items, "count": len(items)})
}

// GetProductInventory returns the vendor's record for one product.
func (ic *InventoryController) GetProductInventory(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}

	inv, svcErr := ic.inventory.GetInventory(c.Request.Context(), vendorID, productID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GetLowStock lists the vendor's items at or below their threshold.
func (ic *InventoryController) GetLowStock(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	items, svcErr := ic.inventory.ListLowStock(c.Request.Context(), vendorID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": items, "count": len(items)})
}

// Restock adds stock to a product.
func (ic *InventoryController) Restock(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}

	var req services.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	inv, svcErr := ic.inventory.Restock(c.Request.Context(), vendorID, productID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateThreshold changes the low-stock alert threshold.
func (ic *InventoryController) UpdateThreshold(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return
	}

	var req services.UpdateThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	inv, svcErr := ic.inventory.UpdateThreshold(c.Request.Context(), vendorID, productID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, inv)
}
