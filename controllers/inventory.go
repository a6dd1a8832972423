package controllers

import (
	"net/http"

	dbpkg "opsdesk/db"
	"opsdesk/models"

	"github.com/gin-gonic/gin"
)

// GET /owner/inventory
func ListInventory(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var items []models.Inventory
	if err := db.Order("id asc").Find(&items).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"items": items})
}

type InventoryUpdateForm struct {
	ItemID   int64 `json:"item_id" form:"item_id"`
	Quantity int   `json:"quantity" form:"quantity"`
}

// POST /staff/inventory/update e /owner/inventory/update
func UpdateInventory(c *gin.Context) {
	var req InventoryUpdateForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ItemID <= 0 || req.Quantity < 0 {
		RespondError(c, "item_id e quantity válidos são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var item models.Inventory
	if err := db.First(&item, req.ItemID).Error; err != nil {
		RespondError(c, "item não encontrado", http.StatusNotFound)
		return
	}

	updates := map[string]any{"quantity": req.Quantity}
	if req.Quantity > item.Threshold {
		// reabastecido: libera o próximo alerta de estoque baixo
		updates["low_stock_notified"] = false
	}
	if err := db.Model(&item).Updates(updates).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	item.Quantity = req.Quantity
	RespondSuccess(c, gin.H{"item": item})
}

type InventoryAddForm struct {
	Name      string `json:"name" form:"name"`
	Quantity  int    `json:"quantity" form:"quantity"`
	Threshold int    `json:"threshold" form:"threshold"`
}

// POST /owner/inventory/add
func AddInventory(c *gin.Context) {
	var req InventoryAddForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		RespondError(c, "name é obrigatório", http.StatusBadRequest)
		return
	}
	if req.Threshold <= 0 {
		req.Threshold = 5
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	item := models.Inventory{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Threshold: req.Threshold,
	}
	if err := db.Create(&item).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"item": item})
}
