package models

import "time"

// Inventory is a stock item mutated directly by staff/owner actions.
// LowStockNotified marks that the low-stock alert for the current dip has
// been sent; it resets when the quantity is raised above the threshold.
type Inventory struct {
	ID               int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name             string     `gorm:"not null" json:"name" form:"name"`
	Quantity         int        `gorm:"not null;default:0" json:"quantity" form:"quantity"`
	Threshold        int        `gorm:"not null;default:5" json:"threshold" form:"threshold"`
	LowStockNotified bool       `gorm:"column:low_stock_notified;not null;default:false" json:"-"`
	CreatedAt        *time.Time `json:"created_at"`
}

func (item Inventory) IsLowStock() bool {
	return item.Quantity <= item.Threshold
}
