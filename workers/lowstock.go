package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"opsdesk/models"
	"opsdesk/tools"

	"github.com/jinzhu/gorm"
)

// StartLowStockWatcher starts a loop that alerts the owner once per dip
// when an item falls to or below its threshold. The notified flag is
// claimed with a conditional update, so overlapping scans alert once; it
// resets when the item is restocked above the threshold.
func StartLowStockWatcher(db *gorm.DB, m tools.Messenger, alertPhone string, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			scanLowStock(db, m, alertPhone)
		}
	}()
}

func scanLowStock(db *gorm.DB, m tools.Messenger, alertPhone string) {
	var items []models.Inventory
	if err := db.
		Where("quantity <= threshold AND low_stock_notified = ?", false).
		Find(&items).Error; err != nil {
		log.Printf("lowstock worker: query error: %v", err)
		return
	}

	for _, item := range items {
		res := db.Model(&models.Inventory{}).
			Where("id = ? AND low_stock_notified = ?", item.ID, false).
			Update("low_stock_notified", true)
		if res.Error != nil || res.RowsAffected == 0 {
			continue
		}

		if m == nil || alertPhone == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := m.SendText(ctx, alertPhone,
			fmt.Sprintf("Low stock alert: %s is down to %d (threshold %d).", item.Name, item.Quantity, item.Threshold))
		cancel()
		if err != nil {
			log.Printf("lowstock worker: send alert error: %v", err)
		}
	}
}
