package workers

import (
	"context"
	"strings"
	"testing"

	dbpkg "opsdesk/db"
	"opsdesk/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

type fakeMessenger struct {
	sent []string
}

func (f *fakeMessenger) SendText(ctx context.Context, to string, body string) error {
	f.sent = append(f.sent, to+": "+body)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.DB().SetMaxOpenConns(1)
	dbpkg.AutoMigrate(db)
	if errs := db.GetErrors(); len(errs) > 0 {
		t.Fatalf("automigrate: %v", errs)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestScanLowStockAlertsOncePerDip(t *testing.T) {
	db := newTestDB(t)

	low := models.Inventory{Name: "shampoo", Quantity: 2, Threshold: 5}
	healthy := models.Inventory{Name: "towels", Quantity: 30, Threshold: 5}
	if err := db.Create(&low).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&healthy).Error; err != nil {
		t.Fatal(err)
	}

	m := &fakeMessenger{}
	scanLowStock(db, m, "15550001111")

	if len(m.sent) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(m.sent))
	}
	if !strings.Contains(m.sent[0], "shampoo") {
		t.Fatalf("alert must name the low item, got %q", m.sent[0])
	}

	// segundo scan não alerta de novo para o mesmo dip
	scanLowStock(db, m, "15550001111")
	if len(m.sent) != 1 {
		t.Fatalf("expected no repeat alert, got %d", len(m.sent))
	}

	var stored models.Inventory
	db.First(&stored, low.ID)
	if !stored.LowStockNotified {
		t.Fatal("notified flag must be set after alert")
	}
}
