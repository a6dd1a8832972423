package controllers

import (
	"context"
	"sync"
	"testing"
	"time"

	"opsdesk/config"
	dbpkg "opsdesk/db"
	"opsdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const testSalt = "test_salt"

func init() {
	gin.SetMode(gin.TestMode)

	var cfg config.Configuration
	cfg.Security.JwtSecret = "test_secret"
	cfg.Security.SecretCodeSalt = testSalt
	cfg.Security.CodeMaxAttempts = 5
	cfg.Security.TokenValidHours = 1
	SetConfigurations(cfg)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// :memory: é por conexão; uma conexão só para todos verem o mesmo schema
	db.DB().SetMaxOpenConns(1)

	dbpkg.AutoMigrate(db)
	if errs := db.GetErrors(); len(errs) > 0 {
		t.Fatalf("automigrate: %v", errs)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func mustContact(t *testing.T, db *gorm.DB, name, phone string) *models.Contact {
	t.Helper()
	contact, err := GetOrCreateContact(db, name, phone)
	if err != nil {
		t.Fatalf("GetOrCreateContact: %v", err)
	}
	return contact
}

func mustConversation(t *testing.T, db *gorm.DB, contact *models.Contact) *models.Conversation {
	t.Helper()
	convo, err := GetOrCreateConversation(db, contact)
	if err != nil {
		t.Fatalf("GetOrCreateConversation: %v", err)
	}
	return convo
}

func mustTicket(t *testing.T, db *gorm.DB, formType string, contact *models.Contact, convo *models.Conversation) *models.Ticket {
	t.Helper()
	ticket, err := IssueTicket(db, formType, contact, convo)
	if err != nil {
		t.Fatalf("IssueTicket: %v", err)
	}
	return ticket
}

type sentMessage struct {
	To   string
	Body string
}

// recordingMessenger captura envios outbound nos testes de handler.
type recordingMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (r *recordingMessenger) SendText(ctx context.Context, to string, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMessage{To: to, Body: body})
	return nil
}

func (r *recordingMessenger) messages() []sentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sentMessage, len(r.sent))
	copy(out, r.sent)
	return out
}

func testStart(day string, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	if err != nil {
		panic(err)
	}
	return t
}
