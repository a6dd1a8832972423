package controllers

import (
	"testing"

	"opsdesk/models"
)

func TestGetOrCreateContactIdempotent(t *testing.T) {
	db := newTestDB(t)

	first := mustContact(t, db, "Alice", "+1 (555) 123-4567")

	// mesmo número em outra grafia resolve para o mesmo contato
	variants := []string{"15551234567", "1-555-123-4567", "whatsapp:+15551234567"}
	for _, v := range variants {
		again := mustContact(t, db, "Alice", v)
		if again.ID != first.ID {
			t.Fatalf("variant %q resolved to contact %d, want %d", v, again.ID, first.ID)
		}
	}

	var count int
	db.Model(&models.Contact{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 contact, got %d", count)
	}
}

func TestGetOrCreateContactFirstWriteWins(t *testing.T) {
	db := newTestDB(t)

	first := mustContact(t, db, "Alice", "15551234567")
	second := mustContact(t, db, "Bob", "15551234567")

	if second.ID != first.ID {
		t.Fatalf("expected same contact, got %d and %d", first.ID, second.ID)
	}
	if second.Name != "Alice" {
		t.Fatalf("name must be first-write-wins, got %q", second.Name)
	}
}

func TestGetOrCreateConversationSingle(t *testing.T) {
	db := newTestDB(t)

	contact := mustContact(t, db, "Alice", "15551234567")

	first := mustConversation(t, db, contact)
	if first.Status != models.CONVERSATION_STATUS_OPEN {
		t.Fatalf("new conversation must be open, got %q", first.Status)
	}

	second := mustConversation(t, db, contact)
	if second.ID != first.ID {
		t.Fatalf("expected single conversation per contact, got %d and %d", first.ID, second.ID)
	}

	var count int
	db.Model(&models.Conversation{}).Where("contact_id = ?", contact.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 conversation, got %d", count)
	}
}

func TestAppendMessageOrdering(t *testing.T) {
	db := newTestDB(t)

	contact := mustContact(t, db, "Alice", "15551234567")
	convo := mustConversation(t, db, contact)

	bodies := []string{"first", "second", "third"}
	for _, b := range bodies {
		if _, err := AppendMessage(db, convo, models.MESSAGE_SENDER_CLIENT, b); err != nil {
			t.Fatalf("AppendMessage(%q): %v", b, err)
		}
	}

	var messages []models.Message
	if err := db.Where("conversation_id = ?", convo.ID).
		Order("timestamp asc, id asc").
		Find(&messages).Error; err != nil {
		t.Fatal(err)
	}

	if len(messages) != len(bodies) {
		t.Fatalf("expected %d messages, got %d", len(bodies), len(messages))
	}
	for i, m := range messages {
		if m.Body != bodies[i] {
			t.Fatalf("message %d = %q, want %q", i, m.Body, bodies[i])
		}
		if m.Sender != models.MESSAGE_SENDER_CLIENT {
			t.Fatalf("message %d sender = %q", i, m.Sender)
		}
	}
}
