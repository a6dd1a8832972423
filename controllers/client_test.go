package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	dbpkg "opsdesk/db"
	"opsdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

func newClientEngine(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	r.POST("/client/query", SubmitQuery)
	r.POST("/client/booking", SubmitBooking)
	r.POST("/client/feedback", SubmitFeedback)
	return r
}

func seedWorkspace(t *testing.T, db *gorm.DB) {
	t.Helper()
	ws := models.Workspace{
		BusinessName:                  "Corner Salon",
		AddressLine:                   "12 Main St",
		City:                          "Springfield",
		State:                         "IL",
		PostalCode:                    "62701",
		Timezone:                      "America/Chicago",
		ActiveDays:                    "Mon,Tue,Wed,Thu,Fri",
		ActiveHoursStart:              "09:00",
		ActiveHoursEnd:                "17:00",
		DefaultServiceDurationMinutes: 60,
		IsActive:                      true,
	}
	if err := db.Create(&ws).Error; err != nil {
		t.Fatal(err)
	}
}

func TestSubmitQueryCreatesEverything(t *testing.T) {
	db := newTestDB(t)
	r := newClientEngine(db)

	rec := &recordingMessenger{}
	SetMessenger(rec)
	defer SetMessenger(nil)

	form := url.Values{}
	form.Set("name", "Alice")
	form.Set("phone", "+1 (555) 123-4567")
	form.Set("message", "do you take walk-ins?")

	w := postForm(r, "/client/query", form)
	if w.Code != http.StatusOK {
		t.Fatalf("query failed: %d %s", w.Code, w.Body.String())
	}

	var contact models.Contact
	if err := db.Where("phone = ?", "15551234567").First(&contact).Error; err != nil {
		t.Fatal("contact must be created with normalized phone")
	}

	var ticket models.Ticket
	if err := db.Where("contact_id = ?", contact.ID).First(&ticket).Error; err != nil {
		t.Fatal("ticket must be created")
	}
	if ticket.FormType != models.TICKET_FORM_QUERY {
		t.Fatalf("ticket form type = %q", ticket.FormType)
	}

	var messages int
	db.Model(&models.Message{}).Count(&messages)
	if messages != 1 {
		t.Fatalf("expected 1 message, got %d", messages)
	}

	sent := rec.messages()
	if len(sent) != 1 || !strings.Contains(sent[0].Body, ticket.TicketNumber) {
		t.Fatalf("notification must carry the ticket number, got %+v", sent)
	}
}

func TestSubmitBookingFlow(t *testing.T) {
	db := newTestDB(t)
	r := newClientEngine(db)
	seedWorkspace(t, db)

	rec := &recordingMessenger{}
	SetMessenger(rec)
	defer SetMessenger(nil)

	form := url.Values{}
	form.Set("name", "Alice")
	form.Set("phone", "15551234567")
	form.Set("service_type", "haircut")
	form.Set("date", "2026-09-07")
	form.Set("time", "10:00")

	w := postForm(r, "/client/booking", form)
	if w.Code != http.StatusOK {
		t.Fatalf("booking failed: %d %s", w.Code, w.Body.String())
	}

	var booking models.Booking
	if err := db.First(&booking).Error; err != nil {
		t.Fatal("booking must be created")
	}
	if booking.Status != models.BOOKING_STATUS_PENDING {
		t.Fatalf("booking status = %q", booking.Status)
	}
	if booking.EndTime.Sub(booking.StartTime).Minutes() != 60 {
		t.Fatalf("end must be start + default duration, got %v", booking.EndTime.Sub(booking.StartTime))
	}

	// o código sai na notificação out-of-band, nunca na resposta HTTP
	sent := rec.messages()
	if len(sent) != 1 || !strings.Contains(sent[0].Body, "secret code") {
		t.Fatalf("expected secret-code notification, got %+v", sent)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if _, leaked := resp["secret_code"]; leaked {
		t.Fatal("secret code must not be in the HTTP response")
	}
	if !strings.Contains(sent[0].Body, resp["ticket_number"].(string)) {
		t.Fatal("notification must carry the ticket number")
	}
}

func TestSubmitBookingRejectsBadWindow(t *testing.T) {
	db := newTestDB(t)
	r := newClientEngine(db)
	seedWorkspace(t, db)

	form := url.Values{}
	form.Set("name", "Alice")
	form.Set("phone", "15551234567")
	form.Set("service_type", "haircut")
	form.Set("date", "2026-09-05") // sábado
	form.Set("time", "10:00")

	w := postForm(r, "/client/booking", form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("saturday booking must 400, got %d", w.Code)
	}

	var bookings int
	db.Model(&models.Booking{}).Count(&bookings)
	if bookings != 0 {
		t.Fatalf("rejected booking must not persist, got %d rows", bookings)
	}
}

func TestSubmitBookingConflicts(t *testing.T) {
	db := newTestDB(t)
	r := newClientEngine(db)
	seedWorkspace(t, db)

	form := url.Values{}
	form.Set("name", "Alice")
	form.Set("phone", "15551234567")
	form.Set("service_type", "haircut")
	form.Set("date", "2026-09-07")
	form.Set("time", "10:00")

	if w := postForm(r, "/client/booking", form); w.Code != http.StatusOK {
		t.Fatalf("first booking failed: %d %s", w.Code, w.Body.String())
	}

	// mesmo contato ainda pendente
	form.Set("time", "14:00")
	if w := postForm(r, "/client/booking", form); w.Code != http.StatusConflict {
		t.Fatalf("second pending booking must 409, got %d", w.Code)
	}

	// outro contato, janela sobreposta
	other := url.Values{}
	other.Set("name", "Bob")
	other.Set("phone", "15559876543")
	other.Set("service_type", "haircut")
	other.Set("date", "2026-09-07")
	other.Set("time", "10:30")
	if w := postForm(r, "/client/booking", other); w.Code != http.StatusConflict {
		t.Fatalf("overlapping booking must 409, got %d", w.Code)
	}
}

func TestSubmitFeedbackDefaultsName(t *testing.T) {
	db := newTestDB(t)
	r := newClientEngine(db)

	form := url.Values{}
	form.Set("phone", "15551234567")
	form.Set("rating", "4")
	form.Set("feedback", "great service")

	w := postForm(r, "/client/feedback", form)
	if w.Code != http.StatusOK {
		t.Fatalf("feedback failed: %d %s", w.Code, w.Body.String())
	}

	var contact models.Contact
	if err := db.Where("phone = ?", "15551234567").First(&contact).Error; err != nil {
		t.Fatal(err)
	}
	if contact.Name != "Anonymous" {
		t.Fatalf("feedback without name must default to Anonymous, got %q", contact.Name)
	}

	var ticket models.Ticket
	if err := db.Where("contact_id = ?", contact.ID).First(&ticket).Error; err != nil {
		t.Fatal(err)
	}
	if ticket.FormType != models.TICKET_FORM_FEEDBACK {
		t.Fatalf("ticket form type = %q", ticket.FormType)
	}
}
