package controllers

import (
	"fmt"
	"net/http"

	dbpkg "opsdesk/db"
	"opsdesk/models"

	"github.com/gin-gonic/gin"
)

type QueryForm struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

// POST /client/query
func SubmitQuery(c *gin.Context) {
	var req QueryForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Phone == "" || req.Message == "" {
		RespondError(c, "name, phone e message são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	// workflow multi-entidade em uma transação só: ou tudo entra, ou nada
	tx := db.Begin()

	contact, err := GetOrCreateContact(tx, req.Name, req.Phone)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	convo, err := GetOrCreateConversation(tx, contact)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if _, err := AppendMessage(tx, convo, models.MESSAGE_SENDER_CLIENT, req.Message); err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	ticket, err := IssueTicket(tx, models.TICKET_FORM_QUERY, contact, convo)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	notify(c.Request.Context(), contact.Phone,
		fmt.Sprintf("Your query ticket number is %s. We will contact you shortly.", ticket.TicketNumber))

	RespondSuccess(c, gin.H{"ticket_number": ticket.TicketNumber})
}

type BookingForm struct {
	Name        string `json:"name" form:"name"`
	Phone       string `json:"phone" form:"phone"`
	ServiceType string `json:"service_type" form:"service_type"`
	Date        string `json:"date" form:"date"` // "2006-01-02"
	Time        string `json:"time" form:"time"` // "15:04"
}

// POST /client/booking
func SubmitBooking(c *gin.Context) {
	var req BookingForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Phone == "" || req.ServiceType == "" || req.Date == "" || req.Time == "" {
		RespondError(c, "name, phone, service_type, date e time são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var workspace models.Workspace
	if err := db.First(&workspace).Error; err != nil {
		RespondError(c, "workspace não configurado", http.StatusConflict)
		return
	}

	rules, err := RulesFromWorkspace(&workspace)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	start, err := ValidateBookingTime(rules, req.Date, req.Time)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	end := start.Add(rules.DefaultDuration)

	tx := db.Begin()

	contact, err := GetOrCreateContact(tx, req.Name, req.Phone)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	convo, err := GetOrCreateConversation(tx, contact)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	ticket, err := IssueTicket(tx, models.TICKET_FORM_BOOKING, contact, convo)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	_, code, err := CreateBooking(tx, ticket, contact, req.ServiceType, start, end, conf.Security.SecretCodeSalt)
	if err != nil {
		tx.Rollback()
		switch err {
		case ErrPendingExists, ErrSlotTaken:
			RespondError(c, err.Error(), http.StatusConflict)
		default:
			RespondError(c, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	// o código secreto sai só por aqui (out-of-band); não volta na resposta
	// HTTP nem aparece em log
	notify(c.Request.Context(), contact.Phone,
		fmt.Sprintf("Booking created. Ticket: %s. Your secret code is %s. Send this via WhatsApp to confirm.",
			ticket.TicketNumber, code))

	RespondSuccess(c, gin.H{
		"ticket_number": ticket.TicketNumber,
		"start_time":    start,
		"end_time":      end,
	})
}

type FeedbackForm struct {
	Name     string `json:"name" form:"name"`
	Phone    string `json:"phone" form:"phone"`
	Rating   int    `json:"rating" form:"rating"`
	Feedback string `json:"feedback" form:"feedback"`
}

// POST /client/feedback
func SubmitFeedback(c *gin.Context) {
	var req FeedbackForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		req.Name = "Anonymous"
	}
	if req.Phone == "" || req.Feedback == "" {
		RespondError(c, "phone e feedback são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	tx := db.Begin()

	contact, err := GetOrCreateContact(tx, req.Name, req.Phone)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	convo, err := GetOrCreateConversation(tx, contact)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	ticket, err := IssueTicket(tx, models.TICKET_FORM_FEEDBACK, contact, convo)
	if err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	notify(c.Request.Context(), contact.Phone,
		fmt.Sprintf("Thank you for your feedback. Ticket: %s", ticket.TicketNumber))

	RespondSuccess(c, gin.H{"ticket_number": ticket.TicketNumber})
}
