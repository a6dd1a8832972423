package controllers

import (
	"net/http"

	dbpkg "opsdesk/db"
	"opsdesk/models"

	"github.com/gin-gonic/gin"
)

// GET /staff
func StaffDashboard(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var openConversations int
	db.Model(&models.Conversation{}).
		Where("status = ?", models.CONVERSATION_STATUS_OPEN).
		Count(&openConversations)

	var confirmedBookings int
	db.Model(&models.Booking{}).
		Where("status = ?", models.BOOKING_STATUS_CONFIRMED).
		Count(&confirmedBookings)

	var items []models.Inventory
	db.Find(&items)

	RespondSuccess(c, gin.H{
		"open_conversations": openConversations,
		"confirmed_bookings": confirmedBookings,
		"inventory_items":    items,
	})
}

// GET /staff/inbox
func StaffInbox(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var conversations []models.Conversation
	if err := db.Where("status = ?", models.CONVERSATION_STATUS_OPEN).
		Order("id asc").
		Find(&conversations).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"conversations": conversations})
}

// GET /staff/conversation/:id
func StaffConversation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var convo models.Conversation
	if err := db.First(&convo, id).Error; err != nil {
		RespondError(c, "conversa não encontrada", http.StatusNotFound)
		return
	}

	// replay da inbox: timestamp crescente, empate resolvido por inserção
	var messages []models.Message
	if err := db.Where("conversation_id = ?", convo.ID).
		Order("timestamp asc, id asc").
		Find(&messages).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"conversation": convo, "messages": messages})
}

type ReplyForm struct {
	Message string `json:"message" form:"message"`
}

// POST /staff/reply/:id
func StaffReply(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req ReplyForm
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		RespondError(c, "message é obrigatório", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var convo models.Conversation
	if err := db.First(&convo, id).Error; err != nil {
		RespondError(c, "conversa não encontrada", http.StatusNotFound)
		return
	}

	var contact models.Contact
	if err := db.First(&contact, convo.ContactID).Error; err != nil {
		RespondError(c, "contato não encontrado", http.StatusNotFound)
		return
	}

	msg, err := AppendMessage(db, &convo, models.MESSAGE_SENDER_STAFF, req.Message)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	notify(c.Request.Context(), contact.Phone, req.Message)

	RespondSuccess(c, gin.H{"message": msg})
}
