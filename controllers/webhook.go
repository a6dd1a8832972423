package controllers

import (
	"net/http"
	"strings"

	dbpkg "opsdesk/db"
	"opsdesk/models"
	"opsdesk/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// POST /webhook/whatsapp
//
// Inbound do canal (Twilio manda form-encoded From/Body). A resposta é
// sempre texto puro: o transporte só precisa de um ack, não de resultado
// estruturado. Cada entrega é processada de forma independente; não há
// dedup de redeliveries — a confirmação em si é idempotente porque a
// transição de status é condicional.
//
// Números desconhecidos NÃO criam Contact/Conversation aqui: contato só
// nasce via formulário. Mensagem unsolicited de número nunca visto é
// descartada de propósito.
func WebhookInbound(c *gin.Context) {
	from := strings.TrimSpace(c.PostForm("From"))
	body := strings.TrimSpace(c.PostForm("Body"))

	if from == "" {
		c.String(http.StatusBadRequest, "No sender")
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		c.String(http.StatusInternalServerError, "db não configurado no contexto")
		return
	}

	phone, err := tools.NormalizePhone(from)
	if err != nil {
		c.String(http.StatusOK, "Unknown contact")
		return
	}

	var contact models.Contact
	if err := db.Where("phone = ?", phone).First(&contact).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			c.String(http.StatusOK, "Unknown contact")
			return
		}
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	convo, err := GetOrCreateConversation(db, &contact)
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	if _, err := AppendMessage(db, convo, models.MESSAGE_SENDER_CLIENT, body); err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	result, err := ConfirmByCode(db, &contact, body, conf.Security.SecretCodeSalt, conf.Security.CodeMaxAttempts)
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	// notificação pós-commit, best-effort
	switch result {
	case CONFIRM_RESULT_CONFIRMED:
		notify(c.Request.Context(), contact.Phone, "Your booking has been confirmed successfully.")
	case CONFIRM_RESULT_MISMATCH:
		notify(c.Request.Context(), contact.Phone, "Invalid secret code. Please try again.")
	case CONFIRM_RESULT_LOCKED:
		notify(c.Request.Context(), contact.Phone, "Too many invalid codes. Please contact us to rebook.")
	case CONFIRM_RESULT_NO_PENDING:
		// sem booking pendente: a mensagem fica só registrada na conversa
	}

	c.String(http.StatusOK, "OK")
}
