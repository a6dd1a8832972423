package controllers

import (
	"opsdesk/models"
	"opsdesk/tools"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// quantas vezes regerar o número em colisão antes de desistir (a chance de
// colidir 1x em 8 hex já é baixa; 5 seguidas indica problema real no banco)
const ticketNumberRetries = 5

// IssueTicket aloca o ticket de correlação de um formulário submetido.
// O gerador não consulta existência prévia: confia no índice único e
// regenera o número em caso de colisão.
func IssueTicket(db *gorm.DB, formType string, contact *models.Contact, convo *models.Conversation) (*models.Ticket, error) {
	for i := 0; i < ticketNumberRetries; i++ {
		ticket := models.Ticket{
			TicketNumber:   tools.GenerateTicketNumber(),
			FormType:       formType,
			ContactID:      contact.ID,
			ConversationID: convo.ID,
			Status:         models.TICKET_STATUS_SUBMITTED,
		}
		err := db.Create(&ticket).Error
		if err == nil {
			return &ticket, nil
		}
		if !isUniqueViolation(err) {
			return nil, errors.Wrap(err, "create ticket")
		}
	}
	return nil, errors.New("ticket number collision persisted after retries")
}
