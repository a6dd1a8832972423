package controllers

import (
	"time"

	"opsdesk/models"
	"opsdesk/tools"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// GetOrCreateContact resolve um telefone para o Contact canônico, criando
// um se não existir. O nome é first-write-wins: chamadas repetidas com
// outro nome não atualizam o registro.
func GetOrCreateContact(db *gorm.DB, name string, rawPhone string) (*models.Contact, error) {
	phone, err := tools.NormalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	var contact models.Contact
	if err := db.Where("phone = ?", phone).First(&contact).Error; err == nil {
		return &contact, nil
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, errors.Wrap(err, "lookup contact")
	}

	contact = models.Contact{Name: name, Phone: phone}
	if err := db.Create(&contact).Error; err != nil {
		if isUniqueViolation(err) {
			// corrida no índice único de phone: outra submissão criou o
			// contato primeiro, então re-resolve
			var winner models.Contact
			if err2 := db.Where("phone = ?", phone).First(&winner).Error; err2 == nil {
				return &winner, nil
			}
		}
		return nil, errors.Wrap(err, "create contact")
	}
	return &contact, nil
}

// GetOrCreateConversation garante a conversa única do contato.
func GetOrCreateConversation(db *gorm.DB, contact *models.Contact) (*models.Conversation, error) {
	var convo models.Conversation
	if err := db.Where("contact_id = ?", contact.ID).First(&convo).Error; err == nil {
		return &convo, nil
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, errors.Wrap(err, "lookup conversation")
	}

	convo = models.Conversation{
		ContactID: contact.ID,
		Status:    models.CONVERSATION_STATUS_OPEN,
	}
	if err := db.Create(&convo).Error; err != nil {
		if isUniqueViolation(err) {
			var winner models.Conversation
			if err2 := db.Where("contact_id = ?", contact.ID).First(&winner).Error; err2 == nil {
				return &winner, nil
			}
		}
		return nil, errors.Wrap(err, "create conversation")
	}
	return &convo, nil
}

// AppendMessage grava um registro imutável na conversa.
func AppendMessage(db *gorm.DB, convo *models.Conversation, sender string, body string) (*models.Message, error) {
	now := time.Now()
	msg := models.Message{
		ConversationID: convo.ID,
		Sender:         sender,
		Body:           body,
		Timestamp:      &now,
	}
	if err := db.Create(&msg).Error; err != nil {
		return nil, errors.Wrap(err, "append message")
	}
	return &msg, nil
}
