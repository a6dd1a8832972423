package controllers

import (
	"strings"
	"time"

	"opsdesk/models"
	"opsdesk/tools"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var ErrPendingExists = errors.New("contact already has a pending booking")
var ErrSlotTaken = errors.New("requested time overlaps an existing booking")

// ValidationError é devolvido em janela/dia inválido; a mensagem é visível
// ao cliente.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

/************************************************
/**** MARK: CONFIRMATION RESULTS ****/
/************************************************/
const CONFIRM_RESULT_CONFIRMED = "confirmed"
const CONFIRM_RESULT_MISMATCH = "code_mismatch"
const CONFIRM_RESULT_NO_PENDING = "no_pending_booking"
const CONFIRM_RESULT_LOCKED = "locked"

// BookingRules é a configuração de agenda do workspace, carregada uma vez
// e injetada nas operações (nada de consultar a linha singleton aqui).
type BookingRules struct {
	ActiveDays      map[string]bool // abreviações: "Mon", "Tue", ...
	StartMinute     int             // minutos desde meia-noite, inclusivo
	EndMinute       int             // idem, inclusivo
	DefaultDuration time.Duration
}

// RulesFromWorkspace monta as regras a partir da linha do workspace.
func RulesFromWorkspace(ws *models.Workspace) (BookingRules, error) {
	days := make(map[string]bool)
	for _, d := range strings.Split(ws.ActiveDays, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			days[d] = true
		}
	}

	start, err := parseClock(ws.ActiveHoursStart)
	if err != nil {
		return BookingRules{}, errors.Wrap(err, "active_hours_start")
	}
	end, err := parseClock(ws.ActiveHoursEnd)
	if err != nil {
		return BookingRules{}, errors.Wrap(err, "active_hours_end")
	}

	return BookingRules{
		ActiveDays:      days,
		StartMinute:     start,
		EndMinute:       end,
		DefaultDuration: time.Duration(ws.DefaultServiceDurationMinutes) * time.Minute,
	}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateBookingTime interpreta date+time como horário de parede do
// workspace (nenhuma conversão de fuso é feita, simplificação documentada)
// e valida contra dias ativos e janela de atendimento, inclusiva nas duas
// pontas.
func ValidateBookingTime(rules BookingRules, dateStr string, timeStr string) (time.Time, error) {
	local, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(dateStr)+" "+strings.TrimSpace(timeStr))
	if err != nil {
		return time.Time{}, ValidationError{Reason: "data ou hora inválida"}
	}

	if !rules.ActiveDays[local.Format("Mon")] {
		return time.Time{}, ValidationError{Reason: "o estabelecimento não atende nesse dia"}
	}

	minute := local.Hour()*60 + local.Minute()
	if minute < rules.StartMinute || minute > rules.EndMinute {
		return time.Time{}, ValidationError{Reason: "horário fora da janela de atendimento"}
	}

	return local, nil
}

// CreateBooking cria o booking pendente com o código secreto hasheado e
// devolve o plaintext uma única vez, para entrega out-of-band. O plaintext
// nunca é persistido nem logado.
//
// Regras de criação:
// - no máximo um booking pendente por contato
// - a janela pedida não pode sobrepor booking pendente/confirmado existente
func CreateBooking(db *gorm.DB, ticket *models.Ticket, contact *models.Contact, serviceType string, start time.Time, end time.Time, salt string) (*models.Booking, string, error) {
	var pending int
	if err := db.Model(&models.Booking{}).
		Where("contact_id = ? AND status = ?", contact.ID, models.BOOKING_STATUS_PENDING).
		Count(&pending).Error; err != nil {
		return nil, "", errors.Wrap(err, "count pending bookings")
	}
	if pending > 0 {
		return nil, "", ErrPendingExists
	}

	var overlapping int
	if err := db.Model(&models.Booking{}).
		Where("status IN (?)", []string{models.BOOKING_STATUS_PENDING, models.BOOKING_STATUS_CONFIRMED}).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&overlapping).Error; err != nil {
		return nil, "", errors.Wrap(err, "count overlapping bookings")
	}
	if overlapping > 0 {
		return nil, "", ErrSlotTaken
	}

	code, err := tools.GenerateSecretCode()
	if err != nil {
		return nil, "", err
	}

	booking := models.Booking{
		TicketID:       ticket.ID,
		ContactID:      contact.ID,
		ServiceType:    serviceType,
		StartTime:      start,
		EndTime:        end,
		Status:         models.BOOKING_STATUS_PENDING,
		SecretCodeHash: tools.HashSecretCode(code, salt),
	}
	if err := db.Create(&booking).Error; err != nil {
		return nil, "", errors.Wrap(err, "create booking")
	}

	return &booking, code, nil
}

// ConfirmByCode tenta confirmar o booking pendente do contato com o texto
// recebido. A transição pending -> confirmed é um UPDATE condicional no
// status: de duas confirmações simultâneas, exatamente uma vence e a outra
// observa NO_PENDING.
//
// maxAttempts limita as tentativas erradas por booking; 0 desabilita o
// limite.
func ConfirmByCode(db *gorm.DB, contact *models.Contact, submitted string, salt string, maxAttempts int) (string, error) {
	var booking models.Booking
	err := db.Where("contact_id = ? AND status = ?", contact.ID, models.BOOKING_STATUS_PENDING).
		Order("id asc").
		First(&booking).Error
	if gorm.IsRecordNotFoundError(err) {
		return CONFIRM_RESULT_NO_PENDING, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "lookup pending booking")
	}

	if maxAttempts > 0 && booking.CodeAttempts >= maxAttempts {
		return CONFIRM_RESULT_LOCKED, nil
	}

	if !tools.SecretCodeMatches(strings.TrimSpace(submitted), salt, booking.SecretCodeHash) {
		if err := db.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BOOKING_STATUS_PENDING).
			Update("code_attempts", gorm.Expr("code_attempts + 1")).Error; err != nil {
			return "", errors.Wrap(err, "record failed attempt")
		}
		return CONFIRM_RESULT_MISMATCH, nil
	}

	res := db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", booking.ID, models.BOOKING_STATUS_PENDING).
		Update("status", models.BOOKING_STATUS_CONFIRMED)
	if res.Error != nil {
		return "", errors.Wrap(res.Error, "confirm booking")
	}
	if res.RowsAffected == 0 {
		// perdeu a corrida: alguém confirmou antes
		return CONFIRM_RESULT_NO_PENDING, nil
	}

	return CONFIRM_RESULT_CONFIRMED, nil
}
