package tools

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const ticketPrefix = "TCK-"

// GenerateTicketNumber devolve um identificador legível no formato
// "TCK-XXXXXXXX" (8 hex maiúsculos). A unicidade é garantida pelo índice
// único no banco; em colisão o emissor gera de novo.
func GenerateTicketNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand não falha em plataformas suportadas
		panic(err)
	}
	return ticketPrefix + strings.ToUpper(hex.EncodeToString(b))
}
