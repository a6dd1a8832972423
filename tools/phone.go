package tools

import (
	"fmt"
	"strings"
	"unicode"
)

// defaultCountryCode é prefixado em números nacionais de 10 dígitos.
const defaultCountryCode = "1"

// NormalizePhone canonicaliza um telefone para o formato usado no banco e
// no WhatsApp (apenas dígitos, formato internacional, sem '+').
//
// Heurística:
// - remove o prefixo "whatsapp:" (Twilio manda "whatsapp:+15551234567")
// - remove tudo que não é dígito
// - remove zeros à esquerda
// - 10 dígitos -> assume nacional e prefixa o DDI padrão
//
// Dois números equivalentes sempre normalizam para a mesma string.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "whatsapp:")
	if raw == "" {
		return "", fmt.Errorf("empty phone")
	}

	// mantém apenas dígitos
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	phone = strings.TrimLeft(phone, "0")

	if len(phone) == 10 {
		phone = defaultCountryCode + phone
	}

	// validação bem leve: DDI + número
	if len(phone) < 11 {
		return "", fmt.Errorf("invalid phone length: %d", len(phone))
	}
	return phone, nil
}
