package tools

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Messenger é a capacidade de envio outbound. Falhas de entrega são do
// chamador: os fluxos do core logam e engolem, nunca propagam.
type Messenger interface {
	SendText(ctx context.Context, to string, body string) error
}

// TwilioClient envia mensagens de WhatsApp via Twilio REST API.
type TwilioClient struct {
	AccountSID     string
	AuthToken      string
	WhatsAppNumber string
}

func (t TwilioClient) SendText(ctx context.Context, to string, body string) error {
	if t.AccountSID == "" || t.AuthToken == "" {
		return errors.New("twilio not configured")
	}

	endpoint := "https://api.twilio.com/2010-04-01/Accounts/" + t.AccountSID + "/Messages.json"

	form := url.Values{}
	form.Set("From", "whatsapp:"+t.WhatsAppNumber)
	form.Set("To", "whatsapp:+"+strings.TrimPrefix(to, "+"))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "build twilio request")
	}
	req.SetBasicAuth(t.AccountSID, t.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "twilio request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return errors.Errorf("twilio api error: status=%d body=%s", resp.StatusCode, string(b))
	}
	return nil
}
