package controllers

import (
	"context"
	"log"

	"opsdesk/config"
	"opsdesk/tools"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

var messenger tools.Messenger

func SetMessenger(m tools.Messenger) {
	messenger = m
}

// notify envia uma mensagem best-effort depois do commit. Falha de entrega
// é logada e engolida: o estado já commitado não depende da notificação.
func notify(ctx context.Context, to string, body string) {
	if messenger == nil {
		return
	}
	if err := messenger.SendText(ctx, to, body); err != nil {
		log.Printf("send message to %s failed: %v", to, err)
	}
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}
