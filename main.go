package main

import (
	"log"
	"os"
	"time"

	"opsdesk/config"
	"opsdesk/controllers"
	dbpkg "opsdesk/db"
	"opsdesk/router"
	"opsdesk/tools"
	"opsdesk/workers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional; as variáveis OPSDESK_* sobrescrevem o config.json
	_ = godotenv.Load()

	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))

	dbpkg.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	messenger := tools.TwilioClient{
		AccountSID:     cfg.Twilio.AccountSID,
		AuthToken:      cfg.Twilio.AuthToken,
		WhatsAppNumber: cfg.Twilio.WhatsAppNumber,
	}
	controllers.SetMessenger(messenger)

	workers.StartLowStockWatcher(database, messenger, cfg.Alerts.OwnerPhone,
		time.Duration(cfg.Alerts.LowStockScanSeconds)*time.Second)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("opsdesk listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
