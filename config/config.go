package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret       string `json:"jwt_secret"`
		SecretCodeSalt  string `json:"secret_code_salt"`
		CodeMaxAttempts int    `json:"code_max_attempts"`
		TokenValidHours int    `json:"token_valid_hours"`
	} `json:"security"`

	Twilio struct {
		AccountSID     string `json:"account_sid"`
		AuthToken      string `json:"auth_token"`
		WhatsAppNumber string `json:"whatsapp_number"`
	} `json:"twilio"`

	Alerts struct {
		OwnerPhone          string `json:"owner_phone"`
		LowStockScanSeconds int    `json:"low_stock_scan_seconds"`
	} `json:"alerts"`
}

// Get loads the JSON config file (optional) and applies OPSDESK_* env
// overrides on top of it. Missing values fall back to dev defaults.
func Get(path string) Configuration {
	var c Configuration

	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatal(err)
	}

	if err := envconfig.Process("opsdesk", &c); err != nil {
		log.Fatal(err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Security.SecretCodeSalt == "" {
		c.Security.SecretCodeSalt = "dev_salt"
	}
	if c.Security.CodeMaxAttempts <= 0 {
		c.Security.CodeMaxAttempts = 5
	}
	if c.Security.TokenValidHours <= 0 {
		c.Security.TokenValidHours = 24
	}
	if c.Alerts.LowStockScanSeconds <= 0 {
		c.Alerts.LowStockScanSeconds = 60
	}

	return c
}
