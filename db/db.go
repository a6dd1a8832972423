package db

import (
	"log"
	"os"
	"path/filepath"

	"opsdesk/config"
	"opsdesk/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com DB (sqlite3 por padrão) e faz automigrate.
// Exporte AUTOMIGRATE=0 para pular a migração em produção.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Println("Utilizando conexão com o postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Println("Utilizando conexão com o sqlite3...")
		dir := filepath.Dir("db/database.db")
		db, err = gorm.Open("sqlite3", dir+"/database.db")
	}

	if err != nil {
		log.Println("Got error when connect database, the error is: " + err.Error())
		return nil, err
	}

	if getenv("AUTOMIGRATE", "1") == "1" {
		AutoMigrate(db)
	}

	return db, nil
}

// AutoMigrate creates/updates the opsdesk tables. The unique indexes on
// contacts.phone, conversations.contact_id, tickets.ticket_number and
// users.username are load-bearing: the resolver, tracker and issuer rely
// on them to detect races.
func AutoMigrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.Workspace{},
		&models.User{},
		&models.Contact{},
		&models.Conversation{},
		&models.Message{},
		&models.Ticket{},
		&models.Booking{},
		&models.Inventory{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
