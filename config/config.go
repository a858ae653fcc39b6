package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName   string `json:"appname"`
	AppEnv    string `json:"appenv"`
	AppPort   uint16 `json:"appport"`
	GinMode   string `json:"ginmode"`
	DBHost    string `json:"dbhost"`
	DBPort    uint16 `json:"dbport"`
	DBName    string `json:"dbname"`
	DBUser    string `json:"dbuser"`
	DBPass    string `json:"dbpass"`
	SMTPHost  string `json:"smtphost"`
	SMTPPort  uint16 `json:"smtpport"`
	SMTPUser  string `json:"smtpuser"`
	SMTPPass  string `json:"smtppass"`
	MailTo    string `json:"mailto"`
	StaticDir string `json:"staticdir"`
	GeoIPPath string `json:"geoippath"`
	SeedData  bool   `json:"seeddata"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env file is acceptable in tests and CI where the
		// environment is set directly.
		if err := godotenv.Load(); err != nil && os.Getenv("APPENV") == "" {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 5000
		}
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)
		smtpPort, _ := strconv.ParseUint(os.Getenv("SMTPPORT"), 10, 16)
		if smtpPort == 0 {
			smtpPort = 587
		}
		smtpHost := os.Getenv("SMTPHOST")
		if smtpHost == "" {
			smtpHost = "smtp-relay.brevo.com"
		}
		staticDir := os.Getenv("STATICDIR")
		if staticDir == "" {
			staticDir = "dist/public"
		}

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName:   os.Getenv("APPNAME"),
			AppEnv:    os.Getenv("APPENV"),
			AppPort:   uint16(appPort),
			GinMode:   os.Getenv("GINMODE"),
			DBHost:    os.Getenv("DBHOST"),
			DBPort:    uint16(dbPort),
			DBName:    os.Getenv("DBNAME"),
			DBUser:    os.Getenv("DBUSER"),
			DBPass:    os.Getenv("DBPASS"),
			SMTPHost:  smtpHost,
			SMTPPort:  uint16(smtpPort),
			SMTPUser:  os.Getenv("BREVO_USER"),
			SMTPPass:  os.Getenv("BREVO_PASS"),
			MailTo:    os.Getenv("TO_EMAIL"),
			StaticDir: staticDir,
			GeoIPPath: os.Getenv("GEOIP_DB_PATH"),
			SeedData:  os.Getenv("SEEDDATA") == "true",
		}
	})
	return config
}

// ConnectDatabase establishes the GORM database connection. In the test
// environment it returns an in-memory SQLite database so tests never require
// a running MySQL instance.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()

	if cfg.AppEnv == "test" || os.Getenv("APPENV") == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}

	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
