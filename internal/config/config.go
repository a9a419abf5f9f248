package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Dairy     DairyConfig
	SMS       SMSConfig
	WhatsApp  WhatsAppConfig
	Sheets    SheetsConfig
	Reporting ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// DairyConfig is the dairy's own identity, printed on bills and receipts.
type DairyConfig struct {
	Name    string
	Phone   string
	Address string
}

// SMSConfig contains MSG91 credentials for farmer notifications. SMS sending
// is disabled when AuthKey is empty.
type SMSConfig struct {
	BaseURL    string
	AuthKey    string
	SenderID   string
	Route      string
	TemplateID string
}

// Enabled reports whether SMS notifications are configured.
func (c SMSConfig) Enabled() bool { return c.AuthKey != "" }

// WhatsAppConfig contains credentials for the Meta WhatsApp Cloud API, used
// for the owner's daily digest. Disabled when AccessToken is empty.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
	APIVersion    string
	OwnerNumber   string
}

// Enabled reports whether the WhatsApp digest is configured.
func (c WhatsAppConfig) Enabled() bool { return c.AccessToken != "" && c.OwnerNumber != "" }

// SheetsConfig contains configuration required to interact with Google
// Sheets. The export is disabled when SpreadsheetID is empty.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	SummarySheet    string
	ProfitSheet     string
}

// Enabled reports whether the spreadsheet export is configured.
func (c SheetsConfig) Enabled() bool { return c.SpreadsheetID != "" && c.CredentialsPath != "" }

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "nirbani_dairy"),
		},
		Dairy: DairyConfig{
			Name:    getenvWithDefault("DAIRY_NAME", "Nirbani Dairy"),
			Phone:   os.Getenv("DAIRY_PHONE"),
			Address: os.Getenv("DAIRY_ADDRESS"),
		},
		SMS: SMSConfig{
			BaseURL:    getenvWithDefault("MSG91_BASE_URL", "https://control.msg91.com"),
			AuthKey:    os.Getenv("MSG91_AUTH_KEY"),
			SenderID:   getenvWithDefault("MSG91_SENDER_ID", "NRBDRY"),
			Route:      getenvWithDefault("MSG91_ROUTE", "4"),
			TemplateID: os.Getenv("MSG91_TEMPLATE_ID"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			BaseURL:       getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:    getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			OwnerNumber:   os.Getenv("WHATSAPP_OWNER_NUMBER"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
			SummarySheet:    getenvWithDefault("GOOGLE_SHEET_SUMMARY_RANGE", "DailySummary!A:H"),
			ProfitSheet:     getenvWithDefault("GOOGLE_SHEET_PROFIT_RANGE", "Profit!A:J"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. The
// SMS, WhatsApp and Sheets integrations are optional; only their partial
// configuration is rejected.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.SMS.Enabled() && c.SMS.SenderID == "" {
		return errors.New("MSG91_SENDER_ID must be provided when SMS is enabled")
	}

	if c.WhatsApp.AccessToken != "" && c.WhatsApp.PhoneNumberID == "" {
		return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided when WHATSAPP_TOKEN is set")
	}

	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when GOOGLE_SHEET_DATABASE_ID is set")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}
	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
