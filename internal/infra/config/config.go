package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Mensagens viradas para o usuário, com a instrução de como resolver.
var (
	ErrMissingAPIToken  = errors.New("Please set your Airtable API token by typing 'export AIRTABLE_API_TOKEN=MYTOKEN'")
	ErrMissingAccountID = errors.New("Please set your Airtable enterprise account ID by typing 'export AIRTABLE_ACCOUNT_ID=MYID'")
)

type Config struct {
	// Obrigatórios
	APIToken  string
	AccountID string

	// Opcionais
	BaseURL      string
	LedgerPath   string
	CSVDelimiter rune

	// Resumo por email (só manda se MAIL_HOST e MAIL_TO estiverem setados)
	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
	MailTo   string

	// Métricas do job (só empurra se PUSHGATEWAY_URL estiver setado)
	PushgatewayURL string
}

// Load carrega o .env (se existir) e valida os segredos obrigatórios
// uma única vez, na partida. Depois disso ninguém mais lê env.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		APIToken:  os.Getenv("AIRTABLE_API_TOKEN"),
		AccountID: os.Getenv("AIRTABLE_ACCOUNT_ID"),

		BaseURL:    getEnv("AIRTABLE_BASE_URL", "https://api.airtable.com"),
		LedgerPath: getEnv("LEDGER_PATH", "deactivated.txt"),

		MailHost: os.Getenv("MAIL_HOST"),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", "nao-responda@qpeachy.dev"),
		MailTo:   os.Getenv("MAIL_TO"),

		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
	}

	if cfg.APIToken == "" {
		return cfg, ErrMissingAPIToken
	}
	if cfg.AccountID == "" {
		return cfg, ErrMissingAccountID
	}

	cfg.CSVDelimiter = []rune(getEnv("CSV_DELIMITER", ","))[0]

	cfg.MailPort = 587
	if port, err := strconv.Atoi(getEnv("MAIL_PORT", "587")); err == nil {
		cfg.MailPort = port
	}

	return cfg, nil
}

func (c Config) MailConfigured() bool {
	return c.MailHost != "" && c.MailTo != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
