package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/qpeachy/deactivate-user-airtable/internal/infra/config"
	"github.com/qpeachy/deactivate-user-airtable/internal/infra/integration/airtable"
	"github.com/qpeachy/deactivate-user-airtable/internal/infra/ledger"
	"github.com/qpeachy/deactivate-user-airtable/internal/infra/mail"
	"github.com/qpeachy/deactivate-user-airtable/internal/infra/metrics"
	"github.com/qpeachy/deactivate-user-airtable/internal/infra/source"
	"github.com/qpeachy/deactivate-user-airtable/internal/usecase"
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s \"path/to/file.csv\"\n\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	inputPath := os.Args[1]
	if _, err := os.Stat(inputPath); err != nil {
		fmt.Printf("Input file %s was not found.\n", filepath.Base(inputPath))
		os.Exit(1)
	}

	// 1. Infra
	src := source.NewCSVSource(cfg.CSVDelimiter)
	led := ledger.NewFileLedger(cfg.LedgerPath)
	gateway := airtable.NewClient(cfg.APIToken, cfg.BaseURL, log)

	// 2. Notificações opcionais
	var emailService usecase.EmailService
	if cfg.MailConfigured() {
		emailService = mail.NewEmailSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.MailTo,
		)
	}

	var metricsService usecase.MetricsService
	if cfg.PushgatewayURL != "" {
		metricsService = metrics.NewPusher(cfg.PushgatewayURL)
	}

	// 3. UseCase
	uc := usecase.NewDeactivateUsersUseCase(
		src, led, gateway, emailService, metricsService, cfg.AccountID, log,
	)

	input := usecase.DeactivateUsersInput{SourcePath: inputPath}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
