package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/qpeachy/deactivate-user-airtable/internal/entity"
)

type DeactivateUsersUseCase struct {
	Source    RecordSource
	Ledger    CompletionLedger
	Gateway   DeactivationGateway
	Email     EmailService   // opcional (nil = sem resumo por email)
	Metrics   MetricsService // opcional (nil = sem pushgateway)
	AccountID string
	Log       *logrus.Logger
}

func NewDeactivateUsersUseCase(
	src RecordSource,
	ledger CompletionLedger,
	gateway DeactivationGateway,
	email EmailService,
	metrics MetricsService,
	accountID string,
	log *logrus.Logger,
) *DeactivateUsersUseCase {
	return &DeactivateUsersUseCase{
		Source:    src,
		Ledger:    ledger,
		Gateway:   gateway,
		Email:     email,
		Metrics:   metrics,
		AccountID: accountID,
		Log:       log,
	}
}

// Execute roda o batch inteiro: lê o CSV, pula quem já está no ledger,
// valida, chama o Airtable e registra cada sucesso no ledger antes de
// passar para o próximo. Falha de um registro nunca derruba o run, só
// entra no report. Erros fatais: arquivo de entrada ilegível e escrita
// no ledger.
func (uc *DeactivateUsersUseCase) Execute(ctx context.Context, input DeactivateUsersInput) (*RunReport, error) {
	report := &RunReport{
		RunID:      uuid.New().String(),
		SourceFile: input.SourcePath,
		StartedAt:  time.Now(),
	}
	log := uc.Log.WithField("run_id", report.RunID)

	// 1. Carrega o ledger das execuções anteriores
	done, err := uc.Ledger.Load()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar ledger: %w", err)
	}
	report.AlreadyDone = len(done)
	log.Infof("Loaded %d ids from cache that will not be processed.", len(done))

	// 2. Abre a fonte de registros
	rows, err := uc.Source.Rows(input.SourcePath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// 3. Loop principal, um registro por vez, na ordem do arquivo
	for {
		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler registro do CSV: %w", err)
		}

		user := entity.NewUserFromRow(row)

		// Já desativado numa execução anterior
		if done[user.ID] {
			report.Skipped++
			continue
		}

		if verr := ValidateUser(user); verr != nil {
			log.Warnf("Missing or invalid %s attribute for %s", verr.Field, user)
			report.Failed = append(report.Failed, FailedUser{ID: user.ID, Reason: verr.Error()})
			continue
		}

		if err := uc.Gateway.DeactivateUser(ctx, uc.AccountID, user); err != nil {
			log.Errorf("❌ Error during request for user deactivation of %s: %v", user.ID, err)
			report.Failed = append(report.Failed, FailedUser{ID: user.ID, Reason: err.Error()})
			continue
		}

		// Sucesso: checkpoint no ledger ANTES do próximo registro,
		// senão um crash agora faria o rerun desativar de novo.
		if err := uc.Ledger.Record(user.ID); err != nil {
			return nil, &LedgerError{UserID: user.ID, Err: err}
		}
		report.Succeeded = append(report.Succeeded, user.ID)
	}

	report.FinishedAt = time.Now()

	// 4. Resumo sempre sai, mesmo com falhas no meio
	uc.printSummary(log, report)

	// 5. Notificações são melhor-esforço, nunca mudam o resultado
	uc.notify(log, report)

	return report, nil
}

func (uc *DeactivateUsersUseCase) printSummary(log *logrus.Entry, report *RunReport) {
	log.Infof("✅ Successfully processed %d entries from %s.", len(report.Succeeded), report.SourceFile)
	if len(report.Failed) > 0 {
		log.Warnf("⚠️ Failed to process %d user ids: %s.", len(report.Failed), strings.Join(report.FailedIDs(), ", "))
	}
}

func (uc *DeactivateUsersUseCase) notify(log *logrus.Entry, report *RunReport) {
	if uc.Email != nil {
		if err := uc.Email.SendRunSummary(report); err != nil {
			log.Warnf("⚠️ Could not send summary email: %v", err)
		}
	}

	if uc.Metrics != nil {
		if err := uc.Metrics.RecordRun(report); err != nil {
			log.Warnf("⚠️ Could not push run metrics: %v", err)
		}
	}
}
