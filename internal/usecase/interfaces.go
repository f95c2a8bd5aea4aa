package usecase

import (
	"context"

	"github.com/qpeachy/deactivate-user-airtable/internal/entity"
	"github.com/qpeachy/deactivate-user-airtable/internal/infra/source"
)

// RecordSource entrega as linhas do arquivo de entrada, na ordem em que
// aparecem lá.
type RecordSource interface {
	Rows(path string) (source.RowIterator, error)
}

// CompletionLedger é o registro durável dos ids já desativados com
// sucesso, em qualquer execução (atual ou anterior).
type CompletionLedger interface {
	Load() (map[string]bool, error)
	Record(id string) error
}

type DeactivationGateway interface {
	DeactivateUser(ctx context.Context, accountID string, user *entity.User) error
}

// EmailService manda o resumo da execução para o operador. Opcional.
type EmailService interface {
	SendRunSummary(report *RunReport) error
}

// MetricsService publica os contadores da execução. Opcional.
type MetricsService interface {
	RecordRun(report *RunReport) error
}
