package usecase

import "time"

type DeactivateUsersInput struct {
	SourcePath string
}

type FailedUser struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// RunReport é o resultado de uma execução inteira do batch.
type RunReport struct {
	RunID      string `json:"run_id"`
	SourceFile string `json:"source_file"`

	// Ids carregados do ledger na partida (execuções anteriores).
	AlreadyDone int `json:"already_done"`
	// Pulados neste run por já estarem no ledger.
	Skipped int `json:"skipped"`
	// Desativados com sucesso neste run.
	Succeeded []string `json:"succeeded"`
	// Reprovados na validação ou com falha na chamada. Não persiste.
	Failed []FailedUser `json:"failed"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func (r *RunReport) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.ID)
	}
	return ids
}
