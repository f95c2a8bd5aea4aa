package usecase

// LedgerError marca falha de escrita no ledger. Não dá para engolir:
// continuar sem checkpoint quebraria a garantia de retomada após crash.
type LedgerError struct {
	UserID string
	Err    error
}

func (e *LedgerError) Error() string {
	return "ledger write failed for " + e.UserID + ": " + e.Err.Error()
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

func IsLedgerError(err error) bool {
	_, ok := err.(*LedgerError)
	return ok
}
