package airtable

import "fmt"

// --- PAYLOAD INTERNO: o que mandamos no PATCH de desativação ---
type deactivateUserRequest struct {
	State     string `json:"state"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StatusError: a API respondeu, mas com status fora de 2xx. Diferente
// de erro de transporte (conexão caiu, timeout).
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("airtable rejeitou a desativação (status %d)", e.StatusCode)
}

func IsStatusError(err error) bool {
	_, ok := err.(*StatusError)
	return ok
}
