package usecase

import (
	"fmt"

	"github.com/qpeachy/deactivate-user-airtable/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUser confere os campos mínimos para conseguir desativar o
// usuário, na ordem: first name, email, last name. O Airtable ainda
// aceita string vazia nesses campos, então só a coluna ausente reprova.
func ValidateUser(u *entity.User) *ValidationError {
	if u.FirstName == nil {
		return &ValidationError{"first name", "is missing or invalid"}
	}
	if u.Email == nil {
		return &ValidationError{"email", "is missing or invalid"}
	}
	if u.LastName == nil {
		return &ValidationError{"last name", "is missing or invalid"}
	}
	return nil
}
