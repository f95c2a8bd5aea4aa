package entity

import "fmt"

// Row é uma linha crua do CSV: só as colunas que existem no header.
type Row map[string]string

// Entidade: User
// Representa um usuário da conta enterprise do Airtable, carregado de uma
// linha do CSV exportado pelo Admin Panel.
type User struct {
	ID string

	// Campos obrigatórios para a desativação. Ponteiros porque a coluna
	// pode nem existir no export (nil = ausente; "" ainda é aceito).
	FirstName *string
	LastName  *string
	Email     *string

	// Metadados organizacionais, só para contexto e log.
	AccountTypes       string
	TwoFactorAuth      string
	EmailVerified      string
	InvitedByID        string
	InvitedByEmail     string
	LastActive         string
	Joined             string
	Billable           string
	ScimExternalID     string
	ScimTitle          string
	ScimCostCenter     string
	ScimDepartment     string
	ScimDivision       string
	ScimOrganization   string
	ScimManagerDisplay string
	ScimManager        string
}

// Factory: monta o User a partir da linha, mapeando os nomes de coluna
// do export do Airtable. Mapeamento total: coluna faltando nunca é erro
// aqui, quem decide se o registro serve é a validação.
func NewUserFromRow(row Row) *User {
	return &User{
		ID:        row["User ID"],
		FirstName: optional(row, "User first name"),
		LastName:  optional(row, "User last name"),
		Email:     optional(row, "User email"),

		AccountTypes:       row["Account types"],
		TwoFactorAuth:      row["Two-factor auth enabled?"],
		EmailVerified:      row["Email verified?"],
		InvitedByID:        row["Invited by ID"],
		InvitedByEmail:     row["Invited by email"],
		LastActive:         row["Last active (UTC)"],
		Joined:             row["Joined (UTC)"],
		Billable:           row["Billable?"],
		ScimExternalID:     row["SCIM: External ID"],
		ScimTitle:          row["SCIM: Title"],
		ScimCostCenter:     row["SCIM: Cost center"],
		ScimDepartment:     row["SCIM: Department"],
		ScimDivision:       row["SCIM: Division"],
		ScimOrganization:   row["SCIM: Organization"],
		ScimManagerDisplay: row["SCIM: Manager display name"],
		ScimManager:        row["SCIM: Manager"],
	}
}

func (u *User) String() string {
	return fmt.Sprintf("<User> %s", u.ID)
}

func optional(row Row, key string) *string {
	if v, ok := row[key]; ok {
		return &v
	}
	return nil
}
