package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserFromRowMapsAllColumns(t *testing.T) {
	row := Row{
		"User ID":                    "usr1",
		"User first name":            "Alice",
		"User last name":             "Smith",
		"User email":                 "a@x.com",
		"Account types":              "enterprise",
		"Two-factor auth enabled?":   "checked",
		"Email verified?":            "checked",
		"Invited by ID":              "usr9",
		"Invited by email":           "boss@x.com",
		"Last active (UTC)":          "2024-01-02",
		"Joined (UTC)":               "2020-05-05",
		"Billable?":                  "checked",
		"SCIM: External ID":          "ext-1",
		"SCIM: Title":                "Engineer",
		"SCIM: Cost center":          "CC42",
		"SCIM: Department":           "Platform",
		"SCIM: Division":             "Tech",
		"SCIM: Organization":         "ACME",
		"SCIM: Manager display name": "Bob Boss",
		"SCIM: Manager":              "usr9",
	}

	user := NewUserFromRow(row)

	assert.Equal(t, "usr1", user.ID)
	assert.Equal(t, "Alice", *user.FirstName)
	assert.Equal(t, "Smith", *user.LastName)
	assert.Equal(t, "a@x.com", *user.Email)
	assert.Equal(t, "enterprise", user.AccountTypes)
	assert.Equal(t, "CC42", user.ScimCostCenter)
	assert.Equal(t, "Bob Boss", user.ScimManagerDisplay)
}

func TestNewUserFromRowMissingColumnsAreNil(t *testing.T) {
	// Export sem as colunas de nome: os ponteiros ficam nil, diferente
	// de string vazia
	row := Row{
		"User ID":    "usr2",
		"User email": "",
	}

	user := NewUserFromRow(row)

	assert.Equal(t, "usr2", user.ID)
	assert.Nil(t, user.FirstName)
	assert.Nil(t, user.LastName)
	assert.NotNil(t, user.Email)
	assert.Equal(t, "", *user.Email)
	assert.Equal(t, "", user.ScimDepartment)
}

func TestUserString(t *testing.T) {
	user := NewUserFromRow(Row{"User ID": "usr3"})
	assert.Equal(t, "<User> usr3", user.String())
}
