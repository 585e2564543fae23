package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "ascii six characters", value: "Alice1", want: true},
		{name: "ascii five characters", value: "Alice", want: false},
		{name: "diacritics five characters", value: "Lê Hà", want: false},
		{name: "diacritics six characters", value: "Lê Hải", want: true},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.value))
		})
	}
}

func TestValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "nine digits", value: "090123456", want: true},
		{name: "eleven digits", value: "09012345678", want: true},
		{name: "twelve digits", value: "090123456789", want: false},
		{name: "eight digits", value: "09012345", want: false},
		{name: "three full-width digits", value: "０９０", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhoneNumber(tt.value))
		})
	}
}

func TestProfile_Validate(t *testing.T) {
	valid := Profile{Name: "Carol Customer", PhoneNumber: "0903333333", Email: "carol@example.com", Role: RoleCustomer}

	field, ok := valid.Validate()
	assert.True(t, ok)
	assert.Empty(t, field)

	badEmail := valid
	badEmail.Email = "carol@"
	field, ok = badEmail.Validate()
	assert.False(t, ok)
	assert.Equal(t, "email", field)

	badRole := valid
	badRole.Role = Role("guest")
	field, ok = badRole.Validate()
	assert.False(t, ok)
	assert.Equal(t, "role", field)
}

func TestAccount_Validate(t *testing.T) {
	account := Account{PhoneNumber: "0903333333", PasswordHash: "hash", Role: RoleStaff}

	_, ok := account.Validate()
	assert.True(t, ok)

	account.PhoneNumber = "0903"
	field, ok := account.Validate()
	assert.False(t, ok)
	assert.Equal(t, "phoneNumber", field)
}
