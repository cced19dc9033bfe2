package utils

import (
	"testing"

	"github.com/SebasDosman/vortex-bird-test/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registration struct {
	Name     string `json:"name" validate:"required,min=1,max=100,person_name"`
	Phone    string `json:"phone" validate:"required,len=10,numeric,co_phone"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=50,password"`
}

type line struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type order struct {
	Method models.PaymentMethod `json:"paymentMethod" validate:"required,payment_method"`
	Genre  models.FilmGenre     `json:"genre" validate:"omitempty,film_genre"`
	Lines  []line               `json:"lines" validate:"required,min=1,dive"`
}

func validRegistration() registration {
	return registration{
		Name:     "José_Núñez-2",
		Phone:    "3001234567",
		Email:    "a@b.com",
		Password: "Abcdef1!",
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		s := validRegistration()
		assert.NoError(t, ValidateStruct(&s))
	})

	t.Run("fields keyed by json name", func(t *testing.T) {
		s := validRegistration()
		s.Name = ""
		s.Email = "not-an-email"

		err := ValidateStruct(&s)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		fields := GetValidationFields(err)
		assert.Equal(t, "name is required", fields["name"])
		assert.Equal(t, "email must be a valid email", fields["email"])
		assert.Len(t, fields, 2)
	})

	t.Run("person name rejects symbols", func(t *testing.T) {
		s := validRegistration()
		s.Name = "Robert'); DROP"

		fields := GetValidationFields(ValidateStruct(&s))
		assert.Contains(t, fields["name"], "may only contain")
	})

	t.Run("phone must be ten digits", func(t *testing.T) {
		s := validRegistration()
		s.Phone = "300123"

		fields := GetValidationFields(ValidateStruct(&s))
		assert.Equal(t, "phone must be exactly 10 characters", fields["phone"])
	})

	t.Run("phone must be a colombian number", func(t *testing.T) {
		s := validRegistration()
		s.Phone = "0000000000"

		fields := GetValidationFields(ValidateStruct(&s))
		assert.Equal(t, "phone must be a valid Colombian phone number", fields["phone"])
	})

	t.Run("weak password", func(t *testing.T) {
		s := validRegistration()
		s.Password = "abcdefgh"

		fields := GetValidationFields(ValidateStruct(&s))
		assert.Contains(t, fields["password"], "uppercase letter")
	})

	t.Run("enums and nested lines", func(t *testing.T) {
		o := order{Method: "BITCOIN", Genre: "WESTERN", Lines: []line{{Quantity: 1}, {Quantity: 0}}}

		fields := GetValidationFields(ValidateStruct(&o))
		assert.Equal(t, "paymentMethod has an unknown value", fields["paymentMethod"])
		assert.Equal(t, "genre has an unknown value", fields["genre"])
		assert.Equal(t, "quantity is required", fields["lines[1].quantity"])
	})
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"Ñandú99#", true},
		{"abcdef1!", false},
		{"ABCDEF1!", false},
		{"Abcdefg!", false},
		{"Abcdefg1", false},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("3001234567"))
	assert.False(t, IsValidPhone("abc"))
	assert.False(t, IsValidPhone(""))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Message: "Validation failed"}
	assert.Equal(t, "Validation failed", err.Error())
	assert.Nil(t, GetValidationFields(assert.AnError))
	assert.False(t, IsValidationError(assert.AnError))
}
