// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package menu

import (
	"testing"

	"github.com/MKhiriev/shop-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_PromptOrder(t *testing.T) {
	keys := func(fields []Field) []string {
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			out = append(out, f.Key)
		}
		return out
	}

	assert.Equal(t, []string{FieldName, FieldAge, FieldEmail, FieldPassword}, keys(Fields(ActionCreateUser)))
	assert.Equal(t, []string{FieldID}, keys(Fields(ActionGetProduct)))
	assert.Equal(t, []string{FieldName, FieldPrice, FieldExpirationDate}, keys(Fields(ActionAddProduct)))
	assert.Equal(t, []string{FieldID, FieldName, FieldPrice, FieldExpirationDate}, keys(Fields(ActionUpdateProduct)))
	assert.Equal(t, []string{FieldID}, keys(Fields(ActionDeleteProduct)))
	assert.Nil(t, Fields(ActionListUsers))
	assert.Nil(t, Fields(ActionTopExpensive))
}

func TestField_Validate(t *testing.T) {
	age := Field{Key: FieldAge, Label: "Age", Kind: KindInt}
	price := Field{Key: FieldPrice, Label: "Price", Kind: KindFloat}
	date := Field{Key: FieldExpirationDate, Label: "Date", Kind: KindDate}
	name := Field{Key: FieldName, Label: "Name", Kind: KindText}

	tests := []struct {
		name  string
		field Field
		raw   string
		ok    bool
	}{
		{"int", age, "30", true},
		{"int with spaces", age, " 30 ", true},
		{"int fraction", age, "30.5", false},
		{"int text", age, "thirty", false},
		{"float", price, "2.50", true},
		{"float integer", price, "3", true},
		{"float text", price, "cheap", false},
		{"float NaN", price, "NaN", false},
		{"float Inf", price, "Inf", false},
		{"date", date, "2025-01-01", true},
		{"date wrong layout", date, "01/01/2025", false},
		{"date impossible", date, "2025-02-30", false},
		{"text anything", name, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate(tt.raw)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.raw, fe.Value)
		})
	}
}

func TestFieldError_Message(t *testing.T) {
	err := &FieldError{Field: Field{Label: "Age", Kind: KindInt}, Value: "x"}
	assert.Equal(t, "invalid input: Age must be a whole number", err.Error())
}

func TestValues_Builders(t *testing.T) {
	v := Values{
		FieldID:             "42",
		FieldName:           "Milk",
		FieldPrice:          "2.50",
		FieldExpirationDate: "2025-01-01",
		FieldAge:            "30",
		FieldEmail:          "ann@x.io",
		FieldPassword:       "pw",
	}

	assert.Equal(t, models.Credentials{Email: "ann@x.io", Password: "pw"}, v.Credentials())

	user, err := v.User()
	require.NoError(t, err)
	assert.Equal(t, models.User{Name: "Milk", Age: 30, Email: "ann@x.io", Password: "pw"}, user)

	np, err := v.NewProduct()
	require.NoError(t, err)
	assert.Equal(t, models.NewProduct{Name: "Milk", Price: 2.5, ExpirationDate: "2025-01-01"}, np)

	p, err := v.Product()
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: "42", Name: "Milk", Price: 2.5, ExpirationDate: "2025-01-01"}, p)

	assert.Equal(t, "42", v.ID())
}

func TestValues_BuildersRejectMalformed(t *testing.T) {
	_, err := Values{FieldAge: "old"}.User()
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Values{FieldPrice: "x", FieldExpirationDate: "2025-01-01"}.NewProduct()
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Values{FieldPrice: "1", FieldExpirationDate: "tomorrow"}.Product()
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldExpirationDate, fe.Field.Key)
}
