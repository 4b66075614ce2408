// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package menu

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/shop-console/models"
)

// ErrInvalidInput is wrapped by every [*FieldError].
var ErrInvalidInput = errors.New("invalid input")

// FieldKind selects how a raw field value is parsed.
type FieldKind int

const (
	KindText FieldKind = iota
	KindPassword
	KindInt
	KindFloat
	KindDate
)

func (k FieldKind) expectation() string {
	switch k {
	case KindInt:
		return "a whole number"
	case KindFloat:
		return "a number"
	case KindDate:
		return "a date in yyyy-MM-dd format"
	default:
		return "text"
	}
}

// Field keys.
const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldName           = "name"
	FieldAge            = "age"
	FieldID             = "id"
	FieldPrice          = "price"
	FieldExpirationDate = "expirationDate"
)

// Field is one value an action asks the user for.
type Field struct {
	Key    string
	Label  string
	Prompt string
	Kind   FieldKind
}

// LoginFields are asked for in the unauthenticated state.
var LoginFields = []Field{
	{Key: FieldEmail, Label: "Email", Prompt: "Enter your email: ", Kind: KindText},
	{Key: FieldPassword, Label: "Password", Prompt: "Enter your password: ", Kind: KindPassword},
}

var (
	productIDField   = Field{Key: FieldID, Label: "Product ID", Prompt: "Enter Product ID: ", Kind: KindText}
	productNameField = Field{Key: FieldName, Label: "Product Name", Prompt: "Enter Product Name: ", Kind: KindText}
	productPrice     = Field{Key: FieldPrice, Label: "Product Price", Prompt: "Enter Product Price: ", Kind: KindFloat}
	productExpires   = Field{Key: FieldExpirationDate, Label: "Expiration Date", Prompt: "Enter Expiration Date (yyyy-MM-dd): ", Kind: KindDate}
	userAgeField     = Field{Key: FieldAge, Label: "Age", Prompt: "Enter Age: ", Kind: KindInt}
)

var actionFields = map[Action][]Field{
	ActionCreateUser: {
		{Key: FieldName, Label: "Name", Prompt: "Enter Name: ", Kind: KindText},
		userAgeField,
		{Key: FieldEmail, Label: "Email", Prompt: "Enter Email: ", Kind: KindText},
		{Key: FieldPassword, Label: "Password", Prompt: "Enter Password: ", Kind: KindPassword},
	},
	ActionGetProduct:    {productIDField},
	ActionAddProduct:    {productNameField, productPrice, productExpires},
	ActionUpdateProduct: {productIDField, productNameField, productPrice, productExpires},
	ActionDeleteProduct: {productIDField},
}

// Fields returns the fields action prompts for, in prompt order. Actions
// without input return nil.
func Fields(action Action) []Field {
	return actionFields[action]
}

// FieldError reports a value that does not parse as its field kind.
type FieldError struct {
	Field Field
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason())
}

// Reason describes what the field expects, e.g. "Age must be a whole number".
func (e *FieldError) Reason() string {
	return fmt.Sprintf("%s must be %s", e.Field.Label, e.Field.Kind.expectation())
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// Validate checks raw against the field kind. Text and password fields
// accept anything.
func (f Field) Validate(raw string) error {
	var err error
	switch f.Kind {
	case KindInt:
		_, err = parseInt(raw)
	case KindFloat:
		_, err = parseFloat(raw)
	case KindDate:
		_, err = parseDate(raw)
	}
	if err != nil {
		return &FieldError{Field: f, Value: raw}
	}
	return nil
}

// Values holds raw field input keyed by [Field.Key].
type Values map[string]string

// Credentials builds login credentials.
func (v Values) Credentials() models.Credentials {
	return models.Credentials{Email: v[FieldEmail], Password: v[FieldPassword]}
}

// User builds a new user; the age must be a whole number.
func (v Values) User() (models.User, error) {
	age, err := parseInt(v[FieldAge])
	if err != nil {
		return models.User{}, &FieldError{Field: userAgeField, Value: v[FieldAge]}
	}
	return models.User{
		Name:     v[FieldName],
		Age:      age,
		Email:    v[FieldEmail],
		Password: v[FieldPassword],
	}, nil
}

// NewProduct builds a product without id.
func (v Values) NewProduct() (models.NewProduct, error) {
	price, err := parseFloat(v[FieldPrice])
	if err != nil {
		return models.NewProduct{}, &FieldError{Field: productPrice, Value: v[FieldPrice]}
	}
	date, err := parseDate(v[FieldExpirationDate])
	if err != nil {
		return models.NewProduct{}, &FieldError{Field: productExpires, Value: v[FieldExpirationDate]}
	}
	return models.NewProduct{Name: v[FieldName], Price: price, ExpirationDate: date}, nil
}

// Product builds a full product, id included.
func (v Values) Product() (models.Product, error) {
	p, err := v.NewProduct()
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{
		ID:             v[FieldID],
		Name:           p.Name,
		Price:          p.Price,
		ExpirationDate: p.ExpirationDate,
	}, nil
}

// ID returns the product id as typed.
func (v Values) ID() string {
	return v[FieldID]
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

// parseFloat rejects NaN and infinities: they have no JSON encoding.
func parseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}

func parseDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if _, err := time.Parse(models.ExpirationDateLayout, s); err != nil {
		return "", err
	}
	return s, nil
}
