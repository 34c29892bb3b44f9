package validation

import (
	"errors"
	"testing"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Species  string `json:"species" validate:"omitempty,oneof=Cat Dog Mixed"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(signupForm{Email: "nope", Password: "123", Species: "Bird"})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ve.Fields["email"] != "email must be a valid email" {
		t.Fatalf("unexpected email msg: %q", ve.Fields["email"])
	}
	if ve.Fields["password"] != "password must be at least 6" {
		t.Fatalf("unexpected password msg: %q", ve.Fields["password"])
	}
	if ve.Fields["species"] != "species must be one of: Cat Dog Mixed" {
		t.Fatalf("unexpected species msg: %q", ve.Fields["species"])
	}
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(signupForm{Email: "a@b.co", Password: "secret"}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
