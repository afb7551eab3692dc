package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type menuInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=200"`
	Recipe   string  `json:"recipe" validate:"nullable,max=2000"`
	Category string  `json:"category" validate:"required,in=salad,pizza,soup,dessert,drinks,popular"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(menuInput{
		Name:     "Roast Duck Breast",
		Recipe:   "", // nullable — allowed to be empty
		Category: "salad",
		Price:    14.5,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(menuInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestGtRule(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	}
	errs := validate.Struct(in{Price: -1})
	if _, ok := errs["price"]; !ok {
		t.Error("expected gt violation for negative price")
	}
	errs = validate.Struct(in{Price: 0.01})
	if validate.HasErrors(errs) {
		t.Errorf("expected positive price to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	errs := validate.Struct(menuInput{
		Name:     "Mystery Dish",
		Category: "sushi",
		Price:    9.0,
	})
	if _, ok := errs["category"]; !ok {
		t.Error("expected in violation for unknown category")
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	errs := validate.Struct(menuInput{
		Name:     "X",
		Category: "salad",
		Price:    5,
	})
	if _, ok := errs["name"]; !ok {
		t.Error("expected min violation for one-character name")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	type in struct {
		Photo string `json:"photo" validate:"nullable,max=5"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Photo: "toolongvalue"}); !validate.HasErrors(errs) {
		t.Error("expected max violation when nullable is set")
	}
}
