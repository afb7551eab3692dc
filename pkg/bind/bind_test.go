package bind_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

type payload struct {
	Name  string  `json:"name" validate:"required,min=2"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

func TestJSONValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Duck","price":14.5}`))

	var p payload
	errs, err := bind.JSON(r, &p)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if validate.HasErrors(errs) {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if p.Name != "Duck" || p.Price != 14.5 {
		t.Errorf("decoded %+v", p)
	}
}

func TestJSONMalformed(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var p payload
	if _, err := bind.JSON(r, &p); err == nil {
		t.Error("expected decode error")
	}
}

func TestJSONValidationErrors(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"D","price":-1}`))

	var p payload
	errs, err := bind.JSON(r, &p)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name error")
	}
	if _, ok := errs["price"]; !ok {
		t.Error("expected price error")
	}
}
