package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type monthFilter struct {
	Month string `binding:"omitempty,year_month"`
}

type datedRequest struct {
	Date string `binding:"omitempty,date_value"`
	Name string `binding:"omitempty,notblank"`
}

func init() {
	Register()
}

func TestYearMonth(t *testing.T) {
	tests := map[string]bool{
		"":           true,
		"2024-03":    true,
		"2024-12":    true,
		"2024-13":    false,
		"2024-3":     false,
		"24-03":      false,
		"2024-03-01": false,
	}
	for in, ok := range tests {
		err := binding.Validator.ValidateStruct(monthFilter{Month: in})
		if ok && err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
		}
		if !ok && err == nil {
			t.Errorf("%q: expected validation error", in)
		}
	}
}

func TestDateValue(t *testing.T) {
	for _, in := range []string{"2024-03", "2024-03-15", "2024-03-15T10:30", "2024-03-15T10:30:00Z"} {
		if err := binding.Validator.ValidateStruct(datedRequest{Date: in}); err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
		}
	}

	err := binding.Validator.ValidateStruct(datedRequest{Date: "next tuesday"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || verrs[0].Tag() != "date_value" {
		t.Errorf("expected date_value failure, got %v", err)
	}
}

func TestNotBlank(t *testing.T) {
	if err := binding.Validator.ValidateStruct(datedRequest{Name: "   "}); err == nil {
		t.Error("expected whitespace-only name to fail")
	}
	if err := binding.Validator.ValidateStruct(datedRequest{Name: " Food "}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
