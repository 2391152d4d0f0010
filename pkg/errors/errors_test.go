package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   &AppError{Code: CodeNotFound, Message: "appointment not found"},
			expected: "NOT_FOUND: appointment not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("database connection failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: database connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	if !errors.Is(appErr, originalErr) {
		t.Errorf("errors.Is should see through AppError")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Appointment"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Appointment", "abc"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"field validation", FieldValidation("email", "bad email"), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad body"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("dup"), CodeConflict, http.StatusConflict},
		{"slot unavailable", SlotUnavailable("2024-03-11", "14:00"), CodeSlotUnavailable, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("Booking store"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestFieldValidation_Details(t *testing.T) {
	err := FieldValidation("phone", "Please enter a valid phone number")
	if err.Details["field"] != "phone" {
		t.Errorf("expected field 'phone', got %v", err.Details["field"])
	}
}

func TestSlotUnavailable_Details(t *testing.T) {
	err := SlotUnavailable("2024-03-11", "14:00")
	if err.Details["date"] != "2024-03-11" || err.Details["reference_time"] != "14:00" {
		t.Errorf("unexpected details: %v", err.Details)
	}
	if err.Retryable() {
		t.Error("slot unavailable must not be retryable")
	}
}

func TestRetryable(t *testing.T) {
	if !Internal("store down", nil).Retryable() {
		t.Error("internal errors are retryable")
	}
	if !Unavailable("Booking store").Retryable() {
		t.Error("unavailable errors are retryable")
	}
	if FieldValidation("name", "too short").Retryable() {
		t.Error("validation errors are not retryable")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("Appointment")
	wrapped := fmt.Errorf("service: %w", appErr)

	if !IsAppError(appErr) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError() should return true for wrapped AppError")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("tx: %w", SlotUnavailable("2024-03-11", "14:00"))
	if !HasCode(err, CodeSlotUnavailable) {
		t.Error("expected wrapped slot-unavailable code")
	}
	if HasCode(err, CodeConflict) {
		t.Error("unexpected conflict code")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Appointment")
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	data := NotFoundWithID("Appointment", "12345").ToJSON()

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	if decoded["code"] != CodeNotFound {
		t.Errorf("expected code NOT_FOUND, got %v", decoded["code"])
	}
	if decoded["message"] != "Appointment not found" {
		t.Errorf("unexpected message %v", decoded["message"])
	}
}
