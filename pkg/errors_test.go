package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		appErr := NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)

		if appErr.HTTPStatus != http.StatusNotFound {
			t.Errorf("expected 404, got %d", appErr.HTTPStatus)
		}
		if appErr.Error() != "DEVICE_NOT_FOUND: Device not found" {
			t.Errorf("unexpected error string %q", appErr.Error())
		}

		body := appErr.ToHTTPError()
		if body.Code != "DEVICE_NOT_FOUND" || body.Message != "Device not found" {
			t.Errorf("unexpected body %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("table missing")
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

		if !errors.Is(appErr, cause) {
			t.Error("expected wrapped cause to be reachable via errors.Is")
		}
	})
}
