package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/handykonnect/handykonnect-api/internal/httperr"
)

func TestWriteBusinessError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (int, string) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		writeBusinessError(c, err, "fallback_code", "fallback message")

		var body httperr.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		return w.Code, body.Code
	}

	t.Run("admin gate maps to 403", func(t *testing.T) {
		status, code := run(httperr.ErrBusiness("admin_access_required"))
		if status != 403 || code != "admin_access_required" {
			t.Errorf("got %d %s", status, code)
		}
	})

	t.Run("conversation gate maps to 403", func(t *testing.T) {
		status, _ := run(httperr.ErrBusiness("conversation_forbidden"))
		if status != 403 {
			t.Errorf("got %d", status)
		}
	})

	t.Run("not-found codes map to 404", func(t *testing.T) {
		for _, code := range []string{"booking_not_found", "payment_not_found", "service_not_found"} {
			status, got := run(httperr.ErrBusiness(code))
			if status != 404 || got != code {
				t.Errorf("%s: got %d %s", code, status, got)
			}
		}
	})

	t.Run("other business codes map to 400", func(t *testing.T) {
		for _, code := range []string{"amount_mismatch", "invalid_transition", "already_paid"} {
			status, got := run(httperr.ErrBusiness(code))
			if status != 400 || got != code {
				t.Errorf("%s: got %d %s", code, status, got)
			}
		}
	})

	t.Run("infrastructure errors map to 500 with the fallback code", func(t *testing.T) {
		status, code := run(errors.New("connection refused"))
		if status != 500 || code != "fallback_code" {
			t.Errorf("got %d %s", status, code)
		}
	})
}
