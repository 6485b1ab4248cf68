package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/movlist/internal/model"
)

// TestWriteMessage_WritesJSONString はメッセージがJSON文字列として書き込まれることを検証する。
func TestWriteMessage_WritesJSONString(t *testing.T) {
	w := httptest.NewRecorder()

	WriteMessage(w, http.StatusUnauthorized, model.MsgInvalidCredentials)

	resp := w.Result()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}
	if body := w.Body.String(); body != "\"Invalid credentials\"\n" {
		t.Errorf("body = %q, want %q", body, "\"Invalid credentials\"\n")
	}
}

func TestWriteMessage_DifferentStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"201 Created", http.StatusCreated, model.MsgListCreated},
		{"400 Bad Request", http.StatusBadRequest, model.MsgListCreateFailed},
		{"500 Internal Server Error", http.StatusInternalServerError, model.MsgListFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteMessage(w, tt.statusCode, tt.message)

			if w.Code != tt.statusCode {
				t.Errorf("status = %d, want %d", w.Code, tt.statusCode)
			}
			var got string
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestWriteJSON_EncodesValue(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"email": "a@x.com"})

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body["email"] != "a@x.com" {
		t.Errorf("email = %q, want %q", body["email"], "a@x.com")
	}
}

// TestWriteInternalServerError_HidesDetails は内部エラーが一般的なメッセージのみを返すことを検証する。
func TestWriteInternalServerError_HidesDetails(t *testing.T) {
	w := httptest.NewRecorder()

	WriteInternalServerError(w)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	var got string
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if got != model.MsgInternalError {
		t.Errorf("message = %q, want %q", got, model.MsgInternalError)
	}
}
