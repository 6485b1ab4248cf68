package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// decodeMessage はJSON文字列のレスポンスボディを取り出す。
func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var msg string
	if err := json.NewDecoder(w.Body).Decode(&msg); err != nil {
		t.Fatalf("failed to decode JSON string body: %v (raw %q)", err, w.Body.String())
	}
	return msg
}

// findCookie はレスポンスから指定名のCookieを探す。
func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
