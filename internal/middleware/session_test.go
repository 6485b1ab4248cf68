package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/movlist/internal/model"
)

// --- モック定義 ---

type mockResolver struct {
	resolveFn func(ctx context.Context, token string) (model.Identity, error)
	calls     []string
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (model.Identity, error) {
	m.calls = append(m.calls, token)
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token)
	}
	return model.Identity{}, model.ErrUnknownToken
}

// tokenResolver は指定トークンのみを解決するリゾルバを返す。
func tokenResolver(token, email string) *mockResolver {
	return &mockResolver{
		resolveFn: func(_ context.Context, got string) (model.Identity, error) {
			if got == "" {
				return model.Identity{}, model.ErrNoCookie
			}
			if got == token {
				return model.Identity{Email: email}, nil
			}
			return model.Identity{}, model.ErrUnknownToken
		},
	}
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var msg string
	if err := json.NewDecoder(w.Result().Body).Decode(&msg); err != nil {
		t.Fatalf("failed to decode JSON string body: %v", err)
	}
	return msg
}

// --- テスト ---

func TestSessionMiddleware_ValidToken_InjectsIdentity(t *testing.T) {
	resolver := tokenResolver("valid-token", "a@x.com")
	mw := NewSessionMiddleware(resolver)

	var captured model.Identity
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Error("expected identity in context")
		}
		captured = identity
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "valid-token"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if captured.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", captured.Email, "a@x.com")
	}
}

func TestSessionMiddleware_Failures_Return401(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		err    error
	}{
		{"Cookieなし", nil, nil},
		{"空のCookie", &http.Cookie{Name: AuthCookieName, Value: ""}, nil},
		{"未知のトークン", &http.Cookie{Name: AuthCookieName, Value: "unknown"}, nil},
		{"別名のCookie", &http.Cookie{Name: "session_id", Value: "valid-token"}, nil},
		{"ストレージエラー", &http.Cookie{Name: AuthCookieName, Value: "valid-token"}, model.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := tokenResolver("valid-token", "a@x.com")
			if tt.err != nil {
				resolver.resolveFn = func(context.Context, string) (model.Identity, error) {
					return model.Identity{}, tt.err
				}
			}
			handler := NewSessionMiddleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler should not be called")
			}))

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			if msg := decodeMessage(t, w); msg != model.MsgNotIdentified {
				t.Errorf("body = %q, want %q", msg, model.MsgNotIdentified)
			}
		})
	}
}

func TestSessionMiddleware_PassesRawCookieValueToResolver(t *testing.T) {
	resolver := &mockResolver{}
	handler := NewSessionMiddleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "not-a-uuid"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if len(resolver.calls) != 1 || resolver.calls[0] != "not-a-uuid" {
		t.Errorf("resolver calls = %v, want [not-a-uuid]", resolver.calls)
	}
}

func TestOptionalSessionMiddleware_ValidToken_InjectsIdentity(t *testing.T) {
	handler := NewOptionalSessionMiddleware(tokenResolver("valid-token", "a@x.com"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity.Email != "a@x.com" {
				t.Errorf("identity = %+v, ok = %v", identity, ok)
			}
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "valid-token"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestOptionalSessionMiddleware_Failure_ProceedsWithoutIdentity(t *testing.T) {
	for _, cookie := range []*http.Cookie{nil, {Name: AuthCookieName, Value: "unknown"}} {
		called := false
		handler := NewOptionalSessionMiddleware(tokenResolver("valid-token", "a@x.com"))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if _, ok := IdentityFromContext(r.Context()); ok {
					t.Error("identity should not be set")
				}
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if !called {
			t.Error("handler should be called")
		}
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	}
}

func TestIdentityFromContext_NoValue(t *testing.T) {
	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Error("expected ok = false for empty context")
	}
}

func TestIdentityFromContext_EmptyEmail(t *testing.T) {
	ctx := ContextWithIdentity(context.Background(), model.Identity{})
	if _, ok := IdentityFromContext(ctx); ok {
		t.Error("expected ok = false for empty email")
	}
}

func TestContextWithIdentity_RoundTrip(t *testing.T) {
	ctx := ContextWithIdentity(context.Background(), model.Identity{Email: "a@x.com"})
	identity, ok := IdentityFromContext(ctx)
	if !ok || identity.Email != "a@x.com" {
		t.Errorf("identity = %+v, ok = %v", identity, ok)
	}
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := TokenFromRequest(req); got != "" {
		t.Errorf("TokenFromRequest() = %q, want empty", got)
	}

	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "tok"})
	if got := TokenFromRequest(req); got != "tok" {
		t.Errorf("TokenFromRequest() = %q, want %q", got, "tok")
	}
}
