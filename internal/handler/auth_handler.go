// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/movlist/internal/middleware"
	"github.com/hitoshi/movlist/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	CookieDomain  string
	CookieSecure  bool
	SessionMaxAge int // セッションCookieの有効期間（秒）。0の場合はブラウザセッション限り
}

// AuthHandler はログイン・ログアウト・本人確認のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	config  AuthHandlerConfig
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
	}
}

// credentialsRequest はサインアップ・ログインのリクエストボディ。
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse はログイン成功時のレスポンス。パスワードは含めない。
type loginResponse struct {
	Email string `json:"email"`
}

// Login はemailとパスワードを検証し、auth_token Cookieを発行する。
// POST /login（GET /login もJSONボディ付きで受け付ける）
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteMessage(w, http.StatusBadRequest, model.MsgInvalidRequest)
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrSessionPersist) {
			middleware.WriteMessage(w, http.StatusUnauthorized, model.MsgSessionPersist)
			return
		}
		middleware.WriteMessage(w, http.StatusUnauthorized, model.MsgInvalidCredentials)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    session.Token,
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   h.config.SessionMaxAge,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.WriteJSON(w, http.StatusOK, loginResponse{Email: session.OwnerEmail})
}

// Logout はセッションを破棄し、Cookieをクリアする。
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.TokenFromRequest(r); token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			slog.Error("failed to logout", slog.String("error", err.Error()))
			// ログアウト失敗してもCookieはクリアする
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// WhoAmI は認証済みユーザーのemailを返す。
// GET /whoami
func (h *AuthHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteMessage(w, http.StatusUnauthorized, model.MsgNotIdentified)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, identity.Email)
}
