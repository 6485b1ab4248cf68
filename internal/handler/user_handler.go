package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/movlist/internal/middleware"
	"github.com/hitoshi/movlist/internal/model"
	"github.com/hitoshi/movlist/internal/user"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// Signup はユーザーを登録する。
	Signup(ctx context.Context, email, password string) error
	// ListEmails は登録済みユーザーのemail一覧を返す。
	ListEmails(ctx context.Context) ([]string, error)
}

// UserHandler はユーザー管理のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// Signup はユーザー登録を処理する。
// POST /signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteMessage(w, http.StatusBadRequest, model.MsgInvalidRequest)
		return
	}

	if err := h.service.Signup(r.Context(), req.Email, req.Password); err != nil {
		middleware.WriteMessage(w, http.StatusBadRequest, model.MsgUserCreateFailed)
		return
	}

	middleware.WriteMessage(w, http.StatusOK, user.CreatedMessage(req.Email))
}

// Users は登録済みユーザーのemail一覧を返す。
// GET /users
func (h *UserHandler) Users(w http.ResponseWriter, r *http.Request) {
	emails, err := h.service.ListEmails(r.Context())
	if err != nil {
		middleware.WriteMessage(w, http.StatusInternalServerError, model.MsgUserListFailed)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, emails)
}
