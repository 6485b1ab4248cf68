package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hitoshi/movlist/internal/model"
)

// SessionFinder はトークンからセッションを検索するインターフェース。
// repository.SessionRepositoryの部分集合として定義する。
type SessionFinder interface {
	FindByToken(ctx context.Context, token string) (*model.Session, error)
}

// Resolve は auth_token Cookie の値から認証済みユーザーを解決する。
// tokenが空の場合はCookieなしとして model.ErrNoCookie を返す。
// セッションが見つからない場合は model.ErrUnknownToken を返す。
// ストレージエラーは model.ErrStorageUnavailable でラップして返す。
// パスワードの再検証は行わない。読み取りのみで副作用はない。
//
// 失敗時の扱い（401で拒否するか、未認証のまま続行するか）は呼び出し側が決める。
func Resolve(ctx context.Context, token string, finder SessionFinder) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, model.ErrNoCookie
	}

	session, err := finder.FindByToken(ctx, token)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %w", model.ErrStorageUnavailable, err)
	}
	if session == nil || session.OwnerEmail == "" {
		return model.Identity{}, model.ErrUnknownToken
	}

	return model.Identity{Email: session.OwnerEmail}, nil
}

// resolveResult はメトリクス用に解決結果を分類する。
func resolveResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrNoCookie):
		return "no_cookie"
	case errors.Is(err, model.ErrUnknownToken):
		return "unknown_token"
	default:
		return "storage_error"
	}
}
