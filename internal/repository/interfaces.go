// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"time"

	"github.com/hitoshi/movlist/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成する。emailが重複する場合は model.ErrUserExists を含むエラーを返す。
	Create(ctx context.Context, user *model.User) error

	// FindByCredentials はemailとパスワードが完全一致するユーザーを取得する。
	// 見つからない場合はnilを返す。
	FindByCredentials(ctx context.Context, email, password string) (*model.User, error)

	// ListEmails は登録済みユーザーのemail一覧をemail昇順で返す。
	ListEmails(ctx context.Context) ([]string, error)
}

// SessionRepository はセッションデータの永続化インターフェース。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error

	// FindByToken は指定トークンのセッションを取得する。
	// 該当なし・所有ユーザーが存在しない・有効期限切れの場合はnilを返す。
	FindByToken(ctx context.Context, token string) (*model.Session, error)

	// DeleteByToken は指定トークンのセッションを削除する。存在しなくてもエラーにしない。
	DeleteByToken(ctx context.Context, token string) error

	// DeleteCreatedBefore はcutoffより前に作成されたセッションを削除し、削除件数を返す。
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ListRepository は映画リストの永続化インターフェース。
type ListRepository interface {
	// CreateWithMovies はリストとその映画の紐付けを同一トランザクションで作成する。
	// いずれかのINSERTが失敗した場合は全てロールバックする。成功時はlist.IDを設定する。
	CreateWithMovies(ctx context.Context, list *model.List, movieIDs []int64) error

	// ListRowsByOwner はユーザーのリストを映画と結合した行を返す。
	// list_id昇順、同一リスト内は紐付けの挿入順に並ぶ。映画が0件のリストは含まれない。
	ListRowsByOwner(ctx context.Context, ownerEmail string) ([]model.ListRow, error)
}

// MovieRepository は映画カタログの永続化インターフェース。
type MovieRepository interface {
	// List は全映画をID昇順で返す。
	List(ctx context.Context) ([]*model.Movie, error)

	// Create は映画を登録し、movie.IDを設定する。
	Create(ctx context.Context, movie *model.Movie) error
}
