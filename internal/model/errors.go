package model

import "errors"

// 認証・リスト操作のエラー分類。
// ハンドラーは errors.Is で判定し、ユーザー向けの短いメッセージに変換する。
var (
	// ErrNoCookie は auth_token Cookie が存在しないことを示す。
	ErrNoCookie = errors.New("auth cookie not present")
	// ErrUnknownToken はトークンに対応するセッションが存在しないことを示す。
	// 所有ユーザーが削除済みのセッションもこれに含む。
	ErrUnknownToken = errors.New("unknown session token")
	// ErrInvalidCredentials はemailとパスワードの組が一致しないことを示す。
	// emailの存在有無は区別しない。
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionPersist はセッションの永続化に失敗したことを示す。
	ErrSessionPersist = errors.New("failed to persist session")
	// ErrListCreate はリスト作成に失敗したことを示す。
	ErrListCreate = errors.New("failed to create list")
	// ErrUserExists は同じemailのユーザーが既に存在することを示す。
	ErrUserExists = errors.New("user already exists")
	// ErrStorageUnavailable は「該当行なし」以外のストレージエラーを示す。
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// 失敗時にユーザーへ返すメッセージ。
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgSessionPersist     = "Failed to persist user session data"
	MsgNotIdentified      = "user not identified"
	MsgListCreated        = "Created the list"
	MsgListCreateFailed   = "Could not create the list"
	MsgListFetchFailed    = "Could not fetch lists"
	MsgUserCreateFailed   = "Could not create user"
	MsgUserListFailed     = "Could not list users"
	MsgMovieListFailed    = "Could not list movies"
	MsgMovieCreateFailed  = "Could not create movie"
	MsgInvalidRequest     = "Invalid request body"
	MsgInternalError      = "internal server error"
	MsgTooManyRequests    = "Too many requests"
)
