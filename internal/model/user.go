// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。emailで一意に識別される。
// Passwordは平文のまま保存されている既知の弱点であり、レスポンスには決して含めない。
type User struct {
	Email    string
	Password string
}

// Session はユーザーのログインセッションを表す。
// 1ユーザーが複数のセッションを同時に保持できる。
type Session struct {
	OwnerEmail string
	Token      string
	CreatedAt  time.Time
}

// Identity は認証済みリクエストに紐づくユーザーを表す。
type Identity struct {
	Email string
}
