// Package user はユーザー登録と一覧のドメインロジックを提供する。
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hitoshi/movlist/internal/model"
	"github.com/hitoshi/movlist/internal/repository"
)

// Service はユーザー管理のサービス層。
type Service struct {
	userRepo repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// Signup はemailとパスワードでユーザーを登録する。
// パスワードは平文のまま保存される。
// emailが登録済みの場合は model.ErrUserExists を含むエラーを返す。
func (s *Service) Signup(ctx context.Context, email, password string) error {
	err := s.userRepo.Create(ctx, &model.User{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, model.ErrUserExists) {
			slog.Info("signup rejected: email already registered",
				slog.String("email", email),
			)
		} else {
			slog.Error("failed to create user",
				slog.String("email", email),
				slog.String("error", err.Error()),
			)
		}
		return fmt.Errorf("ユーザーの登録に失敗しました: %w", err)
	}

	slog.Info("user signed up", slog.String("email", email))
	return nil
}

// ListEmails は登録済みユーザーのemail一覧を返す。
// パスワードは含めない。
func (s *Service) ListEmails(ctx context.Context) ([]string, error) {
	emails, err := s.userRepo.ListEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	if emails == nil {
		emails = []string{}
	}
	return emails, nil
}

// CreatedMessage は登録成功時にクライアントへ返すメッセージを組み立てる。
func CreatedMessage(email string) string {
	return "Created user with email: " + email
}
