// Package auth はパスワードログイン、セッション発行、Cookieからのユーザー解決を提供する。
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/movlist/internal/model"
	"github.com/hitoshi/movlist/internal/repository"
)

// CredentialFinder はemailとパスワードでユーザーを検索するインターフェース。
type CredentialFinder interface {
	FindByCredentials(ctx context.Context, email, password string) (*model.User, error)
}

// MetricsRecorder は認証結果を記録するインターフェース。
type MetricsRecorder interface {
	RecordLogin(result string)
	RecordAuthResolve(result string)
}

type nopRecorder struct{}

func (nopRecorder) RecordLogin(string)       {}
func (nopRecorder) RecordAuthResolve(string) {}

// Service は認証に関するビジネスロジックを提供する。
type Service struct {
	users       CredentialFinder
	sessionRepo repository.SessionRepository
	metrics     MetricsRecorder
	newToken    func() string
	now         func() time.Time
}

// NewService はServiceを生成する。metricsがnilの場合は記録しない。
func NewService(
	users CredentialFinder,
	sessionRepo repository.SessionRepository,
	metrics MetricsRecorder,
) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		users:       users,
		sessionRepo: sessionRepo,
		metrics:     metrics,
		newToken:    NewToken,
		now:         time.Now,
	}
}

// NewToken は推測不能なセッショントークン（UUID v4）を生成する。
func NewToken() string {
	return uuid.NewString()
}

// Login はemailとパスワードを検証し、新しいセッションを発行する。
// 不一致の場合はemailの存在有無にかかわらず model.ErrInvalidCredentials を返す。
// セッションの保存に失敗した場合は model.ErrSessionPersist を返し、トークンは返さない。
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		slog.Error("failed to find user by credentials",
			slog.String("error", err.Error()),
		)
		s.metrics.RecordLogin("storage_error")
		return nil, errors.Join(model.ErrInvalidCredentials, model.ErrStorageUnavailable, err)
	}
	if user == nil {
		s.metrics.RecordLogin("invalid_credentials")
		return nil, model.ErrInvalidCredentials
	}

	session := &model.Session{
		OwnerEmail: user.Email,
		Token:      s.newToken(),
		CreatedAt:  s.now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		slog.Error("failed to persist session",
			slog.String("email", user.Email),
			slog.String("error", err.Error()),
		)
		s.metrics.RecordLogin("session_persist_error")
		return nil, errors.Join(model.ErrSessionPersist, err)
	}

	slog.Info("user logged in", slog.String("email", user.Email))
	s.metrics.RecordLogin("ok")
	return session, nil
}

// Resolve はCookieのトークンから認証済みユーザーを解決する。
func (s *Service) Resolve(ctx context.Context, token string) (model.Identity, error) {
	identity, err := Resolve(ctx, token, s.sessionRepo)
	s.metrics.RecordAuthResolve(resolveResult(err))
	if err != nil && errors.Is(err, model.ErrStorageUnavailable) {
		slog.Error("failed to resolve session", slog.String("error", err.Error()))
	}
	return identity, err
}

// Logout はセッションを破棄する。存在しないトークンでもエラーにしない。
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	slog.Info("user logged out")
	return nil
}
