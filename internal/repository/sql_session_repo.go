package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hitoshi/movlist/internal/database"
	"github.com/hitoshi/movlist/internal/model"
)

// SQLSessionRepo はdatabase/sqlを使用したセッションリポジトリ。
// created_at はUNIX秒で保存する。
type SQLSessionRepo struct {
	db     *database.DB
	maxAge time.Duration
	now    func() time.Time
}

// NewSQLSessionRepo はSQLSessionRepoを生成する。
// maxAgeが0以下の場合、セッションは期限切れにならない。
func NewSQLSessionRepo(db *database.DB, maxAge time.Duration) *SQLSessionRepo {
	return &SQLSessionRepo{db: db, maxAge: maxAge, now: time.Now}
}

// Create はセッションを作成する。
func (r *SQLSessionRepo) Create(ctx context.Context, session *model.Session) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(
		`INSERT INTO sessions (owner_email, token, created_at) VALUES ($1, $2, $3)`),
		session.OwnerEmail, session.Token, session.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByToken は指定トークンのセッションを取得する。
// usersと結合するため、所有ユーザーが存在しないセッションはnilになる。
func (r *SQLSessionRepo) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	var cutoff int64
	if r.maxAge > 0 {
		cutoff = r.now().Add(-r.maxAge).Unix()
	}

	var createdAt int64
	session := &model.Session{}
	err := r.db.QueryRowContext(ctx, r.db.Rebind(
		`SELECT s.owner_email, s.token, s.created_at
		 FROM sessions s
		 JOIN users u ON u.email = s.owner_email
		 WHERE s.token = $1 AND s.created_at >= $2`),
		token, cutoff,
	).Scan(&session.OwnerEmail, &session.Token, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	session.CreatedAt = time.Unix(createdAt, 0)
	return session, nil
}

// DeleteByToken は指定トークンのセッションを削除する。
func (r *SQLSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(
		`DELETE FROM sessions WHERE token = $1`),
		token,
	)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteCreatedBefore はcutoffより前に作成されたセッションを削除する。
func (r *SQLSessionRepo) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(
		`DELETE FROM sessions WHERE created_at < $1`),
		cutoff.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}

// compile-time interface check
var _ SessionRepository = (*SQLSessionRepo)(nil)
