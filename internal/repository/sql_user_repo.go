package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hitoshi/movlist/internal/database"
	"github.com/hitoshi/movlist/internal/model"
)

// SQLUserRepo はdatabase/sqlを使用したユーザーリポジトリ。
type SQLUserRepo struct {
	db *database.DB
}

// NewSQLUserRepo はSQLUserRepoを生成する。
func NewSQLUserRepo(db *database.DB) *SQLUserRepo {
	return &SQLUserRepo{db: db}
}

// Create はユーザーを作成する。
func (r *SQLUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(
		`INSERT INTO users (email, password) VALUES ($1, $2)`),
		user.Email, user.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			err = errors.Join(model.ErrUserExists, err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByCredentials はemailとパスワードが完全一致するユーザーを取得する。見つからない場合はnilを返す。
func (r *SQLUserRepo) FindByCredentials(ctx context.Context, email, password string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, r.db.Rebind(
		`SELECT email, password FROM users WHERE email = $1 AND password = $2`),
		email, password,
	).Scan(&user.Email, &user.Password)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by credentials: %w", err)
	}

	return user, nil
}

// ListEmails は登録済みユーザーのemail一覧を返す。
func (r *SQLUserRepo) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT email FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return emails, nil
}

// compile-time interface check
var _ UserRepository = (*SQLUserRepo)(nil)
