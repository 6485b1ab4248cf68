package repository

import (
	"context"
	"fmt"

	"github.com/hitoshi/movlist/internal/database"
	"github.com/hitoshi/movlist/internal/model"
)

// SQLListRepo はdatabase/sqlを使用した映画リストリポジトリ。
type SQLListRepo struct {
	db *database.DB
}

// NewSQLListRepo はSQLListRepoを生成する。
func NewSQLListRepo(db *database.DB) *SQLListRepo {
	return &SQLListRepo{db: db}
}

// CreateWithMovies はリストと映画の紐付けを同一トランザクションで作成する。
// 紐付けはmovieIDsの順に挿入する。
func (r *SQLListRepo) CreateWithMovies(ctx context.Context, list *model.List, movieIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// リストを作成
	var listID int64
	err = tx.QueryRowContext(ctx, r.db.Rebind(
		`INSERT INTO lists (owner_email, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING id`),
		list.OwnerEmail, list.Name, list.Description,
	).Scan(&listID)
	if err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}

	// 映画の紐付けを作成
	insertMember := r.db.Rebind(
		`INSERT INTO list_movies (list_id, owner_email, movie_id) VALUES ($1, $2, $3)`)
	for _, movieID := range movieIDs {
		if _, err := tx.ExecContext(ctx, insertMember, listID, list.OwnerEmail, movieID); err != nil {
			return fmt.Errorf("failed to insert list movie %d: %w", movieID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	list.ID = listID
	return nil
}

// ListRowsByOwner はユーザーのリストを映画と結合した行を返す。
// 集約処理の前提条件としてlist_id昇順で返す。
func (r *SQLListRepo) ListRowsByOwner(ctx context.Context, ownerEmail string) ([]model.ListRow, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(
		`SELECT l.id, l.name, m.title
		 FROM lists l
		 JOIN list_movies lm ON lm.list_id = l.id AND lm.owner_email = l.owner_email
		 JOIN movies m ON m.id = lm.movie_id
		 WHERE l.owner_email = $1
		 ORDER BY l.id, lm.id`),
		ownerEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rows by owner: %w", err)
	}
	defer rows.Close()

	results := make([]model.ListRow, 0)
	for rows.Next() {
		var row model.ListRow
		if err := rows.Scan(&row.ListID, &row.ListName, &row.Title); err != nil {
			return nil, fmt.Errorf("failed to scan list row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list rows: %w", err)
	}

	return results, nil
}

// compile-time interface check
var _ ListRepository = (*SQLListRepo)(nil)
