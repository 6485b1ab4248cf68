package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hitoshi/movlist/internal/database"
	"github.com/hitoshi/movlist/internal/model"
)

// newTestDB はマイグレーション済みのインメモリSQLiteを返す。
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, ":memory:"))
	return db
}

// seedUser はテスト用ユーザーを作成する。
func seedUser(t *testing.T, db *database.DB, email, password string) {
	t.Helper()
	require.NoError(t, NewSQLUserRepo(db).Create(context.Background(), &model.User{Email: email, Password: password}))
}

// seedMovies は指定タイトルの映画を順に登録し、IDを返す。
func seedMovies(t *testing.T, db *database.DB, titles ...string) []int64 {
	t.Helper()

	repo := NewSQLMovieRepo(db)
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		m := &model.Movie{Title: title}
		require.NoError(t, repo.Create(context.Background(), m))
		ids = append(ids, m.ID)
	}
	return ids
}
