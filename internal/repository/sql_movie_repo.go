package repository

import (
	"context"
	"fmt"

	"github.com/hitoshi/movlist/internal/database"
	"github.com/hitoshi/movlist/internal/model"
)

// SQLMovieRepo はdatabase/sqlを使用した映画カタログリポジトリ。
type SQLMovieRepo struct {
	db *database.DB
}

// NewSQLMovieRepo はSQLMovieRepoを生成する。
func NewSQLMovieRepo(db *database.DB) *SQLMovieRepo {
	return &SQLMovieRepo{db: db}
}

// List は全映画をID昇順で返す。
func (r *SQLMovieRepo) List(ctx context.Context) ([]*model.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, release_year, genre, image_url
		 FROM movies
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := []*model.Movie{}
	for rows.Next() {
		m := &model.Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseYear, &m.Genre, &m.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}

	return movies, nil
}

// Create は映画を登録する。
func (r *SQLMovieRepo) Create(ctx context.Context, movie *model.Movie) error {
	err := r.db.QueryRowContext(ctx, r.db.Rebind(
		`INSERT INTO movies (title, description, release_year, genre, image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`),
		movie.Title, movie.Description, movie.ReleaseYear, movie.Genre, movie.ImageURL,
	).Scan(&movie.ID)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// compile-time interface check
var _ MovieRepository = (*SQLMovieRepo)(nil)
