// Package catalog は全ユーザーで共有する映画カタログを提供する。
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/movlist/internal/model"
	"github.com/hitoshi/movlist/internal/repository"
)

// Service は映画カタログのサービス層。
type Service struct {
	repo repository.MovieRepository
}

// NewService はServiceを生成する。
func NewService(repo repository.MovieRepository) *Service {
	return &Service{repo: repo}
}

// ListMovies は全映画をID昇順で返す。0件の場合は空スライスを返す。
func (s *Service) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("映画一覧の取得に失敗しました: %w", err)
	}
	if movies == nil {
		movies = []*model.Movie{}
	}
	return movies, nil
}

// AddMovie は映画をカタログに登録し、採番後の映画を返す。
func (s *Service) AddMovie(ctx context.Context, movie model.Movie) (*model.Movie, error) {
	movie.ID = 0
	if err := s.repo.Create(ctx, &movie); err != nil {
		return nil, fmt.Errorf("映画の登録に失敗しました: %w", err)
	}

	slog.Info("movie added",
		slog.Int64("movie_id", movie.ID),
		slog.String("title", movie.Title),
	)
	return &movie, nil
}
