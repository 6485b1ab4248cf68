package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hitoshi/movlist/internal/model"
	"github.com/hitoshi/movlist/internal/repository"
)

// Sanitizer はリスト名・説明を保存前に無害化するインターフェース。
type Sanitizer interface {
	Sanitize(raw string) string
}

// MetricsRecorder はリスト作成結果を記録するインターフェース。
type MetricsRecorder interface {
	RecordListCreated(result string)
}

type nopRecorder struct{}

func (nopRecorder) RecordListCreated(string) {}

// Service はリストの作成と取得を提供する。
type Service struct {
	repo      repository.ListRepository
	sanitizer Sanitizer
	metrics   MetricsRecorder
}

// NewService はServiceを生成する。sanitizer, metricsはnilでもよい。
func NewService(repo repository.ListRepository, sanitizer Sanitizer, metrics MetricsRecorder) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		repo:      repo,
		sanitizer: sanitizer,
		metrics:   metrics,
	}
}

// Create はidentityが所有するリストを作成し、採番されたIDを返す。
// リスト本体と映画の紐付けは1トランザクションで作成され、
// 失敗時は何も残らない。失敗は model.ErrListCreate として返す。
func (s *Service) Create(ctx context.Context, identity model.Identity, input model.NewList) (int64, error) {
	list := &model.List{
		OwnerEmail:  identity.Email,
		Name:        s.sanitize(input.Name),
		Description: s.sanitize(input.Description),
	}

	if err := s.repo.CreateWithMovies(ctx, list, input.MovieIDs); err != nil {
		slog.Error("failed to create list",
			slog.String("email", identity.Email),
			slog.Int("movie_count", len(input.MovieIDs)),
			slog.String("error", err.Error()),
		)
		s.metrics.RecordListCreated("error")
		return 0, errors.Join(model.ErrListCreate, err)
	}

	slog.Info("list created",
		slog.String("email", identity.Email),
		slog.Int64("list_id", list.ID),
		slog.Int("movie_count", len(input.MovieIDs)),
	)
	s.metrics.RecordListCreated("ok")
	return list.ID, nil
}

// MyLists はidentityが所有するリストを映画タイトル付きで返す。
// 映画が1件も紐付いていないリストは含まれない。
func (s *Service) MyLists(ctx context.Context, identity model.Identity) ([]model.ListSummary, error) {
	rows, err := s.repo.ListRowsByOwner(ctx, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lists: %w", err)
	}
	return Aggregate(rows), nil
}

func (s *Service) sanitize(raw string) string {
	if s.sanitizer == nil {
		return raw
	}
	return s.sanitizer.Sanitize(raw)
}
