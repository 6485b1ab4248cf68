// Package cleanup は期限切れセッションの定期削除ジョブを提供する。
// SESSION_MAX_AGE が正の場合のみ、作成からmaxAgeを超えたセッションを削除する。
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SessionDeleter は作成日時でセッションを一括削除するインターフェース。
// repository.SessionRepository が満たす。
type SessionDeleter interface {
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MetricsRecorder は削除件数を記録するインターフェース。
type MetricsRecorder interface {
	RecordSessionsCleaned(count int64)
}

// SessionCleanupJob は期限切れセッションの削除ジョブ。
// 冪等であり、削除対象がない場合もエラーにならない。
type SessionCleanupJob struct {
	sessions SessionDeleter
	logger   *slog.Logger
	metrics  MetricsRecorder
	maxAge   time.Duration
	now      func() time.Time
}

// NewSessionCleanupJob は新しいSessionCleanupJobを生成する。
// maxAgeが0以下の場合、Runは何も削除しない。metricsはnilでもよい。
func NewSessionCleanupJob(sessions SessionDeleter, logger *slog.Logger, metrics MetricsRecorder, maxAge time.Duration) *SessionCleanupJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionCleanupJob{
		sessions: sessions,
		logger:   logger,
		metrics:  metrics,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Enabled はセッションの有効期限が設定されているかを返す。
func (j *SessionCleanupJob) Enabled() bool {
	return j.maxAge > 0
}

// Run は作成からmaxAgeを超えたセッションを削除し、削除件数を返す。
func (j *SessionCleanupJob) Run(ctx context.Context) (int64, error) {
	if !j.Enabled() {
		return 0, nil
	}

	start := time.Now()
	cutoff := j.now().Add(-j.maxAge)

	deleted, err := j.sessions.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("セッションクリーンアップジョブの実行に失敗しました",
			slog.String("error", err.Error()),
			slog.Duration("max_age", j.maxAge),
		)
		return 0, fmt.Errorf("セッションクリーンアップの実行に失敗: %w", err)
	}

	if j.metrics != nil {
		j.metrics.RecordSessionsCleaned(deleted)
	}

	j.logger.Info("セッションクリーンアップジョブが完了しました",
		slog.Int64("deleted_count", deleted),
		slog.Duration("max_age", j.maxAge),
		slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
	)

	return deleted, nil
}

// Start はintervalごとにRunを実行する。起動直後にも1回実行する。
// コンテキストがキャンセルされるまでブロックする。
func (j *SessionCleanupJob) Start(ctx context.Context, interval time.Duration) {
	if !j.Enabled() {
		j.logger.Info("セッションに有効期限がないため、クリーンアップジョブは待機のみ行います")
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	j.logger.Info("セッションクリーンアップジョブを開始しました",
		slog.Duration("interval", interval),
		slog.Duration("max_age", j.maxAge),
	)

	j.runAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("セッションクリーンアップジョブを停止しました")
			return
		case <-ticker.C:
			j.runAndLog(ctx)
		}
	}
}

// runAndLog はRunを実行する。エラーはRun内でログ出力済みのため握りつぶす。
func (j *SessionCleanupJob) runAndLog(ctx context.Context) {
	_, _ = j.Run(ctx)
}
