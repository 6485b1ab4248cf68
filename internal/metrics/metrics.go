// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ミドルウェア、サービス層、ワーカーから利用する。
type MetricsCollector interface {
	RecordLogin(result string)
	RecordAuthResolve(result string)
	RecordListCreated(result string)
	RecordHTTPStatus(statusCode int)
	RecordRequestDuration(duration time.Duration)
	RecordSessionsCleaned(count int64)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	login           *prometheus.CounterVec
	authResolve     *prometheus.CounterVec
	listsCreated    *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
	sessionsCleaned prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		login: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "movlist_login_total",
			Help: "ログイン試行の結果別の合計数",
		}, []string{"result"}),
		authResolve: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "movlist_auth_resolve_total",
			Help: "Cookieからのユーザー解決の結果別の合計数",
		}, []string{"result"}),
		listsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "movlist_lists_created_total",
			Help: "リスト作成の結果別の合計数",
		}, []string{"result"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "movlist_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "movlist_http_request_duration_seconds",
			Help:    "HTTPリクエストの処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		sessionsCleaned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "movlist_sessions_cleaned_total",
			Help: "期限切れで削除されたセッションの合計数",
		}),
	}

	reg.MustRegister(
		c.login,
		c.authResolve,
		c.listsCreated,
		c.httpStatus,
		c.requestDuration,
		c.sessionsCleaned,
	)

	return c
}

// RecordLogin はログイン結果を記録する。
func (c *Collector) RecordLogin(result string) {
	c.login.WithLabelValues(result).Inc()
}

// RecordAuthResolve はユーザー解決の結果を記録する。
func (c *Collector) RecordAuthResolve(result string) {
	c.authResolve.WithLabelValues(result).Inc()
}

// RecordListCreated はリスト作成の結果を記録する。
func (c *Collector) RecordListCreated(result string) {
	c.listsCreated.WithLabelValues(result).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエストの処理時間を記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// RecordSessionsCleaned は削除されたセッション数を記録する。
func (c *Collector) RecordSessionsCleaned(count int64) {
	c.sessionsCleaned.Add(float64(count))
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを登録したServeMuxを返す。
// 呼び出し側で他のエンドポイントを追加できる。
func SetupMetricsRoute(gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
