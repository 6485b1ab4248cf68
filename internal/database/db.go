package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// サポートするドライバ名。
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

// sqlitePragmas はSQLite接続ごとに適用するプラグマ。
// 外部キー制約はデフォルトで無効なので明示的に有効化する。
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// DB はコネクションプールとドライバ種別を保持する。
// 全リポジトリで共有し、リクエスト間で並行に使用してよい。
type DB struct {
	*sql.DB
	driver string
}

// Open は指定ドライバでデータベース接続を開く。
// driverは "postgres"（lib/pq）、"pgx"（pgx/v5 stdlib）、"sqlite"（modernc.org/sqlite）のいずれか。
// sql.Openは接続を試行しないため、実際の接続確認にはdb.Ping()を使用すること。
func Open(driver, databaseURL string) (*DB, error) {
	dsn := databaseURL

	switch driver {
	case DriverPostgres, DriverPgx:
	case DriverSQLite:
		dsn = sqliteDSN(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLiteは同時書き込みに対応しない。:memory: の場合は接続ごとに別DBになるため1本に固定する。
		db.SetMaxOpenConns(1)
	}

	return &DB{DB: db, driver: driver}, nil
}

// Driver はドライバ名を返す。
func (db *DB) Driver() string {
	return db.driver
}

// Rebind はPostgreSQL形式のプレースホルダ（$1, $2...）を接続先の方言に変換する。
// SQLiteでは番号付きパラメータ（?1, ?2...）に置き換える。
func (db *DB) Rebind(query string) string {
	if db.driver != DriverSQLite {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// sqliteDSN はDATABASE_URLからmodernc.org/sqlite用のDSNを組み立てる。
// "sqlite://" プレフィックスを除去し、必要なプラグマを付与する。
func sqliteDSN(databaseURL string) string {
	dsn := strings.TrimPrefix(databaseURL, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "sqlite3://")

	for _, p := range sqlitePragmas {
		if strings.Contains(dsn, p) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p
	}
	return dsn
}
