// Package database はデータベース接続とマイグレーション管理を提供する。
package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// NewMigrator はマイグレーション実行用のmigrateインスタンスを生成する。
// PostgreSQL系はdatabaseURLから専用の接続を開く。
// SQLiteは :memory: を共有するため既存のコネクションプールをそのまま使う。
// SQLiteの場合、返されたmigrateをCloseするとdbも閉じられる。
func NewMigrator(db *DB, databaseURL string) (*migrate.Migrate, error) {
	switch db.Driver() {
	case DriverPostgres, DriverPgx:
		source, err := iofs.New(migrationsFS, "migrations/postgres")
		if err != nil {
			return nil, fmt.Errorf("failed to create migration source: %w", err)
		}

		m, err := migrate.NewWithSourceInstance("iofs", source, migrationURL(db.Driver(), databaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to create migrator: %w", err)
		}
		return m, nil

	case DriverSQLite:
		source, err := iofs.New(migrationsFS, "migrations/sqlite")
		if err != nil {
			return nil, fmt.Errorf("failed to create migration source: %w", err)
		}

		driver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create migration driver: %w", err)
		}

		m, err := migrate.NewWithInstance("iofs", source, DriverSQLite, driver)
		if err != nil {
			return nil, fmt.Errorf("failed to create migrator: %w", err)
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %q", db.Driver())
	}
}

// RunMigrations はすべてのマイグレーションを適用する。
// すでに最新の場合はエラーなしで返る。dbは閉じない。
func RunMigrations(db *DB, databaseURL string) error {
	m, err := NewMigrator(db, databaseURL)
	if err != nil {
		return err
	}
	if db.Driver() != DriverSQLite {
		defer m.Close()
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// migrationURL はgolang-migrateのドライバ登録名に合わせてURLスキームを置き換える。
// pgxドライバは "pgx5://" で登録されている。
func migrationURL(driver, databaseURL string) string {
	if driver != DriverPgx {
		return databaseURL
	}
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}
