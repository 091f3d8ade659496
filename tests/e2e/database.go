//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"bakery-orders/internal/infra/db"
	"bakery-orders/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// createDatabase はテストプロセスごとに専用のデータベースを作り、スキーマを適用する
func createDatabase(t *testing.T, info ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "orders_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgx.Connect(ctx, info.adminDSN())
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close(context.Background())

	// コンテナ起動直後は CREATE DATABASE が失敗することがある
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() { dropDatabase(info, dbName) })

	dbConfig := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "America/Sao_Paulo",
		MaxConns: 5,
	}

	pool, _, err := db.Connect(ctx, dbConfig, slog.Default())
	require.NoError(t, err, "データベース接続に失敗")
	require.NotNil(t, pool, "データベース接続が nil です")

	require.NoError(t, applyMigrations(ctx, pool), "データベースマイグレーションに失敗")
	return pool, dbConfig
}

func dropDatabase(info ContainerInfo, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin, err := pgx.Connect(ctx, info.adminDSN())
	if err != nil {
		slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
		return
	}
	defer admin.Close(context.Background())

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
		slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
	}
}

// applyMigrations は cmd/migrate と同じ migrations/ の SQL をファイル名順に 1 トランザクションで流す
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found in %s", dir)
	}
	slices.Sort(files)

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, file := range files {
			sql, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read migration %s: %w", filepath.Base(file), err)
			}
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return fmt.Errorf("apply migration %s: %w", filepath.Base(file), err)
			}
		}
		return nil
	})
}

// migrationsDir resolves the repository's migrations/ from this file's location,
// independent of the package directory go test runs in.
func migrationsDir() (string, error) {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("cannot locate e2e sources")
	}
	dir := filepath.Join(filepath.Dir(self), "..", "..", "migrations")
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("migrations directory: %w", err)
	}
	return dir, nil
}
