//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "bakery"
	pgPassword = "bakerypass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (ci ContainerInfo) adminDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, ci.Host, ci.Port.Port())
}

// startPostgres はプロセス内で一度だけコンテナを起動し、以降は同じものを使う
func startPostgres(t *testing.T) ContainerInfo {
	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			// 注文ドキュメントは小さいので RAM 上で十分
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=100",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return ContainerInfo{Host: host, Port: port}.adminDSN()
			}).WithStartupTimeout(90 * time.Second),
			Labels: map[string]string{"purpose": "bakery-orders-e2e"},
		}

		var err error
		postgresContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")

		t.Cleanup(func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			if err := postgresContainer.Terminate(stopCtx); err != nil {
				slog.Warn("PostgreSQLコンテナの終了に失敗しました", "error", err.Error())
			}
		})
	})

	info, err := containerEndpoint(postgresContainer)
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")
	return info
}

func containerEndpoint(c testcontainers.Container) (ContainerInfo, error) {
	ctx := context.Background()
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: port}, nil
}
