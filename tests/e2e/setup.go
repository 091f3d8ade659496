//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"time"

	"bakery-orders/cmd/bootstrap"
	"bakery-orders/cmd/bootstrap/components"
	"bakery-orders/internal/pkg/config"
	"bakery-orders/internal/usecase/orderstore"
	"bakery-orders/internal/usecase/shared"
	"bakery-orders/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite は実際の fx 配線と PostgreSQL で API を叩く e2e スイートの共通部分
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Store  *orderstore.Store
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	info := startPostgres(t)
	pool, dbConfig := createDatabase(t, info)
	s.DB = pool
	s.Config = testConfig(dbConfig)

	app := fx.New(
		fx.Supply(s.Config),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
			// 単一インスタンスなので変更通知は不要
			func() shared.ChangeNotifier { return nil },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.TelemetryModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&s.Router, &s.Store),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
		pool.Close()
	})

	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
	require.NotNil(t, s.Store, "注文ストアのセットアップに失敗")
	slog.Info("E2E環境の準備が完了しました", "postgres_host", info.Host, "postgres_port", info.Port.Port(), "database", dbConfig.DBName)
}

// SetupSubTest はテーブルとミラーの両方を空にする
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	require.NoError(s.T(), s.Store.Load(s.T().Context()), "Failed to reload order mirror")
}

func testConfig(dbConfig config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Persistence.Driver = config.DriverPostgres
	return cfg
}
