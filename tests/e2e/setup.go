//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"padel-booking/cmd/bootstrap"
	"padel-booking/cmd/bootstrap/components"
	"padel-booking/internal/infra/db"
	"padel-booking/internal/pkg/config"
	"padel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	postgresImage = "postgres:17"
	pgUser        = "padel"
	pgPassword    = "padel-e2e"
	migrationGlob = "migrations/*.sql"
)

// One container per test binary; every suite gets its own database inside it.
var shared struct {
	once      sync.Once
	container testcontainers.Container
	host      string
	port      string
	err       error
}

// SharedSuite boots the padel API against a throwaway database holding the
// reference courts and time slots from dbtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := postgresEndpoint(t)
	s.Config = config.NewTestConfig()
	s.Config.DB = isolatedDatabase(t, host, port)

	pool, closePool, err := db.Connect(context.Background(), s.Config.DB)
	require.NoError(t, err, "connect to suite database")
	t.Cleanup(closePool)
	s.DB = pool

	require.NoError(t, applyMigrations(pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed courts and time slots")

	s.Router = startApp(t, pool, s.Config)
}

// SetupSubTest truncates every table and re-seeds the reference catalog, so every
// s.Run starts from the same courts and slots.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func postgresEndpoint(t *testing.T) (string, string) {
	t.Helper()
	shared.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		shared.container, shared.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
		if shared.err != nil {
			return
		}

		var mapped nat.Port
		if mapped, shared.err = shared.container.MappedPort(ctx, "5432/tcp"); shared.err != nil {
			return
		}
		shared.port = mapped.Port()
		shared.host, shared.err = shared.container.Host(ctx)
	})
	require.NoError(t, shared.err, "start postgres container")
	return shared.host, shared.port
}

func postgresRequest() testcontainers.ContainerRequest {
	// durability is irrelevant for a container that lives as long as the test binary
	flags := map[string]string{
		"fsync":              "off",
		"full_page_writes":   "off",
		"synchronous_commit": "off",
		"shared_buffers":     "256MB",
		"max_connections":    "200",
		"log_statement":      "none",
	}
	cmd := []string{"postgres"}
	for k, v := range flags {
		cmd = append(cmd, "-c", k+"="+v)
	}

	return testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   cmd,
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(host, port.Port())
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"app": "padel-booking", "purpose": "e2e"},
	}
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)
}

// isolatedDatabase creates padel_<uuid> and drops it when the suite ends.
func isolatedDatabase(t *testing.T, host, port string) config.DBConfig {
	t.Helper()
	name := "padel_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// parallel suites race on the template database lock
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "database", name, "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 400 * time.Millisecond)
	}
	require.NoError(t, err, "create database %s", name)

	// registered before the pool cleanup, so it runs after the pool is closed
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// applyMigrations runs every file under migrations/ in name order.
func applyMigrations(pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, migrationGlob))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found under %s", root)
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f) // #nosec G304 -- test fixture path
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// moduleRoot walks up from the package directory go test runs in until it finds go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

// startApp assembles the same fx modules as cmd/api, swapping in the suite's pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(bootstrap.NewBusinessLocation),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})

	require.NotNil(t, router)
	return router
}
