package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/authflow/internal/model"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectionTimeout = 3 * time.Second

const (
	pgTestUser     = "test"
	pgTestPassword = "test"
	pgTestDB       = "authflow"
)

const (
	mongoTestUser     = "test"
	mongoTestPassword = "test"
)

func TestMemoryPreferenceRps(t *testing.T) {
	t.Log("running tests for memory")
	testPreferenceRps(t, NewMemoryPreferenceRepository())
}

func TestSqlitePreferenceRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "authflow.db")
	prefRps, closeDB, err := NewSqlitePreferenceRepository(ctx, path)
	require.NoError(t, err, "failed to open sqlite repository")
	defer func() {
		require.NoError(t, closeDB(), "failed to close sqlite db")
	}()

	t.Log("running tests for sqlite")
	testPreferenceRps(t, prefRps)

	t.Log("preference survives reopening the file")
	{
		require.NoError(t, prefRps.Save(ctx, model.RememberedPreference("durable", "keep@example.com")))

		reopened, closeReopened, err := NewSqlitePreferenceRepository(ctx, path)
		require.NoError(t, err, "failed to reopen sqlite repository")
		defer func() {
			_ = closeReopened()
		}()

		p, err := reopened.Find(ctx, "durable")
		require.NoError(t, err)
		require.Equal(t, model.RememberedPreference("durable", "keep@example.com"), p)
	}
}

func TestPostgresPreferenceRps(t *testing.T) {
	dockerPool := dockerPoolOrSkip(t)

	postgres, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", pgTestUser),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", pgTestPassword),
			fmt.Sprintf("POSTGRES_DB=%s", pgTestDB),
		},
	}, autoRemove)
	require.NoError(t, err, "failed to start postgresql")
	t.Cleanup(func() {
		if err := dockerPool.Purge(postgres); err != nil {
			t.Logf("failed to purge postgresql - %v", err)
		}
	})

	var pgPool *pgxpool.Pool
	pgURI := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", pgTestUser, pgTestPassword, postgres.GetPort("5432/tcp"), pgTestDB)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var e error
		pgPool, e = pgxpool.Connect(ctx, pgURI)
		if e != nil {
			return e
		}
		return pgPool.Ping(ctx)
	})
	require.NoError(t, err, "failed to establish connection to postgresql")
	defer pgPool.Close()

	migration, err := os.ReadFile(filepath.Join("..", "..", "migrations", "V1__create_preferences.sql"))
	require.NoError(t, err, "failed to read migration")

	_, err = pgPool.Exec(context.Background(), string(migration))
	require.NoError(t, err, "failed to apply migration")

	t.Log("running tests for postgres")
	testPreferenceRps(t, NewPostgresPreferenceRepository(pgPool))
}

func TestMongoPreferenceRps(t *testing.T) {
	dockerPool := dockerPoolOrSkip(t)

	mongodb, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("MONGO_INITDB_ROOT_USERNAME=%s", mongoTestUser),
			fmt.Sprintf("MONGO_INITDB_ROOT_PASSWORD=%s", mongoTestPassword),
		},
	}, autoRemove)
	require.NoError(t, err, "failed to start mongodb")
	t.Cleanup(func() {
		if err := dockerPool.Purge(mongodb); err != nil {
			t.Logf("failed to purge mongodb - %v", err)
		}
	})

	var mongoClient *mongo.Client
	mongoURI := fmt.Sprintf("mongodb://%s:%s@localhost:%s/?maxPoolSize=10", mongoTestUser, mongoTestPassword, mongodb.GetPort("27017/tcp"))
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var e error
		mongoClient, e = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if e != nil {
			return e
		}
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	require.NoError(t, err, "failed to establish connection to mongodb")
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	t.Log("running tests for mongo")
	testPreferenceRps(t, NewMongoPreferenceRepository(mongoClient))
}

func dockerPoolOrSkip(t *testing.T) *dockertest.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("container tests are skipped in short mode")
	}

	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		t.Skipf("failed to connect to docker - %v", err)
	}
	return dockerPool
}

func autoRemove(config *docker.HostConfig) {
	config.AutoRemove = true
	config.RestartPolicy = docker.RestartPolicy{Name: "no"}
}

func testPreferenceRps(t *testing.T, prefRps PreferenceRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profile := model.DefaultProfile

	t.Log("nothing is stored initially")
	{
		p, err := prefRps.Find(ctx, profile)
		require.NoError(t, err, "failed to read preference")
		require.Nil(t, p, "no preference was saved, but found one")
	}

	t.Log("save remembered preference")
	{
		err := prefRps.Save(ctx, model.RememberedPreference(profile, "user@example.com"))
		require.NoError(t, err, "failed to save preference")
	}

	t.Log("saved preference is found as a whole")
	{
		p, err := prefRps.Find(ctx, profile)
		require.NoError(t, err, "failed to read preference")
		require.Equal(t, model.RememberedPreference(profile, "user@example.com"), p, "stored preference differs from saved")
	}

	t.Log("second save replaces previous record")
	{
		err := prefRps.Save(ctx, model.RememberedPreference(profile, "other@example.com"))
		require.NoError(t, err, "failed to overwrite preference")

		p, err := prefRps.Find(ctx, profile)
		require.NoError(t, err, "failed to read preference")
		require.Equal(t, "other@example.com", p.Email, "last writer must win")
	}

	t.Log("other profiles are not affected")
	{
		p, err := prefRps.Find(ctx, "another-profile")
		require.NoError(t, err, "failed to read preference")
		require.Nil(t, p, "preference of another profile must be absent")
	}

	t.Log("delete preference")
	{
		err := prefRps.Delete(ctx, profile)
		require.NoError(t, err, "failed to delete preference")

		p, err := prefRps.Find(ctx, profile)
		require.NoError(t, err, "failed to read preference")
		require.Nil(t, p, "preference was deleted, but still present")
	}

	t.Log("deleting absent preference is not an error")
	{
		err := prefRps.Delete(ctx, profile)
		require.NoError(t, err, "delete must be idempotent")
	}
}
