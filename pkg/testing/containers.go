// Package testing holds helpers for the integration tests which need real
// Postgres and Redis instances, started in docker via dockertest.
package testing

import (
	"database/sql"
	"fmt"
	"net"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const (
	postgresUser     = "postgres"
	postgresPassword = "postgres"
	postgresDB       = "fitlog_test"
	containerTTL     = 180 // seconds
)

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func newDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create new dockertest pool")
	pool.MaxWait = time.Minute

	// uses pool to try to connect to Docker
	require.NoError(t, pool.Client.Ping(), "could not ping dockertest pool")
	return pool
}

// StartPostgres runs a throwaway postgres container and waits until it accepts
// connections. The container is purged when the test finishes.
func StartPostgres(t *testing.T) Postgres {
	t.Helper()

	pool := newDockerPool(t)
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")
	require.NoError(t, resource.Expire(containerTTL))
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("purge postgres container: %s", err)
		}
	})

	pg := Postgres{
		Host:     "localhost",
		Port:     resource.GetPort("5432/tcp"),
		User:     postgresUser,
		Password: postgresPassword,
		DBName:   postgresDB,
	}

	err = pool.Retry(func() error {
		db, err := sql.Open("postgres", pg.ConnString())
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	})
	require.NoError(t, err, "wait for postgres")

	t.Logf("postgres ready on port %s", pg.Port)
	return pg
}

func (p Postgres) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		p.User, p.Password, net.JoinHostPort(p.Host, p.Port), p.DBName,
	)
}

// StartRedis runs a throwaway redis container and returns its host and port.
func StartRedis(t *testing.T) (string, string) {
	t.Helper()

	pool := newDockerPool(t)
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err, "run redis")
	require.NoError(t, resource.Expire(containerTTL))
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("purge redis container: %s", err)
		}
	})

	port := resource.GetPort("6379/tcp")
	err = pool.Retry(func() error {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort("localhost", port), time.Second)
		if err != nil {
			return err
		}
		return conn.Close()
	})
	require.NoError(t, err, "wait for redis")

	return "localhost", port
}
