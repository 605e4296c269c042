package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}

	// Conn is the subset of the ClickHouse driver the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	Batch interface {
		Append(v ...any) error
		Send() error
	}

	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Close() error
		Err() error
	}
)

type Repository struct {
	conn    Conn
	network model.Network
	metrics Metrics
}

func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, network: network, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

// driverConn narrows driver.Conn to the repository's Conn interface.
type driverConn struct {
	conn driver.Conn
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
