package classification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads classifications from the application database. Each
// entity has its own table (product, location, industry, occupation) with
// id, name, code and aggregation columns.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresStore creates a store over an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresStore{pool: pool, logger: logger}
}

// Connect opens a pooled connection for the given DSN and returns a store
// over it. The caller owns the returned pool.
func Connect(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to classification database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping classification database: %w", err)
	}
	return NewPostgresStore(pool, logger), pool, nil
}

// Load queries every classification table and builds the registry.
func (s *PostgresStore) Load(ctx context.Context) (*Registry, error) {
	tables := make([]Table, 0, len(entities))
	for _, label := range entities {
		table, err := s.loadTable(ctx, label)
		if err != nil {
			return nil, fmt.Errorf("load %s classification: %w", label, err)
		}
		s.logger.InfoContext(ctx, "loaded classification",
			slog.String("entity", label),
			slog.String("source", "postgres"),
			slog.Int("entries", table.Len()))
		tables = append(tables, table)
	}
	return NewRegistry(tables...)
}

func (s *PostgresStore) loadTable(ctx context.Context, label string) (Table, error) {
	// Table names come from the closed entities list, never from input.
	query := fmt.Sprintf(
		`SELECT id, COALESCE(name, ''), COALESCE(code, ''), COALESCE(aggregation, '') FROM %s ORDER BY id`,
		label)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return Table{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Name, &r.Code, &r.Level); err != nil {
			return Table{}, fmt.Errorf("scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("iterate: %w", err)
	}

	return NewTable(label, out)
}
