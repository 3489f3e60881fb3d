package claims

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the claim set in the claimed_domains table. The
// insert is idempotent at the database level, so concurrent duplicate claims
// cannot corrupt the set.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a postgres-backed claim store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, SQLSelectClaimed)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectClaimsFailed, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf(ErrMsgSelectClaimsFailed, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgSelectClaimsFailed, err)
	}

	return ids, nil
}

func (s *PostgresStore) Add(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, SQLInsertClaim, id); err != nil {
		return fmt.Errorf(ErrMsgInsertClaimFailed, err)
	}
	return nil
}

// CheckHealth pings the database for readiness checks.
func (s *PostgresStore) CheckHealth(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
