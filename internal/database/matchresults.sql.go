package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateMatchResults = `-- name: CreateOrUpdateMatchResults :exec
INSERT INTO match_results (
results, session_id)
VALUES ( $1, $2)
ON CONFLICT (session_id)
DO UPDATE SET
    results = EXCLUDED.results,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateMatchResultsParams struct {
	Results   json.RawMessage
	SessionID uuid.UUID
}

func (q *Queries) CreateOrUpdateMatchResults(ctx context.Context, arg CreateOrUpdateMatchResultsParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateMatchResults, arg.Results, arg.SessionID)
	return err
}
