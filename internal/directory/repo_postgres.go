package directory

import (
	"context"
	"database/sql"
)

// PostgresRepo reads campaign assignments and DIDs from the contact-center
// schema (ccdata.queues_agents / ccdata.queues).
//
// All identifiers are bound as query parameters. The original integration
// spliced agent and campaign names straight into SQL text; do not
// reintroduce that.
type PostgresRepo struct {
	DB *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{DB: db} }

func (r *PostgresRepo) AgentCampaigns(ctx context.Context, agent, channel string) ([]string, error) {
	// Outbound-capable queues carry a '->' suffix by convention.
	const q = `
SELECT DISTINCT queuename
FROM ccdata.queues_agents
WHERE agent = $1 AND channel = $2 AND queuename LIKE '%->'
`
	rows, err := r.DB.QueryContext(ctx, q, agent, channel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresRepo) CampaignNumbers(ctx context.Context, campaign string) ([]string, error) {
	const q = `
SELECT did
FROM ccdata.queues
WHERE name = $1
`
	rows, err := r.DB.QueryContext(ctx, q, campaign)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dids []string
	for rows.Next() {
		var did sql.NullString
		if err := rows.Scan(&did); err != nil {
			return nil, err
		}
		if did.Valid {
			dids = append(dids, did.String)
		}
	}
	return dids, rows.Err()
}
