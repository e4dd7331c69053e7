package disposition

import (
	"context"
	"database/sql"
)

// PostgresRepo reads disposition catalogs from ccdata.dispositions.
// Campaign names are bound as query parameters, never interpolated.
type PostgresRepo struct {
	DB *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{DB: db} }

func (r *PostgresRepo) CampaignDispositions(ctx context.Context, campaign string) ([]Record, error) {
	const q = `
SELECT COALESCE(value1, ''), COALESCE(value2, ''), COALESCE(value3, '')
FROM ccdata.dispositions
WHERE campaign = $1
ORDER BY value1, value2, value3
`
	rows, err := r.DB.QueryContext(ctx, q, campaign)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Level1, &rec.Level2, &rec.Level3); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
