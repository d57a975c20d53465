package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

const defaultEventLogTable = "event_log"

// EventLogRepository is a Postgres sink for normalized telemetry rows. It is
// an optional alternative to the CSV event log for deployments that ingest
// the fleet's telemetry centrally.
type EventLogRepository struct {
	db    *sql.DB
	table string
}

// RepositoryOption configures the repository.
type RepositoryOption func(*EventLogRepository)

// WithTable overrides the default table name.
func WithTable(table string) RepositoryOption {
	return func(repo *EventLogRepository) {
		if table != "" {
			repo.table = table
		}
	}
}

// NewEventLogRepository constructs a repository with the default table name.
func NewEventLogRepository(db *sql.DB, opts ...RepositoryOption) *EventLogRepository {
	repo := &EventLogRepository{db: db, table: defaultEventLogTable}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// InsertRows appends normalized rows to the event log table. Values are
// stored in a typed column per scalar variant.
func (r *EventLogRepository) InsertRows(ctx context.Context, rows []telemetry.Row) error {
	if r == nil || r.db == nil {
		return errors.New("event log repo: nil db")
	}
	if len(rows) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
INSERT INTO %s (
	ts,
	node_id,
	sensor,
	key,
	value_text,
	value_numeric,
	value_bool
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
)`, r.table)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if row.NodeID == "" || row.Sensor == "" || row.Key == "" {
			_ = tx.Rollback()
			return errors.New("event log repo: invalid row")
		}

		valueText := sql.NullString{}
		valueNumeric := sql.NullFloat64{}
		valueBool := sql.NullBool{}
		switch row.Value.Kind() {
		case telemetry.KindNumber:
			num, _ := row.Value.Num()
			valueNumeric = sql.NullFloat64{Float64: num, Valid: true}
		case telemetry.KindBool:
			b, _ := row.Value.Truth()
			valueBool = sql.NullBool{Bool: b, Valid: true}
		default:
			s, _ := row.Value.Str()
			valueText = sql.NullString{String: s, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			row.Timestamp,
			row.NodeID,
			row.Sensor,
			row.Key,
			valueText,
			valueNumeric,
			valueBool,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("event log repo: insert: %w", err)
		}
	}

	return tx.Commit()
}
