package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
	"github.com/exportdocs/exportdocs/pkg/docgen_server/storage"
)

func (s *_Storage) PutSnapshot(ctx context.Context, tx storage.Tx, snapshot storage.Snapshot) error {
	query := `
WITH new_data AS (
	INSERT INTO snapshot (application_id, "version", record, updated_at, updated_by)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (application_id) DO UPDATE SET
		"version" = excluded."version",
		record = excluded.record,
		updated_at = excluded.updated_at,
		updated_by = excluded.updated_by
	RETURNING application_id, "version", record, updated_at, updated_by
)
INSERT INTO snapshot_history (application_id, "version", record, created_at, created_by)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		snapshot.ApplicationID,
		snapshot.Version,
		snapshot.Record,
		snapshot.UpdatedAt,
		snapshot.UpdatedBy,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetSnapshot(ctx context.Context, tx storage.Tx, applicationID string) (storage.Snapshot, error) {
	query := `SELECT application_id, "version", record, updated_at, updated_by FROM snapshot WHERE application_id = $1`
	row := tx.QueryRow(ctx, query, applicationID)

	snapshot := storage.Snapshot{}
	err := row.Scan(
		&snapshot.ApplicationID,
		&snapshot.Version,
		&snapshot.Record,
		&snapshot.UpdatedAt,
		&snapshot.UpdatedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.Snapshot{}, model.ErrSnapshotNotFound
	}
	if err != nil {
		return storage.Snapshot{}, err
	}

	return snapshot, nil
}
