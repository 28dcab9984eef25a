package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dcms-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	ensureCollection = `INSERT INTO sync_collections (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING;`

	lockCollection = `SELECT version
		FROM sync_collections
		WHERE name = $1
		FOR UPDATE;`

	getLastUpdate = `SELECT last_update
		FROM sync_collections
		WHERE name = $1;`

	upsertRecordConflict = `ON CONFLICT (collection, id) DO UPDATE SET
		version = EXCLUDED.version,
		position = EXCLUDED.position,
		deleted = EXCLUDED.deleted,
		origin = EXCLUDED.origin,
		data = EXCLUDED.data,
		updated_at = EXCLUDED.updated_at`
)

var recordColumns = []string{"id", "version", "position", "deleted", "origin", "data", "updated_at"}

func buildSelectLiveRecordsQuery(c models.Collection) (string, []any, error) {
	return psql.
		Select("id", "data").
		From("sync_records").
		Where(sq.Eq{"collection": c.String(), "deleted": false}).
		OrderBy("position", "id").
		ToSql()
}

func buildSelectCollectionRowsQuery(c models.Collection) (string, []any, error) {
	return psql.
		Select(recordColumns...).
		From("sync_records").
		Where(sq.Eq{"collection": c.String()}).
		ToSql()
}

func buildSelectRecordsSinceQuery(c models.Collection, since int64) (string, []any, error) {
	return psql.
		Select(recordColumns...).
		From("sync_records").
		Where(sq.And{
			sq.Eq{"collection": c.String()},
			sq.Gt{"version": since},
		}).
		OrderBy("version").
		ToSql()
}

// buildUpsertRecordsQuery writes every planned row in one statement.
func buildUpsertRecordsQuery(c models.Collection, rows []storedRecord) (string, []any, error) {
	q := psql.
		Insert("sync_records").
		Columns("collection", "id", "version", "position", "deleted", "origin", "data", "updated_at")

	for _, r := range rows {
		var data any
		if !r.Deleted {
			data = string(r.Data)
		}
		q = q.Values(c.String(), r.ID, r.Version, r.Position, r.Deleted, r.Origin, data, r.UpdatedAt)
	}

	return q.Suffix(upsertRecordConflict).ToSql()
}

func buildUpdateCollectionQuery(c models.Collection, version int64, now time.Time) (string, []any, error) {
	return psql.
		Update("sync_collections").
		Set("version", version).
		Set("last_update", now).
		Where(sq.Eq{"name": c.String()}).
		ToSql()
}

func buildPurgeTombstonesQuery(olderThan time.Time) (string, []any, error) {
	return psql.
		Delete("sync_records").
		Where(sq.And{
			sq.Eq{"deleted": true},
			sq.Lt{"updated_at": olderThan},
		}).
		ToSql()
}
