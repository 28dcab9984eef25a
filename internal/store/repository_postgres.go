package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/models"
)

// postgresCollectionRepository is the PostgreSQL-backed implementation of
// [CollectionRepository]. Writes run in a transaction that locks the
// collection row, plans against the current rows and applies the plan with a
// single upsert; the transaction is retried on retryable pg errors.
type postgresCollectionRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewPostgresCollectionRepository constructs a [CollectionRepository] on db.
func NewPostgresCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating postgres collection repository")
	return &postgresCollectionRepository{
		DB:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (p *postgresCollectionRepository) GetCollection(ctx context.Context, c models.Collection) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLiveRecordsQuery(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postgresCollectionRepository.GetCollection").
			Str("collection", c.String()).
			Msg("failed to execute query for getting collection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 50)
	for rows.Next() {
		var (
			id   string
			data sql.NullString
		)
		if err = rows.Scan(&id, &data); err != nil {
			log.Err(err).
				Str("func", "postgresCollectionRepository.GetCollection").
				Str("collection", c.String()).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, models.Record{ID: id, Raw: []byte(data.String)})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (p *postgresCollectionRepository) ReplaceCollection(ctx context.Context, c models.Collection, records []models.Record, origin string) (time.Time, error) {
	now := p.now()

	err := p.write(ctx, c, now, func(state collectionState) writePlan {
		return planReplace(state, records, origin, now)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCollectionRepository.ReplaceCollection").
			Str("collection", c.String()).
			Int("count", len(records)).
			Msg("failed to replace collection")
		return time.Time{}, err
	}

	return now, nil
}

func (p *postgresCollectionRepository) UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange, origin string) ([]models.UpsertResult, error) {
	now := p.now()

	var results []models.UpsertResult
	err := p.write(ctx, c, now, func(state collectionState) writePlan {
		var plan writePlan
		plan, results = planUpsert(state, changes, origin, now)
		return plan
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCollectionRepository.UpsertRecords").
			Str("collection", c.String()).
			Int("changes", len(changes)).
			Msg("failed to upsert records")
		return nil, err
	}

	return results, nil
}

// write runs the lock-plan-apply transaction for c with retries.
func (p *postgresCollectionRepository) write(ctx context.Context, c models.Collection, now time.Time, planFn func(collectionState) writePlan) error {
	return p.WithRetry(ctx, func(ctx context.Context) error {
		return p.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, ensureCollection, c.String()); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			state := newCollectionState()
			if err := tx.QueryRowContext(ctx, lockCollection, c.String()).Scan(&state.Version); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}

			if err := p.loadRows(ctx, tx, c, &state); err != nil {
				return err
			}

			plan := planFn(state)

			if len(plan.Writes) > 0 {
				query, args, err := buildUpsertRecordsQuery(c, plan.Writes)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				if _, err = tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}

			query, args, err := buildUpdateCollectionQuery(c, plan.Version, now)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			return nil
		})
	})
}

func (p *postgresCollectionRepository) loadRows(ctx context.Context, tx *sql.Tx, c models.Collection, state *collectionState) error {
	query, args, err := buildSelectCollectionRowsQuery(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		r, err := scanStoredRecord(rows)
		if err != nil {
			return err
		}
		state.Rows[r.ID] = r
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (p *postgresCollectionRepository) LastUpdate(ctx context.Context, c models.Collection) (time.Time, error) {
	var last sql.NullTime
	err := p.DB.QueryRowContext(ctx, getLastUpdate, c.String()).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCollectionRepository.LastUpdate").
			Str("collection", c.String()).
			Msg("failed to get last update")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}

func (p *postgresCollectionRepository) GetAll(ctx context.Context) (models.Snapshot, error) {
	snapshot := make(models.Snapshot, len(models.KnownCollections))
	for _, c := range models.KnownCollections {
		records, err := p.GetCollection(ctx, c)
		if err != nil {
			return nil, err
		}
		snapshot[c] = records
	}
	return snapshot, nil
}

func (p *postgresCollectionRepository) GetRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsSinceQuery(c, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postgresCollectionRepository.GetRecordsSince").
			Str("collection", c.String()).
			Int64("since", since).
			Msg("failed to execute query for getting records since version")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]models.VersionedRecord, 0)
	for rows.Next() {
		r, err := scanStoredRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r.VersionedRecord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

func (p *postgresCollectionRepository) PurgeTombstones(ctx context.Context, olderThan time.Time) (int64, error) {
	query, args, err := buildPurgeTombstonesQuery(olderThan)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCollectionRepository.PurgeTombstones").
			Msg("failed to purge tombstones")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

func (p *postgresCollectionRepository) Close() error {
	return p.DB.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStoredRecord(rows rowScanner) (storedRecord, error) {
	var (
		r    storedRecord
		data sql.NullString
	)
	err := rows.Scan(&r.ID, &r.Version, &r.Position, &r.Deleted, &r.Origin, &data, &r.UpdatedAt)
	if err != nil {
		return storedRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if data.Valid && !r.Deleted {
		r.Data = []byte(data.String)
	}
	return r, nil
}
