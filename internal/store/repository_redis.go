package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/models"
)

const (
	redisRecordsKey = "dcms:sync:%s:records"
	redisMetaKey    = "dcms:sync:%s:meta"

	redisMetaVersion    = "version"
	redisMetaLastUpdate = "last_update"

	// redisMaxTxAttempts bounds optimistic WATCH retries for one write.
	redisMaxTxAttempts = 10
)

// redisRow is the JSON value stored per record in the records hash. Data is
// kept as a string so the record bytes survive verbatim.
type redisRow struct {
	Version   int64     `json:"version"`
	Position  int       `json:"position"`
	Deleted   bool      `json:"deleted"`
	Origin    string    `json:"origin"`
	UpdatedAt time.Time `json:"updated_at"`
	Data      string    `json:"data,omitempty"`
}

// redisCollectionRepository stores each collection as two hashes: one
// holding a [redisRow] per record id and one with the collection version and
// last update in unix milliseconds. Writes use WATCH/MULTI.
type redisCollectionRepository struct {
	client *redis.Client
	now    func() time.Time
	logger *logger.Logger
}

// NewConnectRedis parses url, connects and pings the server.
func NewConnectRedis(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewConnectRedis").Msg("error pinging redis")
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisCollectionRepository constructs a [CollectionRepository] on client.
func NewRedisCollectionRepository(client *redis.Client, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating redis collection repository")
	return &redisCollectionRepository{
		client: client,
		now:    time.Now,
		logger: logger,
	}
}

func recordsKey(c models.Collection) string { return fmt.Sprintf(redisRecordsKey, c) }
func metaKey(c models.Collection) string    { return fmt.Sprintf(redisMetaKey, c) }

func (r *redisCollectionRepository) GetCollection(ctx context.Context, c models.Collection) ([]models.Record, error) {
	state, err := r.load(ctx, r.client, c)
	if err != nil {
		return nil, err
	}
	return liveRecords(state), nil
}

func (r *redisCollectionRepository) ReplaceCollection(ctx context.Context, c models.Collection, records []models.Record, origin string) (time.Time, error) {
	now := r.now()

	err := r.write(ctx, c, now, func(state collectionState) writePlan {
		return planReplace(state, records, origin, now)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisCollectionRepository.ReplaceCollection").
			Str("collection", c.String()).
			Msg("failed to replace collection")
		return time.Time{}, err
	}
	return now, nil
}

func (r *redisCollectionRepository) UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange, origin string) ([]models.UpsertResult, error) {
	now := r.now()

	var results []models.UpsertResult
	err := r.write(ctx, c, now, func(state collectionState) writePlan {
		var plan writePlan
		plan, results = planUpsert(state, changes, origin, now)
		return plan
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisCollectionRepository.UpsertRecords").
			Str("collection", c.String()).
			Msg("failed to upsert records")
		return nil, err
	}
	return results, nil
}

// write watches both keys of c, plans against the loaded state and commits
// the plan in one MULTI block. A concurrent writer aborts the transaction and
// the whole cycle is repeated.
func (r *redisCollectionRepository) write(ctx context.Context, c models.Collection, now time.Time, planFn func(collectionState) writePlan) error {
	rk, mk := recordsKey(c), metaKey(c)

	txf := func(tx *redis.Tx) error {
		state, err := r.load(ctx, tx, c)
		if err != nil {
			return err
		}

		plan := planFn(state)

		values := make([]any, 0, 2*len(plan.Writes))
		for _, w := range plan.Writes {
			b, err := json.Marshal(toRedisRow(w))
			if err != nil {
				return err
			}
			values = append(values, w.ID, b)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(values) > 0 {
				pipe.HSet(ctx, rk, values...)
			}
			pipe.HSet(ctx, mk,
				redisMetaVersion, plan.Version,
				redisMetaLastUpdate, now.UnixMilli(),
			)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < redisMaxTxAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, rk, mk)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return ErrVersionConflict
}

// hashReader is satisfied by both *redis.Client and a watching *redis.Tx.
type hashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

// load reads the records hash and version of c.
func (r *redisCollectionRepository) load(ctx context.Context, cmd hashReader, c models.Collection) (collectionState, error) {
	state := newCollectionState()

	raw, err := cmd.HGetAll(ctx, recordsKey(c)).Result()
	if err != nil {
		return state, fmt.Errorf("failed to read collection %s: %w", c, err)
	}
	for id, v := range raw {
		var row redisRow
		if err = json.Unmarshal([]byte(v), &row); err != nil {
			return state, fmt.Errorf("%w: record %s/%s: %w", ErrCorruptedData, c, id, err)
		}
		state.Rows[id] = fromRedisRow(id, row)
	}

	version, err := cmd.HGet(ctx, metaKey(c), redisMetaVersion).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return state, fmt.Errorf("failed to read collection version %s: %w", c, err)
	}
	state.Version = version

	return state, nil
}

func (r *redisCollectionRepository) LastUpdate(ctx context.Context, c models.Collection) (time.Time, error) {
	v, err := r.client.HGet(ctx, metaKey(c), redisMetaLastUpdate).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read last update of %s: %w", c, err)
	}

	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: last update of %s: %w", ErrCorruptedData, c, err)
	}
	return time.UnixMilli(ms), nil
}

func (r *redisCollectionRepository) GetAll(ctx context.Context) (models.Snapshot, error) {
	snapshot := make(models.Snapshot, len(models.KnownCollections))
	for _, c := range models.KnownCollections {
		records, err := r.GetCollection(ctx, c)
		if err != nil {
			return nil, err
		}
		snapshot[c] = records
	}
	return snapshot, nil
}

func (r *redisCollectionRepository) GetRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error) {
	state, err := r.load(ctx, r.client, c)
	if err != nil {
		return nil, err
	}
	return rowsSince(state, since), nil
}

// PurgeTombstones deletes expired tombstones of every known collection. A
// tombstone rewritten between the scan and the delete is deleted anyway; the
// record is already gone for every client that pulled it.
func (r *redisCollectionRepository) PurgeTombstones(ctx context.Context, olderThan time.Time) (int64, error) {
	var purged int64
	for _, c := range models.KnownCollections {
		state, err := r.load(ctx, r.client, c)
		if err != nil {
			return purged, err
		}

		ids := expiredTombstones(state, olderThan)
		if len(ids) == 0 {
			continue
		}

		n, err := r.client.HDel(ctx, recordsKey(c), ids...).Result()
		if err != nil {
			return purged, fmt.Errorf("failed to purge tombstones of %s: %w", c, err)
		}
		purged += n
	}
	return purged, nil
}

func (r *redisCollectionRepository) Close() error {
	return r.client.Close()
}

func toRedisRow(s storedRecord) redisRow {
	return redisRow{
		Version:   s.Version,
		Position:  s.Position,
		Deleted:   s.Deleted,
		Origin:    s.Origin,
		UpdatedAt: s.UpdatedAt,
		Data:      string(s.Data),
	}
}

func fromRedisRow(id string, row redisRow) storedRecord {
	s := storedRecord{
		VersionedRecord: models.VersionedRecord{
			ID:        id,
			Version:   row.Version,
			Deleted:   row.Deleted,
			Origin:    row.Origin,
			UpdatedAt: row.UpdatedAt,
		},
		Position: row.Position,
	}
	if row.Data != "" {
		s.Data = []byte(row.Data)
	}
	return s
}
