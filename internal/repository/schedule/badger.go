package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
)

// alarmKeyPrefix namespaces alarm records in the database.
const alarmKeyPrefix = "alarm/"

// BadgerRepository persists one record per prayer in a badger database.
type BadgerRepository struct {
	db *badger.DB
}

var _ Repository = (*BadgerRepository)(nil)

// OpenBadger opens (or creates) the database at dir. An empty dir opens an
// in-memory database.
func OpenBadger(ctx context.Context, dir string) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(newBadgerLogger(ctx)).
		WithInMemory(dir == "")

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database %q: %w", dir, err)
	}

	return &BadgerRepository{db: db}, nil
}

// List returns every stored alarm ordered by trigger time.
func (r *BadgerRepository) List(_ context.Context) ([]*adhan.ScheduledAlarm, error) {
	var result []*adhan.ScheduledAlarm

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(alarmKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()

			err := item.Value(func(value []byte) error {
				alarm, decodeErr := decodeRecord(value)
				if decodeErr != nil {
					return fmt.Errorf("record %s: %w", item.Key(), decodeErr)
				}

				result = append(result, alarm)

				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	sortAlarms(result)

	return result, nil
}

// Get returns the alarm of a prayer.
func (r *BadgerRepository) Get(_ context.Context, prayerName string) (*adhan.ScheduledAlarm, error) {
	var alarm *adhan.ScheduledAlarm

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(alarmKey(prayerName))
		if err != nil {
			return err
		}

		return item.Value(func(value []byte) error {
			var decodeErr error

			alarm, decodeErr = decodeRecord(value)

			return decodeErr
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("get alarm %q: %w", prayerName, err)
	}

	return alarm, nil
}

// Save stores the alarm under its prayer name.
func (r *BadgerRepository) Save(_ context.Context, alarm *adhan.ScheduledAlarm) error {
	if err := alarm.Validate(); err != nil {
		return err
	}

	record, err := adhan.AlarmToStruct(alarm)
	if err != nil {
		return err
	}

	value, err := protojson.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode alarm %q: %w", alarm.PrayerName, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(alarmKey(alarm.PrayerName), value)
	})
	if err != nil {
		return fmt.Errorf("save alarm %q: %w", alarm.PrayerName, err)
	}

	return nil
}

// Delete removes the alarm of a prayer.
func (r *BadgerRepository) Delete(_ context.Context, prayerName string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(alarmKey(prayerName))
	})
	if err != nil {
		return fmt.Errorf("delete alarm %q: %w", prayerName, err)
	}

	return nil
}

// Close closes the database.
func (r *BadgerRepository) Close() error {
	return r.db.Close()
}

func alarmKey(prayerName string) []byte {
	return []byte(alarmKeyPrefix + prayerName)
}

func decodeRecord(value []byte) (*adhan.ScheduledAlarm, error) {
	var record structpb.Struct
	if err := protojson.Unmarshal(value, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", adhan.ErrMalformedAlarm, err)
	}

	return adhan.AlarmFromStruct(&record)
}

// badgerLogger adapts the zap logger to badger.Logger. Badger is chatty at info
// level, so only warnings and errors pass.
type badgerLogger struct {
	*zap.SugaredLogger
}

func newBadgerLogger(ctx context.Context) badgerLogger {
	base := logger.FromContext(ctx).Named("badger")

	return badgerLogger{logger.WithMinLevel(base, zap.WarnLevel)}
}

// Warningf logs at warn level.
func (l badgerLogger) Warningf(format string, args ...any) {
	l.Warnf(format, args...)
}
