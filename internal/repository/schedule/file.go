package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/adhan-alarm/internal/config"
	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

// fieldAlarms holds the list of alarms in the schedule file.
const fieldAlarms = "alarms"

// FileRepository persists the schedule to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) so the file
// matches the records exchanged over the control API.
type FileRepository struct {
	// path is the filesystem location of the schedule file.
	path string
	// mu protects concurrent access to the schedule file.
	mu sync.Mutex
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the schedule file location.
func (r *FileRepository) Path() string {
	return r.path
}

// List reads every alarm from disk. A missing file is an empty schedule.
func (r *FileRepository) List(_ context.Context) ([]*adhan.ScheduledAlarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alarms, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*adhan.ScheduledAlarm, 0, len(alarms))
	for _, alarm := range alarms {
		result = append(result, alarm)
	}

	sortAlarms(result)

	return result, nil
}

// Get reads the alarm of a prayer.
func (r *FileRepository) Get(_ context.Context, prayerName string) (*adhan.ScheduledAlarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alarms, err := r.load()
	if err != nil {
		return nil, err
	}

	alarm, ok := alarms[prayerName]
	if !ok {
		return nil, ErrNotFound
	}

	return alarm, nil
}

// Save writes the alarm, replacing any alarm with the same prayer name.
func (r *FileRepository) Save(_ context.Context, alarm *adhan.ScheduledAlarm) error {
	if err := alarm.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	alarms, err := r.load()
	if err != nil {
		return err
	}

	alarms[alarm.PrayerName] = alarm.Clone()

	return r.store(alarms)
}

// Delete removes the alarm of a prayer.
func (r *FileRepository) Delete(_ context.Context, prayerName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alarms, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := alarms[prayerName]; !ok {
		return nil
	}

	delete(alarms, prayerName)

	return r.store(alarms)
}

// Close is a no-op for the file repository.
func (r *FileRepository) Close() error {
	return nil
}

func (r *FileRepository) load() (map[string]*adhan.ScheduledAlarm, error) {
	alarms := make(map[string]*adhan.ScheduledAlarm)

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return alarms, nil
		}

		return nil, fmt.Errorf("read schedule file: %w", err)
	}

	var msg structpb.Struct
	if err = protojson.Unmarshal(contents, &msg); err != nil {
		return nil, fmt.Errorf("decode schedule file: %w", err)
	}

	for i, value := range msg.GetFields()[fieldAlarms].GetListValue().GetValues() {
		record := value.GetStructValue()
		if record == nil {
			return nil, fmt.Errorf("decode schedule file: entry %d: %w", i, adhan.ErrMalformedAlarm)
		}

		alarm, decodeErr := adhan.AlarmFromStruct(record)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode schedule file: entry %d: %w", i, decodeErr)
		}

		alarms[alarm.PrayerName] = alarm
	}

	return alarms, nil
}

func (r *FileRepository) store(alarms map[string]*adhan.ScheduledAlarm) error {
	sorted := make([]*adhan.ScheduledAlarm, 0, len(alarms))
	for _, alarm := range alarms {
		sorted = append(sorted, alarm)
	}

	sortAlarms(sorted)

	values := make([]*structpb.Value, 0, len(sorted))

	for _, alarm := range sorted {
		record, err := adhan.AlarmToStruct(alarm)
		if err != nil {
			return err
		}

		values = append(values, structpb.NewStructValue(record))
	}

	msg := &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldAlarms: structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
		Indent:    "  ",
	}

	data, err := marshalOptions.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write schedule file: %w", err)
	}

	return nil
}
