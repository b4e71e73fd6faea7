package adhan

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// FieldTriggerAtEpochMillis holds the wake-up time of a stored alarm.
const FieldTriggerAtEpochMillis = "triggerAtEpochMillis"

// ErrMalformedAlarm is returned for alarm records that cannot be decoded.
var ErrMalformedAlarm = errors.New("malformed alarm record")

// maxExactMillis is the largest millisecond value a float64 holds exactly.
const maxExactMillis = 1 << 53

// AlarmToStruct converts the alarm into a protobuf struct.
func AlarmToStruct(a *ScheduledAlarm) (*structpb.Struct, error) {
	msg, err := structpb.NewStruct(map[string]any{
		FieldPrayerName:           a.PrayerName,
		FieldTriggerAtEpochMillis: a.TriggerAtEpochMillis,
		FieldAudioAssetRef:        a.AudioAssetRef,
		FieldSoundEnabled:         a.SoundEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("build alarm record: %w", err)
	}

	return msg, nil
}

// AlarmFromStruct converts a protobuf struct into an alarm.
// A missing soundEnabled means sound on.
func AlarmFromStruct(msg *structpb.Struct) (*ScheduledAlarm, error) {
	fields := msg.GetFields()

	alarm := &ScheduledAlarm{
		PrayerName:    fields[FieldPrayerName].GetStringValue(),
		AudioAssetRef: fields[FieldAudioAssetRef].GetStringValue(),
		SoundEnabled:  true,
	}

	if v, ok := fields[FieldTriggerAtEpochMillis]; ok {
		n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
		if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > maxExactMillis {
			return nil, fmt.Errorf("%w: %s is not an integer", ErrMalformedAlarm, FieldTriggerAtEpochMillis)
		}

		alarm.TriggerAtEpochMillis = int64(n.NumberValue)
	}

	if v, ok := fields[FieldSoundEnabled]; ok {
		b, isBool := v.GetKind().(*structpb.Value_BoolValue)
		if !isBool {
			return nil, fmt.Errorf("%w: %s is not a boolean", ErrMalformedAlarm, FieldSoundEnabled)
		}

		alarm.SoundEnabled = b.BoolValue
	}

	return alarm, nil
}
