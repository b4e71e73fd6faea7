package adhan

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ActionFire marks a wake-up payload produced by the alarm scheduler.
const ActionFire = "adhan.action.ALARM_FIRE"

// Payload field names.
const (
	FieldAction        = "action"
	FieldPrayerName    = "prayerName"
	FieldAudioAssetRef = "audioAssetRef"
	FieldSoundEnabled  = "soundEnabled"
)

var (
	// ErrForeignEvent is returned for payloads that are not alarm firings.
	ErrForeignEvent = errors.New("not an alarm fire event")
	// ErrMalformedEvent is returned for payloads that cannot be decoded.
	ErrMalformedEvent = errors.New("malformed alarm event")
)

// Payload is the event carried by a wake-up request.
type Payload struct {
	// PrayerName may be empty for events built by older clients.
	PrayerName string
	// AudioAssetRef names the recording to play.
	AudioAssetRef string
	// SoundEnabled controls whether audio is played.
	SoundEnabled bool
}

// EncodePayload serializes the payload as a protobuf JSON struct.
func EncodePayload(p *Payload) ([]byte, error) {
	msg, err := structpb.NewStruct(map[string]any{
		FieldAction:        ActionFire,
		FieldPrayerName:    p.PrayerName,
		FieldAudioAssetRef: p.AudioAssetRef,
		FieldSoundEnabled:  p.SoundEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("build payload: %w", err)
	}

	data, err := protojson.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return data, nil
}

// DecodePayload parses a wake-up payload.
// Missing fields fall back to defaults: no prayer name, DefaultAudioAsset, sound on.
func DecodePayload(data []byte) (*Payload, error) {
	if len(data) == 0 {
		return nil, ErrMalformedEvent
	}

	var msg structpb.Struct
	if err := protojson.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	return PayloadFromStruct(&msg)
}

// PayloadFromStruct extracts a payload from an already decoded struct.
func PayloadFromStruct(msg *structpb.Struct) (*Payload, error) {
	fields := msg.GetFields()
	if fields[FieldAction].GetStringValue() != ActionFire {
		return nil, ErrForeignEvent
	}

	p := &Payload{
		PrayerName:    fields[FieldPrayerName].GetStringValue(),
		AudioAssetRef: fields[FieldAudioAssetRef].GetStringValue(),
		SoundEnabled:  true,
	}

	if v, ok := fields[FieldSoundEnabled]; ok {
		b, isBool := v.GetKind().(*structpb.Value_BoolValue)
		if !isBool {
			return nil, fmt.Errorf("%w: %s is not a boolean", ErrMalformedEvent, FieldSoundEnabled)
		}

		p.SoundEnabled = b.BoolValue
	}

	if p.AudioAssetRef == "" {
		p.AudioAssetRef = DefaultAudioAsset
	}

	return p, nil
}
