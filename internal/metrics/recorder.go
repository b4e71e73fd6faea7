package metrics

// ScheduleMode labels how a wake-up was scheduled.
type ScheduleMode string

// Schedule modes.
const (
	ModeExact      ScheduleMode = "exact"
	ModeBestEffort ScheduleMode = "best_effort"
)

// FireResult labels the outcome of a delivered wake-up.
type FireResult string

// Fire results.
const (
	FireDispatched FireResult = "dispatched"
	FireIgnored    FireResult = "ignored"
)

// Recorder receives domain events worth counting.
type Recorder interface {
	IncScheduled(mode ScheduleMode)
	IncCancelled()
	IncFired(result FireResult)
	IncPlaybackFailure(stage string)
	IncNotificationFailure()
	SetPlaying(playing bool)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) IncScheduled(ScheduleMode) {}
func (NoopRecorder) IncCancelled()             {}
func (NoopRecorder) IncFired(FireResult)       {}
func (NoopRecorder) IncPlaybackFailure(string) {}
func (NoopRecorder) IncNotificationFailure()   {}
func (NoopRecorder) SetPlaying(bool)           {}
