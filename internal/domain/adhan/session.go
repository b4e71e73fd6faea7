package adhan

// PlaybackSession is the state of the single Adhan playback.
// Only the playback controller mutates it.
type PlaybackSession struct {
	// Handle identifies the loaded audio resource; zero when idle.
	Handle Handle
	// CurrentAsset is the asset bound to the session, empty when idle.
	CurrentAsset string
	// IsPlaying reports whether the session is active.
	IsPlaying bool
}

// Reset returns the session to idle.
func (s *PlaybackSession) Reset() {
	*s = PlaybackSession{}
}
