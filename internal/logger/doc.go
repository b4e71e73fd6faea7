// Package logger wraps zap for the Adhan daemon and CLI:
//   - a global sugared logger with console or JSON encoding,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields),
//   - level parsing and configuration,
//   - leveled helpers (Infof, WarnKV, ErrorKV, ...).
//
// Services receive a context and log through the logger stored in it, so a
// wake-up can be traced from the timer through playback with the same fields.
package logger
