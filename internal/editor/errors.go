package editor

import "errors"

// Sentinel errors — callers use errors.Is() instead of string matching.
var (
	// ErrUnsupportedMedia is returned when an asset is neither an image nor
	// a video. Videos take the pass-through path and cannot be transformed.
	ErrUnsupportedMedia = errors.New("unsupported media type")

	// ErrDecode is returned when the source asset cannot be decoded into a
	// drawable image.
	ErrDecode = errors.New("cannot decode source asset")

	// ErrDrawSurface is returned when the compositor cannot produce a target
	// buffer for the requested transform.
	ErrDrawSurface = errors.New("cannot allocate draw surface")

	// ErrEncoding is returned when serializing the final buffer fails or
	// produces no output.
	ErrEncoding = errors.New("encoding produced no output")

	// ErrNoSource is returned when an operation requires a loaded source
	// asset and none is present.
	ErrNoSource = errors.New("no source asset loaded")

	// ErrSaveInFlight is returned when a save is attempted while another
	// save is still running. Saves are single-flight and never queued.
	ErrSaveInFlight = errors.New("save already in flight")

	// ErrSessionClosed is returned for any operation on a cancelled session.
	ErrSessionClosed = errors.New("session is closed")
)
