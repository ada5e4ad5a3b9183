package editor

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
)

// State is the session's position in its editing lifecycle.
type State string

const (
	// StateIdle means no file is selected.
	StateIdle State = "idle"
	// StateEditing means a source asset is loaded and adjustments are in
	// progress.
	StateEditing State = "editing"
	// StateCropping is the sub-state of editing in which the crop frame is
	// interactive.
	StateCropping State = "cropping"
	// StateSaving means an encode is in flight.
	StateSaving State = "saving"
	// StateClosed is terminal: the session was cancelled and nothing was
	// emitted.
	StateClosed State = "closed"
)

// Adjustments is the full set of user-controlled edit values for one
// session. Brightness, contrast, and saturation are percentages with 100 as
// identity; the UI slider range is advisory and no bounds are enforced here.
type Adjustments struct {
	Crop            CropSelection `json:"crop"`
	RotationDegrees int           `json:"rotation_degrees"`
	FlipHorizontal  bool          `json:"flip_horizontal"`
	FlipVertical    bool          `json:"flip_vertical"`
	Brightness      float64       `json:"brightness"`
	Contrast        float64       `json:"contrast"`
	Saturation      float64       `json:"saturation"`
	OverlayText     string        `json:"overlay_text"`
	Description     string        `json:"description"`
	Visibility      Visibility    `json:"visibility"`
}

func defaultAdjustments() Adjustments {
	return Adjustments{
		Crop:       CropSelection{Zoom: 1},
		Brightness: 100,
		Contrast:   100,
		Saturation: 100,
		Visibility: VisibilityPrivate,
	}
}

// Snapshot is a read-only view of the session for status reporting.
type Snapshot struct {
	ID           string      `json:"id"`
	State        State       `json:"state"`
	Filename     string      `json:"filename,omitempty"`
	MimeType     string      `json:"mime_type,omitempty"`
	SourceWidth  int         `json:"source_width,omitempty"`
	SourceHeight int         `json:"source_height,omitempty"`
	Adjustments  Adjustments `json:"adjustments"`
	CropRegion   *CropRegion `json:"crop_region,omitempty"`
}

// Session holds the mutable edit state for one editing pass over one source
// asset. It accumulates adjustments and, on Save, drives the resolve →
// composite → encode pipeline to produce a single immutable EditedAsset.
//
// Session is not safe for concurrent use; the MCP loop dispatches requests
// sequentially, matching the single-threaded event model the editor assumes.
// Saves are single-flight: a second Save while one is in flight fails
// instead of queueing.
type Session struct {
	id    string
	state State

	source    *SourceAsset
	srcWidth  int
	srcHeight int

	adj        Adjustments
	viewport   Viewport
	aspect     AspectRatio
	cropRegion *image.Rectangle // last-resolved crop in source pixels
	cropped    bool             // cropping entered and completed at least once

	cache      *AssetCache
	compositor Compositor
	encoder    Encoder
	log        logrus.FieldLogger
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithAspect overrides the default 4:3 crop frame ratio.
func WithAspect(a AspectRatio) Option {
	return func(s *Session) { s.aspect = a }
}

// WithCache injects the shared decoded-image cache.
func WithCache(c *AssetCache) Option {
	return func(s *Session) { s.cache = c }
}

// WithCompositor overrides the compositor implementation.
func WithCompositor(c Compositor) Option {
	return func(s *Session) { s.compositor = c }
}

// WithEncoder overrides the encoder implementation.
func WithEncoder(e Encoder) Option {
	return func(s *Session) { s.encoder = e }
}

// WithLogger sets the session's logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession creates an idle session ready for Open.
func NewSession(id string, opts ...Option) *Session {
	s := &Session{
		id:         id,
		state:      StateIdle,
		adj:        defaultAdjustments(),
		aspect:     DefaultAspect,
		compositor: NewCompositor(),
		encoder:    NewEncoder(),
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("session", id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Adjustments returns a copy of the current adjustment values.
func (s *Session) Adjustments() Adjustments { return s.adj }

// Snapshot returns a read-only view of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.id,
		State:       s.state,
		Adjustments: s.adj,
	}
	if s.source != nil {
		snap.Filename = s.source.Filename
		snap.MimeType = s.source.MimeType
		snap.SourceWidth = s.srcWidth
		snap.SourceHeight = s.srcHeight
	}
	if s.cropRegion != nil {
		r := *s.cropRegion
		snap.CropRegion = &CropRegion{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
	}
	return snap
}

// Open loads a source asset and resets every adjustment to its default.
// Images get the full pipeline; videos are accepted for pass-through only.
// Anything else fails with ErrUnsupportedMedia before any work is done.
func (s *Session) Open(asset *SourceAsset) error {
	switch s.state {
	case StateClosed:
		return ErrSessionClosed
	case StateSaving:
		return ErrSaveInFlight
	}
	if asset == nil || len(asset.Data) == 0 {
		return fmt.Errorf("%w: empty asset", ErrNoSource)
	}
	if !asset.IsImage() && !asset.IsVideo() {
		return fmt.Errorf("%w: %s", ErrUnsupportedMedia, asset.MimeType)
	}

	s.srcWidth, s.srcHeight = 0, 0
	if asset.IsImage() {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(asset.Data))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		s.srcWidth, s.srcHeight = cfg.Width, cfg.Height
	}

	s.source = asset
	s.adj = defaultAdjustments()
	s.cropRegion = nil
	s.cropped = false
	s.viewport = Viewport{Width: s.srcWidth, Height: s.srcHeight}
	s.state = StateEditing

	s.log.WithFields(logrus.Fields{
		"filename": asset.Filename,
		"mime":     asset.MimeType,
		"bytes":    len(asset.Data),
	}).Debug("source asset loaded")
	return nil
}

// SetViewport records the displayed size of the source image, which the
// geometry engine needs to map crop-frame positions back to source pixels.
// Defaults to the source's own dimensions when never set.
func (s *Session) SetViewport(v Viewport) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", v.Width, v.Height)
	}
	s.viewport = v
	return nil
}

// BeginCrop enters the interactive crop sub-state, clearing any stale
// resolved region from a previous crop pass.
func (s *Session) BeginCrop() error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	if s.state == StateCropping {
		return nil
	}
	if !s.source.IsImage() {
		return fmt.Errorf("%w: cannot crop %s", ErrUnsupportedMedia, s.source.MimeType)
	}
	s.cropRegion = nil
	s.cropped = false
	s.state = StateCropping
	return nil
}

// SetCropFrame records a crop-frame change event and re-resolves the source
// pixel region. Zoom is clamped to [1, 3] and offsets to [0, 1] before the
// geometry engine sees them.
func (s *Session) SetCropFrame(sel CropSelection) error {
	if s.state != StateCropping {
		return fmt.Errorf("crop frame changed outside crop mode (state %s)", s.state)
	}

	sel.Zoom = clampZoom(sel.Zoom)
	sel.X = clamp01(sel.X)
	sel.Y = clamp01(sel.Y)

	rect, err := ResolveCrop(sel, s.viewport, s.srcWidth, s.srcHeight, s.aspect)
	if err != nil {
		return err
	}

	s.adj.Crop = sel
	s.cropRegion = &rect
	return nil
}

// EndCrop leaves crop mode, finalizing the region from the last frame event.
// Leaving without any frame event leaves the session uncropped.
func (s *Session) EndCrop() error {
	if s.state != StateCropping {
		return fmt.Errorf("not in crop mode (state %s)", s.state)
	}
	if s.cropRegion != nil {
		s.cropped = true
	}
	s.state = StateEditing
	return nil
}

// RotateLeft turns the pending rotation 90 degrees counter-clockwise.
func (s *Session) RotateLeft() error { return s.rotate(-90) }

// RotateRight turns the pending rotation 90 degrees clockwise.
func (s *Session) RotateRight() error { return s.rotate(90) }

func (s *Session) rotate(delta int) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	s.adj.RotationDegrees += delta
	return nil
}

// SetFlip sets both mirror flags. The flags are independent and composable.
func (s *Session) SetFlip(horizontal, vertical bool) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	s.adj.FlipHorizontal = horizontal
	s.adj.FlipVertical = vertical
	return nil
}

// SetColorAdjustments sets the display-only brightness, contrast, and
// saturation percentages. No bounds are enforced.
func (s *Session) SetColorAdjustments(brightness, contrast, saturation float64) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	s.adj.Brightness = brightness
	s.adj.Contrast = contrast
	s.adj.Saturation = saturation
	return nil
}

// SetMetadata sets the overlay text, description, and visibility carried
// alongside the final asset.
func (s *Session) SetMetadata(overlayText, description string, visibility Visibility) error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	if !visibility.Valid() {
		return fmt.Errorf("invalid visibility %q", visibility)
	}
	s.adj.OverlayText = overlayText
	s.adj.Description = description
	s.adj.Visibility = visibility
	return nil
}

// Preview returns the presentation-layer description of the current
// adjustments.
func (s *Session) Preview() (PreviewState, error) {
	if err := s.requireEditing(); err != nil {
		return PreviewState{}, err
	}
	return BuildPreview(s.adj), nil
}

// PreviewRender returns a raster of the source with the display-only color
// adjustments applied, for clients that cannot apply the PreviewState filter
// description themselves. The saved asset is never derived from this.
func (s *Session) PreviewRender() (image.Image, error) {
	if err := s.requireEditing(); err != nil {
		return nil, err
	}
	if !s.source.IsImage() {
		return nil, fmt.Errorf("%w: cannot render %s", ErrUnsupportedMedia, s.source.MimeType)
	}
	img, err := s.decodeSource()
	if err != nil {
		return nil, err
	}
	return RenderPreview(img, s.adj), nil
}

// SampleColor returns the source color under a preview cursor position.
func (s *Session) SampleColor(x, y int) (*ColorSample, error) {
	if err := s.requireEditing(); err != nil {
		return nil, err
	}
	if !s.source.IsImage() {
		return nil, fmt.Errorf("%w: cannot sample %s", ErrUnsupportedMedia, s.source.MimeType)
	}
	img, err := s.decodeSource()
	if err != nil {
		return nil, err
	}
	return SampleColor(img, x, y)
}

// Reset returns every adjustment to its default without discarding the
// loaded source asset. Distinct from Cancel, which tears the session down.
func (s *Session) Reset() error {
	if err := s.requireEditing(); err != nil {
		return err
	}
	s.adj = defaultAdjustments()
	s.cropRegion = nil
	s.cropped = false
	s.state = StateEditing
	return nil
}

// Save runs the resolve → composite → encode pipeline and emits the final
// EditedAsset.
//
// If cropping was never completed this session, or the source is a video,
// the compositor is skipped and the original bytes pass through unmodified;
// color adjustments are preview-only either way and are never baked in.
//
// On success the session resets to idle and its cached decodes are evicted.
// On failure every adjustment is preserved, the session returns to editing,
// and no partial asset is produced. An in-flight save cannot be cancelled.
func (s *Session) Save(ctx context.Context) (*EditedAsset, error) {
	switch s.state {
	case StateClosed:
		return nil, ErrSessionClosed
	case StateSaving:
		return nil, ErrSaveInFlight
	case StateIdle:
		return nil, ErrNoSource
	case StateCropping:
		return nil, fmt.Errorf("crop mode still active; finish cropping before saving")
	}
	if s.source == nil {
		return nil, ErrNoSource
	}

	s.state = StateSaving
	asset, err := s.runSave(ctx)
	if err != nil {
		// Adjustments survive a failed save so the user can retry.
		s.state = StateEditing
		s.log.WithError(err).Warn("save failed")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"filename": asset.Filename,
		"bytes":    len(asset.Data),
		"cropped":  s.cropped,
	}).Info("save complete")
	s.teardown(StateIdle)
	return asset, nil
}

func (s *Session) runSave(ctx context.Context) (*EditedAsset, error) {
	meta := Metadata{
		OverlayText: s.adj.OverlayText,
		Description: s.adj.Description,
		Visibility:  s.adj.Visibility,
	}

	// Pass-through: nothing was cropped, so rotation/flip/filters are
	// display-only and the original bytes are returned byte for byte.
	if !s.cropped || s.cropRegion == nil || s.source.IsVideo() {
		data := make([]byte, len(s.source.Data))
		copy(data, s.source.Data)
		return &EditedAsset{
			Data:     data,
			MimeType: s.source.MimeType,
			Filename: s.source.Filename,
			Metadata: meta,
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := s.decodeSource()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	composed, err := s.compositor.Composite(img, *s.cropRegion,
		s.adj.RotationDegrees, s.adj.FlipHorizontal, s.adj.FlipVertical)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.encoder.Encode(composed, s.source.MimeType)
	if err != nil {
		return nil, err
	}

	return &EditedAsset{
		Data:     data,
		MimeType: s.source.MimeType,
		Filename: s.source.Filename,
		Metadata: meta,
	}, nil
}

// Cancel discards the session without emitting anything. A save already in
// flight is not cancellable; it completes or fails first.
func (s *Session) Cancel() error {
	if s.state == StateSaving {
		return ErrSaveInFlight
	}
	if s.state == StateClosed {
		return nil
	}
	s.teardown(StateClosed)
	return nil
}

// teardown releases the session's resources and moves it to the given state.
func (s *Session) teardown(next State) {
	if s.cache != nil {
		s.cache.EvictSession(s.id)
	}
	s.source = nil
	s.srcWidth, s.srcHeight = 0, 0
	s.adj = defaultAdjustments()
	s.cropRegion = nil
	s.cropped = false
	s.viewport = Viewport{}
	s.state = next
}

// decodeSource returns the decoded source image, consulting the shared
// cache first so repeated previews and save retries decode once.
func (s *Session) decodeSource() (image.Image, error) {
	key := CacheKey(s.id, "decoded")
	if s.cache != nil {
		if img, ok := s.cache.Get(key); ok {
			return img, nil
		}
	}
	img, err := s.source.Decode()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Put(key, img)
	}
	return img, nil
}

// requireEditing guards operations that need a loaded, open session.
func (s *Session) requireEditing() error {
	switch s.state {
	case StateClosed:
		return ErrSessionClosed
	case StateSaving:
		return ErrSaveInFlight
	case StateIdle:
		return ErrNoSource
	}
	return nil
}
