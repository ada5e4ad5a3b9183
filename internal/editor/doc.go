// Package editor implements the media editing pipeline behind the MCP server.
//
// One Session holds the mutable edit state for a single source asset: crop
// selection and zoom, accumulated rotation, mirror flags, display-only color
// adjustments, and the metadata attached to the final asset. On save the
// pipeline runs strictly in order: the geometry engine resolves the crop
// frame into a source-pixel rectangle, the compositor bakes crop, rotation,
// and mirroring into a new raster, and the encoder serializes that raster
// back to the source's MIME type.
//
// # Destructive vs. display-only
//
// Only geometry is ever baked into saved pixels. Brightness, contrast, and
// saturation belong to the preview layer (PreviewState, RenderPreview) and
// never reach the encoder. If cropping was never completed in a session, the
// whole pipeline is skipped and the original bytes pass through unmodified.
//
// # Coordinate System
//
// Crop selections are normalized: offsets in [0,1] relative to the displayed
// image, zoom in [1,3]. Resolved crop regions are 0-based source pixel
// rectangles with (0,0) at the top-left, and are always fully contained in
// the source bounds.
//
// # Concurrency
//
// Sessions are single-threaded by design; the MCP loop dispatches requests
// sequentially. The AssetCache is the exception and is safe for concurrent
// use. Saves are single-flight and non-cancellable once started.
//
// # Error Handling
//
// Failures surface as wrapped sentinel errors (ErrUnsupportedMedia,
// ErrDecode, ErrDrawSurface, ErrEncoding and the session guards) matched
// with errors.Is. A failed save preserves every adjustment so the user can
// retry; no partial asset is ever produced.
package editor
