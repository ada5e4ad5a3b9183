package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ironsheep/media-editor-mcp/internal/editor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "editor_open", "editor_save").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up the target session by ID
//  4. Calls the appropriate session operation
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session Lifecycle
	case "editor_open":
		return s.handleEditorOpen(args)
	case "editor_state":
		return s.handleEditorState(args)
	case "editor_viewport":
		return s.handleEditorViewport(args)

	// Crop Operations
	case "editor_crop_begin":
		return s.handleEditorCropBegin(args)
	case "editor_crop_frame":
		return s.handleEditorCropFrame(args)
	case "editor_crop_end":
		return s.handleEditorCropEnd(args)

	// Geometry Adjustments
	case "editor_rotate":
		return s.handleEditorRotate(args)
	case "editor_flip":
		return s.handleEditorFlip(args)

	// Color Adjustments
	case "editor_adjust":
		return s.handleEditorAdjust(args)

	// Metadata
	case "editor_metadata":
		return s.handleEditorMetadata(args)

	// Preview Operations
	case "editor_preview":
		return s.handleEditorPreview(args)
	case "editor_preview_render":
		return s.handleEditorPreviewRender(args)
	case "editor_sample_color":
		return s.handleEditorSampleColor(args)

	// Terminal Operations
	case "editor_reset":
		return s.handleEditorReset(args)
	case "editor_save":
		return s.handleEditorSave(args)
	case "editor_cancel":
		return s.handleEditorCancel(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// session looks up an active editing session by ID.
func (s *Server) session(id string) (*editor.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown session: %s", id)
	}
	return sess, nil
}

// sessionArgs is the common argument shape for per-session tools.
type sessionArgs struct {
	SessionID string `json:"session_id"`
}

// === Session Lifecycle Handlers ===

type editorOpenArgs struct {
	DataBase64 string `json:"data_base64"`
	MimeType   string `json:"mime_type"`
	Filename   string `json:"filename"`
}

// OpenResult confirms a started session.
type OpenResult struct {
	SessionID    string       `json:"session_id"`
	State        editor.State `json:"state"`
	SourceWidth  int          `json:"source_width"`
	SourceHeight int          `json:"source_height"`
}

func (s *Server) handleEditorOpen(args json.RawMessage) (interface{}, error) {
	var a editorOpenArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(a.DataBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 asset data: %w", err)
	}

	id := uuid.NewString()
	sess := editor.NewSession(id,
		editor.WithCache(s.cache),
		editor.WithLogger(s.log),
	)
	if err := sess.Open(&editor.SourceAsset{
		Data:     data,
		MimeType: a.MimeType,
		Filename: a.Filename,
	}); err != nil {
		return nil, err
	}

	s.sessions[id] = sess
	snap := sess.Snapshot()
	return &OpenResult{
		SessionID:    id,
		State:        snap.State,
		SourceWidth:  snap.SourceWidth,
		SourceHeight: snap.SourceHeight,
	}, nil
}

func (s *Server) handleEditorState(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

type editorViewportArgs struct {
	SessionID string `json:"session_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

func (s *Server) handleEditorViewport(args json.RawMessage) (interface{}, error) {
	var a editorViewportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetViewport(editor.Viewport{Width: a.Width, Height: a.Height}); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// === Crop Operation Handlers ===

func (s *Server) handleEditorCropBegin(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.BeginCrop(); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

type editorCropFrameArgs struct {
	SessionID string  `json:"session_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Zoom      float64 `json:"zoom"`
}

func (s *Server) handleEditorCropFrame(args json.RawMessage) (interface{}, error) {
	var a editorCropFrameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Zoom == 0 {
		a.Zoom = 1.0
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetCropFrame(editor.CropSelection{X: a.X, Y: a.Y, Zoom: a.Zoom}); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

func (s *Server) handleEditorCropEnd(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.EndCrop(); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// === Geometry Adjustment Handlers ===

type editorRotateArgs struct {
	SessionID string `json:"session_id"`
	Direction string `json:"direction"`
}

func (s *Server) handleEditorRotate(args json.RawMessage) (interface{}, error) {
	var a editorRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}

	switch a.Direction {
	case "left":
		err = sess.RotateLeft()
	case "right":
		err = sess.RotateRight()
	default:
		return nil, fmt.Errorf("unknown rotation direction: %s", a.Direction)
	}
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

type editorFlipArgs struct {
	SessionID  string `json:"session_id"`
	Horizontal bool   `json:"horizontal"`
	Vertical   bool   `json:"vertical"`
}

func (s *Server) handleEditorFlip(args json.RawMessage) (interface{}, error) {
	var a editorFlipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetFlip(a.Horizontal, a.Vertical); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// === Color Adjustment Handlers ===

type editorAdjustArgs struct {
	SessionID  string   `json:"session_id"`
	Brightness *float64 `json:"brightness"`
	Contrast   *float64 `json:"contrast"`
	Saturation *float64 `json:"saturation"`
}

func (s *Server) handleEditorAdjust(args json.RawMessage) (interface{}, error) {
	var a editorAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}

	// Omitted values keep their current setting.
	adj := sess.Adjustments()
	brightness, contrast, saturation := adj.Brightness, adj.Contrast, adj.Saturation
	if a.Brightness != nil {
		brightness = *a.Brightness
	}
	if a.Contrast != nil {
		contrast = *a.Contrast
	}
	if a.Saturation != nil {
		saturation = *a.Saturation
	}

	if err := sess.SetColorAdjustments(brightness, contrast, saturation); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// === Metadata Handlers ===

type editorMetadataArgs struct {
	SessionID   string `json:"session_id"`
	OverlayText string `json:"overlay_text"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
}

func (s *Server) handleEditorMetadata(args json.RawMessage) (interface{}, error) {
	var a editorMetadataArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Visibility == "" {
		a.Visibility = string(editor.VisibilityPrivate)
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetMetadata(a.OverlayText, a.Description, editor.Visibility(a.Visibility)); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// === Preview Operation Handlers ===

func (s *Server) handleEditorPreview(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	return sess.Preview()
}

// PreviewRenderResult carries a rendered preview raster. It is always PNG,
// regardless of the source MIME type; the preview is display-only.
type PreviewRenderResult struct {
	DataBase64 string `json:"data_base64"`
	MimeType   string `json:"mime_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func (s *Server) handleEditorPreviewRender(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}

	img, err := sess.PreviewRender()
	if err != nil {
		return nil, err
	}
	data, err := editor.NewEncoder().Encode(img, "image/png")
	if err != nil {
		return nil, err
	}

	return &PreviewRenderResult{
		DataBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:   "image/png",
		Width:      img.Bounds().Dx(),
		Height:     img.Bounds().Dy(),
	}, nil
}

type editorSampleColorArgs struct {
	SessionID string `json:"session_id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

func (s *Server) handleEditorSampleColor(args json.RawMessage) (interface{}, error) {
	var a editorSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	return sess.SampleColor(a.X, a.Y)
}

// === Terminal Operation Handlers ===

func (s *Server) handleEditorReset(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Reset(); err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// SaveResult carries the final asset and its metadata back to the caller,
// which is responsible for persisting it.
type SaveResult struct {
	DataBase64  string            `json:"data_base64"`
	MimeType    string            `json:"mime_type"`
	Filename    string            `json:"filename"`
	OverlayText string            `json:"overlay_text"`
	Description string            `json:"description"`
	Visibility  editor.Visibility `json:"visibility"`
}

func (s *Server) handleEditorSave(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}

	asset, err := sess.Save(context.Background())
	if err != nil {
		// Failure keeps the session alive so the user can retry.
		return nil, err
	}

	delete(s.sessions, a.SessionID)
	return &SaveResult{
		DataBase64:  base64.StdEncoding.EncodeToString(asset.Data),
		MimeType:    asset.MimeType,
		Filename:    asset.Filename,
		OverlayText: asset.Metadata.OverlayText,
		Description: asset.Metadata.Description,
		Visibility:  asset.Metadata.Visibility,
	}, nil
}

func (s *Server) handleEditorCancel(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Cancel(); err != nil {
		return nil, err
	}

	delete(s.sessions, a.SessionID)
	return map[string]interface{}{"session_id": a.SessionID, "state": string(editor.StateClosed)}, nil
}
