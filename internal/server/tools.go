package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// sessionProperty is the session_id argument every per-session tool takes.
func sessionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID returned by editor_open",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session Lifecycle
		{
			Name:        "editor_open",
			Description: "Start an editing session for an image or video asset. Returns the session ID and source dimensions. Videos are accepted pass-through only.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded asset bytes",
					},
					"mime_type": map[string]interface{}{
						"type":        "string",
						"description": "Asset MIME type (image/png, image/jpeg, image/gif, image/webp, video/*)",
					},
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "Original filename, preserved on the saved asset",
					},
				},
				"required": []string{"data_base64", "mime_type", "filename"},
			},
		},
		{
			Name:        "editor_state",
			Description: "Get the session's lifecycle state, adjustment values, and resolved crop region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "editor_viewport",
			Description: "Set the displayed size of the source image so crop-frame positions can be mapped back to source pixels. Defaults to the source's own dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Displayed width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Displayed height in pixels",
					},
				},
				"required": []string{"session_id", "width", "height"},
			},
		},

		// Crop Operations
		{
			Name:        "editor_crop_begin",
			Description: "Enter interactive crop mode, clearing any previously resolved crop region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "editor_crop_frame",
			Description: "Record a crop-frame change: normalized offsets in [0,1] and a zoom factor in [1,3]. Re-resolves the source-pixel crop region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Normalized horizontal offset (0 = left edge, 1 = right edge)",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Normalized vertical offset (0 = top edge, 1 = bottom edge)",
					},
					"zoom": map[string]interface{}{
						"type":        "number",
						"description": "Zoom factor, clamped to [1, 3]. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"session_id", "x", "y"},
			},
		},
		{
			Name:        "editor_crop_end",
			Description: "Leave crop mode, finalizing the region from the last crop-frame event.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},

		// Geometry Adjustments
		{
			Name:        "editor_rotate",
			Description: "Rotate the pending transform 90 degrees left or right. Rotations accumulate and are normalized when applied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"left", "right"},
						"description": "Rotation direction",
					},
				},
				"required": []string{"session_id", "direction"},
			},
		},
		{
			Name:        "editor_flip",
			Description: "Set the horizontal and vertical mirror flags. The flags are independent and composable.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"horizontal": map[string]interface{}{
						"type":        "boolean",
						"description": "Mirror left-right",
					},
					"vertical": map[string]interface{}{
						"type":        "boolean",
						"description": "Mirror top-bottom",
					},
				},
				"required": []string{"session_id", "horizontal", "vertical"},
			},
		},

		// Color Adjustments (display-only)
		{
			Name:        "editor_adjust",
			Description: "Set brightness, contrast, and saturation percentages (100 = unchanged). Display-only: these are never baked into the saved asset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"brightness": map[string]interface{}{
						"type":        "number",
						"description": "Brightness percentage. Default 100",
						"default":     100,
					},
					"contrast": map[string]interface{}{
						"type":        "number",
						"description": "Contrast percentage. Default 100",
						"default":     100,
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation percentage. Default 100",
						"default":     100,
					},
				},
				"required": []string{"session_id"},
			},
		},

		// Metadata
		{
			Name:        "editor_metadata",
			Description: "Set the overlay text, description, and visibility carried with the saved asset (not burned into pixels).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"overlay_text": map[string]interface{}{
						"type":        "string",
						"description": "Text overlaid on the asset by the presenting client",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Free-text description",
					},
					"visibility": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"private", "public"},
						"description": "Who can see the resulting post. Default private",
						"default":     "private",
					},
				},
				"required": []string{"session_id"},
			},
		},

		// Preview Operations
		{
			Name:        "editor_preview",
			Description: "Get the presentation-layer preview description: a CSS filter list for the color adjustments and a transform list for the pending geometry.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "editor_preview_render",
			Description: "Render the source with the current color adjustments applied and return it as base64 PNG. Display-only: the saved asset is never derived from this.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "editor_sample_color",
			Description: "Get the source color at a pixel coordinate, for the editor's eyedropper.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"session_id", "x", "y"},
			},
		},

		// Terminal Operations
		{
			Name:        "editor_reset",
			Description: "Return every adjustment to its default without discarding the loaded source asset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "editor_save",
			Description: "Bake crop/rotation/flips into the asset (or pass it through unchanged if never cropped), returning the final base64 bytes and metadata. The session is discarded on success.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "editor_cancel",
			Description: "Discard the session without producing an asset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
	}
}
