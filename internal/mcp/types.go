package mcp

// CreateWindowInput is the input for the create_window tool.
type CreateWindowInput struct {
	LoadTarget  string `json:"load_target,omitempty" jsonschema:"Absolute URL or content-server-relative path to load. Omit for the host's default page."`
	Width       int    `json:"width,omitempty" jsonschema:"Window width in pixels (host default when omitted)"`
	Height      int    `json:"height,omitempty" jsonschema:"Window height in pixels (host default when omitted)"`
	X           *int   `json:"x,omitempty" jsonschema:"Window X position. Omit both coordinates to let the host auto-place the window."`
	Y           *int   `json:"y,omitempty" jsonschema:"Window Y position. Omit both coordinates to let the host auto-place the window."`
	Title       string `json:"title,omitempty" jsonschema:"Window title"`
	Show        *bool  `json:"show,omitempty" jsonschema:"Show the window immediately (host default: true)"`
	Resizable   *bool  `json:"resizable,omitempty" jsonschema:"Allow resizing (host default: true)"`
	Frame       *bool  `json:"frame,omitempty" jsonschema:"Draw window chrome (host default: true)"`
	AlwaysOnTop *bool  `json:"always_on_top,omitempty" jsonschema:"Keep above other windows (host default: false)"`
	Timeout     int    `json:"timeout,omitempty" jsonschema:"Seconds to wait for the host to report the new window (default: 30)"`
}

// CreateWindowOutput is the output for the create_window tool.
type CreateWindowOutput struct {
	ID int `json:"id"`
}

// CreateViewInput is the input for the create_view tool.
type CreateViewInput struct {
	Width   int    `json:"width,omitempty" jsonschema:"View width in pixels (host default when omitted)"`
	Height  int    `json:"height,omitempty" jsonschema:"View height in pixels (host default when omitted)"`
	X       *int   `json:"x,omitempty" jsonschema:"View X position within its window"`
	Y       *int   `json:"y,omitempty" jsonschema:"View Y position within its window"`
	Title   string `json:"title,omitempty" jsonschema:"View title"`
	Show    *bool  `json:"show,omitempty" jsonschema:"Show the view immediately (host default: true)"`
	Timeout int    `json:"timeout,omitempty" jsonschema:"Seconds to wait for the host to report the new view (default: 30)"`
}

// CreateViewOutput is the output for the create_view tool.
type CreateViewOutput struct {
	ID int `json:"id"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	IDs []int `json:"ids"`
}

// ListViewsInput is the input for the list_views tool.
type ListViewsInput struct{}

// ListViewsOutput is the output for the list_views tool.
type ListViewsOutput struct {
	IDs []int `json:"ids"`
}

// SetQuitBehaviorInput is the input for the set_quit_behavior tool.
type SetQuitBehaviorInput struct {
	QuitOnAllClosed bool `json:"quit_on_all_closed" jsonschema:"required,Whether the host exits when its last window closes"`
}

// SetQuitBehaviorOutput is the output for the set_quit_behavior tool.
type SetQuitBehaviorOutput struct {
	QuitOnAllClosed bool `json:"quit_on_all_closed"`
}
