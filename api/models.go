package api

// ApiResponse is the JSON envelope of every response.
type ApiResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// TimelineStatus describes the root timeline's clock and playback state.
type TimelineStatus struct {
	Name          string   `json:"name"`
	State         string   `json:"state"`
	Time          float64  `json:"time"`
	Frame         int      `json:"frame"`
	Loop          int      `json:"loop"`
	Duration      float64  `json:"duration,omitempty"`
	Framerate     float64  `json:"framerate"`
	TimeScale     float64  `json:"timeScale"`
	Looping       bool     `json:"looping"`
	RepeatCount   int      `json:"repeatCount,omitempty"`
	Complete      bool     `json:"complete"`
	Progress      *float64 `json:"progress,omitempty"`
	Children      int      `json:"children"`
	Objects       int      `json:"objects"`
	UptimeSeconds float64  `json:"uptimeSeconds"`
}

// SeekRequest is the body of POST /seek. Exactly one of Time or Frame is
// used; Frame wins when both are set.
type SeekRequest struct {
	Time  *float64 `json:"time"`
	Frame *int     `json:"frame"`
}

// TimeScaleRequest is the body of PUT /timescale.
type TimeScaleRequest struct {
	Scale *float64 `json:"scale" binding:"required"`
}

// EasesResponse lists the named ease presets.
type EasesResponse struct {
	Eases []string `json:"eases"`
	Total int      `json:"total"`
}
