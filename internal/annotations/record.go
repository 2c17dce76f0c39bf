package annotations

// Unset marks an integer or length field that was empty in the source CSV.
// It is distinct from a real zero value and must survive round-trips.
const Unset = -100

// Row carries the raw string fields of one annotation CSV row. It is an
// intermediate form; callers consume Record.
type Row struct {
	ID           string
	Subject      string
	Scene        string
	Quality      string
	Relevance    string
	Verified     string
	Script       string
	Objects      string
	Descriptions string
	Actions      string
	Length       string
}

// Record is one normalized annotation: a video file path plus its metadata
// and time-stamped action labels. Labels and ActionTimings are parallel
// slices; index i of ActionTimings holds the timing list for Labels[i].
type Record struct {
	VideoID      string   `json:"video_id"`
	VideoPath    string   `json:"video"`
	Subject      string   `json:"subject"`
	Scene        string   `json:"scene"`
	Quality      int      `json:"quality"`
	Relevance    int      `json:"relevance"`
	Verified     string   `json:"verified"`
	Script       string   `json:"script"`
	Objects      []string `json:"objects"`
	Descriptions []string `json:"descriptions"`
	// Labels are zero-based class indexes resolved through the vocabulary
	// table, in annotation order.
	Labels []int `json:"labels"`
	// ActionTimings holds one timing list per label, nominally [start, end]
	// seconds, though the source format permits any count.
	ActionTimings [][]float64 `json:"action_timings"`
	Length        float64     `json:"length"`
}
