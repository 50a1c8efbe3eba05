package batch

// Status is the state of a batch run.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

// Progress describes a batch run at one point in time.
// It holds no references, so a received value never changes.
type Progress struct {
	Status      Status `json:"status"`
	CurrentName string `json:"currentName,omitempty"`
	Error       string `json:"error,omitempty"`
	Total       int    `json:"total"`
	Current     int    `json:"current"`
}

// Done reports whether the run has finished, successfully or not.
func (p Progress) Done() bool {
	return p.Status == StatusComplete || p.Status == StatusError
}

// ProgressFunc receives progress events.
type ProgressFunc func(Progress)

// tracker owns the mutable progress of one run and emits copies of it.
type tracker struct {
	emit     ProgressFunc
	progress Progress
}

func newTracker(total int, emit ProgressFunc) *tracker {
	return &tracker{
		emit:     emit,
		progress: Progress{Total: total, Status: StatusPending},
	}
}

func (t *tracker) publish() {
	if t.emit != nil {
		t.emit(t.progress)
	}
}

func (t *tracker) start() {
	t.progress.Status = StatusProcessing
	t.publish()
}

func (t *tracker) advance(i int, name string) {
	t.progress.Current = i
	t.progress.CurrentName = name
	t.publish()
}

func (t *tracker) complete() {
	t.progress.Current = t.progress.Total
	t.progress.Status = StatusComplete
	t.publish()
}

func (t *tracker) fail(err error) {
	t.progress.Status = StatusError
	t.progress.Error = err.Error()
	t.publish()
}
