package task

// Task is a snapshot of a remote generation job as returned by the
// task query endpoint. It is created on submit and updated only by
// re-querying the remote service.
type Task struct {
	ID        string     `json:"id"`
	State     Status     `json:"state"`
	ErrCode   string     `json:"err_code,omitempty"`
	Credits   int        `json:"credits,omitempty"`
	Payload   string     `json:"payload,omitempty"`
	Creations []Creation `json:"creations,omitempty"`
}

// Creation is one output artifact produced by a successful task.
// URLs are time-limited on the remote side (about one hour).
type Creation struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	CoverURL string `json:"cover_url,omitempty"`
}

// Succeeded reports whether the task finished with artifacts.
func (t *Task) Succeeded() bool {
	return t.State == StatusSuccess
}

// Failed reports whether the remote service gave up on the task.
// A failed task is a normal value; the error code explains the cause.
func (t *Task) Failed() bool {
	return t.State == StatusFailed
}

// VideoURL returns the primary artifact URL of the first creation,
// or an empty string when no creations exist yet.
func (t *Task) VideoURL() string {
	if len(t.Creations) == 0 {
		return ""
	}
	return t.Creations[0].URL
}

// CoverURL returns the cover image URL of the first creation,
// or an empty string when no creations exist yet.
func (t *Task) CoverURL() string {
	if len(t.Creations) == 0 {
		return ""
	}
	return t.Creations[0].CoverURL
}
