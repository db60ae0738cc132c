package requests

// WaitTaskRequest represents a blocking wait for task completion.
// Timeout is in seconds; zero means the configured default.
type WaitTaskRequest struct {
	Timeout int `json:"timeout"`
}

// DownloadTaskRequest represents a request to fetch finished creations
// to local disk. Prefix defaults to the task ID.
type DownloadTaskRequest struct {
	Prefix string `json:"prefix"`
}
