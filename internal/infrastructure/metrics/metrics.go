package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Generation submissions per job type
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "submissions_total",
			Help:      "Total generation task submissions",
		},
		[]string{"job_type", "status"},
	)

	// Finished tasks by terminal state
	TasksFinishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "tasks_finished_total",
			Help:      "Total tasks that reached a terminal state",
		},
		[]string{"state"},
	)

	// Wait duration until a terminal state was observed
	WaitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "wait_duration_seconds",
			Help:      "Time waited for a task to finish in seconds",
			Buckets:   []float64{5, 15, 30, 60, 120, 300, 600, 1800},
		},
	)

	// Upload counters
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "uploads_total",
			Help:      "Total file uploads",
		},
		[]string{"file_type", "status"},
	)

	// Upload bytes counter
	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded",
		},
		[]string{"file_type"},
	)

	// Creation download counters
	DownloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "downloads_total",
			Help:      "Total creation files downloaded",
		},
		[]string{"status"},
	)

	// Downloaded bytes counter
	DownloadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vidu",
			Subsystem: "ui",
			Name:      "download_bytes_total",
			Help:      "Total bytes downloaded from creations",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordSubmission records a generation task submission
func RecordSubmission(jobType, status string) {
	SubmissionsTotal.WithLabelValues(jobType, status).Inc()
}

// RecordTaskFinished records a task reaching a terminal state
func RecordTaskFinished(state string, waitSec float64) {
	TasksFinishedTotal.WithLabelValues(state).Inc()
	WaitDuration.Observe(waitSec)
}

// RecordUpload records a file upload
func RecordUpload(fileType, status string, bytes int64) {
	UploadsTotal.WithLabelValues(fileType, status).Inc()
	if status == "success" {
		UploadBytesTotal.WithLabelValues(fileType).Add(float64(bytes))
	}
}

// RecordDownload records a creation file download
func RecordDownload(status string, bytes int64) {
	DownloadsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		DownloadBytesTotal.Add(float64(bytes))
	}
}
