package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fastreader_http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var uploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fastreader_uploads_total",
	Help: "Number of successfully uploaded documents",
})

var extractPageFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fastreader_extract_page_failures_total",
	Help: "Number of PDF pages whose text extraction failed and was skipped",
})

var readingLogsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fastreader_reading_logs_total",
	Help: "Number of recorded reading sessions",
})

// CountRequest records one handled HTTP request.
func CountRequest(path, status string) {
	httpRequestsTotal.WithLabelValues(path, status).Inc()
}

// CountUpload records one successful document upload.
func CountUpload() {
	uploadsTotal.Inc()
}

// CountPageFailure records one skipped PDF page.
func CountPageFailure() {
	extractPageFailuresTotal.Inc()
}

// CountReadingLog records one persisted reading session.
func CountReadingLog() {
	readingLogsTotal.Inc()
}
