package constants

// JobStatus is the canonical status for rows in extractions.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // accepted, not yet processed
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOCROK   JobStatus = "OCR_OK"  // stage 1 completed (text recognized)
	JobStatusParsed  JobStatus = "PARSED"  // stage 2 completed (record assembled)
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)
