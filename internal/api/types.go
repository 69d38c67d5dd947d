package api

import "mime/multipart"

// APIResponse represents a standard API response
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata *Metadata   `json:"metadata,omitempty"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata
type Metadata struct {
	Version         string  `json:"version"`
	RequestID       string  `json:"request_id,omitempty"`
	ExecutionTimeMs float64 `json:"execution_time_ms"`
	Timestamp       string  `json:"timestamp"`
}

// APIError represents an API error
type APIError struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Messages map[string]string `json:"messages,omitempty"`
}

// CheckRequest asks whether a path's file name is free
type CheckRequest struct {
	Path string `json:"path" binding:"required"`
}

// UploadRequest is the multipart form of an upload check
type UploadRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required" validate:"file_not_exists"`
}

// DirectoryRequest replaces or extends the directory list. Directories wins
// over Directory when both are set.
type DirectoryRequest struct {
	Directory   string   `json:"directory"`
	Directories []string `json:"directories"`
}

// DirectoryResponse shows the directory list in both forms
type DirectoryResponse struct {
	Directory   string   `json:"directory"`
	Directories []string `json:"directories"`
}

// Stats counts checks served since startup
type Stats struct {
	Checks      int64 `json:"checks"`
	Rejected    int64 `json:"rejected"`
	Directories int   `json:"directories"`
}
