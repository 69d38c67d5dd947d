package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nyasuto/fileguard/internal/validator/binding"
	"github.com/nyasuto/fileguard/internal/validator/file"
)

func (s *Server) checkPath(c *gin.Context) {
	start := time.Now()

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	path, err := file.ParsePath(req.Path)
	if err != nil {
		s.errorResponse(c, http.StatusBadRequest, "INVALID_PATH", err.Error())
		return
	}

	s.successResponse(c, http.StatusOK, s.Check(path), time.Since(start))
}

func (s *Server) checkUpload(c *gin.Context) {
	start := time.Now()

	var req UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	upload, err := file.UploadFromHeader(req.File)
	if err != nil {
		s.errorResponse(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		if len(binding.Failed(err)) == 0 {
			s.errorResponse(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
			return
		}
		s.mu.RLock()
		msg := s.rule.Message(file.DoesExist)
		s.mu.RUnlock()

		c.JSON(http.StatusConflict, APIResponse{
			Status: "error",
			Error: &APIError{
				Code:     "FILE_EXISTS",
				Message:  msg,
				Messages: map[string]string{file.DoesExist: msg},
			},
			Metadata: &Metadata{
				Version:   "1.0",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		})
		return
	}

	s.successResponse(c, http.StatusOK, file.Result{
		Valid:    true,
		FileName: upload.FileName(),
		Messages: map[string]string{},
	}, time.Since(start))
}

func (s *Server) getDirectories(c *gin.Context) {
	start := time.Now()

	s.mu.RLock()
	resp := s.directoryResponse()
	s.mu.RUnlock()

	s.successResponse(c, http.StatusOK, resp, time.Since(start))
}

func (s *Server) setDirectories(c *gin.Context) {
	s.updateDirectories(c, "set", (*file.NotExists).SetDirectory)
}

func (s *Server) addDirectories(c *gin.Context) {
	s.updateDirectories(c, "add", (*file.NotExists).AddDirectory)
}

func (s *Server) updateDirectories(c *gin.Context, op string, apply func(*file.NotExists, file.DirectoryConfig) *file.NotExists) {
	start := time.Now()

	var req DirectoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cfg, err := req.config()
	if err != nil {
		s.errorResponse(c, http.StatusBadRequest, "INVALID_DIRECTORIES", err.Error())
		return
	}

	s.mu.Lock()
	apply(s.rule, cfg)
	resp := s.directoryResponse()
	s.mu.Unlock()

	log.Printf("directories %s by %s: %s", op, requester(c), resp.Directory)
	s.successResponse(c, http.StatusOK, resp, time.Since(start))
}

// directoryResponse must be called with s.mu held.
func (s *Server) directoryResponse() DirectoryResponse {
	return DirectoryResponse{
		Directory:   s.rule.Directory(),
		Directories: s.rule.DirectorySlice(),
	}
}

var errAmbiguousDirectories = errors.New("set either directory or directories, not both")

func (r DirectoryRequest) config() (file.DirectoryConfig, error) {
	if len(r.Directories) > 0 && r.Directory != "" {
		return file.DirectoryConfig{}, errAmbiguousDirectories
	}
	if len(r.Directories) > 0 {
		return file.ListDirs(r.Directories...), nil
	}
	return file.DelimitedDirs(r.Directory), nil
}

func requester(c *gin.Context) string {
	if name := c.GetString("username"); name != "" {
		return name
	}
	if t := c.GetString("auth_type"); t != "" {
		return t
	}
	return "unknown"
}

func (s *Server) successResponse(c *gin.Context, status int, data interface{}, duration time.Duration) {
	c.JSON(status, APIResponse{
		Status: "success",
		Data:   data,
		Metadata: &Metadata{
			Version:         "1.0",
			ExecutionTimeMs: float64(duration.Nanoseconds()) / 1e6,
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{
		Status: "error",
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Metadata: &Metadata{
			Version:   "1.0",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}
