package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// UploadResume sends a resume file as multipart/form-data with the fields
// the backend expects: "file" and "user_id".
func (c *Client) UploadResume(ctx context.Context, userID int64, filename string, file io.Reader) (*domain.Resume, error) {
	form := NewMultipart()
	if err := form.AddFile("file", filename, file); err != nil {
		return nil, err
	}
	if err := form.AddField("user_id", strconv.FormatInt(userID, 10)); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/api/resume/upload", form, nil)
	if err != nil {
		return nil, err
	}
	var resume domain.Resume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fmt.Errorf("decode resume upload response: %w", err)
	}
	return &resume, nil
}

// AnalyzeResume triggers server-side analysis of an uploaded resume. The
// result shape is backend-defined and returned raw.
func (c *Client) AnalyzeResume(ctx context.Context, resumeID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/resume/analyze/%d", resumeID), nil, nil)
}
