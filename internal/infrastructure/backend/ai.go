package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// The AI endpoints return model-generated payloads whose shape the backend
// does not pin down; they are surfaced as raw envelopes.

// AIAnalyzeResume submits resume text for analysis against a job
// description.
func (c *Client) AIAnalyzeResume(ctx context.Context, resumeText, jobDescription string) (json.RawMessage, error) {
	body := map[string]string{
		"resume_text":     resumeText,
		"job_description": jobDescription,
	}
	return c.do(ctx, http.MethodPost, "/api/ai/analyze-resume", body, nil)
}

// AIAnalyzeResumeFile is the multipart variant of AIAnalyzeResume.
func (c *Client) AIAnalyzeResumeFile(ctx context.Context, filename string, file io.Reader, jobDescription string) (json.RawMessage, error) {
	form := NewMultipart()
	if err := form.AddFile("file", filename, file); err != nil {
		return nil, err
	}
	if err := form.AddField("job_description", jobDescription); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/api/ai/analyze-resume-file", form, nil)
}

// AIGenerateCoverLetter asks for a cover letter draft from resume text and
// a job description.
func (c *Client) AIGenerateCoverLetter(ctx context.Context, resumeText, jobDescription string) (json.RawMessage, error) {
	body := map[string]string{
		"resume_text":     resumeText,
		"job_description": jobDescription,
	}
	return c.do(ctx, http.MethodPost, "/api/ai/generate-cover-letter", body, nil)
}

// AIGenerateCoverLetterFile is the multipart variant of
// AIGenerateCoverLetter.
func (c *Client) AIGenerateCoverLetterFile(ctx context.Context, filename string, file io.Reader, jobDescription string) (json.RawMessage, error) {
	form := NewMultipart()
	if err := form.AddFile("file", filename, file); err != nil {
		return nil, err
	}
	if err := form.AddField("job_description", jobDescription); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/api/ai/generate-cover-letter-file", form, nil)
}

// AIInterviewQuestions generates practice questions for a role.
func (c *Client) AIInterviewQuestions(ctx context.Context, jobTitle, jobDescription string) (json.RawMessage, error) {
	body := map[string]string{
		"job_title":       jobTitle,
		"job_description": jobDescription,
	}
	return c.do(ctx, http.MethodPost, "/api/ai/interview-questions", body, nil)
}

// AIInterviewQuestionsFile generates questions grounded on an uploaded
// resume file.
func (c *Client) AIInterviewQuestionsFile(ctx context.Context, filename string, file io.Reader, jobTitle string) (json.RawMessage, error) {
	form := NewMultipart()
	if err := form.AddFile("file", filename, file); err != nil {
		return nil, err
	}
	if err := form.AddField("job_title", jobTitle); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/api/ai/interview-questions-file", form, nil)
}
