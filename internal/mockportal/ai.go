package mockportal

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// The AI handlers return deterministic canned payloads shaped like the
// production model responses, so client code exercising these endpoints
// sees realistic envelopes without a model in the loop.

type aiTextRequest struct {
	ResumeText     string `json:"resume_text"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

func (s *Server) handleAIAnalyzeResume(c echo.Context) error {
	var req aiTextRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.ResumeText == "" {
		return detail(c, http.StatusBadRequest, "resume_text is required")
	}
	return c.JSON(http.StatusOK, analysisFor(req.ResumeText, req.JobDescription))
}

func (s *Server) handleAIAnalyzeResumeFile(c echo.Context) error {
	if _, err := c.FormFile("file"); err != nil {
		return detail(c, http.StatusBadRequest, "file is required")
	}
	return c.JSON(http.StatusOK, analysisFor("uploaded file", c.FormValue("job_description")))
}

func (s *Server) handleAICoverLetter(c echo.Context) error {
	var req aiTextRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"cover_letter": coverLetterFor(req.JobDescription),
	})
}

func (s *Server) handleAICoverLetterFile(c echo.Context) error {
	if _, err := c.FormFile("file"); err != nil {
		return detail(c, http.StatusBadRequest, "file is required")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"cover_letter": coverLetterFor(c.FormValue("job_description")),
	})
}

func (s *Server) handleAIInterviewQuestions(c echo.Context) error {
	var req aiTextRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"questions": questionsFor(req.JobTitle),
	})
}

func (s *Server) handleAIInterviewQuestionsFile(c echo.Context) error {
	if _, err := c.FormFile("file"); err != nil {
		return detail(c, http.StatusBadRequest, "file is required")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"questions": questionsFor(c.FormValue("job_title")),
	})
}

func analysisFor(resumeText, jobDescription string) map[string]any {
	// Crude keyword overlap stands in for the model's match score.
	score := 50
	for _, word := range strings.Fields(strings.ToLower(jobDescription)) {
		if len(word) > 4 && strings.Contains(strings.ToLower(resumeText), word) {
			score += 5
		}
	}
	if score > 95 {
		score = 95
	}
	return map[string]any{
		"match_score": score,
		"summary":     "Automated development-mode analysis.",
		"suggestions": []string{"quantify achievements", "mirror the posting's key terms"},
	}
}

func coverLetterFor(jobDescription string) string {
	if jobDescription == "" {
		jobDescription = "the advertised position"
	}
	return fmt.Sprintf("Dear Hiring Manager,\n\nI am writing to apply for %s.\n\n(Development-mode draft.)", jobDescription)
}

func questionsFor(jobTitle string) []string {
	if jobTitle == "" {
		jobTitle = "this role"
	}
	return []string{
		fmt.Sprintf("What attracted you to %s?", jobTitle),
		"Walk through a project you are proud of.",
		"How do you handle conflicting priorities?",
	}
}
