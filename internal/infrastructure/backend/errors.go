package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/jobhive/portal-client/internal/core/domain"
)

// normalize turns a non-2xx response into an APIError whose Message is
// guaranteed to be a scalar string, whatever shape the backend produced.
// The raw parsed body is preserved in Response for callers that need the
// structured detail.
func normalize(status int, raw []byte) *domain.APIError {
	var parsed any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			// Not JSON: fall back to the body as plain text.
			parsed = strings.TrimSpace(string(raw))
		}
	}

	message := scalarMessage(parsed)
	if message == "" {
		message = fmt.Sprintf("HTTP error %d", status)
	}

	// Validation responses keep their full body in the message so the
	// failing fields survive into logs and UIs that only show Message.
	if status == http.StatusUnprocessableEntity && len(raw) > 0 {
		message = fmt.Sprintf("%s: %s", strings.TrimSpace(string(raw)), message)
	}

	return &domain.APIError{Message: message, Status: status, Response: parsed}
}

// scalarMessage extracts a human-readable string from a parsed error body.
// The backend nests validation errors under "detail" in several shapes:
// a plain string, an object with a "msg" field, or an array of such
// objects; all of them reduce to one string here.
func scalarMessage(parsed any) string {
	switch body := parsed.(type) {
	case string:
		return body
	case map[string]any:
		if msg := scalarDetail(body["detail"]); msg != "" {
			return msg
		}
		for _, key := range []string{"message", "error"} {
			if s, ok := body[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func scalarDetail(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case []any:
		if len(d) == 0 {
			return ""
		}
		if entry, ok := d[0].(map[string]any); ok {
			if s, ok := entry["msg"].(string); ok {
				return s
			}
		}
		return fmt.Sprint(d[0])
	case map[string]any:
		if s, ok := d["msg"].(string); ok {
			return s
		}
		return joinValues(d)
	}
	return ""
}

// joinValues flattens an arbitrary object into "v1; v2; ..." with the keys
// sorted so the result is deterministic.
func joinValues(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprint(m[k]))
	}
	return strings.Join(parts, "; ")
}
