// Package normalize holds defensive input/decode helpers for values that
// round-trip through the backend in inconsistent shapes.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Scalar coerces a value that should be a single scalar but is known to
// sometimes arrive as a single-element array or a JSON-stringified array
// (e.g. status: ["SCHEDULED"] or status: "['SCHEDULED']"). A multi-element
// array in a scalar field is a data inconsistency: it is logged and the
// first element wins rather than failing the submission.
func Scalar(v any, log *zap.Logger) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return scalarFromString(val, log)
	case []string:
		return firstOf(toAny(val), log)
	case []any:
		return firstOf(val, log)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		// JSON numbers decode as float64; integral values print without
		// a fraction.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprint(val)
	}
}

func scalarFromString(s string, log *zap.Logger) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return s
	}

	// Stringified array. The backend has emitted both proper JSON
	// (`["SCHEDULED"]`) and Python-repr quoting (`['SCHEDULED']`).
	candidate := trimmed
	var arr []any
	if err := json.Unmarshal([]byte(candidate), &arr); err != nil {
		candidate = strings.ReplaceAll(trimmed, "'", `"`)
		if err := json.Unmarshal([]byte(candidate), &arr); err != nil {
			// Not actually an array; keep the raw string.
			return s
		}
	}
	return firstOf(arr, log)
}

func firstOf(arr []any, log *zap.Logger) string {
	switch len(arr) {
	case 0:
		return ""
	case 1:
	default:
		if log != nil {
			log.Warn("multi-element array in scalar field; taking first element",
				zap.Int("len", len(arr)))
		}
	}
	if s, ok := arr[0].(string); ok {
		return s
	}
	return fmt.Sprint(arr[0])
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// SocialLinks is the normalized shape of a club's social media field.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// DecodeSocialLinks tolerates the social_media field arriving as a JSON
// string, a native object, or absent, and normalizes all three to the same
// shape. Unknown shapes decode to empty links rather than failing.
func DecodeSocialLinks(v any) SocialLinks {
	var out SocialLinks
	switch val := v.(type) {
	case nil:
		return out
	case string:
		if strings.TrimSpace(val) == "" {
			return out
		}
		_ = json.Unmarshal([]byte(val), &out)
		return out
	case map[string]any:
		if s, ok := val["facebook"].(string); ok {
			out.Facebook = s
		}
		if s, ok := val["instagram"].(string); ok {
			out.Instagram = s
		}
		return out
	case SocialLinks:
		return val
	default:
		return out
	}
}
