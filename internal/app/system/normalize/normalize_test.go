package normalize

import (
	"testing"

	"go.uber.org/zap"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"plain string", "SCHEDULED", "SCHEDULED"},
		{"single-element array", []any{"SCHEDULED"}, "SCHEDULED"},
		{"single-element string slice", []string{"DRAFT"}, "DRAFT"},
		{"stringified json array", `["SCHEDULED"]`, "SCHEDULED"},
		{"stringified single-quoted array", `['SCHEDULED']`, "SCHEDULED"},
		{"multi-element array takes first", []any{"SCHEDULED", "DONE"}, "SCHEDULED"},
		{"empty array", []any{}, ""},
		{"bracketed non-array string kept", "[not json", "[not json"},
		{"bool", true, "true"},
		{"json number", float64(42), "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scalar(tt.input, zap.NewNop()); got != tt.want {
				t.Errorf("Scalar(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScalar_NilLoggerTolerated(t *testing.T) {
	if got := Scalar([]any{"A", "B"}, nil); got != "A" {
		t.Errorf("Scalar with nil logger = %q, want A", got)
	}
}

func TestDecodeSocialLinks(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  SocialLinks
	}{
		{"absent", nil, SocialLinks{}},
		{"json string", `{"facebook":"x"}`, SocialLinks{Facebook: "x"}},
		{"native object", map[string]any{"facebook": "fb", "instagram": "ig"}, SocialLinks{Facebook: "fb", Instagram: "ig"}},
		{"empty string", "", SocialLinks{}},
		{"broken json string", `{facebook`, SocialLinks{}},
		{"already decoded", SocialLinks{Instagram: "ig"}, SocialLinks{Instagram: "ig"}},
		{"unexpected shape", 42, SocialLinks{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeSocialLinks(tt.input); got != tt.want {
				t.Errorf("DecodeSocialLinks(%v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
