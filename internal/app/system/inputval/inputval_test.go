package inputval

import "testing"

type clubInput struct {
	Name   string `validate:"required,max=200" label:"Club name"`
	Status string `validate:"oneof=ACTIVE INACTIVE" label:"Status"`
	Notes  string `validate:"max=10" label:"Notes"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     clubInput
		wantErr   bool
		wantFirst string
	}{
		{
			name:  "valid input",
			input: clubInput{Name: "Fritidsgården", Status: "ACTIVE"},
		},
		{
			name:      "missing required",
			input:     clubInput{Status: "ACTIVE"},
			wantErr:   true,
			wantFirst: "Club name is required.",
		},
		{
			name:      "whitespace-only counts as missing",
			input:     clubInput{Name: "   "},
			wantErr:   true,
			wantFirst: "Club name is required.",
		},
		{
			name:      "bad enum value",
			input:     clubInput{Name: "x", Status: "MAYBE"},
			wantErr:   true,
			wantFirst: "Status is invalid.",
		},
		{
			name:  "empty enum value allowed",
			input: clubInput{Name: "x"},
		},
		{
			name:      "over max length",
			input:     clubInput{Name: "x", Notes: "this is far too long"},
			wantErr:   true,
			wantFirst: "Notes must be at most 10 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.input)
			if res.HasErrors() != tt.wantErr {
				t.Fatalf("HasErrors() = %v, want %v (%v)", res.HasErrors(), tt.wantErr, res.All())
			}
			if tt.wantErr && res.First() != tt.wantFirst {
				t.Errorf("First() = %q, want %q", res.First(), tt.wantFirst)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},
		{"user@localhost", true}, // single-label domains work for dev hosts

		{"", false},
		{"   ", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},
		{"User Name <user@example.com>", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidate_EmailRule(t *testing.T) {
	type contactInput struct {
		Email string `validate:"required,email" label:"Email address"`
	}

	res := Validate(contactInput{Email: "not-an-email"})
	if !res.HasErrors() {
		t.Fatal("invalid address should fail validation")
	}
	if got := res.First(); got != "A valid email address is required." {
		t.Errorf("First() = %q", got)
	}

	if Validate(contactInput{Email: "john@example.com"}).HasErrors() {
		t.Error("valid address should pass")
	}
}

func TestValidate_OmitemptySkipsEmptyValue(t *testing.T) {
	type optionalInput struct {
		Email string `validate:"omitempty,email" label:"Email"`
	}

	if Validate(optionalInput{}).HasErrors() {
		t.Error("empty optional field should pass")
	}
	if !Validate(optionalInput{Email: "nope"}).HasErrors() {
		t.Error("malformed optional field should still fail")
	}
}

func TestValidate_UnknownRulePanics(t *testing.T) {
	type badInput struct {
		Name string `validate:"requried" label:"Name"`
	}

	defer func() {
		if recover() == nil {
			t.Error("a misspelled rule should panic, not pass silently")
		}
	}()
	Validate(badInput{Name: "x"})
}

func TestValidate_NonStructIgnored(t *testing.T) {
	if Validate(42).HasErrors() {
		t.Error("non-struct input should not produce errors")
	}
}

func TestValidate_PointerInput(t *testing.T) {
	res := Validate(&clubInput{})
	if !res.HasErrors() {
		t.Error("pointer to struct should be validated")
	}
}
