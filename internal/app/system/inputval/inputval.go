// Package inputval validates form input structs via struct tags.
//
// Browser-level required/format constraints are the first gate, but a
// server-rendered app cannot rely on them alone, so every form handler
// re-checks its input here before touching the backend.
//
// Supported rules (comma-separated in a `validate` tag):
//
//	required          – value must be non-empty after trimming
//	omitempty         – skip the remaining rules when the value is empty
//	email             – value must be a plain RFC 5322 address
//	max=N             – value must be at most N characters (runes)
//	oneof=a b c       – value must equal one of the space-separated options
//
// A `label` tag supplies the human-readable field name for messages.
// An unknown rule is a programming error and panics, so a bad tag fails
// the first test that touches the form instead of silently passing input.
package inputval

import (
	"fmt"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Result collects validation messages, in field declaration order.
type Result struct {
	errs []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "".
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message.
func (r Result) All() []string { return r.errs }

// IsValidEmail reports whether s is a plain RFC 5322 address.
// Display-name forms ("Name <a@b>") are rejected; single-label domains
// are accepted so dev and intranet hosts work.
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Validate checks the string fields of a struct against their `validate`
// tags. Non-struct input or non-string fields are ignored.
func Validate(input any) Result {
	var res Result

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return res
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" || field.Type.Kind() != reflect.String {
			continue
		}

		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		value := v.Field(i).String()

		for _, rule := range strings.Split(tag, ",") {
			if rule == "omitempty" {
				if strings.TrimSpace(value) == "" {
					break
				}
				continue
			}
			if msg := check(rule, label, value); msg != "" {
				res.errs = append(res.errs, msg)
				break
			}
		}
	}
	return res
}

func check(rule, label, value string) string {
	switch {
	case rule == "required":
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("%s is required.", label)
		}
	case rule == "email":
		if !IsValidEmail(value) {
			return "A valid email address is required."
		}
	case strings.HasPrefix(rule, "max="):
		n, err := strconv.Atoi(rule[len("max="):])
		if err == nil && utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		}
	case strings.HasPrefix(rule, "oneof="):
		if value == "" {
			return ""
		}
		for _, opt := range strings.Fields(rule[len("oneof="):]) {
			if value == opt {
				return ""
			}
		}
		return fmt.Sprintf("%s is invalid.", label)
	default:
		panic(fmt.Sprintf("inputval: unknown rule %q on %s", rule, label))
	}
	return ""
}
