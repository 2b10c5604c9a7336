package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// Payload is a multipart/form-data submission under construction: the form
// draft's scalar fields, JSON-encoded composite fields, repeated multi-value
// id fields, and any staged files. Passing a *Payload to Post/Patch makes the
// request multipart instead of JSON.
//
// Field order is preserved; setting the same scalar twice keeps the last
// value. A file field is only present when the caller attached one — an edit
// with no new file simply never attaches, so the backend keeps the stored
// file.
type Payload struct {
	fields []formField
	files  []filePart
}

type formField struct {
	name  string
	value string
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// NewPayload returns an empty multipart payload.
func NewPayload() *Payload {
	return &Payload{}
}

// Set adds a scalar field, coercing the value to its string form
// (booleans "true"/"false", integers base-10). Setting an existing field
// replaces its value.
func (p *Payload) Set(name string, value any) {
	s := coerce(value)
	for i := range p.fields {
		if p.fields[i].name == name {
			p.fields[i].value = s
			return
		}
	}
	p.fields = append(p.fields, formField{name: name, value: s})
}

// SetJSON adds a composite field the backend expects as JSON text
// (e.g. social links).
func (p *Payload) SetJSON(name string, value any) error {
	buf, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	p.Set(name, string(buf))
	return nil
}

// Add appends a repeated value under the same field name. Multi-select id
// lists go out this way so the backend receives a repeated-field list, not a
// JSON array string.
func (p *Payload) Add(name string, value any) {
	p.fields = append(p.fields, formField{name: name, value: coerce(value)})
}

// AttachFile stages a file under the given field name. contentType falls
// back to application/octet-stream when empty.
func (p *Payload) AttachFile(field, filename, contentType string, data []byte) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	p.files = append(p.files, filePart{
		field:       field,
		filename:    filename,
		contentType: contentType,
		data:        data,
	})
}

// Has reports whether a field (scalar or file) is present in the payload.
func (p *Payload) Has(name string) bool {
	for _, f := range p.fields {
		if f.name == name {
			return true
		}
	}
	for _, f := range p.files {
		if f.field == name {
			return true
		}
	}
	return false
}

// Values returns every value set for a field, in order.
func (p *Payload) Values(name string) []string {
	var out []string
	for _, f := range p.fields {
		if f.name == name {
			out = append(out, f.value)
		}
	}
	return out
}

// Encode renders the payload as a multipart body and returns the reader plus
// the Content-Type header value (including the boundary).
func (p *Payload) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range p.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}
	for _, f := range p.files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(f.field), escapeQuotes(f.filename)))
		hdr.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func coerce(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
