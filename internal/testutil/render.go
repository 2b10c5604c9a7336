package testutil

import (
	"net/http"
	"reflect"

	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
)

// PageRender records one page rendered through the render seam.
type PageRender struct {
	Name string
	Data any
}

// RenderRecorder captures every page a handler renders during a test, so
// re-render branches can be asserted instead of swallowed.
type RenderRecorder struct {
	Renders []PageRender
}

// Last returns the most recent render, or nil when nothing rendered.
func (rr *RenderRecorder) Last() *PageRender {
	if len(rr.Renders) == 0 {
		return nil
	}
	return &rr.Renders[len(rr.Renders)-1]
}

// RecordRenders installs a recording page renderer for the duration of the
// test. The recorder writes no body; redirect and status assertions on the
// response recorder keep working.
func RecordRenders(t interface{ Cleanup(func()) }) *RenderRecorder {
	rr := &RenderRecorder{}
	restore := render.SetRenderer(func(w http.ResponseWriter, r *http.Request, name string, data any) {
		rr.Renders = append(rr.Renders, PageRender{Name: name, Data: data})
	})
	t.Cleanup(restore)
	return rr
}

// FormError extracts the inline error from a rendered view model that
// embeds formutil.Base. Returns "" when there is none.
func FormError(data any) string {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName("Base")
	if !f.IsValid() {
		return ""
	}
	b, ok := f.Interface().(formutil.Base)
	if !ok {
		return ""
	}
	return string(b.Error)
}
