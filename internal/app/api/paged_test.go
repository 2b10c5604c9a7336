package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

type row struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestNormalizePage_BareArray(t *testing.T) {
	res, err := NormalizePage[row]([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`))
	if err != nil {
		t.Fatalf("NormalizePage failed: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(res.Items))
	}
	if res.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want len(items)", res.TotalCount)
	}
}

func TestNormalizePage_Envelope(t *testing.T) {
	// Mid-pagination: count exceeds the page's results.
	res, err := NormalizePage[row]([]byte(`{"results":[{"id":1,"name":"a"}],"count":37,"next":"...","previous":null}`))
	if err != nil {
		t.Fatalf("NormalizePage failed: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(res.Items))
	}
	if res.TotalCount != 37 {
		t.Errorf("TotalCount = %d, want 37", res.TotalCount)
	}
}

func TestNormalizePage_EmptyShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty array", `[]`},
		{"empty envelope", `{"results":[],"count":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NormalizePage[row]([]byte(tt.raw))
			if err != nil {
				t.Fatalf("NormalizePage failed: %v", err)
			}
			if len(res.Items) != 0 || res.TotalCount != 0 {
				t.Errorf("got %d items, count %d", len(res.Items), res.TotalCount)
			}
		})
	}
}

func TestNormalizePage_Garbage(t *testing.T) {
	if _, err := NormalizePage[row]([]byte(`"nope"`)); err == nil {
		t.Fatal("expected error for non-list shape")
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"empty list is one page", 0, 10, 1},
		{"exact fit", 30, 10, 3},
		{"remainder rounds up", 31, 10, 4},
		{"single partial page", 7, 10, 1},
		{"negative count clamps", -5, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PagedResult[row]{TotalCount: tt.total}
			if got := p.TotalPages(tt.pageSize); got != tt.want {
				t.Errorf("TotalPages(%d/%d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestGetPaged_SendsPageParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "3" || q.Get("page_size") != "10" {
			t.Errorf("page params = %v", q)
		}
		if q.Get("search") != "anna" {
			t.Errorf("filter params not forwarded: %v", q)
		}
		w.Write([]byte(`{"results":[{"id":21,"name":"x"}],"count":21}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	params := map[string][]string{"search": {"anna"}}
	res, err := GetPaged[row](context.Background(), c, "/users/", params, 3, 10)
	if err != nil {
		t.Fatalf("GetPaged failed: %v", err)
	}
	if res.TotalCount != 21 {
		t.Errorf("TotalCount = %d", res.TotalCount)
	}
}

func TestGetAll_RequestsLargePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page_size") != "1000" {
			t.Errorf("page_size = %q, want 1000", r.URL.Query().Get("page_size"))
		}
		w.Write([]byte(`[{"id":1,"name":"Football"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	items, err := GetAll[row](context.Background(), c, "/interests/", nil)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Football" {
		t.Errorf("items = %+v", items)
	}
}
