package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultPageSize is the page size used by the admin list pages.
const DefaultPageSize = 10

// allPageSize approximates "fetch everything" for dropdown option lists.
// Option endpoints are never paginated client-side; we just ask big.
const allPageSize = 1000

// PagedResult is the canonical shape every list caller sees. The backend is
// inconsistently paginated: some endpoints return a bare JSON array, others
// a {results, count} envelope. Both normalize here, at the client boundary,
// so no page has to tolerate the dual shape itself.
type PagedResult[T any] struct {
	Items      []T
	TotalCount int
}

// TotalPages returns the page count for a given page size, never below 1.
func (p PagedResult[T]) TotalPages(pageSize int) int {
	if p.TotalCount <= 0 || pageSize <= 0 {
		return 1
	}
	pages := (p.TotalCount + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// envelope is the backend's paginated response shape.
type envelope struct {
	Results json.RawMessage `json:"results"`
	Count   int             `json:"count"`
}

// NormalizePage decodes a list response body into a PagedResult. A bare
// array is a complete single-page result (TotalCount = len); an envelope
// uses results/count, which may disagree with len(results) mid-pagination.
func NormalizePage[T any](raw []byte) (PagedResult[T], error) {
	var out PagedResult[T]

	trimmed := firstByte(raw)
	switch trimmed {
	case '[':
		if err := json.Unmarshal(raw, &out.Items); err != nil {
			return out, fmt.Errorf("decode list response: %w", err)
		}
		out.TotalCount = len(out.Items)
		return out, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return out, fmt.Errorf("decode paginated envelope: %w", err)
		}
		if len(env.Results) > 0 {
			if err := json.Unmarshal(env.Results, &out.Items); err != nil {
				return out, fmt.Errorf("decode envelope results: %w", err)
			}
		}
		out.TotalCount = env.Count
		return out, nil
	default:
		return out, fmt.Errorf("unexpected list response shape")
	}
}

func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}

// GetPaged fetches one page of a collection. page is 1-based; params carries
// the list's filter values and is not mutated.
func GetPaged[T any](ctx context.Context, c *Client, path string, params url.Values, page, pageSize int) (PagedResult[T], error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	raw, err := c.do(ctx, "GET", path, q, nil)
	if err != nil {
		return PagedResult[T]{}, err
	}
	return NormalizePage[T](raw)
}

// GetAll fetches a complete option list (countries for a filter dropdown,
// clubs for cascading narrowing, ...). Never paginated; capped by a large
// page_size request to approximate "fetch all".
func GetAll[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("page_size", strconv.Itoa(allPageSize))

	raw, err := c.do(ctx, "GET", path, q, nil)
	if err != nil {
		return nil, err
	}
	res, err := NormalizePage[T](raw)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// GetOne fetches a single entity by path (e.g. "/clubs/42/").
func GetOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.Get(ctx, path, nil, &out)
	return out, err
}
