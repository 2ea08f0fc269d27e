// Package supabase is a thin client for the PostgREST interface a
// Supabase project exposes. The hosted database is only reachable over
// REST, so repositories build queries here instead of holding a SQL
// connection.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jp-grammar/internal/config"
)

// CountNone is returned as the total when no exact count was requested.
const CountNone = -1

// StatusError is returned for any non-2xx PostgREST response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("postgrest: status %d: %s", e.Status, e.Body)
}

// Client issues authenticated requests against one Supabase project.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// New validates the connection settings and returns a ready client.
func New(cfg config.SupabaseConfig) (*Client, error) {
	if cfg.URL == "" || cfg.ServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE must be set")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.ServiceKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// From starts a query against one table.
func (c *Client) From(table string) *Query {
	return &Query{
		client:  c,
		table:   table,
		selects: "*",
		params:  url.Values{},
		limit:   -1,
		offset:  -1,
	}
}

// Query accumulates PostgREST parameters for a single request.
type Query struct {
	client  *Client
	table   string
	selects string
	params  url.Values
	order   []string
	limit   int
	offset  int
	count   bool
}

// Select overrides the returned columns (default "*").
func (q *Query) Select(columns string) *Query {
	q.selects = columns
	return q
}

// Eq adds an equality filter.
func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)
	return q
}

// Ilike adds a case-insensitive contains filter on one column.
func (q *Query) Ilike(column, needle string) *Query {
	q.params.Add(column, "ilike.*"+needle+"*")
	return q
}

// In filters a column against a set of values.
func (q *Query) In(column string, values []string) *Query {
	q.params.Add(column, "in.("+strings.Join(values, ",")+")")
	return q
}

// Or adds a raw or= expression, typically built with BuildOrIlike.
func (q *Query) Or(expression string) *Query {
	q.params.Add("or", "("+expression+")")
	return q
}

// Order appends a sort column. Multiple calls sort by several columns.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.order = append(q.order, column+"."+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Offset skips the first n rows.
func (q *Query) Offset(n int) *Query {
	q.offset = n
	return q
}

// Count requests the exact row count for the query's filters. The total
// arrives in the Content-Range header and is returned by Get.
func (q *Query) Count() *Query {
	q.count = true
	return q
}

func (q *Query) encode() string {
	params := url.Values{}
	params.Set("select", q.selects)
	for key, vals := range q.params {
		for _, v := range vals {
			params.Add(key, v)
		}
	}
	if len(q.order) > 0 {
		params.Set("order", strings.Join(q.order, ","))
	}
	if q.limit >= 0 {
		params.Set("limit", strconv.Itoa(q.limit))
	}
	if q.offset >= 0 {
		params.Set("offset", strconv.Itoa(q.offset))
	}
	return params.Encode()
}

func (c *Client) endpoint(table string) string {
	return c.baseURL + "/rest/v1/" + table
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
}

// Get executes the query and decodes the JSON rows into dest, which
// must be a pointer to a slice. The returned total is the exact count
// when Count was requested, CountNone otherwise.
func (q *Query) Get(ctx context.Context, dest interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.client.endpoint(q.table)+"?"+q.encode(), nil)
	if err != nil {
		return CountNone, err
	}
	q.client.authorize(req)
	req.Header.Set("Accept", "application/json")
	if q.count {
		req.Header.Set("Prefer", "count=exact")
	}

	resp, err := q.client.http.Do(req)
	if err != nil {
		return CountNone, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return CountNone, readStatusError(resp)
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return CountNone, fmt.Errorf("decode %s response: %w", q.table, err)
		}
	}

	total := CountNone
	if q.count {
		total = parseContentRangeTotal(resp.Header.Get("Content-Range"))
	}
	return total, nil
}

// Insert posts one or more rows. When dest is non-nil the inserted
// representation is requested back and decoded into it.
func (c *Client) Insert(ctx context.Context, table string, rows interface{}, dest interface{}) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(table), bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	if dest != nil {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readStatusError(resp)
	}
	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode %s insert response: %w", table, err)
		}
	}
	return nil
}

// Update patches the rows selected by the query's filters.
func (q *Query) Update(ctx context.Context, values interface{}) error {
	body, err := json.Marshal(values)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, q.client.endpoint(q.table)+"?"+q.encode(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	q.client.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := q.client.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readStatusError(resp)
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

// parseContentRangeTotal extracts the total from a PostgREST
// Content-Range header such as "0-19/57". An unknown total ("*" or a
// missing header) yields CountNone.
func parseContentRangeTotal(header string) int {
	idx := strings.LastIndexByte(header, '/')
	if idx < 0 {
		return CountNone
	}
	total, err := strconv.Atoi(header[idx+1:])
	if err != nil {
		return CountNone
	}
	return total
}
