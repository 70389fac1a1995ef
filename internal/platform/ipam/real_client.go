package ipam

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
)

const defaultCallTimeout = 15 * time.Second

// RealClient talks to the backend's REST API.
//
// Every call carries its own timeout so a hung backend cannot block a
// reconcile worker indefinitely. The underlying connection pool is safe
// for concurrent use.
type RealClient struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	callTimeout time.Duration
}

// RealClientOption configures a RealClient.
type RealClientOption func(*RealClient)

// WithCallTimeout overrides the per-call timeout.
func WithCallTimeout(d time.Duration) RealClientOption {
	return func(c *RealClient) {
		c.callTimeout = d
	}
}

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) RealClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// NewRealClient creates a backend client for the given base URL and token.
func NewRealClient(baseURL, token string, opts ...RealClientOption) *RealClient {
	c := &RealClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		token:       token,
		httpClient:  &http.Client{},
		callTimeout: defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wire shapes. The backend nests site/role/rir as objects keyed by slug;
// only the slug is consumed here.

type slugRef struct {
	Slug string `json:"slug"`
}

type prefixRecord struct {
	ID          int64    `json:"id"`
	Prefix      string   `json:"prefix"`
	Site        *slugRef `json:"site,omitempty"`
	Role        *slugRef `json:"role,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
}

func (r prefixRecord) toPrefix() *Prefix {
	p := &Prefix{
		ID:          r.ID,
		CIDR:        r.Prefix,
		Description: r.Description,
		URL:         r.URL,
	}
	if r.Site != nil {
		p.Site = r.Site.Slug
	}
	if r.Role != nil {
		p.Role = r.Role.Slug
	}
	return p
}

type aggregateRecord struct {
	ID          int64    `json:"id"`
	Prefix      string   `json:"prefix"`
	RIR         *slugRef `json:"rir,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
}

func (r aggregateRecord) toAggregate() *Aggregate {
	a := &Aggregate{
		ID:          r.ID,
		CIDR:        r.Prefix,
		Description: r.Description,
		URL:         r.URL,
	}
	if r.RIR != nil {
		a.RIR = r.RIR.Slug
	}
	return a
}

type deviceRecord struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Site   *slugRef `json:"site,omitempty"`
	Role   *slugRef `json:"device_role,omitempty"`
	Serial string   `json:"serial,omitempty"`
	URL    string   `json:"url,omitempty"`
}

func (r deviceRecord) toDevice() *Device {
	d := &Device{
		ID:     r.ID,
		Name:   r.Name,
		Serial: r.Serial,
		URL:    r.URL,
	}
	if r.Site != nil {
		d.Site = r.Site.Slug
	}
	if r.Role != nil {
		d.Role = r.Role.Slug
	}
	return d
}

type apiErrorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// LookupPrefix resolves a prefix record by its CIDR.
func (c *RealClient) LookupPrefix(ctx context.Context, cidr string) (*Prefix, error) {
	q := url.Values{"prefix": {cidr}}
	var records []prefixRecord
	if err := c.list(ctx, "/api/ipam/prefixes/", q, &records); err != nil {
		return nil, fmt.Errorf("lookup prefix %s: %w", cidr, err)
	}
	if len(records) == 0 {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("prefix %s not found", cidr)}
	}
	return records[0].toPrefix(), nil
}

// CreatePrefix creates a prefix record.
func (c *RealClient) CreatePrefix(ctx context.Context, p Prefix) (*Prefix, error) {
	body := map[string]any{
		"prefix":      p.CIDR,
		"description": p.Description,
	}
	if p.Site != "" {
		body["site"] = map[string]string{"slug": p.Site}
	}
	if p.Role != "" {
		body["role"] = map[string]string{"slug": p.Role}
	}

	var record prefixRecord
	if err := c.do(ctx, http.MethodPost, "/api/ipam/prefixes/", body, &record); err != nil {
		return nil, fmt.Errorf("create prefix %s: %w", p.CIDR, err)
	}
	return record.toPrefix(), nil
}

// LookupAggregate resolves an aggregate record by its CIDR.
func (c *RealClient) LookupAggregate(ctx context.Context, cidr string) (*Aggregate, error) {
	q := url.Values{"prefix": {cidr}}
	var records []aggregateRecord
	if err := c.list(ctx, "/api/ipam/aggregates/", q, &records); err != nil {
		return nil, fmt.Errorf("lookup aggregate %s: %w", cidr, err)
	}
	if len(records) == 0 {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("aggregate %s not found", cidr)}
	}
	return records[0].toAggregate(), nil
}

// CreateAggregate creates an aggregate record.
func (c *RealClient) CreateAggregate(ctx context.Context, a Aggregate) (*Aggregate, error) {
	body := map[string]any{
		"prefix":      a.CIDR,
		"rir":         map[string]string{"slug": a.RIR},
		"description": a.Description,
	}

	var record aggregateRecord
	if err := c.do(ctx, http.MethodPost, "/api/ipam/aggregates/", body, &record); err != nil {
		return nil, fmt.Errorf("create aggregate %s: %w", a.CIDR, err)
	}
	return record.toAggregate(), nil
}

// PrefixUtilization returns the backend's address counts for a prefix.
func (c *RealClient) PrefixUtilization(ctx context.Context, prefixID int64) (*Utilization, error) {
	path := fmt.Sprintf("/api/ipam/prefixes/%d/utilization/", prefixID)
	var u Utilization
	if err := c.do(ctx, http.MethodGet, path, nil, &u); err != nil {
		return nil, fmt.Errorf("prefix %d utilization: %w", prefixID, err)
	}
	return &u, nil
}

// ListAddresses lists the addresses under a prefix, following pagination
// until the backend reports no further page.
func (c *RealClient) ListAddresses(ctx context.Context, prefixID int64, filter AddressFilter) ([]Address, error) {
	q := url.Values{"parent_prefix_id": {strconv.FormatInt(prefixID, 10)}}
	if filter.DescriptionContains != "" {
		q.Set("description__ic", filter.DescriptionContains)
	}
	var addrs []Address
	if err := c.list(ctx, "/api/ipam/ip-addresses/", q, &addrs); err != nil {
		return nil, fmt.Errorf("list addresses of prefix %d: %w", prefixID, err)
	}
	return addrs, nil
}

// FindAddresses lists addresses matching the filter across all prefixes.
func (c *RealClient) FindAddresses(ctx context.Context, filter AddressFilter) ([]Address, error) {
	q := url.Values{}
	if filter.DescriptionContains != "" {
		q.Set("description__ic", filter.DescriptionContains)
	}
	var addrs []Address
	if err := c.list(ctx, "/api/ipam/ip-addresses/", q, &addrs); err != nil {
		return nil, fmt.Errorf("find addresses: %w", err)
	}
	return addrs, nil
}

// AllocateNext allocates the next available address in the prefix.
//
// The backend performs the selection under its own transactional guarantees;
// concurrent callers can never be handed the same address.
func (c *RealClient) AllocateNext(ctx context.Context, prefixID int64, strategy Strategy, description string) (*Address, error) {
	path := fmt.Sprintf("/api/ipam/prefixes/%d/available-ips/", prefixID)
	body := map[string]any{
		"strategy":    string(strategy),
		"description": description,
	}

	var addr Address
	if err := c.do(ctx, http.MethodPost, path, body, &addr); err != nil {
		if isStatus(err, http.StatusConflict) {
			return nil, fmt.Errorf("allocate in prefix %d: %w", prefixID, ErrPrefixExhausted)
		}
		return nil, fmt.Errorf("allocate in prefix %d: %w", prefixID, err)
	}
	return &addr, nil
}

// DeleteAddress releases an address record by ID.
func (c *RealClient) DeleteAddress(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/ipam/ip-addresses/%d/", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return nil
}

// LookupDevice resolves a device record by name.
func (c *RealClient) LookupDevice(ctx context.Context, name string) (*Device, error) {
	q := url.Values{"name": {name}}
	var records []deviceRecord
	if err := c.list(ctx, "/api/dcim/devices/", q, &records); err != nil {
		return nil, fmt.Errorf("lookup device %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("device %s not found", name)}
	}
	return records[0].toDevice(), nil
}

// CreateDevice creates a device record.
func (c *RealClient) CreateDevice(ctx context.Context, d DeviceCreate) (*Device, error) {
	body := map[string]any{
		"name":        d.Name,
		"site":        map[string]string{"slug": d.Site},
		"device_role": map[string]string{"slug": d.DeviceRole},
		"device_type": map[string]string{"slug": d.DeviceType},
	}
	if d.Serial != "" {
		body["serial"] = d.Serial
	}

	var record deviceRecord
	if err := c.do(ctx, http.MethodPost, "/api/dcim/devices/", body, &record); err != nil {
		return nil, fmt.Errorf("create device %s: %w", d.Name, err)
	}
	return record.toDevice(), nil
}

// Ping verifies connectivity and credentials.
func (c *RealClient) Ping(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/api/status/", nil, nil); err != nil {
		return fmt.Errorf("backend ping: %w", err)
	}
	return nil
}

// page is the backend's envelope for paginated list responses.
type page struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results json.RawMessage `json:"results"`
}

// list fetches all pages of a list endpoint into out (a *[]T).
func (c *RealClient) list(ctx context.Context, path string, query url.Values, out any) error {
	next := path + "?" + query.Encode()

	// Accumulate raw pages, then unmarshal once into out.
	var raw []json.RawMessage
	for next != "" {
		var pg page
		if err := c.do(ctx, http.MethodGet, next, nil, &pg); err != nil {
			return err
		}

		var items []json.RawMessage
		if err := json.Unmarshal(pg.Results, &items); err != nil {
			return fmt.Errorf("parse list page: %w", err)
		}
		raw = append(raw, items...)

		next = ""
		if pg.Next != nil {
			// The backend returns an absolute URL for the next page.
			u, err := url.Parse(*pg.Next)
			if err != nil {
				return fmt.Errorf("parse next page URL: %w", err)
			}
			next = u.Path + "?" + u.RawQuery
		}
	}

	joined, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(joined, out)
}

// do performs a single backend request with the per-call timeout applied,
// decoding a JSON response into out when out is non-nil.
func (c *RealClient) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *RealClient) apiError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	msg := strings.TrimSpace(string(data))
	var body apiErrorBody
	if err := json.Unmarshal(data, &body); err == nil {
		switch {
		case body.Detail != "":
			msg = body.Detail
		case body.Error != "":
			msg = body.Error
		}
	}
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
