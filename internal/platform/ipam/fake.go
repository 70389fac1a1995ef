package ipam

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/netip"
	"sort"
	"strings"
	"sync"
)

// FakeBackend is an in-memory Client with real allocation semantics: it
// serializes all allocation through one lock, picks the lowest available
// address for the sequential strategy, and refuses to hand out an address
// twice. Tests use it to exercise the allocation invariants without a
// live backend.
type FakeBackend struct {
	mu         sync.Mutex
	nextID     int64
	prefixes   map[int64]*fakePrefix
	byCIDR     map[string]int64
	aggregates map[string]*Aggregate
	devices    map[string]*Device
}

type fakePrefix struct {
	record    Prefix
	available []string
	allocated map[int64]Address
}

// NewFakeBackend creates an empty fake backend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		prefixes:   make(map[int64]*fakePrefix),
		byCIDR:     make(map[string]int64),
		aggregates: make(map[string]*Aggregate),
		devices:    make(map[string]*Device),
	}
}

var _ Client = (*FakeBackend)(nil)

// AddPrefix seeds a prefix with the given available addresses (in CIDR
// notation) and returns its backend ID.
func (f *FakeBackend) AddPrefix(cidr string, available ...string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := f.nextID
	f.prefixes[id] = &fakePrefix{
		record: Prefix{
			ID:   id,
			CIDR: cidr,
			URL:  fmt.Sprintf("https://backend.example/ipam/prefixes/%d/", id),
		},
		available: append([]string(nil), available...),
		allocated: make(map[int64]Address),
	}
	f.byCIDR[cidr] = id
	return id
}

// Allocations returns a copy of the allocated addresses under a prefix.
func (f *FakeBackend) Allocations(prefixID int64) []Address {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.prefixes[prefixID]
	if !ok {
		return nil
	}
	out := make([]Address, 0, len(p.allocated))
	for _, a := range p.allocated {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *FakeBackend) LookupPrefix(_ context.Context, cidr string) (*Prefix, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := f.byCIDR[cidr]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("prefix %s not found", cidr)}
	}
	record := f.prefixes[id].record
	return &record, nil
}

func (f *FakeBackend) CreatePrefix(_ context.Context, p Prefix) (*Prefix, error) {
	id := f.AddPrefix(p.CIDR)

	f.mu.Lock()
	defer f.mu.Unlock()
	fp := f.prefixes[id]
	fp.record.Site = p.Site
	fp.record.Role = p.Role
	fp.record.Description = p.Description
	record := fp.record
	return &record, nil
}

func (f *FakeBackend) LookupAggregate(_ context.Context, cidr string) (*Aggregate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.aggregates[cidr]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("aggregate %s not found", cidr)}
	}
	out := *a
	return &out, nil
}

func (f *FakeBackend) CreateAggregate(_ context.Context, a Aggregate) (*Aggregate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	a.ID = f.nextID
	a.URL = fmt.Sprintf("https://backend.example/ipam/aggregates/%d/", a.ID)
	f.aggregates[a.CIDR] = &a
	out := a
	return &out, nil
}

func (f *FakeBackend) PrefixUtilization(_ context.Context, prefixID int64) (*Utilization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.prefixes[prefixID]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("prefix %d not found", prefixID)}
	}
	return &Utilization{
		Total:     len(p.available) + len(p.allocated),
		Allocated: len(p.allocated),
	}, nil
}

func (f *FakeBackend) ListAddresses(_ context.Context, prefixID int64, filter AddressFilter) ([]Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.prefixes[prefixID]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("prefix %d not found", prefixID)}
	}

	var out []Address
	for _, a := range p.allocated {
		if filter.DescriptionContains != "" && !strings.Contains(a.Description, filter.DescriptionContains) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindAddresses lists addresses matching the filter across all prefixes.
func (f *FakeBackend) FindAddresses(_ context.Context, filter AddressFilter) ([]Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Address
	for _, p := range f.prefixes {
		for _, a := range p.allocated {
			if filter.DescriptionContains != "" && !strings.Contains(a.Description, filter.DescriptionContains) {
				continue
			}
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeBackend) AllocateNext(_ context.Context, prefixID int64, strategy Strategy, description string) (*Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.prefixes[prefixID]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("prefix %d not found", prefixID)}
	}
	if len(p.available) == 0 {
		return nil, fmt.Errorf("allocate in prefix %d: %w", prefixID, ErrPrefixExhausted)
	}

	var idx int
	switch strategy {
	case StrategyRandom:
		idx = rand.Intn(len(p.available)) // #nosec G404
	default:
		idx = lowestAddr(p.available)
	}

	picked := p.available[idx]
	p.available = append(p.available[:idx], p.available[idx+1:]...)

	f.nextID++
	addr := Address{
		ID:          f.nextID,
		Address:     picked,
		Description: description,
		URL:         fmt.Sprintf("https://backend.example/ipam/ip-addresses/%d/", f.nextID),
	}
	p.allocated[addr.ID] = addr
	out := addr
	return &out, nil
}

func (f *FakeBackend) DeleteAddress(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.prefixes {
		if a, ok := p.allocated[id]; ok {
			delete(p.allocated, id)
			p.available = append(p.available, a.Address)
			return nil
		}
	}
	return &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("address %d not found", id)}
}

func (f *FakeBackend) LookupDevice(_ context.Context, name string) (*Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.devices[name]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("device %s not found", name)}
	}
	out := *d
	return &out, nil
}

func (f *FakeBackend) CreateDevice(_ context.Context, d DeviceCreate) (*Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	dev := &Device{
		ID:     f.nextID,
		Name:   d.Name,
		Site:   d.Site,
		Role:   d.DeviceRole,
		Serial: d.Serial,
		URL:    fmt.Sprintf("https://backend.example/dcim/devices/%d/", f.nextID),
	}
	f.devices[d.Name] = dev
	out := *dev
	return &out, nil
}

func (f *FakeBackend) Ping(context.Context) error {
	return nil
}

// lowestAddr returns the index of the numerically lowest address.
func lowestAddr(addrs []string) int {
	best := 0
	bestAddr, ok := parseAddr(addrs[0])
	for i := 1; i < len(addrs); i++ {
		a, okA := parseAddr(addrs[i])
		if !ok || (okA && a.Less(bestAddr)) {
			best, bestAddr, ok = i, a, okA
		}
	}
	return best
}

func parseAddr(s string) (netip.Addr, bool) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return p.Addr(), true
	}
	if a, err := netip.ParseAddr(s); err == nil {
		return a, true
	}
	return netip.Addr{}, false
}
