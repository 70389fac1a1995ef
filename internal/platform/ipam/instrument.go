package ipam

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	backendCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netfabric",
			Subsystem: "backend",
			Name:      "api_calls_total",
			Help:      "Total number of backend API calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	backendCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "netfabric",
			Subsystem: "backend",
			Name:      "api_call_duration_seconds",
			Help:      "Duration of backend API calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"operation"},
	)
)

func init() {
	// Register metrics with controller-runtime's registry
	metrics.Registry.MustRegister(backendCalls, backendCallDuration)
}

// InstrumentedClient wraps a Client with per-operation call metrics.
type InstrumentedClient struct {
	inner Client
}

// Instrument wraps the given client.
func Instrument(inner Client) *InstrumentedClient {
	return &InstrumentedClient{inner: inner}
}

var _ Client = (*InstrumentedClient)(nil)

func observe(op string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	backendCalls.WithLabelValues(op, result).Inc()
	backendCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (c *InstrumentedClient) LookupPrefix(ctx context.Context, cidr string) (*Prefix, error) {
	start := time.Now()
	p, err := c.inner.LookupPrefix(ctx, cidr)
	observe("lookup_prefix", start, err)
	return p, err
}

func (c *InstrumentedClient) CreatePrefix(ctx context.Context, p Prefix) (*Prefix, error) {
	start := time.Now()
	out, err := c.inner.CreatePrefix(ctx, p)
	observe("create_prefix", start, err)
	return out, err
}

func (c *InstrumentedClient) LookupAggregate(ctx context.Context, cidr string) (*Aggregate, error) {
	start := time.Now()
	a, err := c.inner.LookupAggregate(ctx, cidr)
	observe("lookup_aggregate", start, err)
	return a, err
}

func (c *InstrumentedClient) CreateAggregate(ctx context.Context, a Aggregate) (*Aggregate, error) {
	start := time.Now()
	out, err := c.inner.CreateAggregate(ctx, a)
	observe("create_aggregate", start, err)
	return out, err
}

func (c *InstrumentedClient) PrefixUtilization(ctx context.Context, prefixID int64) (*Utilization, error) {
	start := time.Now()
	u, err := c.inner.PrefixUtilization(ctx, prefixID)
	observe("prefix_utilization", start, err)
	return u, err
}

func (c *InstrumentedClient) ListAddresses(ctx context.Context, prefixID int64, filter AddressFilter) ([]Address, error) {
	start := time.Now()
	addrs, err := c.inner.ListAddresses(ctx, prefixID, filter)
	observe("list_addresses", start, err)
	return addrs, err
}

func (c *InstrumentedClient) FindAddresses(ctx context.Context, filter AddressFilter) ([]Address, error) {
	start := time.Now()
	addrs, err := c.inner.FindAddresses(ctx, filter)
	observe("find_addresses", start, err)
	return addrs, err
}

func (c *InstrumentedClient) AllocateNext(ctx context.Context, prefixID int64, strategy Strategy, description string) (*Address, error) {
	start := time.Now()
	addr, err := c.inner.AllocateNext(ctx, prefixID, strategy, description)
	observe("allocate_next", start, err)
	return addr, err
}

func (c *InstrumentedClient) DeleteAddress(ctx context.Context, id int64) error {
	start := time.Now()
	err := c.inner.DeleteAddress(ctx, id)
	observe("delete_address", start, err)
	return err
}

func (c *InstrumentedClient) LookupDevice(ctx context.Context, name string) (*Device, error) {
	start := time.Now()
	d, err := c.inner.LookupDevice(ctx, name)
	observe("lookup_device", start, err)
	return d, err
}

func (c *InstrumentedClient) CreateDevice(ctx context.Context, d DeviceCreate) (*Device, error) {
	start := time.Now()
	out, err := c.inner.CreateDevice(ctx, d)
	observe("create_device", start, err)
	return out, err
}

func (c *InstrumentedClient) Ping(ctx context.Context) error {
	start := time.Now()
	err := c.inner.Ping(ctx)
	observe("ping", start, err)
	return err
}
