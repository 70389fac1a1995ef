package ipam

import (
	"context"
)

// MockClient is a function-field mock implementation of Client.
type MockClient struct {
	LookupPrefixFunc      func(ctx context.Context, cidr string) (*Prefix, error)
	CreatePrefixFunc      func(ctx context.Context, p Prefix) (*Prefix, error)
	LookupAggregateFunc   func(ctx context.Context, cidr string) (*Aggregate, error)
	CreateAggregateFunc   func(ctx context.Context, a Aggregate) (*Aggregate, error)
	PrefixUtilizationFunc func(ctx context.Context, prefixID int64) (*Utilization, error)

	ListAddressesFunc func(ctx context.Context, prefixID int64, filter AddressFilter) ([]Address, error)
	FindAddressesFunc func(ctx context.Context, filter AddressFilter) ([]Address, error)
	AllocateNextFunc  func(ctx context.Context, prefixID int64, strategy Strategy, description string) (*Address, error)
	DeleteAddressFunc func(ctx context.Context, id int64) error

	LookupDeviceFunc func(ctx context.Context, name string) (*Device, error)
	CreateDeviceFunc func(ctx context.Context, d DeviceCreate) (*Device, error)

	PingFunc func(ctx context.Context) error
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) LookupPrefix(ctx context.Context, cidr string) (*Prefix, error) {
	return m.LookupPrefixFunc(ctx, cidr)
}

func (m *MockClient) CreatePrefix(ctx context.Context, p Prefix) (*Prefix, error) {
	return m.CreatePrefixFunc(ctx, p)
}

func (m *MockClient) LookupAggregate(ctx context.Context, cidr string) (*Aggregate, error) {
	return m.LookupAggregateFunc(ctx, cidr)
}

func (m *MockClient) CreateAggregate(ctx context.Context, a Aggregate) (*Aggregate, error) {
	return m.CreateAggregateFunc(ctx, a)
}

func (m *MockClient) PrefixUtilization(ctx context.Context, prefixID int64) (*Utilization, error) {
	return m.PrefixUtilizationFunc(ctx, prefixID)
}

func (m *MockClient) ListAddresses(ctx context.Context, prefixID int64, filter AddressFilter) ([]Address, error) {
	return m.ListAddressesFunc(ctx, prefixID, filter)
}

func (m *MockClient) FindAddresses(ctx context.Context, filter AddressFilter) ([]Address, error) {
	return m.FindAddressesFunc(ctx, filter)
}

func (m *MockClient) AllocateNext(ctx context.Context, prefixID int64, strategy Strategy, description string) (*Address, error) {
	return m.AllocateNextFunc(ctx, prefixID, strategy, description)
}

func (m *MockClient) DeleteAddress(ctx context.Context, id int64) error {
	return m.DeleteAddressFunc(ctx, id)
}

func (m *MockClient) LookupDevice(ctx context.Context, name string) (*Device, error) {
	return m.LookupDeviceFunc(ctx, name)
}

func (m *MockClient) CreateDevice(ctx context.Context, d DeviceCreate) (*Device, error) {
	return m.CreateDeviceFunc(ctx, d)
}

func (m *MockClient) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
