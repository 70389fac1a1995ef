// Package ipam provides a client for the IPAM/DCIM backend REST API.
package ipam

import (
	"context"
)

// Strategy selects how the backend picks the next available address.
type Strategy string

const (
	// StrategySequential allocates the numerically lowest available address.
	StrategySequential Strategy = "sequential"
	// StrategyRandom allocates any available address.
	StrategyRandom Strategy = "random"
)

// Prefix is a backend prefix record.
type Prefix struct {
	ID          int64  `json:"id"`
	CIDR        string `json:"prefix"`
	Site        string `json:"site,omitempty"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Aggregate is a backend aggregate record.
type Aggregate struct {
	ID          int64  `json:"id"`
	CIDR        string `json:"prefix"`
	RIR         string `json:"rir"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Address is a backend IP address record. The description carries the
// identity of the claim the address belongs to; it is the only durable
// link between a claim and its allocation.
type Address struct {
	ID          int64  `json:"id"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Utilization is the backend's view of a prefix's address usage.
type Utilization struct {
	Total     int `json:"total"`
	Allocated int `json:"allocated"`
}

// Available returns the number of free addresses.
func (u Utilization) Available() int {
	return u.Total - u.Allocated
}

// Device is a backend DCIM device record.
type Device struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Site   string `json:"site,omitempty"`
	Role   string `json:"role,omitempty"`
	Serial string `json:"serial,omitempty"`
	URL    string `json:"url,omitempty"`
}

// DeviceCreate holds the parameters for creating a device.
type DeviceCreate struct {
	Name       string
	Site       string
	DeviceRole string
	DeviceType string
	Serial     string
}

// AddressFilter narrows address list results. Zero values are ignored.
type AddressFilter struct {
	// DescriptionContains matches records whose description contains the
	// value.
	DescriptionContains string
}

// PrefixManager covers the backend's prefix and aggregate operations.
type PrefixManager interface {
	// LookupPrefix resolves a prefix record by its CIDR.
	LookupPrefix(ctx context.Context, cidr string) (*Prefix, error)
	// CreatePrefix creates a prefix record.
	CreatePrefix(ctx context.Context, p Prefix) (*Prefix, error)
	// LookupAggregate resolves an aggregate record by its CIDR.
	LookupAggregate(ctx context.Context, cidr string) (*Aggregate, error)
	// CreateAggregate creates an aggregate record.
	CreateAggregate(ctx context.Context, a Aggregate) (*Aggregate, error)
	// PrefixUtilization returns the backend's address counts for a prefix.
	PrefixUtilization(ctx context.Context, prefixID int64) (*Utilization, error)
}

// AddressAllocator covers the backend's address operations.
//
// The backend is the arbiter of uniqueness: AllocateNext must never hand
// out an address already marked allocated, regardless of how many callers
// race on the same prefix. Callers do no free-list bookkeeping of their own.
type AddressAllocator interface {
	// ListAddresses lists the addresses under a prefix, following
	// pagination until exhausted.
	ListAddresses(ctx context.Context, prefixID int64, filter AddressFilter) ([]Address, error)
	// FindAddresses lists addresses matching the filter across all
	// prefixes. Used to locate records of already-deleted claims.
	FindAddresses(ctx context.Context, filter AddressFilter) ([]Address, error)
	// AllocateNext allocates the next available address in the prefix,
	// annotated with the given description. ErrPrefixExhausted is returned
	// when the prefix has no free addresses.
	AllocateNext(ctx context.Context, prefixID int64, strategy Strategy, description string) (*Address, error)
	// DeleteAddress releases an address record by ID.
	DeleteAddress(ctx context.Context, id int64) error
}

// DeviceManager covers the backend's DCIM device operations.
type DeviceManager interface {
	// LookupDevice resolves a device record by name.
	LookupDevice(ctx context.Context, name string) (*Device, error)
	// CreateDevice creates a device record.
	CreateDevice(ctx context.Context, d DeviceCreate) (*Device, error)
}

// Client is the full backend surface consumed by the reconcilers.
// Implementations must be safe for concurrent use.
type Client interface {
	PrefixManager
	AddressAllocator
	DeviceManager

	// Ping verifies connectivity and credentials.
	Ping(ctx context.Context) error
}
