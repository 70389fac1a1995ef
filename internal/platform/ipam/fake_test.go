package ipam

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeBackendSequentialPicksLowest(t *testing.T) {
	f := NewFakeBackend()
	id := f.AddPrefix("10.0.0.0/24", "10.0.0.14/24", "10.0.0.10/24", "10.0.0.11/24")

	first, err := f.AllocateNext(context.Background(), id, StrategySequential, "a")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.10/24", first.Address)

	second, err := f.AllocateNext(context.Background(), id, StrategySequential, "b")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.11/24", second.Address)
}

func TestFakeBackendExhaustion(t *testing.T) {
	f := NewFakeBackend()
	id := f.AddPrefix("10.0.0.0/30", "10.0.0.1/30")

	_, err := f.AllocateNext(context.Background(), id, StrategySequential, "a")
	require.NoError(t, err)

	_, err = f.AllocateNext(context.Background(), id, StrategySequential, "b")
	require.Error(t, err)
	assert.True(t, IsExhausted(err))
}

func TestFakeBackendDeleteReturnsAddressToPool(t *testing.T) {
	f := NewFakeBackend()
	id := f.AddPrefix("10.0.0.0/30", "10.0.0.1/30")

	addr, err := f.AllocateNext(context.Background(), id, StrategySequential, "a")
	require.NoError(t, err)
	require.NoError(t, f.DeleteAddress(context.Background(), addr.ID))

	again, err := f.AllocateNext(context.Background(), id, StrategySequential, "b")
	require.NoError(t, err)
	assert.Equal(t, addr.Address, again.Address)

	assert.True(t, IsNotFound(f.DeleteAddress(context.Background(), addr.ID)))
}

func TestFakeBackendConcurrentAllocationsUnique(t *testing.T) {
	const n = 32

	f := NewFakeBackend()
	var available []string
	for i := 1; i <= n; i++ {
		available = append(available, fmt.Sprintf("10.0.0.%d/24", i))
	}
	id := f.AddPrefix("10.0.0.0/24", available...)

	results := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			addr, err := f.AllocateNext(context.Background(), id, StrategyRandom, "c")
			if err == nil {
				results[i] = addr.Address
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i, addr := range results {
		require.NotEmpty(t, addr, "allocation %d failed", i)
		require.False(t, seen[addr], "address %s handed out twice", addr)
		seen[addr] = true
	}
}

func TestFakeBackendFilterByDescription(t *testing.T) {
	f := NewFakeBackend()
	id := f.AddPrefix("10.0.0.0/24", "10.0.0.1/24", "10.0.0.2/24")

	_, err := f.AllocateNext(context.Background(), id, StrategySequential, "netfabric:claim:ns/a")
	require.NoError(t, err)
	_, err = f.AllocateNext(context.Background(), id, StrategySequential, "netfabric:claim:ns/b")
	require.NoError(t, err)

	addrs, err := f.ListAddresses(context.Background(), id, AddressFilter{DescriptionContains: "ns/a"})
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "netfabric:claim:ns/a", addrs[0].Description)

	all, err := f.FindAddresses(context.Background(), AddressFilter{DescriptionContains: "netfabric:claim:"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
