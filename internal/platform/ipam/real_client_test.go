package ipam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listPage(next string, results any) map[string]any {
	page := map[string]any{"results": results}
	if next != "" {
		page["next"] = next
	} else {
		page["next"] = nil
	}
	return page
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestRealClientSendsTokenAuth(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "s3cr3t")
	require.NoError(t, c.Ping(context.Background()))

	assert.Equal(t, "Token s3cr3t", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestRealClientLookupPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ipam/prefixes/", r.URL.Path)
		assert.Equal(t, "10.0.0.0/24", r.URL.Query().Get("prefix"))
		writeJSON(t, w, http.StatusOK, listPage("", []map[string]any{{
			"id":     7,
			"prefix": "10.0.0.0/24",
			"site":   map[string]string{"slug": "fra1"},
			"role":   map[string]string{"slug": "loopbacks"},
			"url":    "https://backend/api/ipam/prefixes/7/",
		}}))
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	p, err := c.LookupPrefix(context.Background(), "10.0.0.0/24")
	require.NoError(t, err)

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "10.0.0.0/24", p.CIDR)
	assert.Equal(t, "fra1", p.Site)
	assert.Equal(t, "loopbacks", p.Role)
}

func TestRealClientLookupPrefixNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, listPage("", []map[string]any{}))
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	_, err := c.LookupPrefix(context.Background(), "10.9.9.0/24")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRealClientListFollowsPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("offset") {
		case "":
			writeJSON(t, w, http.StatusOK, listPage(
				srv.URL+"/api/ipam/ip-addresses/?offset=2",
				[]map[string]any{
					{"id": 1, "address": "10.0.0.1/24"},
					{"id": 2, "address": "10.0.0.2/24"},
				}))
		case "2":
			writeJSON(t, w, http.StatusOK, listPage("", []map[string]any{
				{"id": 3, "address": "10.0.0.3/24"},
			}))
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	addrs, err := c.ListAddresses(context.Background(), 7, AddressFilter{})
	require.NoError(t, err)

	require.Len(t, addrs, 3)
	assert.Equal(t, "10.0.0.1/24", addrs[0].Address)
	assert.Equal(t, "10.0.0.3/24", addrs[2].Address)
}

func TestRealClientListAddressesFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "netfabric:claim:default/claim-1", r.URL.Query().Get("description__ic"))
		assert.Equal(t, "7", r.URL.Query().Get("parent_prefix_id"))
		writeJSON(t, w, http.StatusOK, listPage("", []map[string]any{}))
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	_, err := c.ListAddresses(context.Background(), 7,
		AddressFilter{DescriptionContains: "netfabric:claim:default/claim-1"})
	require.NoError(t, err)
}

func TestRealClientAllocateNext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ipam/prefixes/7/available-ips/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sequential", body["strategy"])
		assert.Equal(t, "netfabric:claim:default/claim-1", body["description"])

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"id":          42,
			"address":     "10.0.0.10/24",
			"description": body["description"],
			"url":         "https://backend/api/ipam/ip-addresses/42/",
		})
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	addr, err := c.AllocateNext(context.Background(), 7, StrategySequential,
		"netfabric:claim:default/claim-1")
	require.NoError(t, err)

	assert.Equal(t, int64(42), addr.ID)
	assert.Equal(t, "10.0.0.10/24", addr.Address)
}

func TestRealClientAllocateNextExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{
			"detail": "no available IPs in prefix",
		})
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	_, err := c.AllocateNext(context.Background(), 7, StrategySequential, "tag")

	require.Error(t, err)
	assert.True(t, IsExhausted(err))
}

func TestRealClientErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, IsAuth},
		{"forbidden", http.StatusForbidden, IsAuth},
		{"not found", http.StatusNotFound, IsNotFound},
		{"bad request", http.StatusBadRequest, IsValidation},
		{"unprocessable", http.StatusUnprocessableEntity, IsValidation},
		{"server error", http.StatusInternalServerError, IsTransient},
		{"bad gateway", http.StatusBadGateway, IsTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, map[string]string{"detail": tt.name})
			}))
			defer srv.Close()

			c := NewRealClient(srv.URL, "tok")
			err := c.Ping(context.Background())
			require.Error(t, err)
			assert.True(t, tt.check(err), "classification failed for %s: %v", tt.name, err)
		})
	}
}

func TestRealClientErrorMessageFromDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{
			"detail": "prefix: invalid CIDR notation",
		})
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	_, err := c.CreatePrefix(context.Background(), Prefix{CIDR: "not-a-cidr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CIDR notation")
}

func TestRealClientDeleteAddress(t *testing.T) {
	var deleted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		deleted = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	require.NoError(t, c.DeleteAddress(context.Background(), 42))
	assert.Equal(t, "/api/ipam/ip-addresses/42/", deleted)
}

func TestRealClientCreateDevice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dcim/devices/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "leaf-1", body["name"])
		assert.Equal(t, map[string]any{"slug": "fra1"}, body["site"])

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"id":          9,
			"name":        "leaf-1",
			"site":        map[string]string{"slug": "fra1"},
			"device_role": map[string]string{"slug": "leaf"},
			"serial":      "SN-1",
		})
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL, "tok")
	d, err := c.CreateDevice(context.Background(), DeviceCreate{
		Name: "leaf-1", Site: "fra1", DeviceRole: "leaf", DeviceType: "switch-48p", Serial: "SN-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), d.ID)
	assert.Equal(t, "fra1", d.Site)
	assert.Equal(t, "leaf", d.Role)
}

func TestRealClientTrimsBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/status/", r.URL.Path)
		fmt.Fprint(w, "{}")
	}))
	defer srv.Close()

	c := NewRealClient(srv.URL+"/", "tok")
	require.NoError(t, c.Ping(context.Background()))
}
