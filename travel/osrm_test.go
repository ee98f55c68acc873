package travel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/travel"
)

func TestOSRMProvider_Minutes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": "Ok",
			"routes": []map[string]interface{}{
				{"duration": 600.0, "distance": 5000.0},
			},
		})
	}))
	defer srv.Close()

	p := travel.NewOSRMProvider(srv.URL)
	minutes, err := p.Minutes(context.Background(), stopA, stopB)
	require.NoError(t, err)
	assert.Equal(t, 10.0, minutes)
}

func TestOSRMProvider_Minutes_NoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": "NoRoute", "routes": []interface{}{}})
	}))
	defer srv.Close()

	p := travel.NewOSRMProvider(srv.URL)
	p.MaxRetries = 0
	_, err := p.Minutes(context.Background(), stopA, stopB)
	assert.ErrorIs(t, err, travel.ErrProviderUnavailable)
}

func TestOSRMProvider_Minutes_RetriesOnServerError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": "Ok",
			"routes": []map[string]interface{}{
				{"duration": 120.0, "distance": 1000.0},
			},
		})
	}))
	defer srv.Close()

	p := travel.NewOSRMProvider(srv.URL)
	p.BaseDelay = 0
	minutes, err := p.Minutes(context.Background(), stopA, stopB)
	require.NoError(t, err)
	assert.Equal(t, 2.0, minutes)
	assert.Equal(t, 2, attempts)
}
