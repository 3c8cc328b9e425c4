package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-eats/gateway/internal/service"
	"github.com/orderly-eats/gateway/internal/upstream"
)

func TestGetCustomersEmptyWithoutProfile(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	w := performRequest(env.router, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Customers []service.CustomerOption `json:"customers"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Customers)
}

func TestGetCustomersDerivedFromProfile(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)
	saveCompleteProfile(t, env.store)

	w := performRequest(env.router, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Customers []service.CustomerOption `json:"customers"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Customers, 1)
	assert.Equal(t, "30y Male from Bangalore, Karnataka (English)", resp.Customers[0].Label)
	assert.Equal(t, "M", resp.Customers[0].Customer.Gender)
}

func TestCustomerOptions(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	w := performRequest(env.router, http.MethodGet, "/api/v1/customers/options", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		States        []string            `json:"states"`
		Cities        map[string][]string `json:"cities"`
		DefaultCities map[string]string   `json:"default_cities"`
	}
	decodeBody(t, w, &resp)
	assert.Len(t, resp.States, 6)
	assert.Equal(t, []string{"New Delhi", "Central Delhi"}, resp.Cities["Delhi"])
	assert.Equal(t, "New Delhi", resp.DefaultCities["Delhi"])
}

func TestRecommendRejectsIncompleteProfile(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	w := performRequest(env.router, http.MethodPost, "/api/v1/recommendations", upstream.Customer{City: "Haridwar"})
	require.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "profile", resp["redirect"])
}

func TestRecommendUpstreamFailureYieldsEmptyList(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)
	saveCompleteProfile(t, env.store)

	w := performRequest(env.router, http.MethodPost, "/api/v1/recommendations", upstream.Customer{
		Age: 30, Gender: "M", City: "Bangalore", State: "Karnataka",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp service.RecommendResult
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, "Bangalore", resp.City)
}

func TestRecommendStoresResultInSession(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recommendations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"recommendations":[{"vendor_id":1,"name":"Truffles","cuisine":"Cafe","rating":4.6,"distance":2.0,"probability":0.9}],
			"total_found":3,
			"city":"Bangalore"
		}`))
	}))
	defer stub.Close()

	env := newTestEnv(t, stub.URL, nil)
	saveCompleteProfile(t, env.store)

	w := performRequest(env.router, http.MethodPost, "/api/v1/recommendations", upstream.Customer{
		Age: 30, Gender: "M", City: "Bangalore", State: "Karnataka",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp service.RecommendResult
	decodeBody(t, w, &resp)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, 3, resp.TotalFound)

	// The session now carries the recommendations for the location view.
	w = performRequest(env.router, http.MethodGet, "/api/v1/session", nil)
	var view service.SessionView
	decodeBody(t, w, &view)
	require.Len(t, view.Recommendations, 1)
	assert.Equal(t, "Bangalore", view.City)
}
