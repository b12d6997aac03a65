package openfda

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seeek_backend/internal/feature/scan/usecase"
)

func newTestClient(baseURL string) *DrugLabelClient {
	cfg := Config{BaseURL: baseURL, Timeout: 5 * time.Second}
	return NewDrugLabelClient(cfg, &http.Client{Timeout: cfg.Timeout}, nil)
}

func TestDrugLabelClient_FindByNDC_Success(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{
				"active_ingredient": ["ACETAMINOPHEN 500 mg"],
				"indications_and_usage": ["For the temporary relief of minor aches."],
				"warnings": ["Liver warning."],
				"stop_use": ["Stop use if pain gets worse."],
				"pregnancy": ["If pregnant, ask a health professional."],
				"openfda": {
					"brand_name": ["Tylenol"],
					"generic_name": ["Acetaminophen"]
				}
			}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	label, err := client.FindByNDC(context.Background(), "0781150610")

	require.NoError(t, err)
	assert.Equal(t, "Tylenol", label.BrandName)
	assert.Equal(t, "Acetaminophen", label.GenericName)
	assert.Equal(t, "For the temporary relief of minor aches.", label.IndicationsAndUsage)
	assert.Equal(t, "Liver warning.", label.Warnings)
	assert.Equal(t, "Stop use if pain gets worse.", label.StopUse)
	assert.Equal(t, []string{"ACETAMINOPHEN 500 mg"}, label.ActiveIngredients)
	assert.True(t, label.HasPregnancyWarning)
	assert.Contains(t, label.Raw, "ACETAMINOPHEN 500 mg")
	assert.Contains(t, gotQuery, `openfda.package_ndc:"0781150610"`)
	assert.Contains(t, gotQuery, `openfda.product_ndc:"0781150610"`)
}

func TestDrugLabelClient_FindByNDC_NotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FindByNDC(context.Background(), "0000000000")

	assert.ErrorIs(t, err, usecase.ErrDrugNotFound)
}

func TestDrugLabelClient_FindByNDC_NotFoundBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"No matches found!"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FindByNDC(context.Background(), "0000000000")

	assert.ErrorIs(t, err, usecase.ErrDrugNotFound)
}

func TestDrugLabelClient_FindByNDC_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FindByNDC(context.Background(), "0000000000")

	assert.ErrorIs(t, err, usecase.ErrDrugNotFound)
}

func TestDrugLabelClient_FindByNDC_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"code":"OVER_RATE_LIMIT","message":"You have exceeded your rate limit."}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FindByNDC(context.Background(), "0781150610")

	require.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrDrugNotFound))
	assert.Contains(t, err.Error(), "rate limit")
}

func TestDrugLabelClient_FindByNDC_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FindByNDC(context.Background(), "0781150610")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDrugLabelClient_FindByNDC_APIKeyAdded(t *testing.T) {
	var gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"openfda":{"brand_name":["Tylenol"]}}]}`))
	}))
	defer srv.Close()

	cfg := Config{BaseURL: srv.URL, APIKey: "test-key", Timeout: 5 * time.Second}
	client := NewDrugLabelClient(cfg, &http.Client{Timeout: cfg.Timeout}, nil)

	_, err := client.FindByNDC(context.Background(), "0781150610")

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotAPIKey)
}
