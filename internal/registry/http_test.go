package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diecast/internal/common"
	"diecast/internal/model"
)

func TestHTTPRegistry_Lookup(t *testing.T) {
	t.Run("known barcode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/registry/194735654321", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(recordResponse{
				Barcode:           "194735654321",
				Name:              "Nissan Skyline GT-R",
				Brand:             "Nissan",
				Category:          "premium",
				Subcategory:       "car_culture",
				VerificationCount: 7,
			})
		}))
		defer server.Close()

		reg := NewHTTP(ClientOpts{BaseURL: server.URL})
		record, err := reg.Lookup(context.Background(), "194735654321")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "Nissan Skyline GT-R", record.Name)
		assert.Equal(t, model.CategoryPremium, record.Category)
		assert.Equal(t, 7, record.VerificationCount)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		reg := NewHTTP(ClientOpts{BaseURL: server.URL})
		record, err := reg.Lookup(context.Background(), "887961123456")

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("server error reports registry unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		reg := NewHTTP(ClientOpts{BaseURL: server.URL})
		record, err := reg.Lookup(context.Background(), "887961123456")

		require.ErrorIs(t, err, common.ErrRegistryUnavailable)
		assert.Nil(t, record)
	})

	t.Run("unreachable host reports registry unavailable", func(t *testing.T) {
		reg := NewHTTP(ClientOpts{BaseURL: "http://127.0.0.1:1"})
		record, err := reg.Lookup(context.Background(), "887961123456")

		require.ErrorIs(t, err, common.ErrRegistryUnavailable)
		assert.Nil(t, record)
	})

	t.Run("auth header is forwarded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		reg := NewHTTP(ClientOpts{BaseURL: server.URL, Auth: "Bearer token123"})
		_, err := reg.Lookup(context.Background(), "887961123456")
		require.NoError(t, err)
	})
}

func TestHTTPRegistry_Contribute(t *testing.T) {
	t.Run("posts the contribution", func(t *testing.T) {
		var received contributionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/registry", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		reg := NewHTTP(ClientOpts{BaseURL: server.URL})
		err := reg.Contribute(context.Background(), model.Contribution{
			Barcode:      "887961123456",
			Name:         "Bone Shaker",
			Category:     model.CategoryMainline,
			EvidenceRefs: []string{"https://example.com/photo.jpg"},
		})

		require.NoError(t, err)
		assert.Equal(t, "887961123456", received.Barcode)
		assert.Equal(t, "Bone Shaker", received.Name)
		assert.Equal(t, "mainline", received.Category)
		assert.Equal(t, []string{"https://example.com/photo.jpg"}, received.EvidenceRefs)
	})

	t.Run("rejection surfaces as a contribution error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		reg := NewHTTP(ClientOpts{BaseURL: server.URL})
		err := reg.Contribute(context.Background(), model.Contribution{
			Barcode:  "887961123456",
			Category: model.CategoryMainline,
		})

		var contributionErr *common.ContributionError
		require.ErrorAs(t, err, &contributionErr)
		assert.Equal(t, "887961123456", contributionErr.Barcode)
	})

	t.Run("invalid contribution never reaches the wire", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("server should not be called")
		}))
		defer server.Close()

		reg := NewHTTP(ClientOpts{BaseURL: server.URL})
		err := reg.Contribute(context.Background(), model.Contribution{
			Category: model.CategoryMainline,
		})

		var contributionErr *common.ContributionError
		require.ErrorAs(t, err, &contributionErr)
	})
}
