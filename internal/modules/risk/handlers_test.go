package risk

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/domain"
)

func newTestHandlers() *Handlers {
	return NewHandlers(NewService(zerolog.Nop()), zerolog.Nop())
}

func profileRequestBody(t *testing.T, prices domain.PriceSeries) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(ProfileRequest{Prices: prices})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandleComputeProfile(t *testing.T) {
	h := newTestHandlers()

	t.Run("valid series returns profile and summary", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		prices := make(domain.PriceSeries, 0, 60)
		price := 100.0
		for i := 0; i < 60; i++ {
			if i%2 == 0 {
				price *= 1.01
			} else {
				price *= 0.995
			}
			prices = append(prices, domain.PricePoint{
				Date:  start.AddDate(0, 0, i),
				Close: price,
			})
		}

		req := httptest.NewRequest(http.MethodPost, "/api/risk/profile", profileRequestBody(t, prices))
		rec := httptest.NewRecorder()
		h.HandleComputeProfile(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotNil(t, resp.Profile)
		assert.NotNil(t, resp.Profile.Volatility)
		assert.NotEmpty(t, resp.Summary)
	})

	t.Run("short series is unprocessable", func(t *testing.T) {
		prices := domain.PriceSeries{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Close: 100},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/risk/profile", profileRequestBody(t, prices))
		rec := httptest.NewRecorder()
		h.HandleComputeProfile(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("confidence level outside unit interval is unprocessable", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		prices := make(domain.PriceSeries, 0, 40)
		for i := 0; i < 40; i++ {
			prices = append(prices, domain.PricePoint{
				Date:  start.AddDate(0, 0, i),
				Close: 100 + float64(i),
			})
		}

		body, err := json.Marshal(ProfileRequest{
			Prices:           prices,
			ConfidenceLevels: []float64{1.5},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/risk/profile", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		h.HandleComputeProfile(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/risk/profile", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.HandleComputeProfile(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
