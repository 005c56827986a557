package superjob

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-stats/pkg/restapi"
)

func TestNewClientRequiresAppKey(t *testing.T) {
	_, err := NewClient(Config{AppKey: "  "})
	assert.Error(t, err)
}

func TestSearchVacancies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/vacancies/", r.URL.Path)
		assert.Equal(t, "v3.key", r.Header.Get("X-Api-App-Id"))
		q := r.URL.Query()
		assert.Equal(t, "Go", q.Get("keyword"))
		assert.Equal(t, "4", q.Get("town"))
		assert.Equal(t, "48", q.Get("catalogues"))
		assert.Equal(t, "100", q.Get("count"))
		assert.Equal(t, "0", q.Get("page"))

		_, _ = w.Write([]byte(`{
			"total": 3,
			"more": false,
			"objects": [
				{"id": 1, "profession": "Go developer", "payment_from": 1000, "payment_to": 0, "currency": "rub"},
				{"id": 2, "profession": "Gopher", "payment_from": 0, "payment_to": 2000, "currency": "rub"},
				{"id": "x", "payment_from": []}
			]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{AppKey: "v3.key", BaseURL: srv.URL + "/2.0"})
	require.NoError(t, err)

	res, err := client.SearchVacancies(context.Background(), SearchParams{Keyword: "Go", Town: 4, Catalogues: 48})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	require.NotNil(t, res.More)
	assert.False(t, *res.More)
	require.Len(t, res.Objects, 3)
	assert.Equal(t, 1000.0, res.Objects[0].PaymentFrom)
	assert.Equal(t, 2000.0, res.Objects[1].PaymentTo)
	assert.True(t, res.Objects[2].Malformed)
}

func TestSearchVacanciesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"Invalid app id"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{AppKey: "bad", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.SearchVacancies(context.Background(), SearchParams{Keyword: "Go"})
	var se *restapi.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
	assert.Contains(t, se.Body, "Invalid app id")
}
