package metaclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-sync-agent/internal/config"
)

func testStore(baseURL string) *config.Store {
	return config.NewStoreWith(&config.Config{
		Meta: config.Meta{
			BaseURL:     baseURL,
			AccessToken: "token-de-teste",
			AdAccountID: "123",
			Timeout:     5,
		},
	})
}

func testClient(srv *httptest.Server) *MetaClient {
	return &MetaClient{
		store:      testStore(srv.URL),
		httpClient: srv.Client(),
	}
}

func TestFetchPagedFollowsAllPages(t *testing.T) {
	calls := 0

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/act_123/campaigns":
			fmt.Fprintf(w, `{
				"data": [{"id": "c1"}, {"id": "c2"}],
				"paging": {"cursors": {"after": "a"}, "next": %q}
			}`, srv.URL+"/page2")
		case "/page2":
			fmt.Fprintf(w, `{
				"data": [{"id": "c3"}],
				"paging": {"cursors": {"after": "b"}, "next": %q}
			}`, srv.URL+"/page3")
		case "/page3":
			fmt.Fprint(w, `{"data": [{"id": "c4"}, {"id": "c5"}]}`)
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	campaigns, err := testClient(srv).GetCampaigns(2)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, campaigns, 5)
	for i, expected := range []string{"c1", "c2", "c3", "c4", "c5"} {
		assert.Equal(t, expected, campaigns[i]["id"])
	}
}

func TestFetchPagedKeepsPartialResultsOnMidWalkFailure(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/act_123/campaigns":
			fmt.Fprintf(w, `{
				"data": [{"id": "c1"}],
				"paging": {"cursors": {}, "next": %q}
			}`, srv.URL+"/page2")
		case "/page2":
			fmt.Fprintf(w, `{
				"data": [{"id": "c2"}],
				"paging": {"cursors": {}, "next": %q}
			}`, srv.URL+"/page3")
		case "/page3":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error": {"message": "transient", "code": 1}}`)
		}
	}))
	defer srv.Close()

	campaigns, err := testClient(srv).GetCampaigns(1)

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0]["id"])
	assert.Equal(t, "c2", campaigns[1]["id"])
}

func TestFetchPagedFirstPageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "Invalid parameter", "code": 100}}`)
	}))
	defer srv.Close()

	campaigns, err := testClient(srv).GetCampaigns(1)

	require.Error(t, err)
	assert.Nil(t, campaigns)
}

func TestFetchPagedEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": []}`)
	}))
	defer srv.Close()

	campaigns, err := testClient(srv).GetCampaigns(1)

	require.NoError(t, err)
	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)
}
