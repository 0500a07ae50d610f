package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	auth "bid-marketplace/internal/authService"
	bidding "bid-marketplace/internal/biddingService"
	"bid-marketplace/internal/credentials"
	listing "bid-marketplace/internal/listingService"
	"bid-marketplace/internal/repository"
	"bid-marketplace/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "integration-test-secret"

// stubStore is an in-memory stand-in for the hosted record store. It speaks
// just enough of the PostgREST dialect for the SupabaseClient: table reads
// with column equality filters, inserts with id assignment, and the storage
// bucket listing used by the health check.
type stubStore struct {
	mu     sync.Mutex
	nextID int64
	tables map[string][]map[string]any
}

func newStubStore() *stubStore {
	return &stubStore{
		nextID: 1,
		tables: map[string][]map[string]any{
			"users":    {},
			"listings": {},
			"bids":     {},
		},
	}
}

func (s *stubStore) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/storage/v1/bucket", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":"item-images","name":"item-images","public":true}]`)
	})

	mux.HandleFunc("/rest/v1/", func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")

		s.mu.Lock()
		defer s.mu.Unlock()

		rows, ok := s.tables[table]
		if !ok {
			http.Error(w, `{"message":"relation does not exist"}`, http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			matched := make([]map[string]any, 0, len(rows))
			for _, row := range rows {
				if s.matches(row, r.URL.Query()) {
					matched = append(matched, row)
				}
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(matched)

		case http.MethodPost:
			var row map[string]any
			if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
				http.Error(w, `{"message":"invalid body"}`, http.StatusBadRequest)
				return
			}
			if _, ok := row["id"]; !ok {
				row["id"] = s.nextID
				s.nextID++
			}
			s.tables[table] = append(rows, row)

			if strings.Contains(r.Header.Get("Prefer"), "return=representation") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode([]map[string]any{row})
				return
			}
			w.WriteHeader(http.StatusCreated)

		default:
			http.Error(w, `{"message":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	})

	return mux
}

func (s *stubStore) matches(row map[string]any, query map[string][]string) bool {
	for col, vals := range query {
		if col == "select" {
			continue
		}
		want, ok := strings.CutPrefix(vals[0], "eq.")
		if !ok {
			continue
		}
		if fmt.Sprint(row[col]) != want {
			return false
		}
	}
	return true
}

// SetupTestRouter wires the full application stack against an in-memory
// record store and returns the router ready to serve requests.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(newStubStore().handler())
	t.Cleanup(srv.Close)

	store := repository.NewSupabaseClient(srv.URL, "test-api-key", srv.Client())
	creds := credentials.NewService(testJWTSecret, time.Hour)

	authSvc := auth.NewAuthService(store, creds)
	listingSvc := listing.NewListingService(store)
	biddingSvc := bidding.NewBiddingService(store)

	gin.SetMode(gin.TestMode)
	return server.SetupRouter(authSvc, listingSvc, biddingSvc, store)
}

func performRequest(t *testing.T, router *gin.Engine, method, url, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}
