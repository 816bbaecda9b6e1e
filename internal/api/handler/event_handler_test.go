package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/api"
	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/queue"
	"github.com/mediahook/catalog-notifier/internal/repository"
	"github.com/mediahook/catalog-notifier/internal/subscriber"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestRouter(q *queue.PendingQueue) http.Handler {
	sub := subscriber.New(q, zap.NewNop(), nil)
	return api.NewRouter(
		sub, q,
		destination.NewStatic(nil),
		repository.NewMemoryDeliveryRepository(),
		prometheus.NewRegistry(),
		zap.NewNop(),
	)
}

func postEvent(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/item-added", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestItemAdded_EnqueuesItem(t *testing.T) {
	q := queue.New()
	router := newTestRouter(q)

	rr := postEvent(t, router, `{"itemId":"item-1","name":"Some Movie"}`)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rr.Code, rr.Body.String())
	}
	e, ok := q.Get("item-1")
	if !ok {
		t.Fatal("expected item-1 enqueued")
	}
	if e.RetryCount != 0 {
		t.Fatalf("expected retry_count=0, got %d", e.RetryCount)
	}
}

func TestItemAdded_VirtualItemAcceptedButNotEnqueued(t *testing.T) {
	q := queue.New()
	router := newTestRouter(q)

	rr := postEvent(t, router, `{"itemId":"ghost","name":"Placeholder","virtual":true}`)

	// The event source never sees a failure for a valid event.
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}
	if q.Len() != 0 {
		t.Fatal("expected virtual item not enqueued")
	}
}

func TestItemAdded_BadJSON(t *testing.T) {
	router := newTestRouter(queue.New())

	rr := postEvent(t, router, `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestItemAdded_MissingItemID(t *testing.T) {
	router := newTestRouter(queue.New())

	rr := postEvent(t, router, `{"name":"No ID"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
}

func TestStats(t *testing.T) {
	q := queue.New()
	q.Upsert(queue.Entry{ItemID: "a"})
	router := newTestRouter(q)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"pending_items":1`) {
		t.Fatalf("expected pending_items=1 in body, got %s", rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(queue.New())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
