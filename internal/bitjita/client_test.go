package bitjita

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bc-mercantile/internal/ratelimit"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(ratelimit.Every(0))
	c.SetBaseURL(srv.URL)
	return c, srv
}

func TestGetJSON_DecodesBody(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value":42}`))
	}))
	defer srv.Close()

	var dst struct {
		Value int `json:"value"`
	}
	if err := c.GetJSON(context.Background(), "thing", nil, &dst); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if dst.Value != 42 {
		t.Errorf("Value = %d, want 42", dst.Value)
	}
}

func TestGetJSON_NonSuccessStatus(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var dst map[string]interface{}
	err := c.GetJSON(context.Background(), "thing", nil, &dst)
	if err == nil {
		t.Fatal("GetJSON succeeded on HTTP 500")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", reqErr.Status)
	}
}

func TestGetJSON_TransportError(t *testing.T) {
	c := NewClient(ratelimit.Every(0))
	c.SetBaseURL("http://127.0.0.1:1") // nothing listens here

	var dst map[string]interface{}
	err := c.GetJSON(context.Background(), "thing", nil, &dst)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
}

func TestClaim_ParsesEnvelope(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/claims/123" {
			t.Errorf("path = %s, want /claims/123", r.URL.Path)
		}
		w.Write([]byte(`{"claim":{"entityId":"123","name":"Home","regionName":"North","locationX":30,"locationZ":40}}`))
	}))
	defer srv.Close()

	claim, err := c.Claim(context.Background(), "123")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if claim.Name != "Home" || claim.RegionName != "North" || claim.LocationX != 30 || claim.LocationZ != 40 {
		t.Errorf("claim = %+v", claim)
	}
}

func TestClaim_FetchedOncePerID(t *testing.T) {
	calls := 0
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"claim":{"entityId":"123","name":"Home"}}`))
	}))
	defer srv.Close()

	for i := 0; i < 3; i++ {
		if _, err := c.Claim(context.Background(), "123"); err != nil {
			t.Fatalf("Claim: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("server calls = %d, want 1 (cached)", calls)
	}
}

func TestMarketItems_QueryAndEnvelope(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/market" {
			t.Errorf("path = %s, want /market", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("hasOrders") != "true" || q.Get("claimEntityId") != "123" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"data":{"items":[{"id":"101","name":"Rough Plank","itemType":0,"volume":5}]}}`))
	}))
	defer srv.Close()

	items, err := c.MarketItems(context.Background(), "123")
	if err != nil {
		t.Fatalf("MarketItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].ID != 101 || items[0].Name != "Rough Plank" || items[0].Volume != 5 {
		t.Errorf("item = %+v", items[0])
	}
}

func TestOrderBook_PathAndSides(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/market/cargo/42" {
			t.Errorf("path = %s, want /market/cargo/42", r.URL.Path)
		}
		w.Write([]byte(`{
			"buyOrders":[{"priceThreshold":"15","quantity":"50","claimEntityId":"b","claimName":"Beta","regionName":"South"}],
			"sellOrders":[{"priceThreshold":10,"quantity":100,"claimEntityId":"a","claimName":"Alpha","regionName":"North"}]
		}`))
	}))
	defer srv.Close()

	book, err := c.OrderBook(context.Background(), "cargo", 42)
	if err != nil {
		t.Fatalf("OrderBook: %v", err)
	}
	if len(book.BuyOrders) != 1 || len(book.SellOrders) != 1 {
		t.Fatalf("sides = %d/%d, want 1/1", len(book.BuyOrders), len(book.SellOrders))
	}
	if book.BuyOrders[0].PriceThreshold != 15 || book.BuyOrders[0].Quantity != 50 {
		t.Errorf("buy order = %+v", book.BuyOrders[0])
	}
	if book.SellOrders[0].PriceThreshold != 10 || book.SellOrders[0].Quantity != 100 {
		t.Errorf("sell order = %+v", book.SellOrders[0])
	}
}
