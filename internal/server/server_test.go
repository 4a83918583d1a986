package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lapuropizza/storefront/internal/catalog"
	"github.com/lapuropizza/storefront/internal/checkout"
	"github.com/lapuropizza/storefront/internal/delivery"
	"github.com/lapuropizza/storefront/internal/models"
	"github.com/lapuropizza/storefront/internal/repositories"
	"github.com/lapuropizza/storefront/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	checker := delivery.NewChecker(
		models.Location{Lat: 47.3769, Lng: 8.5417},
		models.DefaultZones(),
		delivery.NewStatic(),
	)
	repo := repositories.NewMemoryOrderRepository()
	svc := checkout.NewService(repo, nil, checkout.NewSimulatedProcessor(0), 5)
	srv := New(catalog.Default(), checker, svc, repo, storage.NewMemory())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return ts, &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, url, err)
		}
	}
	return resp
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestMenuEndpoints(t *testing.T) {
	ts, client := newTestServer(t)

	var items []models.MenuItem
	resp := doJSON(t, client, http.MethodGet, ts.URL+"/api/menu", nil, &items)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/menu = %d", resp.StatusCode)
	}
	if len(items) == 0 {
		t.Fatal("empty menu")
	}

	var pizzas []models.MenuItem
	doJSON(t, client, http.MethodGet, ts.URL+"/api/menu/pizza", nil, &pizzas)
	for _, item := range pizzas {
		if item.Category != "pizza" {
			t.Fatalf("item %s has category %q", item.ID, item.Category)
		}
	}

	resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/menu/sushi", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown category = %d, want 404", resp.StatusCode)
	}

	var toppings []models.Topping
	doJSON(t, client, http.MethodGet, ts.URL+"/api/toppings", nil, &toppings)
	if len(toppings) == 0 {
		t.Fatal("empty toppings")
	}
}

func TestCartFlow(t *testing.T) {
	ts, client := newTestServer(t)

	var line models.CartLine
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/cart/items", addCartItemRequest{
		ItemID:     "pizza-margherita",
		Size:       "small",
		ToppingIDs: []string{"ham", "gorgonzola"},
	}, &line)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add item = %d", resp.StatusCode)
	}
	if line.UnitPrice != 20.5 {
		t.Fatalf("UnitPrice = %v, want 20.5", line.UnitPrice)
	}

	var cart models.Cart
	doJSON(t, client, http.MethodPatch, ts.URL+"/api/cart/items/"+line.ID, updateCartItemRequest{Quantity: 3}, &cart)
	if cart.Subtotal != 61.5 {
		t.Fatalf("Subtotal = %v, want 61.5", cart.Subtotal)
	}

	doJSON(t, client, http.MethodDelete, ts.URL+"/api/cart/items/"+line.ID, nil, &cart)
	if len(cart.Lines) != 0 || cart.Subtotal != 0 {
		t.Fatalf("cart after remove = %+v", cart)
	}
}

func TestCartRejectsBadInput(t *testing.T) {
	ts, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/cart/items", addCartItemRequest{
		ItemID: "pizza-inexistente",
		Size:   "small",
	}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown item = %d, want 404", resp.StatusCode)
	}

	// Pizzas have no regular price.
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/cart/items", addCartItemRequest{
		ItemID: "pizza-margherita",
		Size:   "regular",
	}, nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unpriced size = %d, want 422", resp.StatusCode)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ts, alice := newTestServer(t)

	jar, _ := cookiejar.New(nil)
	bob := &http.Client{Jar: jar}

	doJSON(t, alice, http.MethodPost, ts.URL+"/api/cart/items", addCartItemRequest{
		ItemID: "pizza-margherita", Size: "small",
	}, nil)

	var bobCart models.Cart
	doJSON(t, bob, http.MethodGet, ts.URL+"/api/cart", nil, &bobCart)
	if len(bobCart.Lines) != 0 {
		t.Fatalf("bob sees alice's cart: %+v", bobCart)
	}

	var aliceCart models.Cart
	doJSON(t, alice, http.MethodGet, ts.URL+"/api/cart", nil, &aliceCart)
	if len(aliceCart.Lines) != 1 {
		t.Fatalf("alice's cart = %+v", aliceCart)
	}
}

func TestDeliveryCheckStoresEligibleAddress(t *testing.T) {
	ts, client := newTestServer(t)

	lat, lng := 47.3869, 8.5417 // about 1.1 km north of the restaurant
	var result delivery.CheckResult
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/delivery/check", delivery.CheckRequest{
		Lat: &lat, Lng: &lng, Address: "Langstrasse 10, 8004 Zürich",
	}, &result)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check = %d", resp.StatusCode)
	}
	if !result.CanDeliver || result.Zone != "A" {
		t.Fatalf("result = %+v", result)
	}

	var addr models.DeliveryAddress
	doJSON(t, client, http.MethodGet, ts.URL+"/api/address", nil, &addr)
	if !addr.CanDeliver || addr.Zone != "A" {
		t.Fatalf("stored address = %+v", addr)
	}
}

func TestDeliveryCheckOutsideAreaKeepsPriorAddress(t *testing.T) {
	ts, client := newTestServer(t)

	lat, lng := 47.3869, 8.5417
	doJSON(t, client, http.MethodPost, ts.URL+"/api/delivery/check", delivery.CheckRequest{
		Lat: &lat, Lng: &lng, Address: "Langstrasse 10, 8004 Zürich",
	}, nil)

	// Bern is far outside every zone.
	bernLat, bernLng := 46.9481, 7.4474
	var result delivery.CheckResult
	doJSON(t, client, http.MethodPost, ts.URL+"/api/delivery/check", delivery.CheckRequest{
		Lat: &bernLat, Lng: &bernLng, Address: "Bundesplatz 1, Bern",
	}, &result)
	if result.CanDeliver {
		t.Fatalf("result = %+v", result)
	}
	if !strings.Contains(result.Message, "outside our delivery area") {
		t.Fatalf("message = %q", result.Message)
	}

	var addr models.DeliveryAddress
	doJSON(t, client, http.MethodGet, ts.URL+"/api/address", nil, &addr)
	if addr.Zone != "A" {
		t.Fatalf("prior address lost: %+v", addr)
	}
}

func TestDeliveryCheckWithoutLocator(t *testing.T) {
	ts, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/delivery/check", delivery.CheckRequest{}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty check = %d, want 400", resp.StatusCode)
	}
}

func TestPlaceOrder(t *testing.T) {
	ts, client := newTestServer(t)

	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart/items", addCartItemRequest{
		ItemID: "pizza-margherita", Size: "small",
	}, nil)

	var order models.Order
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/orders", checkout.Request{
		Customer:      models.CustomerInfo{Name: "Anna Keller", Phone: "044 123 45 67"},
		DeliveryType:  models.DeliveryTypePickup,
		PaymentMethod: models.PaymentMethodCash,
	}, &order)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("place order = %d", resp.StatusCode)
	}
	if order.Total != 16 || order.Status != models.OrderStatusConfirmed {
		t.Fatalf("order = %+v", order)
	}

	var cart models.Cart
	doJSON(t, client, http.MethodGet, ts.URL+"/api/cart", nil, &cart)
	if len(cart.Lines) != 0 {
		t.Fatalf("cart not cleared: %+v", cart)
	}

	var orders []models.Order
	doJSON(t, client, http.MethodGet, ts.URL+"/api/orders", nil, &orders)
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("orders = %+v", orders)
	}
}

func TestPlaceOrderValidationStatus(t *testing.T) {
	ts, client := newTestServer(t)

	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart/items", addCartItemRequest{
		ItemID: "pizza-margherita", Size: "small",
	}, nil)

	var body map[string]string
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/orders", checkout.Request{
		DeliveryType:  models.DeliveryTypePickup,
		PaymentMethod: models.PaymentMethodCash,
	}, &body)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("invalid order = %d, want 422", resp.StatusCode)
	}
	if body["error"] == "" {
		t.Fatal("missing error message")
	}
}

func TestLanguageEndpoints(t *testing.T) {
	ts, client := newTestServer(t)

	var lang map[string]string
	doJSON(t, client, http.MethodGet, ts.URL+"/api/language", nil, &lang)
	if lang["language"] != models.LanguageGerman {
		t.Fatalf("default language = %q", lang["language"])
	}

	doJSON(t, client, http.MethodPut, ts.URL+"/api/language", setLanguageRequest{Language: "en"}, &lang)
	if lang["language"] != models.LanguageEnglish {
		t.Fatalf("language after set = %q", lang["language"])
	}

	resp := doJSON(t, client, http.MethodPut, ts.URL+"/api/language", setLanguageRequest{Language: "fr"}, nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unsupported language = %d, want 422", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts, client := newTestServer(t)

	doJSON(t, client, http.MethodGet, ts.URL+"/api/menu", nil, nil)

	resp, err := client.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /metrics = %d", resp.StatusCode)
	}
}

func TestWebsocketChangeFeed(t *testing.T) {
	ts, client := newTestServer(t)

	// Establish the session cookie first so the websocket joins the same
	// session as the REST calls.
	doJSON(t, client, http.MethodGet, ts.URL+"/api/cart", nil, nil)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	header := http.Header{}
	for _, cookie := range client.Jar.Cookies(mustParseURL(t, ts.URL)) {
		header.Add("Cookie", fmt.Sprintf("%s=%s", cookie.Name, cookie.Value))
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart/items", addCartItemRequest{
		ItemID: "pizza-margherita", Size: "small",
	}, nil)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var event changeEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatal(err)
	}
	if event.Store != "cart" {
		t.Fatalf("event = %+v, want cart change", event)
	}
}
