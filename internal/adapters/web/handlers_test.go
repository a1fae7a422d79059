package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-dashboard/internal/adapters/web"
	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/localstore"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := app.NewAppService(app.NewSeededStores(context.Background(), localstore.NewMemory()))
	srv := httptest.NewServer(web.NewHandler(svc, "", testSecret))
	t.Cleanup(srv.Close)
	return srv
}

// signUp registers an account and returns its bearer token.
func signUp(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	body := bytes.NewBufferString(`{"email":"admin@example.com","password":"pw","display_name":"Admin"}`)
	resp, err := http.Post(srv.URL+"/api/auth/signup", "application/json", body)
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup status = %d, want 200", resp.StatusCode)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("signup returned no token")
	}
	return session.Token
}

func doAuthed(t *testing.T, srv *httptest.Server, token, method, path string, body []byte) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestHealthIsPublic(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d, want 200", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)
	paths := []string{"/api/orders", "/api/products", "/api/notifications", "/api/analytics/dashboard"}
	for _, p := range paths {
		resp, err := http.Get(srv.URL + p)
		if err != nil {
			t.Fatalf("GET %s: %v", p, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", p, resp.StatusCode)
		}
	}

	// A garbage token is rejected too.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET with bad token: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad token = %d, want 401", resp.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv)

	body := bytes.NewBufferString(`{"email":"admin@example.com","password":"pw"}`)
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", body)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	bad := bytes.NewBufferString(`{"email":"admin@example.com","password":"wrong"}`)
	resp2, err := http.Post(srv.URL+"/api/auth/login", "application/json", bad)
	if err != nil {
		t.Fatalf("bad login: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", resp2.StatusCode)
	}
}

func TestListOrders_FilterSortAndPageParams(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/orders?status=shipped&sort=date&dir=desc&page=1&page_size=2", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var page struct {
		Items []struct {
			Status string `json:"status"`
		} `json:"items"`
		Page       int `json:"page"`
		PageSize   int `json:"page_size"`
		TotalItems int `json:"total_items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Page != 1 || page.PageSize != 2 {
		t.Errorf("pagination = page %d size %d, want 1/2", page.Page, page.PageSize)
	}
	if page.TotalItems == 0 {
		t.Fatalf("status filter matched nothing")
	}
	for _, o := range page.Items {
		if o.Status != "Shipped" {
			t.Errorf("filtered item has status %q", o.Status)
		}
	}
}

func TestGetOrder_UnknownIDIs404(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/orders/zzz", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown order = %d, want 404", resp.StatusCode)
	}
}

func TestRestockEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodPost, "/api/stock/p001/restock", []byte(`{"quantity":40}`))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("restock status = %d, want 200", resp.StatusCode)
	}
	var result struct {
		Item struct {
			Quantity int    `json:"quantity"`
			Status   string `json:"status"`
		} `json:"item"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Item.Status != "Optimal" {
		t.Errorf("status after restock = %q, want Optimal", result.Item.Status)
	}

	bad := doAuthed(t, srv, token, http.MethodPost, "/api/stock/p001/restock", []byte(`{"quantity":-1}`))
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("negative restock = %d, want 400", bad.StatusCode)
	}
}

func TestNotificationLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/notifications", nil)
	var view struct {
		Notifications []struct {
			ID   int  `json:"id"`
			Read bool `json:"read"`
		} `json:"notifications"`
		UnreadCount int `json:"unread_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if view.UnreadCount == 0 {
		t.Fatalf("seeded store has no unread notifications")
	}
	first := view.Notifications[0].ID

	read := doAuthed(t, srv, token, http.MethodPost, "/api/notifications/1/read", nil)
	if err := json.NewDecoder(read.Body).Decode(&view); err != nil {
		t.Fatalf("decode after read: %v", err)
	}
	read.Body.Close()
	for _, n := range view.Notifications {
		if n.ID == first && !n.Read {
			t.Errorf("notification %d still unread after read", first)
		}
	}

	clear := doAuthed(t, srv, token, http.MethodDelete, "/api/notifications", nil)
	if err := json.NewDecoder(clear.Body).Decode(&view); err != nil {
		t.Fatalf("decode after clear: %v", err)
	}
	clear.Body.Close()
	if len(view.Notifications) != 0 || view.UnreadCount != 0 {
		t.Errorf("collection not empty after clear: %+v", view)
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv)

	resp := doAuthed(t, srv, token, http.MethodGet, "/api/search?q=mouse&scope=products", nil)
	defer resp.Body.Close()
	var result struct {
		Query   string `json:"query"`
		Results struct {
			Products []struct {
				Title string `json:"title"`
			} `json:"products"`
			Orders []any `json:"orders"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Query != "mouse" || len(result.Results.Products) == 0 {
		t.Fatalf("search = %+v, want a product hit for mouse", result)
	}
	if len(result.Results.Orders) != 0 {
		t.Errorf("scoped search returned order hits")
	}
}
