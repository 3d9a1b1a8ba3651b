package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"modemarket/internal/http/handlers"
	"modemarket/internal/repos"
)

// newApp wires the real handlers over a fresh seeded database, with the
// same routes the server registers (rate limiting stays out of the way
// here; the throttle has its own test).
func newApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db, "test-secret")
	signin := handlers.RequireSignin(deps.Auth)

	app := fiber.New()
	app.Post("/login", deps.AuthHandler.Login)

	admin := app.Group("/admin", signin)
	admin.Post("/products", deps.ProductHandler.Create)

	store := app.Group("/store")
	store.Get("/sellers/:id", deps.SellerHandler.Info)
	store.Get("/sellers/:id/categories", deps.SellerHandler.Categories)
	store.Get("/sellers/:id/products", deps.SellerHandler.Products)

	destinations := app.Group("/destinations", signin)
	destinations.Get("/", deps.DestinationHandler.List)
	destinations.Post("/", deps.DestinationHandler.Create)
	destinations.Get("/:id", deps.DestinationHandler.Detail)
	destinations.Patch("/:id", deps.DestinationHandler.Update)
	destinations.Delete("/:id", deps.DestinationHandler.Delete)

	store.Post("/carts", signin, deps.CartHandler.Create)
	store.Get("/carts/:id", signin, deps.CartHandler.Detail)
	store.Post("/orders", signin, deps.OrderHandler.Place)
	store.Get("/orders/sender", signin, deps.OrderHandler.Sender)
	store.Get("/orders/:id", signin, deps.OrderHandler.Result)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message":      "page not found",
			"errorMessage": "page_not_found",
		})
	})
	return app, db
}

func jsonReq(method, target, token string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// do runs the request with a generous timeout (bcrypt on login is slow)
// and decodes the JSON envelope.
func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s %s: %v", req.Method, req.URL.Path, err)
	}
	return resp.StatusCode, body
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	status, body := do(t, app, jsonReq("POST", "/login", "", fiber.Map{
		"username": username,
		"password": "Passw0rd!",
	}))
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d body %v", username, status, body)
	}
	result, _ := body["result"].(map[string]any)
	token, _ := result["accessToken"].(string)
	if token == "" {
		t.Fatalf("login %s: no access token in %v", username, body)
	}
	return token
}

func result(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	r, ok := body["result"].(map[string]any)
	if !ok {
		t.Fatalf("no result object in %v", body)
	}
	return r
}

func wantError(t *testing.T, status int, body map[string]any, wantStatus int, wantCode string) {
	t.Helper()
	if status != wantStatus {
		t.Fatalf("status %d, want %d (body %v)", status, wantStatus, body)
	}
	if body["errorMessage"] != wantCode {
		t.Fatalf("errorMessage %v, want %q", body["errorMessage"], wantCode)
	}
}
