package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestProductCreateAsSeller(t *testing.T) {
	app, db := newApp(t)
	token := login(t, app, "seller1")

	status, body := do(t, app, jsonReq("POST", "/admin/products", token, map[string]any{
		"sellerId":        2,
		"isDisplay":       true,
		"isSale":          true,
		"mainCategoryId":  1,
		"subCategoryId":   2,
		"name":            "Denim Jacket",
		"description":     "Washed denim jacket",
		"originPrice":     "54000",
		"discountRate":    "0.20",
		"minimumQuantity": 1,
		"maximumQuantity": 20,
		"images":          []string{"images/products/3/main.jpg", "images/products/3/detail.jpg"},
		"stocks": []map[string]any{
			{"colorId": 1, "sizeId": 1, "remain": 10},
			{"colorId": 2, "sizeId": 1, "remain": 4},
		},
	}))
	if status != http.StatusCreated {
		t.Fatalf("product create: %d %v", status, body)
	}
	r := result(t, body)
	code, _ := r["productCode"].(string)
	if !strings.HasPrefix(code, "PC") || len(code) != 17 {
		t.Fatalf("unexpected product code %q", code)
	}

	// The new product shows up on the storefront with the discount applied.
	productID := r["productId"]
	status, body = do(t, app, jsonReq("GET", "/store/sellers/2/products?q=denim", "", nil))
	if status != http.StatusOK {
		t.Fatalf("storefront: %d %v", status, body)
	}
	rows, _ := body["result"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected the new product, got %v", body["result"])
	}
	row, _ := rows[0].(map[string]any)
	if row["discountedPrice"] != "43200" {
		t.Fatalf("discounted price %v, want 43200", row["discountedPrice"])
	}

	var stocks int
	if err := db.Get(&stocks, `SELECT COUNT(*) FROM stocks WHERE product_id = ?`, productID); err != nil {
		t.Fatal(err)
	}
	if stocks != 2 {
		t.Fatalf("stock rows %d, want 2", stocks)
	}
}

func TestProductCreateRejectsBadPrice(t *testing.T) {
	app, _ := newApp(t)
	token := login(t, app, "seller1")

	status, body := do(t, app, jsonReq("POST", "/admin/products", token, map[string]any{
		"sellerId":        2,
		"mainCategoryId":  1,
		"subCategoryId":   1,
		"name":            "Denim Jacket",
		"originPrice":     "-54000",
		"minimumQuantity": 1,
		"maximumQuantity": 20,
		"images":          []string{"images/products/3/main.jpg"},
		"stocks":          []map[string]any{{"colorId": 1, "sizeId": 1, "remain": 10}},
	}))
	wantError(t, status, body, http.StatusBadRequest, "key_error")
}
