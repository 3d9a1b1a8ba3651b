package handlers_test

import (
	"net/http"
	"testing"
)

func TestSigninRequired(t *testing.T) {
	app, _ := newApp(t)

	// No Authorization header.
	status, body := do(t, app, jsonReq("GET", "/destinations/", "", nil))
	wantError(t, status, body, http.StatusUnauthorized, "account_does_not_exist")

	// A token signed with a different secret.
	forged := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJhY2NvdW50X2lkIjozfQ.invalid"
	status, body = do(t, app, jsonReq("GET", "/destinations/", forged, nil))
	wantError(t, status, body, http.StatusUnauthorized, "account_does_not_exist")
}

func TestDestinationsRejectNonCustomers(t *testing.T) {
	app, _ := newApp(t)

	sellerToken := login(t, app, "seller1")
	status, body := do(t, app, jsonReq("POST", "/destinations/", sellerToken, map[string]any{
		"recipient":  "Suhee Go",
		"phone":      "01012341234",
		"address1":   "12 Teheran-ro",
		"postNumber": "06236",
	}))
	wantError(t, status, body, http.StatusBadRequest, "not_a_user")
}

func TestProductCreateRejectsCustomers(t *testing.T) {
	app, _ := newApp(t)

	userToken := login(t, app, "user1")
	status, body := do(t, app, jsonReq("POST", "/admin/products", userToken, map[string]any{
		"sellerId":        2,
		"mainCategoryId":  1,
		"subCategoryId":   1,
		"name":            "Denim Jacket",
		"originPrice":     "54000",
		"discountRate":    "0",
		"minimumQuantity": 1,
		"maximumQuantity": 20,
		"images":          []string{"images/products/3/main.jpg"},
		"stocks":          []map[string]any{{"colorId": 1, "sizeId": 1, "remain": 10}},
	}))
	wantError(t, status, body, http.StatusForbidden, "customer_permission_denied")
}

func TestOrdersInvisibleAcrossAccounts(t *testing.T) {
	app, _ := newApp(t)

	user1 := login(t, app, "user1")
	status, body := do(t, app, jsonReq("POST", "/store/carts", user1, map[string]any{
		"productId": 1, "stockId": 1, "quantity": 1,
		"originalPrice": "89000", "discountedPrice": "80100",
	}))
	if status != http.StatusCreated {
		t.Fatalf("cart create: %d %v", status, body)
	}
	status, body = do(t, app, jsonReq("POST", "/store/orders", user1, orderPayload(result(t, body)["cartItemId"])))
	if status != http.StatusCreated {
		t.Fatalf("order place: %d %v", status, body)
	}
	orderID := result(t, body)["orderId"]

	// Another customer cannot read the order.
	user2 := login(t, app, "user2")
	status, body = do(t, app, jsonReq("GET", orderPath(orderID), user2, nil))
	wantError(t, status, body, http.StatusBadRequest, "order_does_not_exist")
}
