package domain

import "net/http"

// AppError is a flat named failure carrying the HTTP status and the
// {"message", "errorMessage"} pair the API renders for it.
type AppError struct {
	Status int
	Kind   string // "message" field
	Code   string // "errorMessage" field
}

func (e *AppError) Error() string { return e.Code }

var (
	ErrProductCreateDenied        = &AppError{http.StatusInternalServerError, "product create denied", "unable_to_create_product"}
	ErrProductImageCreateDenied   = &AppError{http.StatusInternalServerError, "product image create denied", "unable_to_create_product_image"}
	ErrStockCreateDenied          = &AppError{http.StatusInternalServerError, "stock create denied", "unable_to_create_stocks"}
	ErrProductHistoryCreateDenied = &AppError{http.StatusInternalServerError, "product history create denied", "unable_to_create_product_history"}
	ErrProductCodeUpdateDenied    = &AppError{http.StatusInternalServerError, "product code update denied", "unable_to_update_product_code"}

	ErrAccountDoesNotExist      = &AppError{http.StatusUnauthorized, "account does not exist", "account_does_not_exist"}
	ErrNotAUser                 = &AppError{http.StatusBadRequest, "not a user", "not_a_user"}
	ErrCustomerPermissionDenied = &AppError{http.StatusForbidden, "customer permission denied", "customer_permission_denied"}
	ErrInvalidCredentials       = &AppError{http.StatusUnauthorized, "invalid credentials", "invalid_credentials"}

	ErrDestinationCreateDenied = &AppError{http.StatusBadRequest, "destination creation denied", "destination_creation_denied"}
	ErrDestinationDoesNotExist = &AppError{http.StatusBadRequest, "destination does not exist", "destination_does_not_exist"}
	ErrDestinationUpdateDenied = &AppError{http.StatusBadRequest, "destination update denied", "destination_update_denied"}
	ErrDestinationDeleteDenied = &AppError{http.StatusBadRequest, "destination delete denied", "destination_delete_denied"}
	ErrDestinationLimitReached = &AppError{http.StatusBadRequest, "data limit reached", "max_destination_limit_reached"}

	ErrSellerDoesNotExist = &AppError{http.StatusBadRequest, "seller does not exist", "seller_does_not_exist"}

	ErrCartItemDoesNotExist = &AppError{http.StatusBadRequest, "cart item does not exist", "cart_item_does_not_exist"}
	ErrCartItemCreateDenied = &AppError{http.StatusInternalServerError, "cart item create denied", "unable_to_create_cart_item"}

	ErrOrderDoesNotExist        = &AppError{http.StatusBadRequest, "order does not exist", "order_does_not_exist"}
	ErrOrderCreateDenied        = &AppError{http.StatusInternalServerError, "order create denied", "unable_to_create_order"}
	ErrOrderItemCreateDenied    = &AppError{http.StatusInternalServerError, "order item create denied", "unable_to_create_order_item"}
	ErrOrderHistoryCreateDenied = &AppError{http.StatusInternalServerError, "order history create denied", "unable_to_create_order_history"}
	ErrProductSoldOut           = &AppError{http.StatusBadRequest, "product sold out", "product_sold_out"}
	ErrStockDecreaseDenied      = &AppError{http.StatusInternalServerError, "stock decrease denied", "unable_to_decrease_stock"}

	ErrKeyError      = &AppError{http.StatusBadRequest, "key error", "key_error"}
	ErrDatabaseClose = &AppError{http.StatusInternalServerError, "database close failed", "unable_to_close_database"}
	ErrServer        = &AppError{http.StatusInternalServerError, "internal server error", "server_error"}
)
