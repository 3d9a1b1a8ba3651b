package handlers

import (
	"github.com/jmoiron/sqlx"

	"modemarket/internal/repos"
	"modemarket/internal/services"
)

type Deps struct {
	AuthHandler        *AuthHandler
	ProductHandler     *ProductHandler
	SellerHandler      *SellerHandler
	DestinationHandler *DestinationHandler
	CartHandler        *CartHandler
	OrderHandler       *OrderHandler

	Auth *services.AuthService
}

func NewDeps(db *sqlx.DB, jwtSecret string) *Deps {
	accountRepo := repos.NewAccountRepo(db)
	productRepo := repos.NewProductRepo(db)
	sellerRepo := repos.NewSellerRepo(db)
	destinationRepo := repos.NewDestinationRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	authSvc := services.NewAuthService(accountRepo, jwtSecret)
	productSvc := services.NewProductService(db, productRepo, accountRepo)
	sellerSvc := services.NewSellerService(sellerRepo)
	destinationSvc := services.NewDestinationService(db, destinationRepo, accountRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, accountRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, accountRepo)

	return &Deps{
		AuthHandler:        &AuthHandler{Auth: authSvc},
		ProductHandler:     &ProductHandler{Products: productSvc},
		SellerHandler:      &SellerHandler{Sellers: sellerSvc},
		DestinationHandler: &DestinationHandler{Destinations: destinationSvc},
		CartHandler:        &CartHandler{Carts: cartSvc},
		OrderHandler:       &OrderHandler{Orders: orderSvc},
		Auth:               authSvc,
	}
}
