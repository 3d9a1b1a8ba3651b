package services

import (
	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

type SellerService struct {
	Sellers *repos.SellerRepo
}

func NewSellerService(sellers *repos.SellerRepo) *SellerService {
	return &SellerService{Sellers: sellers}
}

func (s *SellerService) Info(sellerID int64) (domain.Seller, error) {
	return s.Sellers.Info(sellerID)
}

func (s *SellerService) Categories(sellerID int64) ([]domain.SellerCategory, error) {
	// Missing seller surfaces here rather than as an empty list.
	if _, err := s.Sellers.Info(sellerID); err != nil {
		return nil, err
	}
	return s.Sellers.Categories(sellerID)
}

func (s *SellerService) Products(sellerID int64, q string, limit, offset int) ([]repos.StorefrontProduct, error) {
	if _, err := s.Sellers.Info(sellerID); err != nil {
		return nil, err
	}
	return s.Sellers.Products(sellerID, q, limit, offset)
}
