// internal/service/product_service.go
package service

import (
	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
	"github.com/unclebandit/pricepeek-backend/internal/repository"
)

type ProductService struct {
	ProductRepo repository.ProductRepositoryInterface
	Gate        *AccessGate
}

// GetProductInfo returns the joined product view for one product, scoped
// the same way as campaign info. The campaign column is nullable: a
// product can exist outside any campaign.
func (s *ProductService) GetProductInfo(actorID, productID int) (*model.ProductInfo, error) {
	priv, err := s.Gate.Resolve(actorID)
	if err != nil {
		return nil, appErrors.NewStoreError("resolve privilege", err)
	}
	if priv == PrivilegeUnknown {
		return nil, appErrors.NewAccountNotFound(actorID)
	}

	info, err := s.ProductRepo.GetInfo(productID, OwnerScope(priv, actorID))
	if err != nil {
		return nil, appErrors.NewStoreError("product info", err)
	}
	if info == nil {
		return nil, appErrors.NewProductNotFound(productID)
	}
	return info, nil
}
