package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// CreateProductRequest carries the fields a vendor submits for a new listing.
type CreateProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Stock        int      `json:"stock" binding:"min=0"`
	Category     string   `json:"category" binding:"required"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	ExtraDetails string   `json:"extra_details"`
}

// UpdateProductRequest updates a listing. Pointer fields distinguish "not
// sent" from zero values.
type UpdateProductRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Stock        *int      `json:"stock"`
	Category     *string   `json:"category"`
	Image        *string   `json:"image"`
	Images       *[]string `json:"images"`
	ExtraDetails *string   `json:"extra_details"`
}

// ProductService manages the catalog. Writes cascade to the vendor's
// inventory view so the two stock figures stay in step.
type ProductService struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
	tx        repository.TxManager
	logger    *zap.Logger
}

func NewProductService(products repository.ProductRepository, inventory repository.InventoryRepository, tx repository.TxManager, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, inventory: inventory, tx: tx, logger: logger}
}

// CreateProduct creates a listing and its inventory record.
func (s *ProductService) CreateProduct(ctx context.Context, vendorID uuid.UUID, req *CreateProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		Category:     req.Category,
		Image:        req.Image,
		Images:       req.Images,
		ExtraDetails: req.ExtraDetails,
		VendorID:     vendorID,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.products.Create(ctx, product); err != nil {
			return err
		}
		inv := &models.Inventory{
			VendorID:          vendorID,
			ProductID:         product.ID,
			Quantity:          req.Stock,
			LowStockThreshold: models.DefaultLowStockThreshold,
		}
		return s.inventory.Upsert(ctx, inv)
	})
	if err != nil {
		s.logger.Error("product create failed", zap.Error(err))
		return nil, errInternal("Failed to create product")
	}

	s.logger.Info("product created",
		zap.String("product", product.ID.String()),
		zap.String("vendor", vendorID.String()),
	)
	return product, nil
}

// GetProduct returns one catalog entry.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("product fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}
	return product, nil
}

// ListProducts returns catalog entries matching the filter.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, *ServiceError) {
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("product list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch products")
	}
	return products, nil
}

// UpdateProduct applies a partial update. Vendors may only edit their own
// listings; admins may edit any.
func (s *ProductService) UpdateProduct(ctx context.Context, requesterID uuid.UUID, role string, id uuid.UUID, req *UpdateProductRequest) (*models.Product, *ServiceError) {
	product, svcErr := s.GetProduct(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if role != models.RoleAdmin && product.VendorID != requesterID {
		return nil, errForbidden("You can only modify your own products")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, errBadRequest("Price must be greater than zero")
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errBadRequest("Stock cannot be negative")
		}
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.ExtraDetails != nil {
		product.ExtraDetails = *req.ExtraDetails
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.products.Update(ctx, product); err != nil {
			return err
		}
		if req.Stock == nil {
			return nil
		}
		inv, err := s.inventory.FindByProductID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				inv = &models.Inventory{
					VendorID:          product.VendorID,
					ProductID:         id,
					LowStockThreshold: models.DefaultLowStockThreshold,
				}
			} else {
				return err
			}
		}
		inv.Quantity = *req.Stock
		return s.inventory.Upsert(ctx, inv)
	})
	if err != nil {
		s.logger.Error("product update failed", zap.Error(err))
		return nil, errInternal("Failed to update product")
	}
	return product, nil
}

// DeleteProduct removes a listing and its inventory record.
func (s *ProductService) DeleteProduct(ctx context.Context, requesterID uuid.UUID, role string, id uuid.UUID) *ServiceError {
	product, svcErr := s.GetProduct(ctx, id)
	if svcErr != nil {
		return svcErr
	}
	if role != models.RoleAdmin && product.VendorID != requesterID {
		return errForbidden("You can only delete your own products")
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.products.Delete(ctx, id); err != nil {
			return err
		}
		return s.inventory.DeleteByProductID(ctx, id)
	})
	if err != nil {
		s.logger.Error("product delete failed", zap.Error(err))
		return errInternal("Failed to delete product")
	}

	s.logger.Info("product deleted", zap.String("product", id.String()))
	return nil
}
