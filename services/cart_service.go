package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// AddToCartRequest adds or tops up one product in the cart.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest sets the absolute quantity for a product already in
// the cart. Zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// CartService manages the Redis-backed shopping cart. Stock is checked
// against the current catalog when items are added, not reserved; the real
// decrement happens at checkout.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// GetCart returns the user's cart, or an empty one if none is stored.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID.String())
	if err != nil {
		s.logger.Error("cart fetch failed", zap.String("user", userID.String()), zap.Error(err))
		return nil, errInternal("Failed to fetch cart")
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID.String(), Items: []models.CartItem{}}
	}
	return cart, nil
}

// AddItem adds a product to the cart, merging with an existing line for the
// same product. The price is snapshotted from the catalog.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *AddToCartRequest) (*models.Cart, *ServiceError) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("product lookup failed", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}

	cart, svcErr := s.GetCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	quantity := req.Quantity
	idx := findItem(cart, product.ID.String())
	if idx >= 0 {
		quantity += cart.Items[idx].Quantity
	}
	if quantity > product.Stock {
		return nil, errBadRequest("Requested quantity exceeds available stock")
	}

	if idx >= 0 {
		cart.Items[idx].Quantity = quantity
		cart.Items[idx].Price = product.Price
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: product.ID.String(),
			VendorID:  product.VendorID.String(),
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	return s.save(ctx, cart)
}

// UpdateItem sets the quantity for a cart line. Quantity zero removes it.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, req *UpdateCartItemRequest) (*models.Cart, *ServiceError) {
	cart, svcErr := s.GetCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	idx := findItem(cart, productID.String())
	if idx < 0 {
		return nil, errNotFound("Item not in cart")
	}

	if req.Quantity == 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		return s.save(ctx, cart)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("product lookup failed", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}
	if req.Quantity > product.Stock {
		return nil, errBadRequest("Requested quantity exceeds available stock")
	}

	cart.Items[idx].Quantity = req.Quantity
	cart.Items[idx].Price = product.Price
	return s.save(ctx, cart)
}

// RemoveItem removes one product line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, *ServiceError) {
	cart, svcErr := s.GetCart(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	idx := findItem(cart, productID.String())
	if idx < 0 {
		return nil, errNotFound("Item not in cart")
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	return s.save(ctx, cart)
}

// ClearCart deletes the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) *ServiceError {
	if err := s.carts.DeleteCart(ctx, userID.String()); err != nil {
		s.logger.Error("cart delete failed", zap.String("user", userID.String()), zap.Error(err))
		return errInternal("Failed to clear cart")
	}
	return nil
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) (*models.Cart, *ServiceError) {
	cart.RecalculateTotal()
	cart.UpdatedAt = time.Now()
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		s.logger.Error("cart save failed", zap.String("user", cart.UserID), zap.Error(err))
		return nil, errInternal("Failed to save cart")
	}
	return cart, nil
}

func findItem(cart *models.Cart, productID string) int {
	for i, it := range cart.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
