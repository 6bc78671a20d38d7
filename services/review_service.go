package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
)

// CreateReviewRequest submits one rating for a product.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest edits an existing review.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewService manages product reviews. Uniqueness per (customer, product)
// is enforced by the store's unique index, not a pre-insert lookup.
type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, users repository.UserRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users, logger: logger}
}

// CreateReview records a customer's rating for a product. A second review of
// the same product by the same customer is rejected with a conflict.
func (s *ReviewService) CreateReview(ctx context.Context, customerID, productID uuid.UUID, req *CreateReviewRequest) (*models.Review, *ServiceError) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Product not found")
		}
		s.logger.Error("product lookup failed", zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}

	review := &models.Review{
		ProductID:  productID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, errConflict("You have already reviewed this product")
		}
		s.logger.Error("review create failed", zap.Error(err))
		return nil, errInternal("Failed to create review")
	}

	s.updateVendorRating(ctx, product.VendorID, req.Rating)
	return review, nil
}

// ListProductReviews returns all reviews for a product.
func (s *ReviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]models.Review, *ServiceError) {
	reviews, err := s.reviews.FindByProductID(ctx, productID)
	if err != nil {
		s.logger.Error("review list failed", zap.Error(err))
		return nil, errInternal("Failed to fetch reviews")
	}
	return reviews, nil
}

// UpdateReview edits the customer's own review.
func (s *ReviewService) UpdateReview(ctx context.Context, customerID, reviewID uuid.UUID, req *UpdateReviewRequest) (*models.Review, *ServiceError) {
	review, svcErr := s.findOwnReview(ctx, customerID, reviewID)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, errBadRequest("Rating must be between 1 and 5")
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		s.logger.Error("review update failed", zap.Error(err))
		return nil, errInternal("Failed to update review")
	}
	return review, nil
}

// DeleteReview removes the customer's own review. Admins may remove any.
func (s *ReviewService) DeleteReview(ctx context.Context, requesterID uuid.UUID, role string, reviewID uuid.UUID) *ServiceError {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if isNotFound(err) {
			return errNotFound("Review not found")
		}
		s.logger.Error("review fetch failed", zap.Error(err))
		return errInternal("Failed to fetch review")
	}
	if role != models.RoleAdmin && review.CustomerID != requesterID {
		return errForbidden("You can only delete your own reviews")
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		s.logger.Error("review delete failed", zap.Error(err))
		return errInternal("Failed to delete review")
	}
	return nil
}

// MarkHelpful bumps the review's helpful counter.
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID uuid.UUID) (*models.Review, *ServiceError) {
	review, err := s.reviews.IncrementHelpful(ctx, reviewID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Review not found")
		}
		s.logger.Error("helpful increment failed", zap.Error(err))
		return nil, errInternal("Failed to update review")
	}
	return review, nil
}

func (s *ReviewService) findOwnReview(ctx context.Context, customerID, reviewID uuid.UUID) (*models.Review, *ServiceError) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound("Review not found")
		}
		s.logger.Error("review fetch failed", zap.Error(err))
		return nil, errInternal("Failed to fetch review")
	}
	if review.CustomerID != customerID {
		return nil, errForbidden("You can only modify your own reviews")
	}
	return review, nil
}

// updateVendorRating folds one new rating into the vendor's running average.
// Best-effort; a failure here never fails the review.
func (s *ReviewService) updateVendorRating(ctx context.Context, vendorID uuid.UUID, rating int) {
	vendor, err := s.users.FindByID(ctx, vendorID)
	if err != nil {
		s.logger.Warn("vendor rating update skipped", zap.Error(err))
		return
	}

	total := vendor.TotalReviews + 1
	vendor.AverageRating = (vendor.AverageRating*float64(vendor.TotalReviews) + float64(rating)) / float64(total)
	vendor.TotalReviews = total

	if err := s.users.Update(ctx, vendor); err != nil {
		s.logger.Warn("vendor rating update failed", zap.Error(err))
	}
}
