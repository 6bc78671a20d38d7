package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/services"
)

type ProductController struct {
	products *services.ProductService
	reviews  *services.ReviewService
}

func NewProductController(products *services.ProductService, reviews *services.ReviewService) *ProductController {
	return &ProductController{products: products, reviews: reviews}
}

// CreateProduct creates a listing owned by the calling vendor.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	vendorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.products.CreateProduct(c.Request.Context(), vendorID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProducts lists catalog entries with search, filter and sort params.
func (pc *ProductController) GetProducts(c *gin.Context) {
	filter := repository.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		SortBy:   c.Query("sort"),
	}
	if v := c.Query("vendor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor_id format"})
			return
		}
		filter.VendorID = &id
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		filter.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}
		filter.MaxPrice = &p
	}

	products, svcErr := pc.products.ListProducts(c.Request.Context(), filter)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetProductByID returns one catalog entry.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	product, svcErr := pc.products.GetProduct(c.Request.Context(), productID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct edits a listing. Ownership is enforced by the service.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.products.UpdateProduct(c.Request.Context(), userID, role, productID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a listing and its inventory record.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if svcErr := pc.products.DeleteProduct(c.Request.Context(), userID, role, productID); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// CreateReview posts the caller's review on a product.
func (pc *ProductController) CreateReview(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	review, svcErr := pc.reviews.CreateReview(c.Request.Context(), userID, productID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GetReviews lists a product's reviews.
func (pc *ProductController) GetReviews(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	reviews, svcErr := pc.reviews.ListProductReviews(c.Request.Context(), productID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

// UpdateReview edits the caller's own review.
func (pc *ProductController) UpdateReview(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "reviewId")
	if !ok {
		return
	}

	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	review, svcErr := pc.reviews.UpdateReview(c.Request.Context(), userID, reviewID, &req)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review, owner or admin.
func (pc *ProductController) DeleteReview(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(c, "reviewId")
	if !ok {
		return
	}

	if svcErr := pc.reviews.DeleteReview(c.Request.Context(), userID, role, reviewID); svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// MarkReviewHelpful bumps a review's helpful counter.
func (pc *ProductController) MarkReviewHelpful(c *gin.Context) {
	reviewID, ok := parseUUIDParam(c, "reviewId")
	if !ok {
		return
	}

	review, svcErr := pc.reviews.MarkHelpful(c.Request.Context(), reviewID)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, review)
}
