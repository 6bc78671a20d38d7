package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

func newReviewFixture() (*ReviewService, *mockProductRepo, *mockUserRepo) {
	reviews := newMockReviewRepo()
	products := newMockProductRepo()
	users := newMockUserRepo()
	return NewReviewService(reviews, products, users, testLogger()), products, users
}

func seedVendorAndProduct(t *testing.T, products *mockProductRepo, users *mockUserRepo) (*models.User, *models.Product) {
	t.Helper()
	vendor := &models.User{Name: "Shop", Email: "shop@example.com", Role: models.RoleVendor}
	require.NoError(t, users.Create(context.Background(), vendor))
	p := &models.Product{Name: "Kettle", Price: 25, Stock: 10, VendorID: vendor.ID}
	require.NoError(t, products.Create(context.Background(), p))
	return vendor, p
}

func TestCreateReview_SecondReviewConflicts(t *testing.T) {
	svc, products, users := newReviewFixture()
	_, p := seedVendorAndProduct(t, products, users)
	customerID := uuid.New()

	_, svcErr := svc.CreateReview(context.Background(), customerID, p.ID, &CreateReviewRequest{Rating: 5, Comment: "great"})
	require.Nil(t, svcErr)

	_, svcErr = svc.CreateReview(context.Background(), customerID, p.ID, &CreateReviewRequest{Rating: 1, Comment: "changed my mind"})
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

func TestCreateReview_DifferentCustomersAllowed(t *testing.T) {
	svc, products, users := newReviewFixture()
	_, p := seedVendorAndProduct(t, products, users)

	_, svcErr := svc.CreateReview(context.Background(), uuid.New(), p.ID, &CreateReviewRequest{Rating: 4})
	require.Nil(t, svcErr)
	_, svcErr = svc.CreateReview(context.Background(), uuid.New(), p.ID, &CreateReviewRequest{Rating: 2})
	require.Nil(t, svcErr)

	reviews, svcErr := svc.ListProductReviews(context.Background(), p.ID)
	require.Nil(t, svcErr)
	assert.Len(t, reviews, 2)
}

func TestCreateReview_UpdatesVendorAggregate(t *testing.T) {
	svc, products, users := newReviewFixture()
	vendor, p := seedVendorAndProduct(t, products, users)

	_, svcErr := svc.CreateReview(context.Background(), uuid.New(), p.ID, &CreateReviewRequest{Rating: 4})
	require.Nil(t, svcErr)
	_, svcErr = svc.CreateReview(context.Background(), uuid.New(), p.ID, &CreateReviewRequest{Rating: 2})
	require.Nil(t, svcErr)

	stored, err := users.FindByID(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TotalReviews)
	assert.InDelta(t, 3.0, stored.AverageRating, 0.001)
}

func TestCreateReview_UnknownProduct(t *testing.T) {
	svc, _, _ := newReviewFixture()

	_, svcErr := svc.CreateReview(context.Background(), uuid.New(), uuid.New(), &CreateReviewRequest{Rating: 3})
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestUpdateReview_OnlyOwner(t *testing.T) {
	svc, products, users := newReviewFixture()
	_, p := seedVendorAndProduct(t, products, users)
	customerID := uuid.New()

	review, svcErr := svc.CreateReview(context.Background(), customerID, p.ID, &CreateReviewRequest{Rating: 3})
	require.Nil(t, svcErr)

	_, svcErr = svc.UpdateReview(context.Background(), uuid.New(), review.ID, &UpdateReviewRequest{})
	require.NotNil(t, svcErr)
	assert.Equal(t, 403, svcErr.StatusCode)

	newRating := 5
	updated, svcErr := svc.UpdateReview(context.Background(), customerID, review.ID, &UpdateReviewRequest{Rating: &newRating})
	require.Nil(t, svcErr)
	assert.Equal(t, 5, updated.Rating)
}

func TestDeleteReview_AdminMayDeleteAny(t *testing.T) {
	svc, products, users := newReviewFixture()
	_, p := seedVendorAndProduct(t, products, users)

	review, svcErr := svc.CreateReview(context.Background(), uuid.New(), p.ID, &CreateReviewRequest{Rating: 1})
	require.Nil(t, svcErr)

	require.Nil(t, svc.DeleteReview(context.Background(), uuid.New(), models.RoleAdmin, review.ID))
}

func TestMarkHelpful_Increments(t *testing.T) {
	svc, products, users := newReviewFixture()
	_, p := seedVendorAndProduct(t, products, users)

	review, svcErr := svc.CreateReview(context.Background(), uuid.New(), p.ID, &CreateReviewRequest{Rating: 5})
	require.Nil(t, svcErr)

	updated, svcErr := svc.MarkHelpful(context.Background(), review.ID)
	require.Nil(t, svcErr)
	assert.Equal(t, 1, updated.Helpful)
}
