package tests

import (
	"context"
	"testing"

	"biztrack/internal/dto"
	"biztrack/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Product service tests run without Redis: the barcode cache is skipped
// when no client is wired, falling through to the repository.
func buildProductSvc() (service.ProductService, *stubProductRepo) {
	repo := newStubProductRepo()
	return service.NewProductService(repo, nil), repo
}

func TestLowStock_BoundaryIsInclusive(t *testing.T) {
	svc, repo := buildProductSvc()
	seedProduct(repo, "At threshold", "", 5, 5)    // 5 <= 5 → low
	seedProduct(repo, "Below threshold", "", 2, 5) // low
	seedProduct(repo, "Above threshold", "", 6, 5) // fine
	negative := seedProduct(repo, "Oversold", "", -1, 5)
	_ = negative

	low, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, p := range low {
		names[p.Name] = true
	}
	assert.True(t, names["At threshold"])
	assert.True(t, names["Below threshold"])
	assert.True(t, names["Oversold"])
	assert.False(t, names["Above threshold"])
}

func TestLowStock_IgnoresInactiveProducts(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Discontinued", "", 0, 5)
	require.NoError(t, repo.SoftDelete(context.Background(), p.ID))

	low, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, low)
}

func TestGetByBarcode(t *testing.T) {
	svc, repo := buildProductSvc()
	seedProduct(repo, "Scanned Item", "7791234567890", 10, 5)

	resp, err := svc.GetByBarcode(context.Background(), "7791234567890")
	require.NoError(t, err)
	assert.Equal(t, "Scanned Item", resp.Name)

	_, err = svc.GetByBarcode(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSetQuantity_IsAbsolute(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Recounted", "", 17, 5)

	resp, err := svc.SetQuantity(context.Background(), p.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Quantity)
	assert.Equal(t, 40, repo.products[p.ID].Quantity)
}

func TestDeleteProduct_IsSoft(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Retired", "", 3, 5)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.False(t, repo.products[p.ID].Active)

	// The row survives for historical order lines.
	got, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestReactivateProduct_RestoresListing(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Back in stock", "", 3, 5)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	require.False(t, repo.products[p.ID].Active)

	got, err := svc.Reactivate(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
	assert.True(t, repo.products[p.ID].Active)
}

func TestCreateProduct_DefaultsThreshold(t *testing.T) {
	svc, _ := buildProductSvc()
	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "No threshold given",
		Price: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.LowStockThreshold)
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	svc, repo := buildProductSvc()
	p := seedProduct(repo, "Old Name", "", 10, 5)

	newName := "New Name"
	newPrice := decimal.NewFromInt(250)
	resp, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
	assert.True(t, resp.Price.Equal(newPrice))
	// Untouched fields keep their values.
	assert.Equal(t, 10, resp.Quantity)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _ := buildProductSvc()
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}
