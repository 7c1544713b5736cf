package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/service"
)

func newProductService() *service.ProductService {
	accounts := newMockAccountRepo()
	campaigns := newMockCampaignRepo(accounts)
	products := newMockProductRepo(accounts, campaigns)
	return &service.ProductService{
		ProductRepo: products,
		Gate:        &service.AccessGate{Accounts: accounts},
	}
}

func TestGetProductInfoOrdinaryActor(t *testing.T) {
	svc := newProductService()

	info, err := svc.GetProductInfo(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Samsung", info.OwnerName)
	require.NotNil(t, info.CampaignTitle)
	assert.Equal(t, "X", *info.CampaignTitle)
	assert.Equal(t, 54999, info.Price)
}

func TestGetProductInfoWithoutCampaign(t *testing.T) {
	svc := newProductService()

	// Product 2 is not attached to any campaign; the title stays nil.
	info, err := svc.GetProductInfo(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Apple", info.OwnerName)
	assert.Nil(t, info.CampaignTitle)
}

func TestGetProductInfoPrivilegedScoping(t *testing.T) {
	svc := newProductService()

	// Owner sees its own product.
	info, err := svc.GetProductInfo(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "Galaxy S24", info.Name)

	// Another privileged account does not.
	_, err = svc.GetProductInfo(3, 1)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestGetProductInfoUnknownActor(t *testing.T) {
	svc := newProductService()

	_, err := svc.GetProductInfo(99, 1)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestGetProductInfoMissingProduct(t *testing.T) {
	svc := newProductService()

	_, err := svc.GetProductInfo(1, 42)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}
