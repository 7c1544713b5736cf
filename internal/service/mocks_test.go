package service_test

import (
	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
)

// Fixture repositories backed by the scenario used across these tests:
// account 1 is an ordinary customer, accounts 2 and 3 are privileged
// brands, campaign 1 belongs to account 2, product 1 belongs to account 2
// inside campaign 1, product 2 belongs to account 3 with no campaign.

type mockAccountRepo struct {
	accounts    map[int]model.Account
	infoRows    map[bool][]model.AccountInfoRow
	infoErr     error
	deactivated []int
	deactErr    error
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{
		accounts: map[int]model.Account{
			1: {ID: 1, Name: "asli", Email: "asli@example.com", Phone: "+905550000001", IsAdmin: false, IsActive: true},
			2: {ID: 2, Name: "Samsung", Email: "store@samsung.example.com", Phone: "+905550000002", IsAdmin: true, IsActive: true},
			3: {ID: 3, Name: "Apple", Email: "store@apple.example.com", Phone: "+905550000003", IsAdmin: true, IsActive: true},
		},
		infoRows: map[bool][]model.AccountInfoRow{},
	}
}

func (m *mockAccountRepo) ListAll() ([]model.Account, error) {
	all := []model.Account{}
	for _, a := range m.accounts {
		all = append(all, a)
	}
	return all, nil
}

func (m *mockAccountRepo) GetByID(id int) (*model.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, appErrors.NewAccountNotFound(id)
	}
	return &a, nil
}

func (m *mockAccountRepo) Create(a *model.Account) error { a.ID = len(m.accounts) + 1; return nil }
func (m *mockAccountRepo) Update(a *model.Account) error { return nil }

func (m *mockAccountRepo) IsAdminFlag(id int) (*bool, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	isAdmin := a.IsAdmin
	return &isAdmin, nil
}

func (m *mockAccountRepo) InfoRows(actorID int, privileged bool) ([]model.AccountInfoRow, error) {
	if m.infoErr != nil {
		return nil, m.infoErr
	}
	return m.infoRows[privileged], nil
}

func (m *mockAccountRepo) Deactivate(id int) error {
	if m.deactErr != nil {
		return m.deactErr
	}
	m.deactivated = append(m.deactivated, id)
	return nil
}

type mockCampaignRepo struct {
	accounts  *mockAccountRepo
	campaigns map[int]model.Campaign
	deleted   []int
	delErr    error
}

func newMockCampaignRepo(accounts *mockAccountRepo) *mockCampaignRepo {
	starts := "2024-11-01"
	ends := "2024-11-08"
	return &mockCampaignRepo{
		accounts: accounts,
		campaigns: map[int]model.Campaign{
			1: {ID: 1, Title: "X", IsActive: true, StartsAt: &starts, EndsAt: &ends, OwnerID: 2},
		},
	}
}

func (m *mockCampaignRepo) ListAll() ([]model.Campaign, error) { return nil, nil }

func (m *mockCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return &c, nil
}

func (m *mockCampaignRepo) GetByOwner(ownerID int) ([]model.Campaign, error) { return nil, nil }
func (m *mockCampaignRepo) Create(c *model.Campaign) error                   { return nil }
func (m *mockCampaignRepo) Update(c *model.Campaign) error                   { return nil }

func (m *mockCampaignRepo) GetInfo(campaignID int, restrictOwner *int) (*model.CampaignInfo, error) {
	c, ok := m.campaigns[campaignID]
	if !ok {
		return nil, nil
	}
	if restrictOwner != nil && c.OwnerID != *restrictOwner {
		return nil, nil
	}
	owner := m.accounts.accounts[c.OwnerID]
	return &model.CampaignInfo{
		OwnerName: owner.Name,
		Title:     c.Title,
		IsActive:  c.IsActive,
		StartsAt:  c.StartsAt,
		EndsAt:    c.EndsAt,
	}, nil
}

func (m *mockCampaignRepo) Delete(id int) error {
	if m.delErr != nil {
		return m.delErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCampaignRepo) DeleteByOwner(ownerID int) error {
	if m.delErr != nil {
		return m.delErr
	}
	m.deleted = append(m.deleted, -ownerID)
	return nil
}

type mockProductRepo struct {
	accounts  *mockAccountRepo
	campaigns *mockCampaignRepo
	products  map[int]model.Product
}

func newMockProductRepo(accounts *mockAccountRepo, campaigns *mockCampaignRepo) *mockProductRepo {
	desc := "256GB, onyx black"
	campaign := 1
	return &mockProductRepo{
		accounts:  accounts,
		campaigns: campaigns,
		products: map[int]model.Product{
			1: {ID: 1, Name: "Galaxy S24", Description: &desc, Price: 54999, OwnerID: 2, CampaignID: &campaign},
			2: {ID: 2, Name: "AirPods Pro", Price: 9999, OwnerID: 3},
		},
	}
}

func (m *mockProductRepo) ListAll() ([]model.Product, error)               { return nil, nil }
func (m *mockProductRepo) GetByID(id int) (*model.Product, error)          { return nil, nil }
func (m *mockProductRepo) GetByOwner(ownerID int) ([]model.Product, error) { return nil, nil }
func (m *mockProductRepo) GetByCampaign(cID int) ([]model.Product, error)  { return nil, nil }
func (m *mockProductRepo) Create(p *model.Product) error                   { return nil }
func (m *mockProductRepo) Update(p *model.Product) error                   { return nil }
func (m *mockProductRepo) Delete(id int) error                             { return nil }
func (m *mockProductRepo) DeleteByOwner(ownerID int) error                 { return nil }
func (m *mockProductRepo) DeleteByCampaign(campaignID int) error           { return nil }

func (m *mockProductRepo) GetInfo(productID int, restrictOwner *int) (*model.ProductInfo, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, nil
	}
	if restrictOwner != nil && p.OwnerID != *restrictOwner {
		return nil, nil
	}
	owner := m.accounts.accounts[p.OwnerID]
	var campaignTitle *string
	if p.CampaignID != nil {
		if c, ok := m.campaigns.campaigns[*p.CampaignID]; ok {
			title := c.Title
			campaignTitle = &title
		}
	}
	return &model.ProductInfo{
		OwnerName:     owner.Name,
		CampaignTitle: campaignTitle,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
	}, nil
}
