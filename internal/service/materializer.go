// internal/service/materializer.go
package service

import (
	"database/sql"

	"github.com/unclebandit/pricepeek-backend/internal/model"
)

// The join behind the account-info view repeats campaign and product
// fragments across rows (owned campaigns × owned products). Fragments are
// deduplicated by value, not by row identity: two rows carrying the same
// logical campaign must collapse to one entry.

type campaignKey struct {
	owner    string
	title    string
	startsAt string
	endsAt   string
}

type productKey struct {
	owner       string
	name        string
	description string
	price       int
}

type profileAccumulator struct {
	profile   *model.AccountProfile
	campaigns map[campaignKey]bool
	products  map[productKey]bool
}

// FoldAccountRows folds ordered flat join rows into one AccountProfile.
// Collections keep first-seen order. Rows whose campaign or product
// fragment is null or has an empty title/name contribute nothing for that
// fragment; the account columns of the first group are what the profile
// reports. Returns nil when there are no rows at all.
func FoldAccountRows(rows []model.AccountInfoRow) *model.AccountProfile {
	accs := map[string]*profileAccumulator{}
	order := []string{}

	for _, row := range rows {
		acc, ok := accs[row.AccountName]
		if !ok {
			acc = &profileAccumulator{
				profile: &model.AccountProfile{
					Name:      row.AccountName,
					Email:     row.Email,
					Phone:     row.Phone,
					Campaigns: []model.CampaignInfo{},
					Products:  []model.ProductInfo{},
				},
				campaigns: map[campaignKey]bool{},
				products:  map[productKey]bool{},
			}
			accs[row.AccountName] = acc
			order = append(order, row.AccountName)
		}

		acc.addCampaign(row)
		acc.addProduct(row)
	}

	if len(order) == 0 {
		return nil
	}
	return accs[order[0]].profile
}

func (a *profileAccumulator) addCampaign(row model.AccountInfoRow) {
	if !row.CampaignTitle.Valid || row.CampaignTitle.String == "" {
		return
	}
	key := campaignKey{
		owner:    row.CampaignOwner.String,
		title:    row.CampaignTitle.String,
		startsAt: row.StartsAt.String,
		endsAt:   row.EndsAt.String,
	}
	if a.campaigns[key] {
		return
	}
	a.campaigns[key] = true

	a.profile.Campaigns = append(a.profile.Campaigns, model.CampaignInfo{
		OwnerName: row.CampaignOwner.String,
		Title:     row.CampaignTitle.String,
		IsActive:  row.CampaignActive.Bool,
		StartsAt:  nullableString(row.StartsAt),
		EndsAt:    nullableString(row.EndsAt),
	})
}

func (a *profileAccumulator) addProduct(row model.AccountInfoRow) {
	if !row.ProductName.Valid || row.ProductName.String == "" {
		return
	}
	key := productKey{
		owner:       row.ProductOwner.String,
		name:        row.ProductName.String,
		description: row.ProductDescription.String,
		price:       int(row.ProductPrice.Int64),
	}
	if a.products[key] {
		return
	}
	a.products[key] = true

	a.profile.Products = append(a.profile.Products, model.ProductInfo{
		OwnerName:   row.ProductOwner.String,
		Name:        row.ProductName.String,
		Description: nullableString(row.ProductDescription),
		Price:       int(row.ProductPrice.Int64),
	})
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
