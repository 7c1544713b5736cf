// internal/model/info.go
package model

import "database/sql"

// CampaignInfo is the joined campaign view returned by the info queries:
// the owning account's name plus the campaign columns.
type CampaignInfo struct {
	OwnerName string  `json:"owner_name"`
	Title     string  `json:"title"`
	IsActive  bool    `json:"is_active"`
	StartsAt  *string `json:"starts_at,omitempty"`
	EndsAt    *string `json:"ends_at,omitempty"`
}

// ProductInfo is the joined product view. CampaignTitle is nil for
// products not attached to any campaign.
type ProductInfo struct {
	OwnerName     string  `json:"owner_name"`
	CampaignTitle *string `json:"campaign_title,omitempty"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Price         int     `json:"price"`
}

// AccountProfile is the folded account-info result: the account's own
// contact columns plus every campaign and product in its scope.
type AccountProfile struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Campaigns []CampaignInfo `json:"campaigns"`
	Products  []ProductInfo  `json:"products"`
}

// AccountInfoRow is one flat row of the account-info join before folding.
// The campaign and product fragments are nullable because both sides are
// outer-joined against the account row.
type AccountInfoRow struct {
	AccountName string
	Email       string
	Phone       string

	CampaignOwner  sql.NullString
	CampaignTitle  sql.NullString
	CampaignActive sql.NullBool
	StartsAt       sql.NullString
	EndsAt         sql.NullString

	ProductOwner       sql.NullString
	ProductName        sql.NullString
	ProductDescription sql.NullString
	ProductPrice       sql.NullInt64
}
