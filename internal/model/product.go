// internal/model/product.go
package model

type Product struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	Price       int     `db:"price" json:"price"`
	OwnerID     int     `db:"owner_id" json:"owner_id"`
	CampaignID  *int    `db:"campaign_id" json:"campaign_id,omitempty"`
}
