// internal/model/campaign.go
package model

type Campaign struct {
	ID       int     `db:"id" json:"id"`
	Title    string  `db:"title" json:"title"`
	IsActive bool    `db:"is_active" json:"is_active"`
	StartsAt *string `db:"starts_at" json:"starts_at,omitempty"`
	EndsAt   *string `db:"ends_at" json:"ends_at,omitempty"`
	OwnerID  int     `db:"owner_id" json:"owner_id"`
}
