package repository

import (
	"database/sql"

	"github.com/unclebandit/pricepeek-backend/internal/db"
	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	// Campaign CRUD
	ListAll() ([]model.Campaign, error)
	GetByID(id int) (*model.Campaign, error)
	GetByOwner(ownerID int) ([]model.Campaign, error)
	Create(c *model.Campaign) error
	Update(c *model.Campaign) error

	// Info aggregation. restrictOwner narrows the join to campaigns owned
	// by that account; nil means unrestricted. Returns nil when no row
	// survives the filter.
	GetInfo(campaignID int, restrictOwner *int) (*model.CampaignInfo, error)

	// Cascading deletes: referencing products are detached inside the
	// same transaction as the delete.
	Delete(id int) error
	DeleteByOwner(ownerID int) error
}

type CampaignRepository struct {
	Store db.Store
}

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) ListAll() ([]model.Campaign, error) {
	query := `
        SELECT id, title, is_active, starts_at, ends_at, owner_id
        FROM campaigns
    `
	rows, err := r.Store.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCampaigns(rows)
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	query := `
        SELECT id, title, is_active, starts_at, ends_at, owner_id
        FROM campaigns WHERE id=$1
    `
	var c model.Campaign
	err := r.Store.QueryRow(query, id).Scan(&c.ID, &c.Title, &c.IsActive, &c.StartsAt, &c.EndsAt, &c.OwnerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) GetByOwner(ownerID int) ([]model.Campaign, error) {
	query := `
        SELECT id, title, is_active, starts_at, ends_at, owner_id
        FROM campaigns WHERE owner_id=$1
    `
	rows, err := r.Store.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCampaigns(rows)
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	query := `
        INSERT INTO campaigns (title, is_active, starts_at, ends_at, owner_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.Store.QueryRow(query, c.Title, c.IsActive, c.StartsAt, c.EndsAt, c.OwnerID).Scan(&c.ID)
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	// Title and owner are fixed at creation.
	query := `
        UPDATE campaigns
        SET is_active=$1, starts_at=$2, ends_at=$3
        WHERE id=$4
    `
	_, err := r.Store.Exec(query, c.IsActive, c.StartsAt, c.EndsAt, c.ID)
	return err
}

// ====================== Info aggregation ======================

func (r *CampaignRepository) GetInfo(campaignID int, restrictOwner *int) (*model.CampaignInfo, error) {
	query := `
        SELECT a.name, c.title, c.is_active, c.starts_at, c.ends_at
        FROM accounts a
        LEFT JOIN campaigns c ON a.id = c.owner_id
        WHERE c.id = $1
    `
	args := []any{campaignID}
	if restrictOwner != nil {
		query += ` AND a.id = $2`
		args = append(args, *restrictOwner)
	}

	var info model.CampaignInfo
	err := r.Store.QueryRow(query, args...).Scan(&info.OwnerName, &info.Title, &info.IsActive, &info.StartsAt, &info.EndsAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// ====================== Cascading deletes ======================

func (r *CampaignRepository) Delete(id int) error {
	return r.Store.WithinTx([]db.Statement{
		{Query: `UPDATE products SET campaign_id=NULL WHERE campaign_id=$1`, Args: []any{id}},
		{Query: `DELETE FROM campaigns WHERE id=$1`, Args: []any{id}},
	})
}

func (r *CampaignRepository) DeleteByOwner(ownerID int) error {
	return r.Store.WithinTx([]db.Statement{
		{Query: `UPDATE products SET campaign_id=NULL WHERE owner_id=$1`, Args: []any{ownerID}},
		{Query: `DELETE FROM campaigns WHERE owner_id=$1`, Args: []any{ownerID}},
	})
}

func scanCampaigns(rows *sql.Rows) ([]model.Campaign, error) {
	campaigns := []model.Campaign{}
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.IsActive, &c.StartsAt, &c.EndsAt, &c.OwnerID); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
