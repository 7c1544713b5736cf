package repository

import (
	"database/sql"

	"github.com/unclebandit/pricepeek-backend/internal/db"
	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
)

type ProductRepositoryInterface interface {
	// Product CRUD
	ListAll() ([]model.Product, error)
	GetByID(id int) (*model.Product, error)
	GetByOwner(ownerID int) ([]model.Product, error)
	GetByCampaign(campaignID int) ([]model.Product, error)
	Create(p *model.Product) error
	Update(p *model.Product) error
	Delete(id int) error

	// Info aggregation, same restrictOwner contract as the campaign repo.
	GetInfo(productID int, restrictOwner *int) (*model.ProductInfo, error)

	// Bulk deletes used by the account deactivation cascade's plain paths.
	DeleteByOwner(ownerID int) error
	DeleteByCampaign(campaignID int) error
}

type ProductRepository struct {
	Store db.Store
}

// ====================== Product CRUD ======================

func (r *ProductRepository) ListAll() ([]model.Product, error) {
	query := `
        SELECT id, name, description, price, owner_id, campaign_id
        FROM products
    `
	rows, err := r.Store.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) GetByID(id int) (*model.Product, error) {
	query := `
        SELECT id, name, description, price, owner_id, campaign_id
        FROM products WHERE id=$1
    `
	var p model.Product
	err := r.Store.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OwnerID, &p.CampaignID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewProductNotFound(id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetByOwner(ownerID int) ([]model.Product, error) {
	query := `
        SELECT id, name, description, price, owner_id, campaign_id
        FROM products WHERE owner_id=$1
    `
	rows, err := r.Store.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) GetByCampaign(campaignID int) ([]model.Product, error) {
	query := `
        SELECT id, name, description, price, owner_id, campaign_id
        FROM products WHERE campaign_id=$1
    `
	rows, err := r.Store.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) Create(p *model.Product) error {
	query := `
        INSERT INTO products (name, description, price, owner_id, campaign_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.Store.QueryRow(query, p.Name, p.Description, p.Price, p.OwnerID, p.CampaignID).Scan(&p.ID)
}

func (r *ProductRepository) Update(p *model.Product) error {
	// Name and owner are fixed at creation.
	query := `
        UPDATE products
        SET description=$1, price=$2, campaign_id=$3
        WHERE id=$4
    `
	_, err := r.Store.Exec(query, p.Description, p.Price, p.CampaignID, p.ID)
	return err
}

func (r *ProductRepository) Delete(id int) error {
	_, err := r.Store.Exec(`DELETE FROM products WHERE id=$1`, id)
	return err
}

// ====================== Info aggregation ======================

func (r *ProductRepository) GetInfo(productID int, restrictOwner *int) (*model.ProductInfo, error) {
	// The campaign side stays outer-joined: a product with no campaign
	// still has info, with a null campaign title.
	query := `
        SELECT a.name, c.title, p.name, p.description, p.price
        FROM products p
        JOIN accounts a ON a.id = p.owner_id
        LEFT JOIN campaigns c ON c.id = p.campaign_id
        WHERE p.id = $1
    `
	args := []any{productID}
	if restrictOwner != nil {
		query += ` AND a.id = $2`
		args = append(args, *restrictOwner)
	}

	var info model.ProductInfo
	err := r.Store.QueryRow(query, args...).Scan(&info.OwnerName, &info.CampaignTitle, &info.Name, &info.Description, &info.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// ====================== Bulk deletes ======================

func (r *ProductRepository) DeleteByOwner(ownerID int) error {
	_, err := r.Store.Exec(`DELETE FROM products WHERE owner_id=$1`, ownerID)
	return err
}

func (r *ProductRepository) DeleteByCampaign(campaignID int) error {
	_, err := r.Store.Exec(`DELETE FROM products WHERE campaign_id=$1`, campaignID)
	return err
}

func scanProducts(rows *sql.Rows) ([]model.Product, error) {
	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OwnerID, &p.CampaignID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
