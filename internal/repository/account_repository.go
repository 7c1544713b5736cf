package repository

import (
	"database/sql"

	"github.com/unclebandit/pricepeek-backend/internal/db"
	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
)

type AccountRepositoryInterface interface {
	// Account CRUD
	ListAll() ([]model.Account, error)
	GetByID(id int) (*model.Account, error)
	Create(a *model.Account) error
	Update(a *model.Account) error

	// Privilege lookup. Returns nil when no such account exists.
	IsAdminFlag(id int) (*bool, error)

	// Info aggregation rows, one query shape per privilege level.
	InfoRows(actorID int, privileged bool) ([]model.AccountInfoRow, error)

	// Deactivate removes everything the account owns, then flips the
	// active flag, as one transaction.
	Deactivate(id int) error
}

type AccountRepository struct {
	Store db.Store
}

// ====================== Account CRUD ======================

func (r *AccountRepository) ListAll() ([]model.Account, error) {
	query := `
        SELECT id, name, secret, email, phone, is_admin, is_active
        FROM accounts
    `
	rows, err := r.Store.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Secret, &a.Email, &a.Phone, &a.IsAdmin, &a.IsActive); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) GetByID(id int) (*model.Account, error) {
	query := `
        SELECT id, name, secret, email, phone, is_admin, is_active
        FROM accounts WHERE id=$1
    `
	var a model.Account
	err := r.Store.QueryRow(query, id).Scan(&a.ID, &a.Name, &a.Secret, &a.Email, &a.Phone, &a.IsAdmin, &a.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewAccountNotFound(id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) Create(a *model.Account) error {
	// New accounts always start active.
	a.IsActive = true
	query := `
        INSERT INTO accounts (name, secret, email, phone, is_admin, is_active)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        RETURNING id
    `
	return r.Store.QueryRow(query, a.Name, a.Secret, a.Email, a.Phone, a.IsAdmin).Scan(&a.ID)
}

func (r *AccountRepository) Update(a *model.Account) error {
	// The admin flag is not updatable through this path.
	query := `
        UPDATE accounts
        SET name=$1, secret=$2, email=$3, phone=$4
        WHERE id=$5
    `
	_, err := r.Store.Exec(query, a.Name, a.Secret, a.Email, a.Phone, a.ID)
	return err
}

// ====================== Privilege lookup ======================

func (r *AccountRepository) IsAdminFlag(id int) (*bool, error) {
	var isAdmin bool
	err := r.Store.QueryRow(`SELECT is_admin FROM accounts WHERE id=$1`, id).Scan(&isAdmin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &isAdmin, nil
}

// ====================== Info aggregation ======================

// InfoRows returns the flat account/campaign/product join for one actor.
// An ordinary account sees its own campaigns and products; a privileged
// account gets the system-wide view, product-driven, with every fragment
// annotated with its owning account. The join repeats fragments across
// rows; the materializer deduplicates them.
func (r *AccountRepository) InfoRows(actorID int, privileged bool) ([]model.AccountInfoRow, error) {
	var query string
	if privileged {
		query = `
        SELECT a.name, a.email, a.phone,
               cowner.name, c.title, c.is_active, c.starts_at, c.ends_at,
               owner.name, p.name, p.description, p.price
        FROM accounts a
        CROSS JOIN products p
        JOIN accounts owner ON owner.id = p.owner_id
        LEFT JOIN campaigns c ON c.id = p.campaign_id
        LEFT JOIN accounts cowner ON cowner.id = c.owner_id
        WHERE a.id = $1
        ORDER BY p.id
    `
	} else {
		query = `
        SELECT a.name, a.email, a.phone,
               a.name, c.title, c.is_active, c.starts_at, c.ends_at,
               a.name, p.name, p.description, p.price
        FROM accounts a
        LEFT JOIN campaigns c ON c.owner_id = a.id
        LEFT JOIN products p ON p.owner_id = a.id
        WHERE a.id = $1
        ORDER BY c.id, p.id
    `
	}

	rows, err := r.Store.Query(query, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.AccountInfoRow{}
	for rows.Next() {
		var row model.AccountInfoRow
		if err := rows.Scan(
			&row.AccountName, &row.Email, &row.Phone,
			&row.CampaignOwner, &row.CampaignTitle, &row.CampaignActive, &row.StartsAt, &row.EndsAt,
			&row.ProductOwner, &row.ProductName, &row.ProductDescription, &row.ProductPrice,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ====================== Deactivation ======================

func (r *AccountRepository) Deactivate(id int) error {
	return r.Store.WithinTx([]db.Statement{
		{Query: `DELETE FROM products WHERE owner_id=$1`, Args: []any{id}},
		{Query: `DELETE FROM campaigns WHERE owner_id=$1`, Args: []any{id}},
		{Query: `UPDATE accounts SET is_active=FALSE WHERE id=$1`, Args: []any{id}},
	})
}

var _ AccountRepositoryInterface = (*AccountRepository)(nil)
