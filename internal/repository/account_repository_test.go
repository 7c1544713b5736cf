package repository_test

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/pricepeek-backend/internal/db"
	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
	"github.com/unclebandit/pricepeek-backend/internal/repository"
)

func newAccountRepo(t *testing.T) (*repository.AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return &repository.AccountRepository{Store: db.NewStore(sqlDB)}, mock
}

func TestIsAdminFlag(t *testing.T) {
	repo, mock := newAccountRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT is_admin FROM accounts WHERE id=$1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"is_admin"}).AddRow(true))

	flag, err := repo.IsAdminFlag(2)
	require.NoError(t, err)
	require.NotNil(t, flag)
	assert.True(t, *flag)
}

func TestIsAdminFlagMissingAccount(t *testing.T) {
	repo, mock := newAccountRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT is_admin FROM accounts WHERE id=$1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"is_admin"}))

	flag, err := repo.IsAdminFlag(99)
	require.NoError(t, err)
	assert.Nil(t, flag)
}

func TestDeactivateRunsCascadeInOrder(t *testing.T) {
	repo, mock := newAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE owner_id=$1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE owner_id=$1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET is_active=FALSE WHERE id=$1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Deactivate(4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateRollsBackOnFailure(t *testing.T) {
	repo, mock := newAccountRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE owner_id=$1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE owner_id=$1")).
		WithArgs(4).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Deactivate(4)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountCreateStartsActive(t *testing.T) {
	repo, mock := newAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("asli", "asli123", "asli@example.com", "+905550000001", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	a := &model.Account{Name: "asli", Secret: "asli123", Email: "asli@example.com", Phone: "+905550000001"}
	require.NoError(t, repo.Create(a))
	assert.Equal(t, 7, a.ID)
	assert.True(t, a.IsActive)
}

func TestAccountGetByIDNotFound(t *testing.T) {
	repo, mock := newAccountRepo(t)

	mock.ExpectQuery("SELECT id, name, secret").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "secret", "email", "phone", "is_admin", "is_active"}))

	_, err := repo.GetByID(99)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestAccountInfoRowsOrdinaryShape(t *testing.T) {
	repo, mock := newAccountRepo(t)

	rows := sqlmock.NewRows([]string{
		"name", "email", "phone",
		"campaign_owner", "title", "is_active", "starts_at", "ends_at",
		"product_owner", "product_name", "description", "price",
	}).
		AddRow("asli", "asli@example.com", "+905550000001",
			"asli", "Spring Sale", true, "2024-03-01", nil,
			"asli", "Kettle", "steel", 899).
		AddRow("asli", "asli@example.com", "+905550000001",
			"asli", "Spring Sale", true, "2024-03-01", nil,
			"asli", "Blender", nil, 1999)
	mock.ExpectQuery("LEFT JOIN campaigns c ON c.owner_id = a.id").
		WithArgs(1).
		WillReturnRows(rows)

	got, err := repo.InfoRows(1, false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "asli", got[0].AccountName)
	assert.Equal(t, "Spring Sale", got[0].CampaignTitle.String)
	assert.False(t, got[1].ProductDescription.Valid)
}

func TestAccountInfoRowsPrivilegedShape(t *testing.T) {
	repo, mock := newAccountRepo(t)

	rows := sqlmock.NewRows([]string{
		"name", "email", "phone",
		"campaign_owner", "title", "is_active", "starts_at", "ends_at",
		"product_owner", "product_name", "description", "price",
	}).
		AddRow("Samsung", "store@samsung.example.com", "+905550000002",
			nil, nil, nil, nil, nil,
			"Apple", "AirPods Pro", nil, 9999)
	mock.ExpectQuery("CROSS JOIN products p").
		WithArgs(2).
		WillReturnRows(rows)

	got, err := repo.InfoRows(2, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].CampaignTitle.Valid)
	assert.Equal(t, "Apple", got[0].ProductOwner.String)
	assert.Equal(t, int64(9999), got[0].ProductPrice.Int64)
}
