// internal/model/account.go
package model

type Account struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Secret   string `db:"secret" json:"secret"`
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
	IsAdmin  bool   `db:"is_admin" json:"is_admin"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
