// internal/controller/account_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/pricepeek-backend/internal/model"
	"github.com/unclebandit/pricepeek-backend/internal/repository"
	"github.com/unclebandit/pricepeek-backend/internal/service"
)

type AccountController struct {
	Repo    repository.AccountRepositoryInterface
	Service *service.AccountService
}

func (c *AccountController) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, accounts)
}

func (c *AccountController) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	account, err := c.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, account)
}

func (c *AccountController) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Secret  string `json:"secret"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		IsAdmin bool   `json:"is_admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	account := &model.Account{
		Name:    body.Name,
		Secret:  body.Secret,
		Email:   body.Email,
		Phone:   body.Phone,
		IsAdmin: body.IsAdmin,
	}
	if err := c.Repo.Create(account); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, account)
}

func (c *AccountController) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var body struct {
		Name   string `json:"name"`
		Secret string `json:"secret"`
		Email  string `json:"email"`
		Phone  string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	account := &model.Account{
		ID:     id,
		Name:   body.Name,
		Secret: body.Secret,
		Email:  body.Email,
		Phone:  body.Phone,
	}
	if err := c.Repo.Update(account); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"updated": id})
}

func (c *AccountController) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := c.Service.DeactivateAccount(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"deactivated": id})
}
