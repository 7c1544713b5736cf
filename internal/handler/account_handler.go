// internal/handler/account_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/repository"
	"github.com/unclebandit/pricepeek-backend/internal/service"
)

// AccountHandler serves the folded account profile (contact columns plus
// the campaign and product collections for the actor's scope).
type AccountHandler struct {
	Repo    repository.AccountRepositoryInterface
	Service *service.AccountService
}

func (h *AccountHandler) GetAccountInfoHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	profile, err := h.Service.GetAccountInfo(id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
