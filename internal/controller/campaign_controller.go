// internal/controller/campaign_controller.go
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

type CampaignController struct {
	Repo    repository.CampaignRepositoryInterface
	Service *service.CampaignService
}

func (c *CampaignController) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := c.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, campaigns)
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	campaign, err := c.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, campaign)
}

func (c *CampaignController) GetAccountCampaigns(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	campaigns, err := c.Repo.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, campaigns)
}

// GetCampaignInfo serves the role-gated joined view. The acting account
// comes from the actor_id query parameter; there is no authentication in
// front of this (a long-standing gap, kept as is).
func (c *CampaignController) GetCampaignInfo(w http.ResponseWriter, r *http.Request) {
	campaignID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	actorID, _ := strconv.Atoi(r.URL.Query().Get("actor_id"))

	info, err := c.Service.GetCampaignInfo(actorID, campaignID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, info)
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title    string  `json:"title"`
		IsActive bool    `json:"is_active"`
		StartsAt *string `json:"starts_at"`
		EndsAt   *string `json:"ends_at"`
		OwnerID  int     `json:"owner_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign := &model.Campaign{
		Title:    body.Title,
		IsActive: body.IsActive,
		StartsAt: body.StartsAt,
		EndsAt:   body.EndsAt,
		OwnerID:  body.OwnerID,
	}
	if err := c.Repo.Create(campaign); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, campaign)
}

func (c *CampaignController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var body struct {
		IsActive bool    `json:"is_active"`
		StartsAt *string `json:"starts_at"`
		EndsAt   *string `json:"ends_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign := &model.Campaign{
		ID:       id,
		IsActive: body.IsActive,
		StartsAt: body.StartsAt,
		EndsAt:   body.EndsAt,
	}
	if err := c.Repo.Update(campaign); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"updated": id})
}

func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := c.Service.DeleteCampaign(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"deleted": id})
}

func (c *CampaignController) DeleteAccountCampaigns(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := c.Service.DeleteCampaignsForAccount(ownerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"deleted_for_account": ownerID})
}
