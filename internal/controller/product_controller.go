// internal/controller/product_controller.go
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

type ProductController struct {
	Repo    repository.ProductRepositoryInterface
	Service *service.ProductService
}

func (c *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, products)
}

func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	product, err := c.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, product)
}

func (c *ProductController) GetAccountProducts(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	products, err := c.Repo.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, products)
}

func (c *ProductController) GetCampaignProducts(w http.ResponseWriter, r *http.Request) {
	campaignID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	products, err := c.Repo.GetByCampaign(campaignID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, products)
}

func (c *ProductController) GetProductInfo(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	actorID, _ := strconv.Atoi(r.URL.Query().Get("actor_id"))

	info, err := c.Service.GetProductInfo(actorID, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, info)
}

func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Price       int     `json:"price"`
		OwnerID     int     `json:"owner_id"`
		CampaignID  *int    `json:"campaign_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	product := &model.Product{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		OwnerID:     body.OwnerID,
		CampaignID:  body.CampaignID,
	}
	if err := c.Repo.Create(product); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, product)
}

func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var body struct {
		Description *string `json:"description"`
		Price       int     `json:"price"`
		CampaignID  *int    `json:"campaign_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	product := &model.Product{
		ID:          id,
		Description: body.Description,
		Price:       body.Price,
		CampaignID:  body.CampaignID,
	}
	if err := c.Repo.Update(product); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"updated": id})
}

func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := c.Repo.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"deleted": id})
}

func (c *ProductController) DeleteAccountProducts(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := c.Repo.DeleteByOwner(ownerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"deleted_for_account": ownerID})
}

func (c *ProductController) DeleteCampaignProducts(w http.ResponseWriter, r *http.Request) {
	campaignID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := c.Repo.DeleteByCampaign(campaignID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"deleted_for_campaign": campaignID})
}
