// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/pricepeek-backend/internal/controller"
	"github.com/unclebandit/pricepeek-backend/internal/db"
	"github.com/unclebandit/pricepeek-backend/internal/handler"
	"github.com/unclebandit/pricepeek-backend/internal/queue"
	"github.com/unclebandit/pricepeek-backend/internal/repository"
	"github.com/unclebandit/pricepeek-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()
	store := db.NewStore(db.DB)

	accountRepo := &repository.AccountRepository{Store: store}
	campaignRepo := &repository.CampaignRepository{Store: store}
	productRepo := &repository.ProductRepository{Store: store}

	// Entity mutation events go to RabbitMQ when a broker is configured,
	// otherwise to the in-process audit subscriber.
	var events queue.Queue
	if url := os.Getenv("AMQP_URL"); url != "" {
		events = &queue.AMQPQueue{URL: url}
		log.Println("📨 Publishing entity events to RabbitMQ")
	} else {
		q := queue.NewInMemoryQueue()
		queue.StartAuditSubscriber(q)
		events = q
	}

	gate := &service.AccessGate{Accounts: accountRepo}

	accountService := &service.AccountService{
		AccountRepo: accountRepo,
		Gate:        gate,
		Events:      events,
	}
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		Gate:         gate,
		Events:       events,
	}
	productService := &service.ProductService{
		ProductRepo: productRepo,
		Gate:        gate,
	}

	accountController := &controller.AccountController{Repo: accountRepo, Service: accountService}
	campaignController := &controller.CampaignController{Repo: campaignRepo, Service: campaignService}
	productController := &controller.ProductController{Repo: productRepo, Service: productService}

	accountHandler := &handler.AccountHandler{
		Repo:    accountRepo,
		Service: accountService,
	}

	r := chi.NewRouter()

	// Account routes
	r.Get("/accounts", accountController.GetAccounts)
	r.Post("/accounts", accountController.CreateAccount)
	r.Get("/accounts/{id}", accountController.GetAccount)
	r.Put("/accounts/{id}", accountController.UpdateAccount)
	r.Get("/accounts/{id}/info", accountHandler.GetAccountInfoHandler)
	r.Post("/accounts/{id}/deactivate", accountController.DeactivateAccount)
	r.Get("/accounts/{id}/campaigns", campaignController.GetAccountCampaigns)
	r.Delete("/accounts/{id}/campaigns", campaignController.DeleteAccountCampaigns)
	r.Get("/accounts/{id}/products", productController.GetAccountProducts)
	r.Delete("/accounts/{id}/products", productController.DeleteAccountProducts)

	// Campaign routes
	r.Get("/campaigns", campaignController.GetCampaigns)
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns/{id}", campaignController.GetCampaign)
	r.Put("/campaigns/{id}", campaignController.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)
	r.Get("/campaigns/{id}/info", campaignController.GetCampaignInfo)
	r.Get("/campaigns/{id}/products", productController.GetCampaignProducts)
	r.Delete("/campaigns/{id}/products", productController.DeleteCampaignProducts)

	// Product routes
	r.Get("/products", productController.GetProducts)
	r.Post("/products", productController.CreateProduct)
	r.Get("/products/{id}", productController.GetProduct)
	r.Put("/products/{id}", productController.UpdateProduct)
	r.Delete("/products/{id}", productController.DeleteProduct)
	r.Get("/products/{id}/info", productController.GetProductInfo)

	log.Println("🚀 Server running on :8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
