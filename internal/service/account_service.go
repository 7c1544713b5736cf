// internal/service/account_service.go
package service

import (
	"log"

	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
	"github.com/unclebandit/pricepeek-backend/internal/queue"
	"github.com/unclebandit/pricepeek-backend/internal/repository"
)

type AccountService struct {
	AccountRepo repository.AccountRepositoryInterface
	Gate        *AccessGate
	Events      queue.Queue
}

// GetAccountInfo returns the actor's profile with every campaign and
// product in its scope. Ordinary accounts get a self-service summary of
// what they own; privileged accounts get the system-wide view with each
// fragment annotated by its owning account. The two scopes are different
// join shapes, not the same query with a narrower filter.
func (s *AccountService) GetAccountInfo(actorID int) (*model.AccountProfile, error) {
	priv, err := s.Gate.Resolve(actorID)
	if err != nil {
		return nil, appErrors.NewStoreError("resolve privilege", err)
	}
	if priv == PrivilegeUnknown {
		return nil, appErrors.NewAccountNotFound(actorID)
	}

	rows, err := s.AccountRepo.InfoRows(actorID, priv == PrivilegePrivileged)
	if err != nil {
		return nil, appErrors.NewStoreError("account info", err)
	}

	profile := FoldAccountRows(rows)
	if profile == nil {
		// The privileged join is product-driven, so an empty products
		// table yields zero rows even though the actor exists. Fall back
		// to the bare profile.
		account, err := s.AccountRepo.GetByID(actorID)
		if err != nil {
			return nil, err
		}
		profile = &model.AccountProfile{
			Name:      account.Name,
			Email:     account.Email,
			Phone:     account.Phone,
			Campaigns: []model.CampaignInfo{},
			Products:  []model.ProductInfo{},
		}
	}
	return profile, nil
}

// DeactivateAccount deletes everything the account owns and flips its
// active flag, all inside one transaction.
func (s *AccountService) DeactivateAccount(accountID int) error {
	if err := s.AccountRepo.Deactivate(accountID); err != nil {
		return appErrors.NewStoreError("deactivate account", err)
	}
	s.publish("account.deactivated", accountID)
	return nil
}

func (s *AccountService) publish(kind string, entityID int) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(queue.EntityEventsTopic, queue.NewEntityEvent(kind, entityID)); err != nil {
		log.Println("⚠️ failed to publish", kind, "event:", err)
	}
}
