// internal/service/campaign_service.go
package service

import (
	"log"

	appErrors "github.com/unclebandit/pricepeek-backend/internal/errors"
	"github.com/unclebandit/pricepeek-backend/internal/model"
	"github.com/unclebandit/pricepeek-backend/internal/queue"
	"github.com/unclebandit/pricepeek-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	Gate         *AccessGate
	Events       queue.Queue
}

// GetCampaignInfo returns the joined campaign view for one campaign,
// scoped by the actor's privilege. Unknown actors and campaigns outside
// the actor's scope both come back as not-found.
func (s *CampaignService) GetCampaignInfo(actorID, campaignID int) (*model.CampaignInfo, error) {
	priv, err := s.Gate.Resolve(actorID)
	if err != nil {
		return nil, appErrors.NewStoreError("resolve privilege", err)
	}
	if priv == PrivilegeUnknown {
		return nil, appErrors.NewAccountNotFound(actorID)
	}

	info, err := s.CampaignRepo.GetInfo(campaignID, OwnerScope(priv, actorID))
	if err != nil {
		return nil, appErrors.NewStoreError("campaign info", err)
	}
	if info == nil {
		return nil, appErrors.NewCampaignNotFound(campaignID)
	}
	return info, nil
}

// DeleteCampaign detaches referencing products and removes the campaign
// row as one transaction.
func (s *CampaignService) DeleteCampaign(campaignID int) error {
	if err := s.CampaignRepo.Delete(campaignID); err != nil {
		return appErrors.NewStoreError("delete campaign", err)
	}
	s.publish("campaign.deleted", campaignID)
	return nil
}

// DeleteCampaignsForAccount is the same cascade scoped by owner.
func (s *CampaignService) DeleteCampaignsForAccount(accountID int) error {
	if err := s.CampaignRepo.DeleteByOwner(accountID); err != nil {
		return appErrors.NewStoreError("delete account campaigns", err)
	}
	s.publish("campaign.owner_purged", accountID)
	return nil
}

func (s *CampaignService) publish(kind string, entityID int) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(queue.EntityEventsTopic, queue.NewEntityEvent(kind, entityID)); err != nil {
		log.Println("⚠️ failed to publish", kind, "event:", err)
	}
}
