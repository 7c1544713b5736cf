// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound is returned when an account id does not exist, or when
// the requesting actor itself is unknown to the access gate.
type ErrAccountNotFound struct {
	AccountID int
}

func (e *ErrAccountNotFound) Error() string {
	return fmt.Sprintf("account with ID %d not found", e.AccountID)
}

func NewAccountNotFound(id int) error {
	return &ErrAccountNotFound{AccountID: id}
}

type ErrCampaignNotFound struct {
	CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

func NewCampaignNotFound(id int) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

type ErrProductNotFound struct {
	ProductID int
}

func (e *ErrProductNotFound) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

func NewProductNotFound(id int) error {
	return &ErrProductNotFound{ProductID: id}
}

// IsNotFound reports whether err is any of the not-found kinds. Scoping that
// hides a row from an actor surfaces through here as well, so callers cannot
// tell "absent" from "not visible".
func IsNotFound(err error) bool {
	var a *ErrAccountNotFound
	var c *ErrCampaignNotFound
	var p *ErrProductNotFound
	return errors.As(err, &a) || errors.As(err, &c) || errors.As(err, &p)
}

// StoreError wraps a failure from the persistence layer. For transactional
// operations the rollback has already happened by the time one of these
// propagates.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure in %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// ErrInvariantViolation is reserved for enforcement of the product/campaign
// owner-consistency rule. Nothing raises it today.
var ErrInvariantViolation = errors.New("owner consistency invariant violated")
