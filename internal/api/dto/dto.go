package dto

import (
	"errors"

	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/coin"
)

type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r *UserRequest) IsValid() error {
	var invalidLoginErr error
	if r.Login == "" {
		invalidLoginErr = errors.New("login is empty")
	}

	const minEntropyBits = 50
	invalidPasswordErr := passwordvalidator.Validate(r.Password, minEntropyBits)
	return errors.Join(invalidLoginErr, invalidPasswordErr)
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
	Earned  int64 `json:"earned"`
	Spent   int64 `json:"spent"`
	Expired int64 `json:"expired"`
}

type EarningResponse struct {
	Event   *coin.Event `json:"event,omitempty"`
	Granted bool        `json:"granted"`
}

type CheckinRequest struct {
	Day    int   `json:"day"`
	Reward int64 `json:"reward"`
}

type CollectionPointRequest struct {
	ID string `json:"id"`
}

const (
	OperationRedeem = "redeem"
	OperationRevert = "revert"
)

type RedeemRequest struct {
	Operation string `json:"operation"`
	Points    int64  `json:"points"`
}

func (r *RedeemRequest) IsValid() error {
	switch r.Operation {
	case OperationRedeem:
		if r.Points < 0 {
			return errors.New("points must not be negative")
		}
		return nil
	case OperationRevert:
		return nil
	default:
		return errors.New("operation must be redeem or revert")
	}
}

type RedemptionResponse struct {
	Discount model.Amount `json:"discount"`
	Points   int64        `json:"points"`
}

type LimitResponse struct {
	Points int64 `json:"points"`
}

type GameSpendRequest struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

type GameSpendResponse struct {
	Drains []coin.Drain `json:"drains"`
	Spent  int64        `json:"spent"`
}

type CheckoutRequest struct {
	OrderID  string       `json:"order"`
	Subtotal model.Amount `json:"subtotal"`
}

type CheckoutResponse struct {
	OrderID  string       `json:"order"`
	Discount model.Amount `json:"discount"`
	Redeemed int64        `json:"redeemed"`
	Earned   int64        `json:"earned"`
}
