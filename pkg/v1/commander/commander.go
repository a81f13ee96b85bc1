package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// Commander sends basket service commands.
type Commander struct {
	sender Sender
}

// NewCommander returns new Commander using provided sender for sending messages.
func NewCommander(sender Sender) Commander {
	return Commander{
		sender: sender,
	}
}

// SendViewBasket sends view basket command.
func (c Commander) SendViewBasket(ctx context.Context, cmd ViewBasket) error {
	return c.send(ctx, ViewBasketType, cmd)
}

// SendAddToBasket sends add to basket command.
func (c Commander) SendAddToBasket(ctx context.Context, cmd AddToBasket) error {
	return c.send(ctx, AddToBasketType, cmd)
}

// SendRemoveFromBasket sends remove from basket command.
func (c Commander) SendRemoveFromBasket(ctx context.Context, cmd RemoveFromBasket) error {
	return c.send(ctx, RemoveFromBasketType, cmd)
}

// SendClearBasket sends clear basket command.
func (c Commander) SendClearBasket(ctx context.Context, cmd ClearBasket) error {
	return c.send(ctx, ClearBasketType, cmd)
}

// SendImportPrices sends import prices command for retailer.
func (c Commander) SendImportPrices(ctx context.Context, retailerID string) error {
	return c.send(ctx, ImportPricesType, ImportPrices{RetailerID: retailerID})
}

func (c Commander) send(ctx context.Context, cmdType string, payload any) error {
	payloadMsg, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal %s payload: %w", cmdType, err)
	}

	cmdMsg, err := json.Marshal(Command{
		Type:    cmdType,
		Payload: payloadMsg,
	})
	if err != nil {
		return fmt.Errorf("can't marshal %s command: %w", cmdType, err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
