package commander_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MichalMitros/basket-service/pkg/v1/commander"
	"github.com/MichalMitros/basket-service/pkg/v1/commander/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendCommand(t *testing.T) {
	userID := faker.UUIDHyphenated()
	productID := faker.UUIDHyphenated()
	retailerID := faker.UUIDHyphenated()

	tests := map[string]struct {
		send func(c commander.Commander) error
		body string
	}{
		"view basket": {
			send: func(c commander.Commander) error {
				return c.SendViewBasket(context.TODO(), commander.ViewBasket{UserID: userID, Page: lo.ToPtr(2)})
			},
			body: fmt.Sprintf(`{"type":"view_basket","payload":{"user_id":"%s","page":2}}`, userID),
		},
		"view basket with retailer": {
			send: func(c commander.Commander) error {
				return c.SendViewBasket(context.TODO(), commander.ViewBasket{UserID: userID, RetailerID: retailerID})
			},
			body: fmt.Sprintf(`{"type":"view_basket","payload":{"user_id":"%s","retailer_id":"%s"}}`, userID, retailerID),
		},
		"add to basket": {
			send: func(c commander.Commander) error {
				return c.SendAddToBasket(context.TODO(), commander.AddToBasket{
					UserID:    userID,
					ProductID: productID,
					Quantity:  lo.ToPtr(int32(3)),
				})
			},
			body: fmt.Sprintf(
				`{"type":"add_to_basket","payload":{"user_id":"%s","product_id":"%s","quantity":3}}`,
				userID,
				productID,
			),
		},
		"remove from basket": {
			send: func(c commander.Commander) error {
				return c.SendRemoveFromBasket(context.TODO(), commander.RemoveFromBasket{UserID: userID, ProductID: productID})
			},
			body: fmt.Sprintf(
				`{"type":"remove_from_basket","payload":{"user_id":"%s","product_id":"%s"}}`,
				userID,
				productID,
			),
		},
		"clear basket": {
			send: func(c commander.Commander) error {
				return c.SendClearBasket(context.TODO(), commander.ClearBasket{UserID: userID})
			},
			body: fmt.Sprintf(`{"type":"clear_basket","payload":{"user_id":"%s"}}`, userID),
		},
		"import prices": {
			send: func(c commander.Commander) error {
				return c.SendImportPrices(context.TODO(), retailerID)
			},
			body: fmt.Sprintf(`{"type":"import_prices","payload":{"retailer_id":"%s"}}`, retailerID),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, []byte(tt.body)).Return(nil)

			err := tt.send(commander.NewCommander(sender))

			require.NoError(t, err, "shouldn't return any error")
		})
	}
}

func TestUnitSendCommandSenderError(t *testing.T) {
	sender := mocks.NewSender(t)
	sender.On("Send", mock.Anything, mock.Anything).Return(assert.AnError)

	cmndr := commander.NewCommander(sender)
	err := cmndr.SendClearBasket(context.TODO(), commander.ClearBasket{UserID: faker.UUIDHyphenated()})

	require.ErrorIs(t, err, assert.AnError, "should return sender error")
}
