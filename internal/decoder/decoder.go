// Package decoder decodes retailer price feeds in Google Shopping format.
package decoder

import (
	"context"
	"encoding/xml"
	"errors"
	"html"
	"io"

	"github.com/MichalMitros/basket-service/internal/platform/models"
)

// Decoder decodes xml feeds into offers.
type Decoder struct{}

// Decode decodes offers from xmlFile and sends each offer with its decoding error into output channel.
// It returns error when feed is not a well-formed xml.
func (d Decoder) Decode(ctx context.Context, xmlFile io.Reader, output chan<- models.ParsingResult) error {
	dec := xml.NewDecoder(xmlFile)
	dec.Strict = true

	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != "item" {
			continue
		}

		var item Item
		var offer *models.Offer

		err = dec.DecodeElement(&item, &element)
		if err == nil {
			item.Title = html.UnescapeString(item.Title)
			offer, err = toAppOffer(&item)
		}

		if offer == nil {
			offer = &models.Offer{OfferID: item.ID, GTIN: item.GTIN}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case output <- models.ParsingResult{
			Offer: *offer,
			Error: err,
		}:
		}
	}
}
