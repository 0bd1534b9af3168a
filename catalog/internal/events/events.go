// Package events encodes catalog change notifications as flatbuffers.
package events

import (
	"errors"
	"fmt"
	"time"

	"sole_and_ankle/catalog/fbs/CatalogEvents"
	"sole_and_ankle/catalog/internal/logic"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind = CatalogEvents.EventKind

const (
	Upserted       = CatalogEvents.EventKindUpserted
	Deleted        = CatalogEvents.EventKindDeleted
	VariantChanged = CatalogEvents.EventKindVariantChanged
)

var ErrMalformed = errors.New("malformed shoe event")

// Event is a single change to a catalog shoe.
type Event struct {
	ID        string
	Slug      string
	Kind      Kind
	Variant   logic.Variant
	Price     decimal.Decimal
	SalePrice decimal.NullDecimal
	At        time.Time
}

// New stamps an event for shoe with a fresh id.
func New(kind Kind, shoe logic.Shoe, variant logic.Variant, at time.Time) Event {
	return Event{
		ID:        uuid.New().String(),
		Slug:      shoe.Slug,
		Kind:      kind,
		Variant:   variant,
		Price:     shoe.Price,
		SalePrice: shoe.SalePrice,
		At:        at,
	}
}

// Topic is the pub/sub topic frame subscribers filter on.
func (e Event) Topic() string {
	return "shoe." + e.Kind.String()
}

// Encode serializes e into a finished flatbuffer.
func Encode(e Event) []byte {
	builder := flatbuffers.NewBuilder(256)

	id := builder.CreateString(e.ID)
	slug := builder.CreateString(e.Slug)
	variant := builder.CreateString(e.Variant.String())
	price := builder.CreateString(e.Price.String())
	var sale flatbuffers.UOffsetT
	if e.SalePrice.Valid {
		sale = builder.CreateString(e.SalePrice.Decimal.String())
	}

	CatalogEvents.ShoeEventStart(builder)
	CatalogEvents.ShoeEventAddEventId(builder, id)
	CatalogEvents.ShoeEventAddSlug(builder, slug)
	CatalogEvents.ShoeEventAddKind(builder, e.Kind)
	CatalogEvents.ShoeEventAddVariant(builder, variant)
	CatalogEvents.ShoeEventAddPrice(builder, price)
	if e.SalePrice.Valid {
		CatalogEvents.ShoeEventAddSalePrice(builder, sale)
	}
	CatalogEvents.ShoeEventAddHasSale(builder, e.SalePrice.Valid)
	CatalogEvents.ShoeEventAddTimestamp(builder, e.At.UnixMilli())
	root := CatalogEvents.ShoeEventEnd(builder)

	CatalogEvents.FinishShoeEventBuffer(builder, root)
	return builder.FinishedBytes()
}

// Decode parses a payload produced by Encode.
func Decode(payload []byte) (e Event, err error) {
	if len(payload) < flatbuffers.SizeUOffsetT {
		return Event{}, ErrMalformed
	}
	// flatbuffers accessors panic on truncated buffers
	defer func() {
		if r := recover(); r != nil {
			e, err = Event{}, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	msg := CatalogEvents.GetRootAsShoeEvent(payload, 0)

	variant, err := logic.ParseVariant(string(msg.Variant()))
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	price, err := decimal.NewFromString(string(msg.Price()))
	if err != nil {
		return Event{}, fmt.Errorf("%w: price: %v", ErrMalformed, err)
	}

	e = Event{
		ID:      string(msg.EventId()),
		Slug:    string(msg.Slug()),
		Kind:    msg.Kind(),
		Variant: variant,
		Price:   price,
		At:      time.UnixMilli(msg.Timestamp()).UTC(),
	}
	if msg.HasSale() {
		sale, err := decimal.NewFromString(string(msg.SalePrice()))
		if err != nil {
			return Event{}, fmt.Errorf("%w: sale price: %v", ErrMalformed, err)
		}
		e.SalePrice = decimal.NewNullDecimal(sale)
	}
	return e, nil
}
