package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"sole_and_ankle/catalog/internal/card"
	"sole_and_ankle/catalog/internal/logic"
	"sole_and_ankle/catalog/internal/rpc"
	"sole_and_ankle/catalog/internal/store"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type CatalogServer struct {
	rpc.UnimplementedCatalogServiceServer
	catalog *Catalog
}

// NewCatalogServer constructs the catalog gRPC handler.
func NewCatalogServer(c *Catalog) *CatalogServer {
	return &CatalogServer{catalog: c}
}

// GetCard returns the card for a slug as a Struct.
func (s *CatalogServer) GetCard(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	log.Printf("[catalog-grpc] GetCard called slug=%s", req.GetValue())
	cd, err := s.catalog.Card(ctx, req.GetValue())
	if errors.Is(err, store.ErrShoeNotFound) {
		return nil, status.Errorf(codes.NotFound, "shoe %s not found", req.GetValue())
	} else if err != nil {
		log.Printf("[catalog-grpc] GetCard failed slug=%s err=%v", req.GetValue(), err)
		return nil, status.Errorf(codes.Internal, "failed to load card: %v", err)
	}
	return cardStruct(cd)
}

// ListCards returns every card in release order.
func (s *CatalogServer) ListCards(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	cards, err := s.catalog.Cards(ctx)
	if err != nil {
		log.Printf("[catalog-grpc] ListCards failed err=%v", err)
		return nil, status.Errorf(codes.Internal, "failed to list cards: %v", err)
	}

	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(cards))}
	for _, cd := range cards {
		st, err := cardStruct(cd)
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(st))
	}
	log.Printf("[catalog-grpc] ListCards complete count=%d", len(cards))
	return list, nil
}

// Classify returns the variant text of an ad-hoc shoe record.
func (s *CatalogServer) Classify(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	raw, err := req.MarshalJSON()
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad shoe: %v", err)
	}
	var shoe logic.Shoe
	if err := json.Unmarshal(raw, &shoe); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad shoe: %v", err)
	}
	if shoe.Slug == "" {
		shoe.Slug = "preview"
	}

	cd, err := s.catalog.Preview(shoe)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return wrapperspb.String(cd.Variant.String()), nil
}

func cardStruct(cd card.Card) (*structpb.Struct, error) {
	raw, err := json.Marshal(cd)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode card: %v", err)
	}
	st := &structpb.Struct{}
	if err := st.UnmarshalJSON(raw); err != nil {
		return nil, status.Errorf(codes.Internal, "encode card: %v", err)
	}
	return st, nil
}
