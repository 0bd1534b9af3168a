package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls a remote catalog.CatalogService.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// GetCard fetches the rendered card for slug.
func (c *Client) GetCard(ctx context.Context, slug string, opts ...grpc.CallOption) (map[string]interface{}, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetCardMethod, wrapperspb.String(slug), out, opts...); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

// ListCards fetches every card in the catalog.
func (c *Client) ListCards(ctx context.Context, opts ...grpc.CallOption) ([]interface{}, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListCardsMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out.AsSlice(), nil
}

// Classify returns the variant text for an ad-hoc shoe record.
func (c *Client) Classify(ctx context.Context, shoe map[string]interface{}, opts ...grpc.CallOption) (string, error) {
	in, err := structpb.NewStruct(shoe)
	if err != nil {
		return "", err
	}
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ClassifyMethod, in, out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}
