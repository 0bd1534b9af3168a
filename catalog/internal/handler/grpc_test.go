package handler

import (
	"context"
	"net"
	"testing"

	"sole_and_ankle/catalog/internal/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newRPCClient(t *testing.T) *rpc.Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	rpc.RegisterCatalogServiceServer(srv, NewCatalogServer(newFixture(t).catalog))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return rpc.NewClient(conn)
}

func TestGRPCGetCard(t *testing.T) {
	client := newRPCClient(t)
	ctx := context.Background()

	cd, err := client.GetCard(ctx, "lebron")
	require.NoError(t, err)
	assert.Equal(t, "on-sale", cd["variant"])
	assert.Equal(t, "$110.00", cd["salePrice"])

	_, err = client.GetCard(ctx, "missing")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGRPCListCards(t *testing.T) {
	cards, err := newRPCClient(t).ListCards(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestGRPCClassify(t *testing.T) {
	client := newRPCClient(t)
	ctx := context.Background()

	v, err := client.Classify(ctx, map[string]interface{}{
		"price":       150,
		"salePrice":   110,
		"releaseDate": "2024-10-19T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "on-sale", v)

	v, err = client.Classify(ctx, map[string]interface{}{
		"price":       150,
		"releaseDate": "2020-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "default", v)

	_, err = client.Classify(ctx, map[string]interface{}{"price": 150})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
