package grpc

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/abrar2030/FinovaBank/proto/account/v1"
)

// Client wraps the gRPC client for the account service
type Client struct {
	pb.AccountServiceClient
	conn *grpc.ClientConn
}

// NewClient creates a new Client connected to the specified address
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to account service: %w", err)
	}
	return NewClientFromConn(conn), nil
}

// NewClientFromConn creates a new Client from an existing gRPC connection
// This is useful for testing with bufconn servers
func NewClientFromConn(conn *grpc.ClientConn) *Client {
	return &Client{
		AccountServiceClient: pb.NewAccountServiceClient(conn),
		conn:                 conn,
	}
}

// Close closes the gRPC connection
func (c *Client) Close() error {
	return c.conn.Close()
}
