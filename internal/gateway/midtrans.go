// Package gateway wraps the Midtrans Snap API for transaction token issuance.
package gateway

import (
	"context"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// TokenRequest carries the order details the gateway needs to issue a
// transaction token.
type TokenRequest struct {
	OrderID     string
	GrossAmount int64
	FullName    string
	Email       string
	Phone       string
}

// TokenIssuer is the external payment gateway boundary.
type TokenIssuer interface {
	CreateTransactionToken(ctx context.Context, req TokenRequest) (string, error)
}

// SnapGateway issues Snap transaction tokens.
type SnapGateway struct {
	client snap.Client
}

// Ensure SnapGateway implements TokenIssuer
var _ TokenIssuer = (*SnapGateway)(nil)

// NewSnap creates a Snap gateway client for the given server key.
func NewSnap(serverKey string, production bool) *SnapGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)
	return &SnapGateway{client: client}
}

// CreateTransactionToken requests a transaction token for the order. The Snap
// client carries its own HTTP timeout.
func (g *SnapGateway) CreateTransactionToken(ctx context.Context, req TokenRequest) (string, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FullName,
			Email: req.Email,
			Phone: req.Phone,
		},
	}

	token, midErr := g.client.CreateTransactionToken(snapReq)
	if midErr != nil {
		return "", midErr
	}
	return token, nil
}
