package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"learnhub_backend/internals/features/payment/model"
)

var SnapClient snap.Client

// InitGateway is called once at bootstrap.
func InitGateway(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken asks the gateway for the payment token + redirect URL a
// client needs to pay a purchase. The token doubles as the purchase's
// authority reference.
func GenerateSnapToken(p *model.PurchaseModel, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PurchaseOrderID,
			GrossAmt: p.PurchaseAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
