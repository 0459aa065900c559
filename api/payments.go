package api

import (
	"context"
	"net/http"
	"time"
)

// PaymentAPI wraps the /payments endpoints. Actual payment processing is
// the backend's business; this client only submits the request and reads
// the outcome.
type PaymentAPI struct {
	c *Client
}

// NewPaymentAPI creates the group from a base client
func NewPaymentAPI(c *Client) *PaymentAPI { return &PaymentAPI{c: c} }

// Payment method identifiers accepted by the backend
const (
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
	PaymentMethodCash = "cash"
)

// PaymentResult is the processing outcome
type PaymentResult struct {
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	PaymentTime   time.Time `json:"paymentTime"`
}

// Successful reports whether the payment went through. A failed payment
// leaves the order PENDING; a successful one moves it to CONFIRMED.
func (p *PaymentResult) Successful() bool {
	return p.Status == "SUCCESSFUL"
}

// Process pays for a PENDING order
func (p *PaymentAPI) Process(ctx context.Context, orderID int, method string) (*PaymentResult, error) {
	body := map[string]interface{}{
		"orderId":       orderID,
		"paymentMethod": method,
	}
	var out PaymentResult
	err := p.c.do(ctx, "payments.Process", http.MethodPost, "/payments/process", body, &out, requestOptions{authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
