// Package gateway simulates the card payment provider. The real integration
// would talk to the provider's REST API; for card payments only the intent
// handshake is exercised here, with amounts quoted in minor currency units.
package gateway

import (
	"fmt"
	"strings"
	"time"

	"wanderstay/internal/utils"
)

// Intent is the provider's handle for a card charge. ClientSecret goes back
// to the browser to confirm the charge client-side.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Client creates card payment intents. Delay mimics provider round-trip
// latency; Fail lets tests force provider errors.
type Client struct {
	Delay time.Duration
	Fail  bool
}

// CreateIntent registers a charge with the provider. amount is in whole
// rupees and converted to paise on the wire.
func (c Client) CreateIntent(amount int64, currency string, reference string) (Intent, error) {
	if c.Delay > 0 {
		time.Sleep(c.Delay)
	}
	if c.Fail {
		return Intent{}, fmt.Errorf("gateway: intent creation refused")
	}
	if amount <= 0 {
		return Intent{}, fmt.Errorf("gateway: amount must be positive")
	}
	if currency == "" {
		currency = "inr"
	}

	id := utils.NewTransactionID("pi_")
	return Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + strings.ToLower(reference),
		Amount:       amount * 100,
		Currency:     currency,
	}, nil
}
