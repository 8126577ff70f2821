package entity

import "strings"

// CheckoutMode is the billing mode of a checkout session.
type CheckoutMode string

const (
	CheckoutModePayment      CheckoutMode = "payment"
	CheckoutModeSubscription CheckoutMode = "subscription"
)

// lifetimeMarker in a price id denotes a one-time purchase.
const lifetimeMarker = "lifetime"

// ModeForPrice derives the checkout mode from the price id naming convention.
func ModeForPrice(priceID string) CheckoutMode {
	if strings.Contains(priceID, lifetimeMarker) {
		return CheckoutModePayment
	}
	return CheckoutModeSubscription
}

// CheckoutSession is a created payment-provider checkout.
type CheckoutSession struct {
	ID      string       `json:"id"`
	PriceID string       `json:"priceId"`
	Mode    CheckoutMode `json:"mode"`
	URL     string       `json:"url"`
}
