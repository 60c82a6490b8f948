package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const bitcoinURIScheme = "bitcoin"

// PaymentURI holds the fields of a BIP21 payment request. Optional fields
// left empty are omitted from the URI.
type PaymentURI struct {
	Address string
	Amount  string
	Label   string
	Message string
}

// BuildPaymentURI returns bitcoin:<address> followed, if any optional field
// is set, by amount, label and message query params in this order.
func BuildPaymentURI(address, amount, label, message string) string {
	uri := fmt.Sprintf("%s:%s", bitcoinURIScheme, strings.TrimSpace(address))

	params := make([]string, 0, 3)
	if amount := strings.TrimSpace(amount); amount != "" {
		params = append(params, "amount="+amount)
	}
	if label != "" {
		params = append(params, "label="+escapeURIComponent(label))
	}
	if message != "" {
		params = append(params, "message="+escapeURIComponent(message))
	}

	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}
	return uri
}

// Validate checks the address shape and, if given, the amount.
func (u PaymentURI) Validate() error {
	if strings.TrimSpace(u.Address) == "" {
		return ErrMissingAddress
	}
	if !IsValidAddress(u.Address) {
		return ErrInvalidAddress
	}
	if strings.TrimSpace(u.Amount) != "" {
		if _, err := ParseAmount(u.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (u PaymentURI) String() string {
	return BuildPaymentURI(u.Address, u.Amount, u.Label, u.Message)
}

// ParseAmount parses a BTC amount that must be a finite decimal strictly
// greater than zero. Exponent notation is accepted.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf(
			"%w: amount must be greater than zero", ErrInvalidAmount,
		)
	}
	return d, nil
}

// uriComponentUnescaper restores the marks that url.QueryEscape encodes but
// are left literal in a URI component, and turns spaces into %20.
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeURIComponent percent-encodes every byte of s outside the set
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) so that it can be used as a query value.
func escapeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
