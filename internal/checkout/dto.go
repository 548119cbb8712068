package checkout

import "strings"

// Details carries the customer and shipping fields collected on the first
// checkout step. Every field except Notes must be non-blank before the flow
// may advance to payment.
type Details struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	Province string `json:"province" validate:"required"`
	ZipCode  string `json:"zip_code" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Notes    string `json:"notes"`
}

// Normalize trims surrounding whitespace so blank-but-padded input does not
// pass the required checks.
func (d *Details) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	d.Province = strings.TrimSpace(d.Province)
	d.ZipCode = strings.TrimSpace(d.ZipCode)
	d.Country = strings.TrimSpace(d.Country)
	d.Notes = strings.TrimSpace(d.Notes)
}

// PlaceOrderRequest selects the payment method for the final step.
type PlaceOrderRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}
