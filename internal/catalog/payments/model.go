package payments

import "time"

// PaymentMethod is a manual payment option shown at checkout. No payment is
// captured by the system; the method only tells the buyer where to send funds.
type PaymentMethod struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	QRCodeURL     *string   `json:"qr_code_url,omitempty"`
	Active        bool      `json:"active"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
