package checkout

import (
	"time"

	"github.com/codemedavid/the-peptide-source-ph/internal/cart"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

// Order statuses.
const (
	StatusPending = "pending"
)

// Order is a placed order. The cart lines are snapshotted into the order so
// later catalog edits never change what was agreed. ViberSent records whether
// the background notification reached the shop's Viber number; false just
// means the buyer sends the summary manually.
type Order struct {
	ID                string       `json:"id"`
	CustomerName      string       `json:"customer_name"`
	CustomerEmail     string       `json:"customer_email"`
	CustomerPhone     string       `json:"customer_phone"`
	CustomerAddress   string       `json:"customer_address"`
	CustomerCity      string       `json:"customer_city"`
	CustomerProvince  string       `json:"customer_province"`
	CustomerZipCode   string       `json:"customer_zip_code"`
	CustomerCountry   string       `json:"customer_country"`
	Notes             string       `json:"notes,omitempty"`
	PaymentMethodID   string       `json:"payment_method_id"`
	PaymentMethodName string       `json:"payment_method_name"`
	Items             []cart.Line  `json:"items"`
	TotalPrice        money.Amount `json:"total_price"`
	Summary           string       `json:"summary"`
	Status            string       `json:"status"`
	ViberSent         bool         `json:"viber_sent"`
	CreatedAt         time.Time    `json:"created_at"`
}
