package checkout

import (
	"strconv"
	"strings"
	"time"

	"github.com/codemedavid/the-peptide-source-ph/internal/cart"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/payments"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

const summaryTimestampLayout = "Monday, January 2, 2006 03:04:05 PM"

// Formatter renders the order summary text handed to the buyer for Viber or
// manual copy. The clock is injected so the output is a pure function of its
// inputs plus the instant, which keeps the rendering testable.
type Formatter struct {
	Now func() time.Time
}

// NewFormatter returns a formatter on the wall clock.
func NewFormatter() *Formatter {
	return &Formatter{Now: time.Now}
}

// Format produces the summary block. Section order is fixed; the notes
// section appears only when notes are non-empty. Shipping is never a number,
// it is settled over chat after the order is sent.
func (f *Formatter) Format(details Details, lines []cart.Line, total money.Amount, method payments.PaymentMethod) string {
	var b strings.Builder

	b.WriteString("🧪 THE PEPTIDE SOURCE PH - NEW ORDER\n\n")

	b.WriteString("📅 ORDER DATE & TIME\n")
	b.WriteString(f.Now().Format(summaryTimestampLayout))
	b.WriteString("\n\n")

	b.WriteString("👤 CUSTOMER INFORMATION\n")
	b.WriteString("Name: " + details.FullName + "\n")
	b.WriteString("Email: " + details.Email + "\n")
	b.WriteString("Phone: " + details.Phone + "\n\n")

	b.WriteString("📦 SHIPPING ADDRESS\n")
	b.WriteString(details.Address + "\n")
	b.WriteString(details.City + ", " + details.Province + " " + details.ZipCode + "\n")
	b.WriteString(details.Country + "\n\n")

	b.WriteString("🛒 ORDER DETAILS\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("• " + line.ProductName)
		if line.VariationName != "" {
			b.WriteString(" (" + line.VariationName + ")")
		}
		b.WriteString(" x" + strconv.Itoa(line.Quantity))
		b.WriteString(" - " + line.Subtotal().Display())
		b.WriteString("\n  Purity: " + formatPurity(line.Purity) + "%")
	}
	b.WriteString("\n\n")

	b.WriteString("💰 PRICING\n")
	b.WriteString("Product Total: " + total.Display() + "\n")
	b.WriteString("Shipping Fee: To be discussed\n\n")

	b.WriteString("💳 PAYMENT METHOD\n")
	b.WriteString(method.Name + "\n")
	b.WriteString("Account: " + method.AccountNumber)

	if details.Notes != "" {
		b.WriteString("\n\n📝 NOTES\n" + details.Notes)
	}

	b.WriteString("\n\nPlease confirm this order. Thank you!")
	return b.String()
}

// formatPurity prints a purity percentage without trailing zeros, so 99
// stays "99" and 99.9 stays "99.9".
func formatPurity(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
