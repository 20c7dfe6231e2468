package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clickscan/internal/extract"
)

const sampleInvoiceText = "Invoice No: INV-2024-001 issued from Acme Traders PVT LTD " +
	"Date: 12-Jan-2024 Time: 10:45 AM Total Amount: Rs 1,250.00"

func TestExtract_InvoiceFields(t *testing.T) {
	fields := extract.Extract(sampleInvoiceText, extract.Invoice)

	assert.Equal(t, "INV-2024-001", fields["invoice_number"])
	assert.Equal(t, "12-Jan-2024", fields["invoice_date"])
	assert.Equal(t, "10:45 AM", fields["invoice_time"])
	assert.Equal(t, "Rs", fields["currency_code"])
	assert.Equal(t, "1,250.00", fields["total_amount"])
	assert.Equal(t, "Acme Traders PVT LTD", fields["merchant_name"])
	assert.Equal(t, sampleInvoiceText, fields["description"])
}

func TestExtract_CanonicalExample(t *testing.T) {
	text := "Invoice No: INV-2024-001 ... Total Amount: 1,250.00 ... Date: 12-Jan-2024"
	fields := extract.Extract(text, extract.Invoice)

	assert.Equal(t, "INV-2024-001", fields["invoice_number"])
	assert.Equal(t, "1,250.00", fields["total_amount"])
	assert.Equal(t, "12-Jan-2024", fields["invoice_date"])
}

func TestExtract_FirstMatchWins(t *testing.T) {
	// The "Invoice Number" rule outranks the bare "Invoice" rule.
	text := "Invoice ABC Invoice Number: XYZ-1"
	fields := extract.Extract(text, extract.Invoice)
	assert.Equal(t, "XYZ-1", fields["invoice_number"])

	text = "Bill: 42/2024-A Total: $99.50"
	fields = extract.Extract(text, extract.Invoice)
	assert.Equal(t, "42/2024-A", fields["invoice_number"])
	assert.Equal(t, "99.50", fields["total_amount"])
	assert.Equal(t, "$", fields["currency_code"])
}

func TestExtract_MissingFieldsAreAbsent(t *testing.T) {
	fields := extract.Extract("just some text with no labels", extract.Invoice)

	_, hasNumber := fields["invoice_number"]
	_, hasAmount := fields["total_amount"]
	assert.False(t, hasNumber)
	assert.False(t, hasAmount)

	// description is always present when text is non-empty
	assert.Equal(t, "just some text with no labels", fields["description"])
}

func TestExtract_EmptyText(t *testing.T) {
	fields := extract.Extract("", extract.Invoice)
	assert.Empty(t, fields)

	fields = extract.Extract("   \n\t ", extract.Invoice)
	assert.Empty(t, fields)
}

func TestExtract_Idempotent(t *testing.T) {
	first := extract.Extract(sampleInvoiceText, extract.Invoice)
	second := extract.Extract(sampleInvoiceText, extract.Invoice)
	assert.Equal(t, first, second)
}

func TestExtract_DescriptionTruncated(t *testing.T) {
	long := strings.Repeat("a", 1200)
	fields := extract.Extract(long, extract.Generic)

	require.Contains(t, fields, "description")
	assert.Len(t, fields["description"], 500)
}

func TestExtract_ScopeOfWorkFields(t *testing.T) {
	text := "Project Title: Warehouse Automation\n" +
		"Client: Globex Corp\n" +
		"Service Provider: Initech Solutions\n" +
		"Prepared Date: 03-Mar-2024\n" +
		"Kickoff Date: 15-Mar-2024\n" +
		"Go-Live Date: 01-Jun-2024\n" +
		"Total Fee: USD 45,000.00\n"

	fields := extract.Extract(text, extract.ScopeOfWork)

	assert.Equal(t, "Warehouse Automation", fields["project_title"])
	assert.Equal(t, "Globex Corp", fields["client"])
	assert.Equal(t, "Initech Solutions", fields["service_provider"])
	assert.Equal(t, "03-Mar-2024", fields["prepared_date"])
	assert.Equal(t, "15-Mar-2024", fields["kickoff_date"])
	assert.Equal(t, "01-Jun-2024", fields["golive_date"])
	assert.Equal(t, "45,000.00", fields["total_fee"])
}

func TestForEndpoint(t *testing.T) {
	assert.Equal(t, extract.Invoice, extract.ForEndpoint("invoice"))
	assert.Equal(t, extract.ScopeOfWork, extract.ForEndpoint("sow"))
	assert.Equal(t, extract.ScopeOfWork, extract.ForEndpoint("ScopeOfWork"))
	assert.Equal(t, extract.Generic, extract.ForEndpoint("gettext"))

	// Unknown endpoints use the invoice table
	assert.Equal(t, extract.Invoice, extract.ForEndpoint("somethingelse"))
}

func TestRuleSet_DocumentType(t *testing.T) {
	assert.Equal(t, "Invoice", extract.Invoice.DocumentType())
	assert.Equal(t, "ScopeOfWork", extract.ScopeOfWork.DocumentType())
	assert.Equal(t, "Document", extract.Generic.DocumentType())
}
