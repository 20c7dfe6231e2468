package extract

// Rule derives one structured field from recognized text. Expr must carry
// exactly one capturing group; the group's match, trimmed, becomes the
// field value. An empty Expr marks the description rule, which takes the
// leading characters of the text instead of matching a pattern.
type Rule struct {
	Field string
	Expr  string
}

const amountExpr = `(?:INR|USD|EUR|Rs\.?|₹|\$)?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`

// invoiceRules is the canonical rule table for invoice-style documents.
// Rules for the same field are tried in declared order; first match wins.
var invoiceRules = []Rule{
	{Field: "invoice_number", Expr: `(?i)\b(?:invoice|inv|bill)\s*(?:number|no)\b[\s.:#-]*([A-Za-z0-9][A-Za-z0-9/-]*)`},
	{Field: "invoice_number", Expr: `(?i)\b(?:invoice|inv|bill)\b[\s.:#-]*([A-Za-z0-9][A-Za-z0-9/-]*)`},
	{Field: "invoice_date", Expr: `(?i)\bdate\b[\s.:#-]*(\d{1,2}[-/ ](?:[A-Za-z]{3,9}|\d{1,2})[-/ ]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2})`},
	{Field: "invoice_time", Expr: `(?i)\btime\b[\s.:#-]*((?:[01]?\d|2[0-3]):[0-5]\d(?::[0-5]\d)?(?:\s*[AP]M)?)`},
	{Field: "currency_code", Expr: `(?i)(\bINR\b|\bUSD\b|\bEUR\b|\bRs\b|₹|\$)`},
	{Field: "total_amount", Expr: `(?i)total\s*amount[\s.:]*` + amountExpr},
	{Field: "total_amount", Expr: `(?i)\btotal\b[\s.:]*` + amountExpr},
	{Field: "merchant_name", Expr: `\b(?i:from|by)\b[\s.:]+([A-Z][\w&'.-]*(?:\s+[A-Z][\w&'.-]*)*?\s+(?i:LTD|PVT\s+LTD|INC|CORP)\b)`},
	{Field: "merchant_name", Expr: `\b(?i:from|by)\b[\s.:]+([A-Z][\w&'.-]*(?:\s+[A-Z][\w&'.-]*){0,2})`},
	{Field: "description"},
}

// scopeOfWorkRules extracts the labeled fields of a scope-of-work document.
var scopeOfWorkRules = []Rule{
	{Field: "project_title", Expr: `(?i)project\s*title[\s.:]*([^\n\r]+)`},
	{Field: "client", Expr: `(?i)\bclient\b[\s.:]*([^\n\r]+)`},
	{Field: "service_provider", Expr: `(?i)service\s*provider[\s.:]*([^\n\r]+)`},
	{Field: "prepared_date", Expr: `(?i)prepared\s*(?:date|on)\b[\s.:]*([^\n\r]+)`},
	{Field: "kickoff_date", Expr: `(?i)kick[\s-]?off\s*(?:date)?[\s.:]*([^\n\r]+)`},
	{Field: "golive_date", Expr: `(?i)go[\s-]?live\s*(?:date)?[\s.:]*([^\n\r]+)`},
	{Field: "total_fee", Expr: `(?i)total\s*fee[\s.:]*` + amountExpr},
	{Field: "description"},
}

// genericRules carries only the description excerpt.
var genericRules = []Rule{
	{Field: "description"},
}

var (
	// Invoice is the rule set for invoice-style endpoints.
	Invoice = NewRuleSet("Invoice", invoiceRules)
	// ScopeOfWork is the rule set for scope-of-work endpoints.
	ScopeOfWork = NewRuleSet("ScopeOfWork", scopeOfWorkRules)
	// Generic is the rule set for endpoints with no structured schema.
	Generic = NewRuleSet("Document", genericRules)
)

// registry maps logical endpoint tokens to their rule set. Unknown
// endpoints fall back to the invoice table, which is what most of the
// upstream's structured endpoints return.
var registry = map[string]*RuleSet{
	"invoice":     Invoice,
	"invoices":    Invoice,
	"sow":         ScopeOfWork,
	"scopeofwork": ScopeOfWork,
	"gettext":     Generic,
}

// ForEndpoint selects the rule set for a logical endpoint token.
func ForEndpoint(endpoint string) *RuleSet {
	if rs, ok := registry[normalizeEndpoint(endpoint)]; ok {
		return rs
	}
	return Invoice
}
