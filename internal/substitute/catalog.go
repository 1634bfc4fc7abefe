package substitute

import "github.com/aikawa-legal/saikengen/internal/core/domain"

// Global tokens, replaced identically on every template.
const (
	TokenDebtorName       = "{debtor_name}"
	TokenCourtName        = "{court_name}"
	TokenCaseNumber       = "{case_number}"
	TokenProcedureType    = "{procedure_type}"
	TokenToday            = "{today}"
	TokenTodaySlash       = "{today_slash}"
	TokenTotalCreditors   = "{total_creditors}"
	TokenTotalClaimAmount = "{total_claim_amount}"
)

// field is one per-creditor token family: the token base name and the
// record field it renders.
type field struct {
	base  string
	value func(r domain.CreditorRecord) string
}

// creditorFields lists every indexed token family in catalog order.
// creditor_rank is not listed; it renders the sequence rank rather than
// a record field and is handled by the pair builders directly.
var creditorFields = []field{
	{"id", func(r domain.CreditorRecord) string { return r.ID }},
	{"company_name", func(r domain.CreditorRecord) string { return r.CompanyName }},
	{"branch_name", func(r domain.CreditorRecord) string { return r.BranchName }},
	{"postal_code", func(r domain.CreditorRecord) string { return r.PostalCode }},
	{"address", func(r domain.CreditorRecord) string { return r.Address }},
	{"phone_number", func(r domain.CreditorRecord) string { return r.PhoneNumber }},
	{"fax_number", func(r domain.CreditorRecord) string { return r.FaxNumber }},
	{"claim_name", func(r domain.CreditorRecord) string { return r.ClaimName }},
	{"claim_amount", func(r domain.CreditorRecord) string { return r.ClaimAmount }},
	{"contract_date", func(r domain.CreditorRecord) string { return r.ContractDate }},
	{"first_borrowing_date", func(r domain.CreditorRecord) string { return r.FirstBorrowingDate }},
	{"last_borrowing_date", func(r domain.CreditorRecord) string { return r.LastBorrowingDate }},
	{"last_payment_date", func(r domain.CreditorRecord) string { return r.LastPaymentDate }},
	{"original_creditor", func(r domain.CreditorRecord) string { return r.OriginalCreditor }},
	{"substitution_or_transfer", func(r domain.CreditorRecord) string { return r.SubstitutionOrTransfer }},
	{"transfer_date", func(r domain.CreditorRecord) string { return r.TransferDate }},
	{"status", func(r domain.CreditorRecord) string { return r.Status }},
	{"notes", func(r domain.CreditorRecord) string { return r.Notes }},
	{"registration_date", func(r domain.CreditorRecord) string { return r.RegistrationDate }},
}

// token builds the literal placeholder for a base name and index suffix,
// e.g. token("company_name", "A2") -> "{company_name_A2}".
func token(base, suffix string) string {
	return "{" + base + "_" + suffix + "}"
}
