package domain

// CreditorRecord is one creditor's row as rendered into a document.
// Every field is a free-form string; missing data is the empty string.
// Dates arrive pre-formatted from the data source and are never parsed.
// ClaimAmount is a numeric string that may carry thousands separators.
//
// Records are immutable snapshots: rendering never mutates them.
type CreditorRecord struct {
	// ID is the record identifier assigned at import.
	ID string

	// CompanyName is the creditor company name (会社名).
	CompanyName string

	// BranchName is the handling branch (支店名).
	BranchName string

	// PostalCode is the postal code (郵便番号).
	PostalCode string

	// Address is the street address (住所).
	Address string

	// PhoneNumber is the phone number (電話番号).
	PhoneNumber string

	// FaxNumber is the fax number (FAX番号).
	FaxNumber string

	// ClaimName is the claim category name (債権名), e.g. 貸付金.
	ClaimName string

	// ClaimAmount is the claim amount (債権額) as entered, possibly with
	// thousands separators.
	ClaimAmount string

	// ContractDate is the contract date (契約日).
	ContractDate string

	// FirstBorrowingDate is the first borrowing date (初回借入日).
	FirstBorrowingDate string

	// LastBorrowingDate is the last borrowing date (最終借入日).
	LastBorrowingDate string

	// LastPaymentDate is the last repayment date (最終返済日).
	LastPaymentDate string

	// OriginalCreditor is the original creditor (原債権者) for
	// transferred claims.
	OriginalCreditor string

	// SubstitutionOrTransfer distinguishes 代位弁済 from 債権譲渡.
	SubstitutionOrTransfer string

	// TransferDate is the claim transfer date (債権移転日).
	TransferDate string

	// Status is the processing status (ステータス).
	Status string

	// Notes holds free-form remarks (備考).
	Notes string

	// RegistrationDate is when the record was imported (登録日).
	RegistrationDate string
}

// RenderContext carries the case-level data for one render call.
// The creditor sequence itself travels separately; its order is the
// canonical ranking for creditor_rank and slot numbering.
type RenderContext struct {
	// CourtName is the target court (裁判所名).
	CourtName string

	// ProcedureType is the procedure (手続種別); empty for courts with a
	// single registered procedure.
	ProcedureType string

	// CaseNumber is the court case number (事件番号), optional.
	CaseNumber string

	// DebtorName is the debtor (債務者名).
	DebtorName string
}

// RenderedDocument is the output of one render call.
type RenderedDocument struct {
	// Content is the serialised document.
	Content []byte

	// MIMEType is the document MIME type.
	MIMEType string

	// Extension is the file extension without the dot, e.g. "xlsx".
	Extension string

	// FormatName is a human-readable label, e.g. "Excel".
	FormatName string
}

// Procedure types accepted by the courts this tool targets.
const (
	ProcedureCivilRehabilitation = "個人再生"
	ProcedureBankruptcy          = "自己破産"
)

// ProcedureTypes lists the valid procedure types in display order.
var ProcedureTypes = []string{ProcedureCivilRehabilitation, ProcedureBankruptcy}

// IsValidProcedure reports whether p is a known procedure type.
func IsValidProcedure(p string) bool {
	for _, known := range ProcedureTypes {
		if p == known {
			return true
		}
	}
	return false
}

// TokyoDistrictCourt is the court whose bankruptcy form uses the
// A/B slot-allocation rule.
const TokyoDistrictCourt = "東京地方裁判所"

// Courts lists the supported courts in display order.
var Courts = []string{
	TokyoDistrictCourt,
	"大阪地方裁判所",
	"名古屋地方裁判所",
	"横浜地方裁判所",
	"神戸地方裁判所",
	"福岡地方裁判所",
	"仙台地方裁判所",
	"広島地方裁判所",
	"札幌地方裁判所",
	"その他",
}

// IsSpecialRule reports whether the court/procedure pair uses the Tokyo
// District Court bankruptcy slot-allocation rule.
func IsSpecialRule(courtName, procedureType string) bool {
	return courtName == TokyoDistrictCourt && procedureType == ProcedureBankruptcy
}

// TemplateKey builds the registry key for a court/procedure pair.
// Older registry entries were keyed by court name alone; callers that
// hit a miss on the composite key fall back to the bare court name.
func TemplateKey(courtName, procedureType string) string {
	if procedureType == "" {
		return courtName
	}
	return courtName + "_" + procedureType
}
