package substitute

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
)

// Substitutor replaces every recognised token for one render call. It is
// built once per call from the creditor sequence and render context,
// then applied to each text fragment of the template.
type Substitutor struct {
	replacer *strings.Replacer
}

// Option customises a Substitutor.
type Option func(*config)

type config struct {
	now func() time.Time
}

// WithNow overrides the clock used for the {today} tokens.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New builds a Substitutor for the given records and context. Under the
// Tokyo District Court bankruptcy rule the per-creditor families use the
// A/B slot assignment; every other court/procedure pair uses the flat
// 1-based numbering. Returns ErrSlotCapacity when the special form
// cannot hold all records.
func New(records []domain.CreditorRecord, rc domain.RenderContext, opts ...Option) (*Substitutor, error) {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	pairs := globalPairs(records, rc, cfg.now())

	if domain.IsSpecialRule(rc.CourtName, rc.ProcedureType) {
		assignment, err := domain.AssignSlots(len(records))
		if err != nil {
			return nil, fmt.Errorf("allocating form slots: %w", err)
		}
		pairs = appendSlotPairs(pairs, records, assignment)
	} else {
		pairs = appendFlatPairs(pairs, records)
	}

	return &Substitutor{replacer: strings.NewReplacer(pairs...)}, nil
}

// Apply substitutes all recognised tokens in text. Text without tokens
// is returned unchanged; substituted values are never re-scanned.
func (s *Substitutor) Apply(text string) string {
	return s.replacer.Replace(text)
}

// globalPairs builds the debtor/court/date/aggregate replacements.
func globalPairs(records []domain.CreditorRecord, rc domain.RenderContext, now time.Time) []string {
	return []string{
		TokenDebtorName, rc.DebtorName,
		TokenCourtName, rc.CourtName,
		TokenCaseNumber, rc.CaseNumber,
		TokenProcedureType, rc.ProcedureType,
		TokenToday, now.Format("2006年01月02日"),
		TokenTodaySlash, now.Format("2006/01/02"),
		TokenTotalCreditors, strconv.Itoa(len(records)),
		TokenTotalClaimAmount, formatAmount(sumAmounts(records, len(records))),
	}
}

// appendSlotPairs builds the A/B-prefixed replacements for every slot of
// the special form. Unassigned slots blank out their whole family, and
// claim names are converted to the form's letter codes.
func appendSlotPairs(pairs []string, records []domain.CreditorRecord, assignment *domain.SlotAssignment) []string {
	for _, slot := range assignment.Slots {
		suffix := string(slot.Page) + strconv.Itoa(slot.Index)

		if !slot.Assigned() {
			for _, f := range creditorFields {
				pairs = append(pairs, token(f.base, suffix), "")
			}
			pairs = append(pairs, token("creditor_rank", suffix), "")
			continue
		}

		record := records[slot.Creditor]
		for _, f := range creditorFields {
			value := f.value(record)
			if f.base == "claim_name" {
				value = domain.ClaimCode(value)
			}
			pairs = append(pairs, token(f.base, suffix), value)
		}
		pairs = append(pairs, token("creditor_rank", suffix), strconv.Itoa(slot.Rank))
	}
	return pairs
}

// appendFlatPairs builds the prefix-less replacements used by every
// other court: position n maps straight to slot n for every record,
// and indexes beyond the record count blank out up to the bounded
// token table. The table grows past the bound when more records exist,
// so no position is ever left unsubstituted.
func appendFlatPairs(pairs []string, records []domain.CreditorRecord) []string {
	limit := domain.StandardSlotMax
	if len(records) > limit {
		limit = len(records)
	}

	for i := 1; i <= limit; i++ {
		suffix := strconv.Itoa(i)

		if i <= len(records) {
			record := records[i-1]
			for _, f := range creditorFields {
				pairs = append(pairs, token(f.base, suffix), f.value(record))
			}
			pairs = append(pairs, token("creditor_rank", suffix), suffix)
		} else {
			for _, f := range creditorFields {
				pairs = append(pairs, token(f.base, suffix), "")
			}
			pairs = append(pairs, token("creditor_rank", suffix), "")
		}

		pairs = append(pairs, token("sum_claim_amount_1_to", suffix), formatAmount(sumAmounts(records, i)))
	}
	return pairs
}
