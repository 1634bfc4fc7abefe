package domain

// Slot capacities of the Tokyo District Court bankruptcy form. The form
// has up to three "general" pages of 7 creditors each and one "final"
// page of up to 8 creditors.
const (
	// FinalSlotMax is the number of final-page slots (A1..A8).
	FinalSlotMax = 8

	// GeneralSlotMax is the number of general-page slots (B1..B21).
	GeneralSlotMax = 21

	// SpecialCapacity is the total number of creditors the form can hold.
	SpecialCapacity = FinalSlotMax + GeneralSlotMax

	// StandardSlotMax is the minimum flat {field_n} index recognised on
	// non-special templates: tokens up to this index are always
	// substituted, with indexes past the creditor count becoming empty
	// strings. Creditor lists longer than this extend the recognised
	// range to their own length; the bound never drops records.
	StandardSlotMax = 50
)

// PageGroup names a slot category on the special form. The value doubles
// as the token letter prefix, e.g. {company_name_A3}.
type PageGroup string

// Page groups of the special form.
const (
	// PageFinal is the final page, holding the tail of the sequence.
	PageFinal PageGroup = "A"

	// PageGeneral covers the general pages, holding the head.
	PageGeneral PageGroup = "B"
)

// PagePlan is the split of a creditor list between general and final
// pages. It is the single swappable encoding of the court's pagination
// rule; the substitution core only consumes the resulting SlotAssignment.
type PagePlan struct {
	// GeneralCount is the number of creditors on general pages.
	GeneralCount int

	// FinalCount is the number of creditors on the final page.
	FinalCount int
}

// PlanPages computes the page split for n creditors.
//
// Up to 8 creditors fit on the final page alone. Past that, general
// pages are filled in units of 7 and the remainder goes to the final
// page; a remainder of zero leaves a full unit of 7 on the final page
// so it is never empty.
func PlanPages(n int) PagePlan {
	if n <= FinalSlotMax {
		return PagePlan{GeneralCount: 0, FinalCount: n}
	}

	finalCount := n % 7
	if finalCount == 0 {
		finalCount = 7
	}

	return PagePlan{GeneralCount: n - finalCount, FinalCount: finalCount}
}

// Slot is one named position on the form and the creditor resolved into
// it, if any.
type Slot struct {
	// Page is the slot's page group.
	Page PageGroup

	// Index is the 1-based slot index within the page group.
	Index int

	// Creditor is the 0-based index into the record sequence, or -1
	// when the slot is unassigned.
	Creditor int

	// Rank is the creditor's 1-based position in the original sequence,
	// or 0 when the slot is unassigned. For final-page slots this
	// diverges from Index: rank follows the sequence, not the page.
	Rank int
}

// Assigned reports whether the slot holds a creditor.
func (s Slot) Assigned() bool {
	return s.Creditor >= 0
}

// SlotAssignment maps every slot of the special form to a creditor or
// marks it unassigned. Unassigned slots render as empty strings.
type SlotAssignment struct {
	// Plan is the page split this assignment was built from.
	Plan PagePlan

	// Slots holds all GeneralSlotMax + FinalSlotMax slots, general
	// slots first, both groups in ascending index order.
	Slots []Slot
}

// AssignSlots builds the full slot assignment for n creditors.
// General slots take sequence positions 0..GeneralCount-1 in order; the
// final page takes the rest. Returns ErrSlotCapacity when n exceeds the
// form's addressable slots rather than silently dropping creditors.
func AssignSlots(n int) (*SlotAssignment, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	if n > SpecialCapacity {
		return nil, ErrSlotCapacity
	}

	plan := PlanPages(n)
	slots := make([]Slot, 0, GeneralSlotMax+FinalSlotMax)

	for i := 1; i <= GeneralSlotMax; i++ {
		slot := Slot{Page: PageGeneral, Index: i, Creditor: -1}
		if i <= plan.GeneralCount {
			slot.Creditor = i - 1
			slot.Rank = i
		}
		slots = append(slots, slot)
	}

	for i := 1; i <= FinalSlotMax; i++ {
		slot := Slot{Page: PageFinal, Index: i, Creditor: -1}
		if i <= plan.FinalCount {
			slot.Creditor = plan.GeneralCount + i - 1
			slot.Rank = plan.GeneralCount + i
		}
		slots = append(slots, slot)
	}

	return &SlotAssignment{Plan: plan, Slots: slots}, nil
}
