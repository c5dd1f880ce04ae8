package utils

// Quick replies hold at most 13 items, navigation buttons included, so the
// body capacity depends on how many navigation buttons the page ends up with.
const (
	SelectorMaxItems        = 13
	selectorBodyWithBothNav = 11
	selectorBodyWithNoNav   = 13
)

// SelectorPage is the computed layout for one quick-reply page.
type SelectorPage struct {
	Visible  []string
	HasPrev  bool
	HasNext  bool
	PageSize int
}

func paginate(items []string, page, bodySize int) []string {
	start := (page - 1) * bodySize
	end := start + bodySize
	if start >= len(items) {
		return nil
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// LayoutSelectorPage fits an ordered label list into the bounded quick-reply
// control. Capacity depends on the nav buttons, which depend on capacity, so
// the layout starts from the conservative both-buttons capacity of 11 and
// relaxes once when the page turns out to need no buttons at all. Pages that
// keep a nav button stay on the conservative slice; re-slicing those at a
// wider capacity shifts the page offsets and duplicates or drops labels at
// page boundaries. Input order is preserved, nothing is sorted here.
func LayoutSelectorPage(items []string, page int) SelectorPage {
	if page < 1 {
		page = 1
	}
	total := len(items)
	hasPrev := page > 1

	bodySize := selectorBodyWithBothNav
	visible := paginate(items, page, bodySize)
	hasNext := page*bodySize < total

	if !hasPrev && !hasNext {
		bodySize = selectorBodyWithNoNav
		visible = paginate(items, page, bodySize)
	}

	return SelectorPage{
		Visible:  visible,
		HasPrev:  hasPrev,
		HasNext:  hasNext,
		PageSize: bodySize,
	}
}
