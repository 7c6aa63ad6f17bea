package solitaire

import "strconv"

// SelectionKind tags the variant held by a Selection
type SelectionKind int

const (
	Unselected SelectionKind = iota
	WasteSelected
	TableauSelected
)

// String returns the string representation of a selection kind
func (k SelectionKind) String() string {
	switch k {
	case Unselected:
		return "Unselected"
	case WasteSelected:
		return "WasteSelected"
	case TableauSelected:
		return "TableauSelected"
	default:
		return "Unknown"
	}
}

// Selection is the cursor: nothing, the waste's top card, or the face-up run
// of one tableau column. Index is meaningful only for TableauSelected.
type Selection struct {
	Kind  SelectionKind
	Index int
}

// NoSelection returns the empty cursor
func NoSelection() Selection { return Selection{Kind: Unselected} }

// WasteSelection returns the cursor pointing at the waste
func WasteSelection() Selection { return Selection{Kind: WasteSelected} }

// TableauSelection returns the cursor pointing at tableau column i (0-based)
func TableauSelection(i int) Selection { return Selection{Kind: TableauSelected, Index: i} }

// IsNone reports whether nothing is selected
func (s Selection) IsNone() bool { return s.Kind == Unselected }

// IsWaste reports whether the waste is selected
func (s Selection) IsWaste() bool { return s.Kind == WasteSelected }

// Tableau returns the selected column and true when a tableau column is selected
func (s Selection) Tableau() (int, bool) {
	if s.Kind != TableauSelected {
		return 0, false
	}
	return s.Index, true
}

// String returns "None", "Waste", or the 1-based column number
func (s Selection) String() string {
	switch s.Kind {
	case WasteSelected:
		return "Waste"
	case TableauSelected:
		return strconv.Itoa(s.Index + 1)
	default:
		return "None"
	}
}
