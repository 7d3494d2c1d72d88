package models

// FilterAll is the sentinel that disables filtering.
const FilterAll = "All"

// FilterState is the per-session active filter of a catalog view.
type FilterState struct {
	Active string `json:"active"`
}

// FilterControls lists the selectable values and the active one.
type FilterControls struct {
	Active  string   `json:"active"`
	Options []string `json:"options"`
}
