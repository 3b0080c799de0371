package models

// Label represents an issue-tracker label, similar to GitHub labels.
// Field order is the key order of the generated JSON document.
type Label struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"` // Hex color code (e.g., "#bfd4f2")
	Description *string `json:"description"`
}

// NewLabel creates a label without description
func NewLabel(name, color string) Label {
	return Label{Name: name, Color: color}
}

// NewDescribedLabel creates a label carrying a description
func NewDescribedLabel(name, color, description string) Label {
	return Label{Name: name, Color: color, Description: &description}
}

// DescriptionText returns the description or an empty string when absent
func (l Label) DescriptionText() string {
	if l.Description == nil {
		return ""
	}
	return *l.Description
}
