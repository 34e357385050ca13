package domain

// Option is one selectable value for a form dropdown: the stored tag
// plus its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
