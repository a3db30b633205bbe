package models

// Todo is a single todo item as stored in the todos table.
// Description is nil when the item was saved without one.
type Todo struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// GetID returns the todo ID (used by quiet CLI output)
func (t *Todo) GetID() int {
	return t.ID
}

// DescriptionText returns the description or an empty string when unset.
func (t *Todo) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}
