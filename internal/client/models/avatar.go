package models

// Avatar is one customer persona in the multi-avatar list. The whole list
// is persisted as a single JSON field (CategoryAvatarsList) and "deleting"
// an avatar means writing back the shrunken list.
type Avatar struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        string `json:"age"`
	Occupation string `json:"occupation"`
	PainPoints string `json:"pain_points"`
}
