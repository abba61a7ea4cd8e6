package model

// Item is a generic record used by the standalone CRUD subsystem.
// It is unrelated to the production domain and exists to exercise
// the mutation path end to end.
type Item struct {
	ID          uint64 `json:"id"`          // items.id
	Name        string `json:"name"`        // items.name
	Description string `json:"description"` // items.description
}
