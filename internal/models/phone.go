package models

type Phone struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	PersonID int64  `json:"person_id"`
}
