package models

type Address struct {
	ID       int64  `json:"id"`
	Street   string `json:"street"`
	City     string `json:"city"`
	PersonID int64  `json:"person_id"`
}
