package models

import "time"

type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	Addresses []Address `json:"addresses"`
	Phones    []Phone   `json:"phones"`
}
