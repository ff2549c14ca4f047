package model

import "time"

type JobOffer struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Location     string    `json:"location"`
	ContractType string    `json:"contract_type"`
	Status       string    `json:"status"`
	OpenedAt     time.Time `json:"opened_at"`
	Applications int       `json:"applications"`
}

type JobOfferQuery struct {
	Department string
	Status     string
	Limit      int
	Offset     int
}
