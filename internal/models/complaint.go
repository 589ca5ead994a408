package models

import "time"

type Complaint struct {
	ID                string    `json:"id"`
	Alias             string    `json:"alias"`
	FullName          string    `json:"fullName"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Problem           string    `json:"problem"`
	DenouncedCompany  string    `json:"denouncedCompany"`
	Resolutions       string    `json:"resolutions"`
	SpecificPetitions string    `json:"specificPetitions"`
	FilesURL          string    `json:"filesUrl,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}
