package entity

import "time"

// Company representa una organización asociada a cero o más leads.
// EngagementScore es un entero 0–100 que resume la intensidad de interacción.
type Company struct {
	ID              int
	Name            string
	Industry        string
	Size            string // bucket fijo de número de empleados, ej. "51-200"
	Website         string
	Address         string
	City            string
	Country         string
	Market          string // región fija, ej. "Germany", "USA", "Global"
	EngagementScore int
	Notes           string
	LogoURL         string
	CreatedAt       time.Time
}

// CompanyPatch actualización parcial: nil = campo sin tocar.
type CompanyPatch struct {
	Name            *string
	Industry        *string
	Size            *string
	Website         *string
	Address         *string
	City            *string
	Country         *string
	Market          *string
	EngagementScore *int
	Notes           *string
	LogoURL         *string
}
