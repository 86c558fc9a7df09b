package entity

import "time"

// Estados válidos del pipeline de ventas para un Lead.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusProposal  = "proposal"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// LeadStatuses lista de estados aceptados (para validación).
var LeadStatuses = []string{
	LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
	LeadStatusProposal, LeadStatusWon, LeadStatusLost,
}

// Lead representa un contacto prospecto dentro del pipeline.
// CompanyID y AssignedTo son referencias débiles (nullable, sin integridad
// referencial forzada): borrar la Company o el User no toca el Lead.
type Lead struct {
	ID              int
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	CompanyID       *int
	Position        string
	Source          string
	Status          string // ver LeadStatuses, default "new"
	AIScore         int    // 0–100, siempre acotado; lo escribe el enriquecimiento IA
	Notes           string
	AssignedTo      *int
	Market          string
	CreatedAt       time.Time
	LastContactedAt *time.Time
}

// LeadPatch actualización parcial: nil = campo sin tocar (merge superficial).
type LeadPatch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	CompanyID       *int
	Position        *string
	Source          *string
	Status          *string
	AIScore         *int
	Notes           *string
	AssignedTo      *int
	Market          *string
	LastContactedAt *time.Time
}
