package entity

import "time"

// Tipos habituales de AiInsight. El campo es texto libre en la práctica:
// el modelo puede devolver otros valores y se persisten tal cual.
const (
	InsightTypeLead     = "lead"
	InsightTypeContent  = "content"
	InsightTypeTrend    = "trend"
	InsightTypeReminder = "reminder"
	InsightTypeResearch = "research"
	InsightTypeError    = "error"
)

// AiInsight observación generada por IA, descartable por el usuario.
// Un insight descartado (IsDismissed) sale del listado activo pero no se borra.
type AiInsight struct {
	ID          int
	Type        string
	Title       string
	Description string
	ActionText  string
	ActionURL   string
	LeadID      *int
	CompanyID   *int
	IsRead      bool
	IsDismissed bool
	CreatedAt   time.Time
}

// AiInsightPatch actualización parcial: nil = campo sin tocar.
// IsRead/IsDismissed son los campos que normalmente cambia el frontend.
type AiInsightPatch struct {
	Type        *string
	Title       *string
	Description *string
	ActionText  *string
	ActionURL   *string
	LeadID      *int
	CompanyID   *int
	IsRead      *bool
	IsDismissed *bool
}
