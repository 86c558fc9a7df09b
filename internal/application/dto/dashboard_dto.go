package dto

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
// Ventanas fijas: "new" = creado en los últimos 7 días; "due today" =
// vence el día calendario actual; "active" = tareas in-progress.
type DashboardStatsResponse struct {
	NewLeads       int `json:"newLeads"`
	NewCompanies   int `json:"newCompanies"`
	ActiveProjects int `json:"activeProjects"`
	TasksDueToday  int `json:"tasksDueToday"`
}
