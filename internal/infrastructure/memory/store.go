// Package memory implementa los puertos de persistencia sobre mapas en
// proceso. Útil para tests y despliegues efímeros: el estado se pierde al
// reiniciar. Los ids se asignan con un contador monótono por entidad y los
// listados conservan el orden de inserción.
package memory

// Store agrupa los repositorios en memoria de todas las entidades.
// Se construye explícitamente (nunca estado global de paquete) para que
// cada test o proceso tenga su propio estado aislado.
type Store struct {
	Users     *UserRepo
	Leads     *LeadRepo
	Companies *CompanyRepo
	Tasks     *TaskRepo
	Insights  *AiInsightRepo
}

// NewStore construye un Store vacío con todos los contadores en 1.
func NewStore() *Store {
	return &Store{
		Users:     NewUserRepository(),
		Leads:     NewLeadRepository(),
		Companies: NewCompanyRepository(),
		Tasks:     NewTaskRepository(),
		Insights:  NewAiInsightRepository(),
	}
}
