package organization

import "errors"

var ErrTeamNotFound = errors.New("team not found")

// TeamSeed places a team inside the full branch→area→department chain.
type TeamSeed struct {
	Branch     string
	Area       string
	Department string
	Team       string
}

// DefaultHierarchy is the org chart the seeder creates. Every chain is
// anchored at the single head-office branch.
var DefaultHierarchy = []TeamSeed{
	{Branch: "Casa Matriz", Area: "Tecnología", Department: "IT", Team: "Arquitectura"},
	{Branch: "Casa Matriz", Area: "Tecnología", Department: "IT", Team: "Desarrollo"},
	{Branch: "Casa Matriz", Area: "Tecnología", Department: "IT", Team: "Infraestructura"},
	{Branch: "Casa Matriz", Area: "Comercial", Department: "Ventas", Team: "Ventas Norte"},
	{Branch: "Casa Matriz", Area: "Comercial", Department: "Marketing", Team: "Marketing Digital"},
	{Branch: "Casa Matriz", Area: "Recursos Humanos", Department: "RRHH", Team: "Gestión de Talento"},
}
