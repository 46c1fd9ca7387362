package value

import (
	"errors"

	valueDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/value"
)

// Value is a corporate value used to categorize recognitions. The catalog is
// seeded once and read-only afterward.
type Value struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

var ErrNotFound = errors.New("value not found")

// DefaultValues is the catalog inserted at first initialization when the
// table is empty.
var DefaultValues = []Value{
	{Name: "Innovación", Description: "Buscar nuevas formas de hacer las cosas", Icon: "💡", Color: "#3B82F6"},
	{Name: "Colaboración", Description: "Trabajar juntos hacia objetivos comunes", Icon: "🤝", Color: "#10B981"},
	{Name: "Excelencia", Description: "Buscar la calidad en todo lo que hacemos", Icon: "⭐", Color: "#F59E0B"},
	{Name: "Integridad", Description: "Actuar con honestidad y transparencia", Icon: "🛡️", Color: "#8B5CF6"},
	{Name: "Liderazgo", Description: "Inspirar y guiar a otros", Icon: "👑", Color: "#EF4444"},
	{Name: "Compromiso", Description: "Dedicación y responsabilidad", Icon: "💪", Color: "#06B6D4"},
}

func FromDataModel(v *valueDatamodel.OrganizationValue) *Value {
	return &Value{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Icon:        v.Icon,
		Color:       v.Color,
	}
}

func ToDataModel(v *Value) *valueDatamodel.OrganizationValue {
	return &valueDatamodel.OrganizationValue{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Icon:        v.Icon,
		Color:       v.Color,
	}
}
