package dto

// ErrorResponse cuerpo de error HTTP. Errors solo se incluye en fallos
// de validación (detalle campo a campo).
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError detalle de una violación de validación sobre un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// oneOf informa si value está dentro de la lista de valores permitidos.
func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
