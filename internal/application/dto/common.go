package dto

// PageRequest paginación del listado de facturas.
type PageRequest struct {
	Query string `query:"query"`
	Page  int    `query:"page"`
}

// DefaultPage aplica valores por defecto si Page es cero o negativo.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
