package model

// Ticket severity is Alta/Media/Baja and status Abierto/En Progreso/
// Resuelto/Cerrado, but upstream text varies in casing and qualifiers,
// so nothing here is an enum.
type Ticket struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	ProjectID   int       `json:"project_id,omitempty"`
	ProjectCode string    `json:"project_code,omitempty"`
	ClientName  string    `json:"client_name,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	UpdatedAt   string    `json:"updated_at,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
}

type Comment struct {
	ID         int    `json:"id"`
	TicketID   int    `json:"ticket_id,omitempty"`
	AuthorName string `json:"author_name"`
	Message    string `json:"message"`
	IsInternal bool   `json:"is_internal"`
	CreatedAt  string `json:"created_at,omitempty"`
}
