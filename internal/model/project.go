package model

// Project as served by the upstream API. Status is free text ("En Curso",
// "Cerrado", ...); dates are ISO strings and may be empty. Both are
// interpreted leniently in internal/derive.
type Project struct {
	ID          int         `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	ClientID    int         `json:"client_id,omitempty"`
	ClientName  string      `json:"client_name,omitempty"`
	Status      string      `json:"status"`
	Progress    int         `json:"progress"`
	SLALevel    string      `json:"sla_level,omitempty"`
	PMName      string      `json:"pm_name,omitempty"`
	StartDate   string      `json:"start_date,omitempty"`
	DueDate     string      `json:"due_date,omitempty"`
	Description string      `json:"description,omitempty"`
	CreatedAt   string      `json:"created_at,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
	Tasks       []Task      `json:"tasks,omitempty"`
}

type Milestone struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id,omitempty"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	DueDate   string `json:"due_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type Task struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id,omitempty"`
	Title     string `json:"title"`
	Assignee  string `json:"assignee,omitempty"`
	Status    string `json:"status"`
	Priority  string `json:"priority,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
}

// ProjectDetail is the nested payload of the project detail endpoint.
type ProjectDetail struct {
	Project    Project     `json:"project"`
	Milestones []Milestone `json:"milestones"`
	Tasks      []Task      `json:"tasks"`
	Tickets    []Ticket    `json:"tickets"`
	Documents  []Document  `json:"documents"`
}
