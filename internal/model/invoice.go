package model

type Invoice struct {
	ID          int     `json:"id"`
	Number      string  `json:"number"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	IssueDate   string  `json:"issue_date,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
	ProjectCode string  `json:"project_code,omitempty"`
	PDFURL      string  `json:"pdf_url,omitempty"`
}
