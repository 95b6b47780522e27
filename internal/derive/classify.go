package derive

import "strings"

// Upstream status text is free-form: casing varies and qualifiers get
// appended ("En Curso (bloqueado)"). Classification therefore matches by
// case-insensitive substring against ordered keyword rules, never by
// equality; the first rule that hits wins and a default bucket catches
// the rest, so every record lands somewhere.

// ProjectState is the macro state of a project.
type ProjectState int

const (
	ProjectPlanned ProjectState = iota
	ProjectInProgress
	ProjectOnHold
	ProjectDone
)

// TicketState mirrors the upstream ticket vocabulary.
type TicketState int

const (
	TicketOther TicketState = iota
	TicketOpen
	TicketInProgress
	TicketResolved
	TicketClosed
)

// Severity of a ticket.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// InvoiceState groups invoices for display. Anything without a paid or
// overdue marker counts as pending; unknown statuses are deliberately
// merged into pending rather than surfaced separately, matching the
// upstream contract's permissive-by-omission convention.
type InvoiceState int

const (
	InvoicePending InvoiceState = iota
	InvoiceOverdue
	InvoicePaid
)

type rule[T any] struct {
	keywords []string
	bucket   T
}

// classifier is an ordered rule list with a mandatory default bucket.
type classifier[T any] struct {
	rules []rule[T]
	def   T
}

func (c classifier[T]) classify(status string) T {
	s := strings.ToLower(status)
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(s, kw) {
				return r.bucket
			}
		}
	}
	return c.def
}

var projectRules = classifier[ProjectState]{
	rules: []rule[ProjectState]{
		{keywords: []string{"curso", "progress", "activo", "implement"}, bucket: ProjectInProgress},
		{keywords: []string{"cerr", "done", "complet"}, bucket: ProjectDone},
		{keywords: []string{"esper", "hold", "pausa", "pause", "blocked", "bloqueado"}, bucket: ProjectOnHold},
	},
	def: ProjectPlanned,
}

var ticketRules = classifier[TicketState]{
	rules: []rule[TicketState]{
		{keywords: []string{"abierto"}, bucket: TicketOpen},
		{keywords: []string{"progreso"}, bucket: TicketInProgress},
		{keywords: []string{"resuelto"}, bucket: TicketResolved},
		{keywords: []string{"cerrado"}, bucket: TicketClosed},
	},
	def: TicketOther,
}

var severityRules = classifier[Severity]{
	rules: []rule[Severity]{
		{keywords: []string{"alta"}, bucket: SeverityHigh},
		{keywords: []string{"media"}, bucket: SeverityMedium},
	},
	def: SeverityLow,
}

var invoiceRules = classifier[InvoiceState]{
	rules: []rule[InvoiceState]{
		{keywords: []string{"pag"}, bucket: InvoicePaid},
		{keywords: []string{"venc"}, bucket: InvoiceOverdue},
	},
	def: InvoicePending,
}

// ClassifyProject maps a free-form project status onto its macro state.
func ClassifyProject(status string) ProjectState {
	return projectRules.classify(status)
}

// ClassifyTicket maps a free-form ticket status onto its state.
func ClassifyTicket(status string) TicketState {
	return ticketRules.classify(status)
}

// ClassifySeverity maps a free-form severity string.
func ClassifySeverity(severity string) Severity {
	return severityRules.classify(severity)
}

// ClassifyInvoice maps a free-form invoice status.
func ClassifyInvoice(status string) InvoiceState {
	return invoiceRules.classify(status)
}

// TicketIsOpen reports whether a ticket still needs attention
// (open or in progress).
func TicketIsOpen(status string) bool {
	s := strings.ToLower(status)
	return strings.Contains(s, "abierto") || strings.Contains(s, "progreso")
}

// TicketIsClosed reports whether a ticket is finished (closed or
// resolved), the predicate behind the monthly chart split.
func TicketIsClosed(status string) bool {
	s := strings.ToLower(status)
	return strings.Contains(s, "cerr") || strings.Contains(s, "resuelt")
}

// InvoiceIsUnpaid reports whether an invoice counts toward the unpaid
// set: any status without a "pag" substring.
func InvoiceIsUnpaid(status string) bool {
	return !strings.Contains(strings.ToLower(status), "pag")
}
