package upstream

import (
	"context"
	"fmt"
	"net/http"

	"innovati-portal/internal/model"
)

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	var out model.LoginResponse
	err := c.send(ctx, http.MethodPost, "/api/auth/login", model.LoginRequest{Email: email, Password: password}, "", &out)
	return out, err
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (model.LoginResponse, error) {
	var out model.LoginResponse
	err := c.send(ctx, http.MethodPost, "/api/admin/auth/login", model.LoginRequest{Email: email, Password: password}, "", &out)
	return out, err
}

// Public catalog

func (c *Client) Services(ctx context.Context) ([]model.Service, error) {
	var out []model.Service
	err := c.get(ctx, "/api/services", "", &out)
	return out, err
}

func (c *Client) Service(ctx context.Context, slug string) (model.Service, error) {
	var out model.Service
	err := c.get(ctx, "/api/services/"+slug, "", &out)
	return out, err
}

func (c *Client) Plans(ctx context.Context) ([]model.Plan, error) {
	var out []model.Plan
	err := c.get(ctx, "/api/plans", "", &out)
	return out, err
}

func (c *Client) Contact(ctx context.Context, msg model.ContactMessage) error {
	return c.send(ctx, http.MethodPost, "/api/contact", msg, "", nil)
}

// Client portal collections

func (c *Client) Projects(ctx context.Context, token string) ([]model.Project, error) {
	var out []model.Project
	err := c.get(ctx, "/api/projects", token, &out)
	return out, err
}

func (c *Client) ProjectDetail(ctx context.Context, token string, id int) (model.ProjectDetail, error) {
	var out model.ProjectDetail
	err := c.get(ctx, fmt.Sprintf("/api/projects/%d", id), token, &out)
	return out, err
}

func (c *Client) Tickets(ctx context.Context, token string) ([]model.Ticket, error) {
	var out []model.Ticket
	err := c.get(ctx, "/api/tickets", token, &out)
	return out, err
}

func (c *Client) Ticket(ctx context.Context, token string, id int) (model.Ticket, error) {
	var out model.Ticket
	err := c.get(ctx, fmt.Sprintf("/api/tickets/%d", id), token, &out)
	return out, err
}

func (c *Client) CreateTicket(ctx context.Context, token string, t model.Ticket) (model.Ticket, error) {
	var out model.Ticket
	err := c.send(ctx, http.MethodPost, "/api/tickets", t, token, &out)
	return out, err
}

func (c *Client) AddComment(ctx context.Context, token string, ticketID int, comment model.Comment) (model.Comment, error) {
	var out model.Comment
	err := c.send(ctx, http.MethodPost, fmt.Sprintf("/api/tickets/%d/comments", ticketID), comment, token, &out)
	return out, err
}

func (c *Client) Invoices(ctx context.Context, token string) ([]model.Invoice, error) {
	var out []model.Invoice
	err := c.get(ctx, "/api/invoices", token, &out)
	return out, err
}

func (c *Client) Documents(ctx context.Context, token string) ([]model.Document, error) {
	var out []model.Document
	err := c.get(ctx, "/api/documents", token, &out)
	return out, err
}

// Admin portal

func (c *Client) AdminClients(ctx context.Context, token string) ([]model.Client, error) {
	var out []model.Client
	err := c.get(ctx, "/api/admin/clients", token, &out)
	return out, err
}

func (c *Client) AdminCreateClient(ctx context.Context, token string, client model.Client) (model.Client, error) {
	var out model.Client
	err := c.send(ctx, http.MethodPost, "/api/admin/clients", client, token, &out)
	return out, err
}

func (c *Client) AdminUpdateClient(ctx context.Context, token string, id int, client model.Client) (model.Client, error) {
	var out model.Client
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/clients/%d", id), client, token, &out)
	return out, err
}

func (c *Client) AdminDeleteClient(ctx context.Context, token string, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/clients/%d", id), nil, token, nil)
}

func (c *Client) AdminClientUsers(ctx context.Context, token string) ([]model.ClientUser, error) {
	var out []model.ClientUser
	err := c.get(ctx, "/api/admin/client-users", token, &out)
	return out, err
}

func (c *Client) AdminCreateClientUser(ctx context.Context, token string, u model.ClientUser) (model.ClientUser, error) {
	var out model.ClientUser
	err := c.send(ctx, http.MethodPost, "/api/admin/client-users", u, token, &out)
	return out, err
}

func (c *Client) AdminUpdateClientUser(ctx context.Context, token string, id int, u model.ClientUser) (model.ClientUser, error) {
	var out model.ClientUser
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/client-users/%d", id), u, token, &out)
	return out, err
}

func (c *Client) AdminDeleteClientUser(ctx context.Context, token string, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/client-users/%d", id), nil, token, nil)
}

func (c *Client) AdminProjects(ctx context.Context, token string) ([]model.Project, error) {
	var out []model.Project
	err := c.get(ctx, "/api/admin/projects", token, &out)
	return out, err
}

func (c *Client) AdminProjectDetail(ctx context.Context, token string, id int) (model.ProjectDetail, error) {
	var out model.ProjectDetail
	err := c.get(ctx, fmt.Sprintf("/api/admin/projects/%d", id), token, &out)
	return out, err
}

func (c *Client) AdminCreateProject(ctx context.Context, token string, p model.Project) (model.Project, error) {
	var out model.Project
	err := c.send(ctx, http.MethodPost, "/api/admin/projects", p, token, &out)
	return out, err
}

func (c *Client) AdminUpdateProject(ctx context.Context, token string, id int, p model.Project) (model.Project, error) {
	var out model.Project
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/projects/%d", id), p, token, &out)
	return out, err
}

func (c *Client) AdminDeleteProject(ctx context.Context, token string, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/projects/%d", id), nil, token, nil)
}

func (c *Client) AdminCreateMilestone(ctx context.Context, token string, projectID int, m model.Milestone) (model.Milestone, error) {
	var out model.Milestone
	err := c.send(ctx, http.MethodPost, fmt.Sprintf("/api/admin/projects/%d/milestones", projectID), m, token, &out)
	return out, err
}

func (c *Client) AdminUpdateMilestone(ctx context.Context, token string, id int, m model.Milestone) (model.Milestone, error) {
	var out model.Milestone
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/milestones/%d", id), m, token, &out)
	return out, err
}

func (c *Client) AdminDeleteMilestone(ctx context.Context, token string, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/milestones/%d", id), nil, token, nil)
}

func (c *Client) AdminCreateTask(ctx context.Context, token string, projectID int, t model.Task) (model.Task, error) {
	var out model.Task
	err := c.send(ctx, http.MethodPost, fmt.Sprintf("/api/admin/projects/%d/tasks", projectID), t, token, &out)
	return out, err
}

func (c *Client) AdminUpdateTask(ctx context.Context, token string, id int, t model.Task) (model.Task, error) {
	var out model.Task
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/tasks/%d", id), t, token, &out)
	return out, err
}

func (c *Client) AdminDeleteTask(ctx context.Context, token string, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/tasks/%d", id), nil, token, nil)
}

func (c *Client) AdminTickets(ctx context.Context, token string) ([]model.Ticket, error) {
	var out []model.Ticket
	err := c.get(ctx, "/api/admin/tickets", token, &out)
	return out, err
}

func (c *Client) AdminTicket(ctx context.Context, token string, id int) (model.Ticket, error) {
	var out model.Ticket
	err := c.get(ctx, fmt.Sprintf("/api/admin/tickets/%d", id), token, &out)
	return out, err
}

func (c *Client) AdminUpdateTicket(ctx context.Context, token string, id int, t model.Ticket) (model.Ticket, error) {
	var out model.Ticket
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/admin/tickets/%d", id), t, token, &out)
	return out, err
}

func (c *Client) AdminAddComment(ctx context.Context, token string, ticketID int, comment model.Comment) (model.Comment, error) {
	var out model.Comment
	err := c.send(ctx, http.MethodPost, fmt.Sprintf("/api/admin/tickets/%d/comments", ticketID), comment, token, &out)
	return out, err
}

func (c *Client) AdminInvoices(ctx context.Context, token string) ([]model.Invoice, error) {
	var out []model.Invoice
	err := c.get(ctx, "/api/admin/invoices", token, &out)
	return out, err
}

func (c *Client) AdminDocuments(ctx context.Context, token string) ([]model.Document, error) {
	var out []model.Document
	err := c.get(ctx, "/api/admin/documents", token, &out)
	return out, err
}
