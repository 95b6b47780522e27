package model

// User is the authenticated profile returned by the upstream auth endpoints.
// Client-portal users carry a client reference; admin users carry role "admin".
type User struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role,omitempty"`
	ClientID   int    `json:"client_id,omitempty"`
	ClientName string `json:"client_name,omitempty"`
	SLALevel   string `json:"sla_level,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Client is a consultancy customer managed from the admin portal.
type Client struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	RUT       string `json:"rut,omitempty"`
	Contact   string `json:"contact,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	SLALevel  string `json:"sla_level,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ClientUser is a portal login belonging to a client.
type ClientUser struct {
	ID         int    `json:"id"`
	ClientID   int    `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at,omitempty"`
}
