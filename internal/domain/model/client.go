package model

// ClientStatus is the rental standing of a client as computed by the
// backend (a client with overdue loans or unpaid fines is restricted).
type ClientStatus string

const (
	ClientStatusActive     ClientStatus = "active"
	ClientStatusRestricted ClientStatus = "restricted"
)

// Client is a rental client. RUT and phone formats are validated by the
// backend; the gateway treats them as opaque strings.
type Client struct {
	ID     int64        `json:"id"`
	RUT    string       `json:"rut"`
	Name   string       `json:"name"`
	Phone  string       `json:"phone"`
	Email  string       `json:"email"`
	Status ClientStatus `json:"status"`
}

// CreateClientRequest is forwarded to the backend verbatim.
type CreateClientRequest struct {
	RUT   string `json:"rut"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateClientRequest carries optional fields; nil means "leave as is".
type UpdateClientRequest struct {
	Name   *string       `json:"name,omitempty"`
	Phone  *string       `json:"phone,omitempty"`
	Email  *string       `json:"email,omitempty"`
	Status *ClientStatus `json:"status,omitempty"`
}
