package model

import "time"

// Report rows arrive fully computed from the backend; the gateway only
// filters and sorts them for display.

// LoanRow is one entry in the active/overdue loans report.
type LoanRow struct {
	LoanID     int64     `json:"loanId"`
	ToolName   string    `json:"toolName"`
	ClientName string    `json:"clientName"`
	ClientRUT  string    `json:"clientRut"`
	StartDate  time.Time `json:"startDate"`
	DueDate    time.Time `json:"dueDate"`
	Overdue    bool      `json:"overdue"`
	FineToDate int64     `json:"fineToDate"`
}

// OverdueClientRow is one entry in the clients-with-fines report.
type OverdueClientRow struct {
	ClientID     int64  `json:"clientId"`
	ClientName   string `json:"clientName"`
	ClientRUT    string `json:"clientRut"`
	OverdueLoans int    `json:"overdueLoans"`
	TotalFines   int64  `json:"totalFines"`
}

// TopToolRow is one entry in the most-rented-tools ranking.
type TopToolRow struct {
	ToolID    int64  `json:"toolId"`
	ToolName  string `json:"toolName"`
	Category  string `json:"category"`
	LoanCount int    `json:"loanCount"`
}

// ClientStatusRow summarizes a single client's standing.
type ClientStatusRow struct {
	ClientID    int64        `json:"clientId"`
	ClientName  string       `json:"clientName"`
	Status      ClientStatus `json:"status"`
	ActiveLoans int          `json:"activeLoans"`
	TotalFines  int64        `json:"totalFines"`
}

// Dashboard bundles the four report views fetched together for the
// landing page.
type Dashboard struct {
	Loans          []LoanRow          `json:"loans"`
	OverdueClients []OverdueClientRow `json:"overdueClients"`
	TopTools       []TopToolRow       `json:"topTools"`
	ClientStatuses []ClientStatusRow  `json:"clientStatuses"`
}
