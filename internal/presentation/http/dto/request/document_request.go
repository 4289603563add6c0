package request

// LineItemRequest is one document line as submitted by the client
type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// TaxRequest is the tax configuration of a submitted draft
type TaxRequest struct {
	Enabled     bool    `json:"enabled"`
	RatePercent float64 `json:"rate_percent"`
}

// DiscountRequest is the discount configuration of a submitted draft
type DiscountRequest struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount"`
}

// BusinessDetailsRequest is the sender block of a submitted draft
type BusinessDetailsRequest struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
}

// ClientDetailsRequest is the recipient block of a submitted draft
type ClientDetailsRequest struct {
	ClientName string `json:"client_name"`
}

// DocumentDraftRequest is a full draft submitted for totals or export
type DocumentDraftRequest struct {
	DocumentType string                 `json:"document_type" binding:"required,oneof=invoice quotation"`
	Currency     string                 `json:"currency" binding:"required,min=2,max=10"`
	Number       string                 `json:"number"`
	IssueDate    string                 `json:"issue_date"`
	From         BusinessDetailsRequest `json:"from"`
	To           ClientDetailsRequest   `json:"to"`
	Items        []LineItemRequest      `json:"items" binding:"required,min=1,dive"`
	Tax          TaxRequest             `json:"tax"`
	Discount     DiscountRequest        `json:"discount"`
}
