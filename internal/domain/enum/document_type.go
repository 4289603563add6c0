package enum

// DocumentType represents the kind of document being drafted
type DocumentType string

const (
	DocumentTypeInvoice   DocumentType = "invoice"
	DocumentTypeQuotation DocumentType = "quotation"
)

func (d DocumentType) String() string {
	return string(d)
}

// IsValid reports whether d is a known document type
func (d DocumentType) IsValid() bool {
	return d == DocumentTypeInvoice || d == DocumentTypeQuotation
}

// Title returns the heading printed on the exported document
func (d DocumentType) Title() string {
	if d == DocumentTypeQuotation {
		return "QUOTATION"
	}
	return "INVOICE"
}

// DefaultNumber returns the starting document number for the type
func (d DocumentType) DefaultNumber() string {
	if d == DocumentTypeQuotation {
		return "QUOTE-001"
	}
	return "INV-001"
}

// ExportFileName returns the download file name for the type
func (d DocumentType) ExportFileName() string {
	if d == DocumentTypeQuotation {
		return "quotation.pdf"
	}
	return "invoice.pdf"
}
