package models

// Expense is a single reimbursement claim. Net is zero when the upstream omits it.
type Expense struct {
	Year             int     `json:"ano" yaml:"ano"`
	Month            int     `json:"mes" yaml:"mes"`
	ExpenseType      string  `json:"tipoDespesa,omitempty" yaml:"tipoDespesa,omitempty"`
	DocumentCode     int     `json:"codDocumento,omitempty" yaml:"codDocumento,omitempty"`
	DocumentType     string  `json:"tipoDocumento,omitempty" yaml:"tipoDocumento,omitempty"`
	DocumentTypeCode int     `json:"codTipoDocumento,omitempty" yaml:"codTipoDocumento,omitempty"`
	DocumentDate     string  `json:"dataDocumento,omitempty" yaml:"dataDocumento,omitempty"`
	DocumentNumber   string  `json:"numDocumento,omitempty" yaml:"numDocumento,omitempty"`
	Gross            float64 `json:"valorDocumento" yaml:"valorDocumento"`
	DocumentURL      string  `json:"urlDocumento,omitempty" yaml:"urlDocumento,omitempty"`
	SupplierName     string  `json:"nomeFornecedor,omitempty" yaml:"nomeFornecedor,omitempty"`
	SupplierTaxID    string  `json:"cnpjCpfFornecedor,omitempty" yaml:"cnpjCpfFornecedor,omitempty"`
	Net              float64 `json:"valorLiquido" yaml:"valorLiquido"`
	Disallowed       float64 `json:"valorGlosa" yaml:"valorGlosa"`
	Reimbursement    string  `json:"numRessarcimento,omitempty" yaml:"numRessarcimento,omitempty"`
	BatchCode        int     `json:"codLote,omitempty" yaml:"codLote,omitempty"`
	Installment      int     `json:"parcela,omitempty" yaml:"parcela,omitempty"`
}

type ExpensesGetResponse struct {
	Expenses []Expense `json:"expenses" yaml:"expenses"`
}
