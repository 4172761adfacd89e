package catalog

// Contact holds a bank's contact channels for a scheme.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	SMS     string `json:"sms,omitempty"`
}

// Scheme is the canonical catalog entry for one financial product. The raw
// data file uses several alias spellings per field; the adapter resolves them
// once at load so nothing downstream ever sees the aliases.
type Scheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BankName    string `json:"bank_name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`

	InterestRateRange string  `json:"interest_rate_range,omitempty"`
	InterestRateMin   float64 `json:"interest_rate_min,omitempty"`
	InterestRateMax   float64 `json:"interest_rate_max,omitempty"`

	LoanAmountMin int64 `json:"loan_amount_min,omitempty"`
	LoanAmountMax int64 `json:"loan_amount_max,omitempty"`

	MinAge    *int   `json:"min_age,omitempty"`
	MaxAge    *int   `json:"max_age,omitempty"`
	MinIncome *int64 `json:"min_income,omitempty"`
	MaxIncome *int64 `json:"max_income,omitempty"`

	Gender              string   `json:"gender,omitempty"`
	EligibleCategories  []string `json:"eligible_categories,omitempty"`
	EligibleOccupations []string `json:"eligible_occupations,omitempty"`
	SuitableFor         []string `json:"suitable_for,omitempty"`

	Benefits           []string `json:"benefits,omitempty"`
	RequiredDocuments  []string `json:"required_documents,omitempty"`
	ApplicationProcess []string `json:"application_process,omitempty"`
	Contact            Contact  `json:"contact,omitempty"`
}
