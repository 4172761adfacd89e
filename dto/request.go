package dto

import (
	"errors"
	"strings"
)

// Validation errors surfaced verbatim to API callers.
var (
	ErrAgeOutOfRange       = errors.New("Age must be between 18 and 100")
	ErrPersonalizeAgeRange = errors.New("Age must be between 1 and 120")
	ErrNegativeIncome      = errors.New("Income must not be negative")
	ErrPurposeRequired     = errors.New("Loan purpose is required")
	ErrNoSchemeIDs         = errors.New("At least one scheme ID is required for comparison")
	ErrTooManySchemeIDs    = errors.New("Cannot compare more than 5 schemes at once")
	ErrBankIDRequired      = errors.New("Bank ID is required")
)

// FilterRequest is the body of POST /api/filter. Age and income are optional
// so that a purpose-only request can take the category shortcut, but when
// present they are validated.
type FilterRequest struct {
	Age        *int   `json:"age"`
	Income     *int64 `json:"income"`
	Purpose    string `json:"purpose"`
	LoanAmount int64  `json:"loanAmount"`
	Bank       string `json:"bank"`
	Gender     string `json:"gender"`
	Category   string `json:"category"`
	Occupation string `json:"occupation"`
	Limit      int    `json:"limit"`
}

// Validate checks field ranges before any catalog traversal.
func (r *FilterRequest) Validate() error {
	if strings.TrimSpace(r.Purpose) == "" {
		return ErrPurposeRequired
	}
	if r.Age != nil && (*r.Age < 18 || *r.Age > 100) {
		return ErrAgeOutOfRange
	}
	if r.Income != nil && *r.Income < 0 {
		return ErrNegativeIncome
	}
	return nil
}

// QuickFilterRequest is the body of POST /api/quick-filter, the standalone
// purpose-and-loan-amount flow.
type QuickFilterRequest struct {
	Age        int    `json:"age"`
	Purpose    string `json:"purpose"`
	LoanAmount int64  `json:"loanAmount"`
	Limit      int    `json:"limit"`
}

// Validate checks field ranges before any catalog traversal.
func (r *QuickFilterRequest) Validate() error {
	if r.Age < 18 || r.Age > 100 {
		return ErrAgeOutOfRange
	}
	if strings.TrimSpace(r.Purpose) == "" {
		return ErrPurposeRequired
	}
	return nil
}

// PersonalizeRequest is the body of POST /api/personalize. This flow selects
// within one bank and deliberately admits ages down to 1, since child-oriented
// schemes are picked by a guardian.
type PersonalizeRequest struct {
	BankID        string `json:"bankId"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Category      string `json:"category"`
	MonthlyIncome *int64 `json:"monthlyIncome"`
	Occupation    string `json:"occupation"`
	SavingsGoal   string `json:"savingsGoal"`
}

// Validate checks field ranges before any catalog traversal.
func (r *PersonalizeRequest) Validate() error {
	if strings.TrimSpace(r.BankID) == "" {
		return ErrBankIDRequired
	}
	if r.Age < 1 || r.Age > 120 {
		return ErrPersonalizeAgeRange
	}
	if r.MonthlyIncome != nil && *r.MonthlyIncome < 0 {
		return ErrNegativeIncome
	}
	return nil
}

// CompareRequest is the body of POST /api/compare.
type CompareRequest struct {
	SchemeIDs []string `json:"schemeIds"`
}

// Validate enforces the comparison cardinality before any catalog read.
func (r *CompareRequest) Validate() error {
	if len(r.SchemeIDs) == 0 {
		return ErrNoSchemeIDs
	}
	if len(r.SchemeIDs) > 5 {
		return ErrTooManySchemeIDs
	}
	return nil
}
