package catalog

import (
	"strings"

	"scheme-finder/utils"
)

// rawScheme mirrors the bundled data file, which accumulated alias spellings
// and mixed types over time (numbers as currency strings, "No upper limit" in
// an age field). Polymorphic fields decode as any and are coerced below.
type rawScheme struct {
	ID          string `json:"id"`
	SchemeName  string `json:"scheme_name"`
	Name        string `json:"name"`
	SchemeTitle string `json:"scheme_title"`
	BankName    string `json:"bank_name"`
	Category    string `json:"scheme_category"`
	CategoryAlt string `json:"category"`
	Description string `json:"description"`
	Summary     string `json:"summary"`

	InterestRateRange string `json:"interest_rate_range"`
	InterestRateAlt   string `json:"interest_rate"`

	LoanAmountMin any `json:"loan_amount_min"`
	LoanAmountMax any `json:"loan_amount_max"`

	MinimumAge any `json:"minimum_age"`
	MinAgeAlt  any `json:"min_age"`
	MaximumAge any `json:"maximum_age"`
	MaxAgeAlt  any `json:"max_age"`

	MinimumIncomeRequired any `json:"minimum_income_required"`
	MaximumIncomeAllowed  any `json:"maximum_income_allowed"`

	Gender              string   `json:"gender"`
	EligibilityCriteria []string `json:"eligibility_criteria"`
	EligibleOccupations []string `json:"eligible_occupations"`
	SuitableFor         []string `json:"suitable_for"`

	Benefits           []string `json:"benefits"`
	Pros               []string `json:"pros"`
	RequiredDocuments  []string `json:"required_documents"`
	ApplicationProcess []string `json:"application_process"`

	Contact Contact `json:"bank_contact"`
}

// canonicalize resolves aliases and coerces loose types into one Scheme.
func (r rawScheme) canonicalize() Scheme {
	s := Scheme{
		ID:                  r.ID,
		Name:                firstNonEmpty(r.SchemeName, r.Name, r.SchemeTitle),
		BankName:            r.BankName,
		Category:            firstNonEmpty(r.Category, r.CategoryAlt),
		Description:         firstNonEmpty(r.Description, r.Summary),
		InterestRateRange:   firstNonEmpty(r.InterestRateRange, r.InterestRateAlt),
		Gender:              firstNonEmpty(r.Gender, "Any"),
		EligibleCategories:  r.EligibilityCriteria,
		EligibleOccupations: r.EligibleOccupations,
		SuitableFor:         r.SuitableFor,
		Benefits:            append([]string(nil), firstNonEmptyList(r.Benefits, r.Pros)...),
		RequiredDocuments:   r.RequiredDocuments,
		ApplicationProcess:  r.ApplicationProcess,
		Contact:             r.Contact,
	}

	s.InterestRateMin, s.InterestRateMax = utils.ParseInterestRate(s.InterestRateRange)
	s.LoanAmountMin = coerceAmount(r.LoanAmountMin)
	s.LoanAmountMax = coerceAmount(r.LoanAmountMax)
	s.MinAge = coerceAge(r.MinimumAge, r.MinAgeAlt)
	s.MaxAge = coerceAge(r.MaximumAge, r.MaxAgeAlt)
	s.MinIncome = coerceIncome(r.MinimumIncomeRequired)
	s.MaxIncome = coerceIncome(r.MaximumIncomeAllowed)
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

// coerceAmount accepts a JSON number or a currency string.
func coerceAmount(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case string:
		return utils.ParseCurrency(v)
	default:
		return 0
	}
}

// coerceAge returns the first usable bound. Sentinels like "No upper limit"
// carry no digits and mean the bound is absent.
func coerceAge(values ...any) *int {
	for _, value := range values {
		switch v := value.(type) {
		case float64:
			age := int(v)
			return &age
		case string:
			if parsed := utils.ParseCurrency(v); parsed > 0 {
				age := int(parsed)
				return &age
			}
		}
	}
	return nil
}

// coerceIncome treats "No minimum income required" (and any other digit-free
// text) as an absent requirement rather than a zero threshold.
func coerceIncome(value any) *int64 {
	switch v := value.(type) {
	case float64:
		income := int64(v)
		return &income
	case string:
		if parsed := utils.ParseCurrency(v); parsed > 0 {
			return &parsed
		}
	}
	return nil
}
