package dto

import (
	"scheme-finder/catalog"
)

// Error labels returned in ErrorResponse.Error.
const (
	ErrorInvalidInput    = "INVALID_INPUT"
	ErrorNotFound        = "NOT_FOUND"
	ErrorDataUnavailable = "DATA_UNAVAILABLE"
	ErrorInternal        = "INTERNAL_ERROR"
)

// ErrorResponse is the structured error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// MatchResult decorates a scheme with per-request ranking data. It is a copy;
// catalog entries are never written after load.
type MatchResult struct {
	catalog.Scheme
	MatchScore *float64 `json:"matchScore,omitempty"`
	BestMatch  bool     `json:"bestMatch,omitempty"`
}

// CriteriaEcho mirrors the normalized criteria back to the caller.
type CriteriaEcho struct {
	Age        *int   `json:"age,omitempty"`
	Income     *int64 `json:"income,omitempty"`
	Purpose    string `json:"purpose,omitempty"`
	LoanAmount int64  `json:"loanAmount,omitempty"`
	Bank       string `json:"bank,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Category   string `json:"category,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

// FilterResponse is returned by the filter and quick-filter endpoints.
type FilterResponse struct {
	Criteria       CriteriaEcho  `json:"criteria"`
	TotalSchemes   int           `json:"totalSchemes"`
	MatchedSchemes int           `json:"matchedSchemes"`
	Schemes        []MatchResult `json:"schemes"`
}

// PersonalizeResponse is returned by the personalization endpoint.
type PersonalizeResponse struct {
	Bank           string          `json:"bank"`
	TotalSchemes   int             `json:"totalSchemes"`
	MatchedSchemes int             `json:"matchedSchemes"`
	Schemes        []MatchResult   `json:"schemes"`
	UserCriteria   PersonalizeEcho `json:"userCriteria"`
}

// PersonalizeEcho mirrors the personalization criteria back to the caller.
type PersonalizeEcho struct {
	Age           int    `json:"age"`
	Gender        string `json:"gender,omitempty"`
	Category      string `json:"category,omitempty"`
	MonthlyIncome *int64 `json:"monthlyIncome,omitempty"`
	Occupation    string `json:"occupation,omitempty"`
	SavingsGoal   string `json:"savingsGoal,omitempty"`
}

// SchemeListResponse is returned by the unranked listing endpoint.
type SchemeListResponse struct {
	Total    int              `json:"total"`
	Filtered int              `json:"filtered"`
	Returned int              `json:"returned"`
	Schemes  []catalog.Scheme `json:"schemes"`
}

// SchemeResponse wraps a single catalog entry.
type SchemeResponse struct {
	Scheme catalog.Scheme `json:"scheme"`
}

// BanksResponse lists the distinct bank names in the catalog.
type BanksResponse struct {
	Count int      `json:"count"`
	Banks []string `json:"banks"`
}

// BankSchemesResponse lists one bank's schemes in catalog order.
type BankSchemesResponse struct {
	Bank    string           `json:"bank"`
	Count   int              `json:"count"`
	Schemes []catalog.Scheme `json:"schemes"`
}

// CategoriesResponse lists the distinct category labels in the catalog.
type CategoriesResponse struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

// SearchResponse is returned by the fuzzy name search endpoint.
type SearchResponse struct {
	Query   string           `json:"query"`
	Count   int              `json:"count"`
	Schemes []catalog.Scheme `json:"schemes"`
}

// CompareResponse returns the resolved schemes verbatim.
type CompareResponse struct {
	ComparisonCount int              `json:"comparisonCount"`
	Schemes         []catalog.Scheme `json:"schemes"`
}
