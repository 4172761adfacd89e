package service

import (
	"scheme-finder/dto"
	"scheme-finder/utils"
)

// Criteria is the normalized, typed form of a user's self-reported
// attributes. Optional fields use pointers (or the empty string) as explicit
// absent markers so the eligibility predicate can skip them instead of
// treating them as restrictive zero values.
type Criteria struct {
	Age        *int
	Income     *int64
	LoanAmount int64
	Purpose    string
	Bank       string
	Gender     string
	Category   string
	Occupation string
}

// tagCategories are purpose values that match against a scheme's suitability
// tags instead of its primary category.
var tagCategories = map[string]struct{}{
	"singlechild":   {},
	"girlchild":     {},
	"seniorcitizen": {},
	"women":         {},
}

// PurposeKey returns the normalized comparison key for the purpose.
func (c Criteria) PurposeKey() string {
	return utils.NormalizeKey(c.Purpose)
}

// IsTagPurpose reports whether the purpose targets suitability tags rather
// than the primary category.
func (c Criteria) IsTagPurpose() bool {
	_, ok := tagCategories[c.PurposeKey()]
	return ok
}

// CategoryOnly reports whether the criteria consist solely of a purpose, with
// no other field present. Such requests take the unscored category shortcut.
func (c Criteria) CategoryOnly() bool {
	return c.Purpose != "" &&
		c.Age == nil && c.Income == nil && c.LoanAmount == 0 &&
		c.Bank == "" && c.Gender == "" && c.Category == "" && c.Occupation == ""
}

// criteriaFromFilter builds normalized criteria from a validated filter
// request. Income is annual in this flow.
func criteriaFromFilter(req *dto.FilterRequest) Criteria {
	return Criteria{
		Age:        req.Age,
		Income:     req.Income,
		LoanAmount: req.LoanAmount,
		Purpose:    req.Purpose,
		Bank:       req.Bank,
		Gender:     req.Gender,
		Category:   req.Category,
		Occupation: req.Occupation,
	}
}

// criteriaFromQuickFilter builds normalized criteria from a validated
// quick-filter request.
func criteriaFromQuickFilter(req *dto.QuickFilterRequest) Criteria {
	age := req.Age
	return Criteria{
		Age:        &age,
		Purpose:    req.Purpose,
		LoanAmount: req.LoanAmount,
	}
}

// criteriaFromPersonalize builds normalized criteria from a validated
// personalization request. Income is monthly in this flow and stays absent
// when the caller never supplied it.
func criteriaFromPersonalize(req *dto.PersonalizeRequest) Criteria {
	age := req.Age
	return Criteria{
		Age:        &age,
		Income:     req.MonthlyIncome,
		Gender:     req.Gender,
		Category:   req.Category,
		Occupation: req.Occupation,
	}
}
