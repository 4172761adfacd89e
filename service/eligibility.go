package service

import (
	"scheme-finder/catalog"
	"scheme-finder/utils"
)

// Eligible decides whether one scheme passes all declared constraints for the
// given criteria. Every check is an independent predicate; a check whose
// criteria value or scheme constraint is absent is skipped, never a
// rejection. Pure function, no side effects.
func Eligible(s catalog.Scheme, c Criteria) bool {
	return ageEligible(s, c) &&
		incomeEligible(s, c) &&
		loanAmountEligible(s, c) &&
		purposeEligible(s, c) &&
		bankEligible(s, c) &&
		genderEligible(s, c) &&
		categoryEligible(s, c) &&
		occupationEligible(s, c)
}

func ageEligible(s catalog.Scheme, c Criteria) bool {
	if c.Age == nil {
		return true
	}
	if s.MinAge != nil && *c.Age < *s.MinAge {
		return false
	}
	if s.MaxAge != nil && *c.Age > *s.MaxAge {
		return false
	}
	return true
}

func incomeEligible(s catalog.Scheme, c Criteria) bool {
	if c.Income == nil {
		return true
	}
	if s.MinIncome != nil && *c.Income < *s.MinIncome {
		return false
	}
	if s.MaxIncome != nil && *c.Income > *s.MaxIncome {
		return false
	}
	return true
}

// loanAmountEligible only applies when the user asked for a nonzero amount.
// Schemes that offer no loan at all then fail the range check.
func loanAmountEligible(s catalog.Scheme, c Criteria) bool {
	if c.LoanAmount == 0 {
		return true
	}
	return c.LoanAmount >= s.LoanAmountMin && c.LoanAmount <= s.LoanAmountMax
}

// purposeEligible matches tag-category purposes ("girl child", "women", ...)
// against the scheme's suitability tags, and everything else against the
// primary category by normalized-exact comparison.
func purposeEligible(s catalog.Scheme, c Criteria) bool {
	if c.Purpose == "" {
		return true
	}
	if c.IsTagPurpose() {
		return utils.ContainsNormalized(s.SuitableFor, c.Purpose)
	}
	return utils.NormalizeKey(s.Category) == c.PurposeKey()
}

// bankEligible is an exact, case-sensitive name match.
func bankEligible(s catalog.Scheme, c Criteria) bool {
	if c.Bank == "" {
		return true
	}
	return s.BankName == c.Bank
}

func genderEligible(s catalog.Scheme, c Criteria) bool {
	if c.Gender == "" || s.Gender == "" || s.Gender == "Any" {
		return true
	}
	return s.Gender == c.Gender
}

func categoryEligible(s catalog.Scheme, c Criteria) bool {
	if c.Category == "" || len(s.EligibleCategories) == 0 {
		return true
	}
	for _, entry := range s.EligibleCategories {
		if entry == "All" || entry == c.Category {
			return true
		}
	}
	return false
}

func occupationEligible(s catalog.Scheme, c Criteria) bool {
	if c.Occupation == "" || len(s.EligibleOccupations) == 0 {
		return true
	}
	for _, entry := range s.EligibleOccupations {
		if entry == "Any" || entry == c.Occupation {
			return true
		}
	}
	return false
}
