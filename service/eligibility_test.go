package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scheme-finder/catalog"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func eduScheme() catalog.Scheme {
	return catalog.Scheme{
		ID:            "sbi_edu_1",
		Name:          "SBI Student Loan Scheme",
		BankName:      "State Bank of India (SBI)",
		Category:      "Education Loans",
		LoanAmountMin: 50000,
		LoanAmountMax: 15000000,
		MinAge:        intPtr(18),
		MaxAge:        intPtr(35),
		Gender:        "Any",
		SuitableFor:   []string{"Education"},
	}
}

func TestEligibleAgeBelowMinimum(t *testing.T) {
	c := Criteria{Age: intPtr(17)}
	assert.False(t, Eligible(eduScheme(), c))
}

func TestEligibleAgeAboveMaximum(t *testing.T) {
	c := Criteria{Age: intPtr(50), Purpose: "Education Loans"}
	assert.False(t, Eligible(eduScheme(), c))
}

func TestEligibleAgeIgnoredWithoutBounds(t *testing.T) {
	s := eduScheme()
	s.MinAge = nil
	s.MaxAge = nil
	assert.True(t, Eligible(s, Criteria{Age: intPtr(99)}))
	assert.True(t, Eligible(s, Criteria{Age: intPtr(18)}))
}

func TestEligibleAbsentAgeSkipsCheck(t *testing.T) {
	assert.True(t, Eligible(eduScheme(), Criteria{}))
}

func TestEligibleIncomeFloor(t *testing.T) {
	s := eduScheme()
	s.MinIncome = int64Ptr(25000)

	assert.False(t, Eligible(s, Criteria{Income: int64Ptr(20000)}))
	assert.True(t, Eligible(s, Criteria{Income: int64Ptr(25000)}))
	assert.True(t, Eligible(s, Criteria{}), "absent income skips the check")
}

func TestEligibleIncomeCeiling(t *testing.T) {
	s := eduScheme()
	s.MaxIncome = int64Ptr(50000)

	assert.False(t, Eligible(s, Criteria{Income: int64Ptr(60000)}))
	assert.True(t, Eligible(s, Criteria{Income: int64Ptr(40000)}))
}

func TestEligibleLoanAmountRange(t *testing.T) {
	s := eduScheme()

	assert.True(t, Eligible(s, Criteria{LoanAmount: 0}), "zero means no loan requested")
	assert.True(t, Eligible(s, Criteria{LoanAmount: 100000}))
	assert.False(t, Eligible(s, Criteria{LoanAmount: 10000}), "below scheme minimum")
	assert.False(t, Eligible(s, Criteria{LoanAmount: 20000000}), "above scheme maximum")
}

func TestEligibleLoanAmountAgainstNonLoanScheme(t *testing.T) {
	s := eduScheme()
	s.LoanAmountMin = 0
	s.LoanAmountMax = 0
	assert.False(t, Eligible(s, Criteria{LoanAmount: 100000}))
}

func TestEligiblePurposeNormalizedExact(t *testing.T) {
	s := eduScheme()

	assert.True(t, Eligible(s, Criteria{Purpose: "Education Loans"}))
	assert.True(t, Eligible(s, Criteria{Purpose: "education-loans"}))
	assert.True(t, Eligible(s, Criteria{Purpose: "EDUCATION_LOANS"}))
	assert.False(t, Eligible(s, Criteria{Purpose: "Home Loans"}))
	assert.False(t, Eligible(s, Criteria{Purpose: "Education"}), "prefix is not an exact match")
}

func TestEligibleTagPurposeMatchesSuitabilityTags(t *testing.T) {
	s := eduScheme()
	s.SuitableFor = []string{"Girl Child", "Education"}

	assert.True(t, Eligible(s, Criteria{Purpose: "girl child"}))
	assert.True(t, Eligible(s, Criteria{Purpose: "Girl-Child"}))

	s.SuitableFor = []string{"Education"}
	assert.False(t, Eligible(s, Criteria{Purpose: "girl child"}))
}

func TestEligibleBankExactMatch(t *testing.T) {
	s := eduScheme()

	assert.True(t, Eligible(s, Criteria{Bank: "State Bank of India (SBI)"}))
	assert.False(t, Eligible(s, Criteria{Bank: "state bank of india (sbi)"}), "bank match is case-sensitive")
	assert.False(t, Eligible(s, Criteria{Bank: "HDFC Bank"}))
}

func TestEligibleGenderRestriction(t *testing.T) {
	s := eduScheme()
	s.Gender = "Female"

	assert.False(t, Eligible(s, Criteria{Gender: "Male"}))
	assert.True(t, Eligible(s, Criteria{Gender: "Female"}))
	assert.True(t, Eligible(s, Criteria{}), "absent gender skips the check")

	s.Gender = "Any"
	assert.True(t, Eligible(s, Criteria{Gender: "Male"}))
}

func TestEligibleCategoryList(t *testing.T) {
	s := eduScheme()
	s.EligibleCategories = []string{"SC", "ST"}

	assert.True(t, Eligible(s, Criteria{Category: "SC"}))
	assert.False(t, Eligible(s, Criteria{Category: "General"}))
	assert.True(t, Eligible(s, Criteria{}), "absent category skips the check")

	s.EligibleCategories = []string{"All"}
	assert.True(t, Eligible(s, Criteria{Category: "General"}))

	s.EligibleCategories = nil
	assert.True(t, Eligible(s, Criteria{Category: "General"}))
}

func TestEligibleOccupationList(t *testing.T) {
	s := eduScheme()
	s.EligibleOccupations = []string{"Salaried"}

	assert.False(t, Eligible(s, Criteria{Occupation: "Self-employed"}))
	assert.True(t, Eligible(s, Criteria{Occupation: "Salaried"}))

	s.EligibleOccupations = []string{"Any"}
	assert.True(t, Eligible(s, Criteria{Occupation: "Farmer"}))

	s.EligibleOccupations = nil
	assert.True(t, Eligible(s, Criteria{Occupation: "Farmer"}))
}
