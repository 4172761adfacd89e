package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureData = `{
  "schemes": [
    {
      "id": "sbi_edu_1",
      "scheme_name": "SBI Student Loan Scheme",
      "bank_name": "State Bank of India (SBI)",
      "scheme_category": "Education Loans",
      "interest_rate_range": "8.15% - 11.15%",
      "loan_amount_min": "₹50,000",
      "loan_amount_max": "₹1,50,00,000",
      "minimum_age": 18,
      "maximum_age": 35,
      "minimum_income_required": "No minimum income required",
      "gender": "Any",
      "eligibility_criteria": ["All"],
      "suitable_for": ["Education"]
    },
    {
      "id": "hdfc_personal_1",
      "name": "HDFC Personal Loan",
      "bank_name": "HDFC Bank",
      "scheme_category": "Personal Loans",
      "interest_rate_range": "10.50% - 21.00%",
      "loan_amount_min": "₹50,000",
      "loan_amount_max": "₹40,00,000",
      "min_age": 21,
      "max_age": 60,
      "minimum_income_required": "₹25,000 per month",
      "gender": "Any"
    },
    {
      "id": "pnb_scss_1",
      "scheme_title": "PNB Senior Citizen Savings Scheme",
      "bank_name": "Punjab National Bank (PNB)",
      "scheme_category": "Savings Schemes",
      "interest_rate_range": "8.2%",
      "minimum_age": 60,
      "maximum_age": "No upper limit",
      "minimum_income_required": "No minimum income required",
      "gender": "Any"
    }
  ]
}`

func writeFixture(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemes.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cat, err := Load(writeFixture(t, fixtureData))
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []string{"HDFC Bank", "Punjab National Bank (PNB)", "State Bank of India (SBI)"}, cat.Banks())
	assert.Equal(t, []string{"Education Loans", "Personal Loans", "Savings Schemes"}, cat.Categories())
}

func TestLoadResolvesAliases(t *testing.T) {
	cat, err := Load(writeFixture(t, fixtureData))
	require.NoError(t, err)

	edu, ok := cat.ByID("sbi_edu_1")
	require.True(t, ok)
	assert.Equal(t, "SBI Student Loan Scheme", edu.Name)
	assert.Equal(t, int64(50000), edu.LoanAmountMin)
	assert.Equal(t, int64(15000000), edu.LoanAmountMax)
	assert.Equal(t, 8.15, edu.InterestRateMin)
	assert.Equal(t, 11.15, edu.InterestRateMax)
	require.NotNil(t, edu.MinAge)
	assert.Equal(t, 18, *edu.MinAge)
	assert.Nil(t, edu.MinIncome, "digit-free income text means no requirement")

	personal, ok := cat.ByID("hdfc_personal_1")
	require.True(t, ok)
	assert.Equal(t, "HDFC Personal Loan", personal.Name, "name alias resolved")
	require.NotNil(t, personal.MinAge)
	assert.Equal(t, 21, *personal.MinAge)
	require.NotNil(t, personal.MinIncome)
	assert.Equal(t, int64(25000), *personal.MinIncome)

	scss, ok := cat.ByID("pnb_scss_1")
	require.True(t, ok)
	assert.Equal(t, "PNB Senior Citizen Savings Scheme", scss.Name, "scheme_title alias resolved")
	assert.Nil(t, scss.MaxAge, "no upper limit means absent bound")
	assert.Equal(t, int64(0), scss.LoanAmountMax, "savings scheme offers no loan")
}

func TestLoadRejectsInvalidData(t *testing.T) {
	_, err := Load(writeFixture(t, `{"schemes": []}`))
	assert.Error(t, err, "empty catalog fails schema validation")

	_, err = Load(writeFixture(t, `{"schemes": [{"bank_name": "SBI"}]}`))
	assert.Error(t, err, "missing id fails schema validation")

	_, err = Load(writeFixture(t, `not json`))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Scheme{
		{ID: "dup", BankName: "SBI"},
		{ID: "dup", BankName: "HDFC Bank"},
	})
	assert.ErrorContains(t, err, "duplicate scheme id")
}

func TestShortCode(t *testing.T) {
	assert.Equal(t, "SBI", ShortCode("State Bank of India (SBI)"))
	assert.Equal(t, "", ShortCode("HDFC Bank"))
}

func TestResolveBank(t *testing.T) {
	cat, err := Load(writeFixture(t, fixtureData))
	require.NoError(t, err)

	bank, ok := cat.ResolveBank("SBI")
	require.True(t, ok)
	assert.Equal(t, "State Bank of India (SBI)", bank)

	bank, ok = cat.ResolveBank("hdfc bank")
	require.True(t, ok)
	assert.Equal(t, "HDFC Bank", bank)

	_, ok = cat.ResolveBank("Unknown Bank")
	assert.False(t, ok)
}

func TestByBank(t *testing.T) {
	cat, err := Load(writeFixture(t, fixtureData))
	require.NoError(t, err)

	schemes, ok := cat.ByBank("HDFC Bank")
	require.True(t, ok)
	assert.Len(t, schemes, 1)

	_, ok = cat.ByBank("Unknown Bank")
	assert.False(t, ok)
}
