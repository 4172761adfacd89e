package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestFilterRequestValidate(t *testing.T) {
	valid := FilterRequest{Age: intPtr(25), Income: int64Ptr(500000), Purpose: "Education Loans"}
	assert.NoError(t, valid.Validate())

	purposeOnly := FilterRequest{Purpose: "Home Loans"}
	assert.NoError(t, purposeOnly.Validate())

	noPurpose := FilterRequest{Age: intPtr(25)}
	assert.ErrorIs(t, noPurpose.Validate(), ErrPurposeRequired)

	underAge := FilterRequest{Age: intPtr(10), Purpose: "Personal Loans"}
	assert.ErrorIs(t, underAge.Validate(), ErrAgeOutOfRange)

	overAge := FilterRequest{Age: intPtr(101), Purpose: "Personal Loans"}
	assert.ErrorIs(t, overAge.Validate(), ErrAgeOutOfRange)

	negativeIncome := FilterRequest{Income: int64Ptr(-1), Purpose: "Personal Loans"}
	assert.ErrorIs(t, negativeIncome.Validate(), ErrNegativeIncome)
}

func TestQuickFilterRequestValidate(t *testing.T) {
	valid := QuickFilterRequest{Age: 30, Purpose: "Home Loans"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&QuickFilterRequest{Age: 17, Purpose: "Home Loans"}).Validate(), ErrAgeOutOfRange)
	assert.ErrorIs(t, (&QuickFilterRequest{Age: 30, Purpose: "  "}).Validate(), ErrPurposeRequired)
}

func TestPersonalizeRequestValidate(t *testing.T) {
	valid := PersonalizeRequest{BankID: "SBI", Age: 5}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&PersonalizeRequest{Age: 30}).Validate(), ErrBankIDRequired)
	assert.ErrorIs(t, (&PersonalizeRequest{BankID: "SBI", Age: 0}).Validate(), ErrPersonalizeAgeRange)
	assert.ErrorIs(t, (&PersonalizeRequest{BankID: "SBI", Age: 121}).Validate(), ErrPersonalizeAgeRange)
	assert.ErrorIs(t, (&PersonalizeRequest{BankID: "SBI", Age: 30, MonthlyIncome: int64Ptr(-5)}).Validate(), ErrNegativeIncome)
}

func TestCompareRequestValidate(t *testing.T) {
	assert.ErrorIs(t, (&CompareRequest{}).Validate(), ErrNoSchemeIDs)
	assert.ErrorIs(t, (&CompareRequest{SchemeIDs: []string{"a", "b", "c", "d", "e", "f"}}).Validate(), ErrTooManySchemeIDs)
	assert.NoError(t, (&CompareRequest{SchemeIDs: []string{"a"}}).Validate())
}
