package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTable_Passes(t *testing.T) {
	require.NoError(t, ValidateTable())
}

func TestTable_ComponentsSumToTotal(t *testing.T) {
	for code, rule := range table {
		sum := rule.GSTPct + rule.PSTPct + rule.HSTPct
		assert.InDelta(t, rule.TotalRatePct, sum, 0.001, "jurisdiction %s", code)
	}
}

func TestTable_HSTIsExclusive(t *testing.T) {
	for code, rule := range table {
		if rule.HSTPct > 0 {
			assert.Zero(t, rule.GSTPct, "jurisdiction %s", code)
			assert.Zero(t, rule.PSTPct, "jurisdiction %s", code)
		}
	}
}

func TestTable_TotalRatesInRange(t *testing.T) {
	for code, rule := range table {
		assert.GreaterOrEqual(t, rule.TotalRatePct, 5.0, "jurisdiction %s", code)
		assert.LessOrEqual(t, rule.TotalRatePct, 15.0, "jurisdiction %s", code)
	}
}

func TestListAllCodes_ThirteenJurisdictions(t *testing.T) {
	codes := ListAllCodes()
	require.Len(t, codes, 13)
	assert.Contains(t, codes, "ON")
	assert.Contains(t, codes, "BC")
	assert.Contains(t, codes, "QC")
	assert.Contains(t, codes, "AB")
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("ON"))
	assert.True(t, IsValidCode("YT"))
	assert.False(t, IsValidCode("XX"))
	assert.False(t, IsValidCode(""))
	assert.False(t, IsValidCode("on")) // codes are uppercase
}

func TestLookup_FallsBackToDefault(t *testing.T) {
	rule, fellBack := Lookup("XX")
	assert.True(t, fellBack)
	assert.Equal(t, DefaultJurisdiction, rule.JurisdictionCode)

	rule, fellBack = Lookup("BC")
	assert.False(t, fellBack)
	assert.Equal(t, "BC", rule.JurisdictionCode)
}

func TestValidateTable_CatchesBadSum(t *testing.T) {
	// Temporarily corrupt the table to prove the check fires.
	orig := table["BC"]
	table["BC"] = Rule{JurisdictionCode: "BC", GSTPct: 5, PSTPct: 7, TotalRatePct: 13, DisplayName: "British Columbia"}
	defer func() { table["BC"] = orig }()

	err := ValidateTable()
	require.Error(t, err)
	var tableErr *TableError
	assert.ErrorAs(t, err, &tableErr)
	assert.Contains(t, err.Error(), "component sum")
}
