package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

func license(number int64) address.BusinessLicense {
	return address.BusinessLicense{
		CompanyName:    address.Ptr("ROGUE ROASTERS "),
		BusinessType:   "RETAIL",
		License:        "23-00412",
		Expires:        "2026-06-30",
		Number:         number,
		PreDirectional: address.Ptr(vocab.Northeast),
		StreetName:     " 6TH ",
		PostType:       address.Ptr(vocab.Street),
		City:           "GRANTS PASS",
		State:          "OR",
		Zip:            97526,
	}
}

func TestBusinessIdentityIgnoresCityAndState(t *testing.T) {
	b := license(1035)
	b.City = "MEDFORD"
	b.State = "WA"
	records := NewBusinessRecords(&b, address.Addresses{candidate("c1", 1035)})
	require.Len(t, records, 1)
	assert.Equal(t, Matching, records[0].Status)
	assert.Equal(t, "ROGUE ROASTERS", records[0].CompanyName)
}

func TestBusinessStreetNameTrimmed(t *testing.T) {
	b := license(1035)
	records := NewBusinessRecords(&b, address.Addresses{candidate("c1", 1035)})
	require.Len(t, records, 1)
	assert.Equal(t, Matching, records[0].Status)
}

func TestBusinessZipAndSubaddressDiverge(t *testing.T) {
	b := license(1035)
	b.Zip = 97527
	records := NewBusinessRecords(&b, address.Addresses{candidate("c1", 1035)})
	require.Len(t, records, 1)
	assert.Equal(t, Divergent, records[0].Status)

	b = license(1035)
	b.SubaddressID = address.Ptr("B")
	records = NewBusinessRecords(&b, address.Addresses{candidate("c1", 1035)})
	require.Len(t, records, 1)
	assert.Equal(t, Divergent, records[0].Status)
}

func TestBusinessTrimsToFirstMatching(t *testing.T) {
	b := license(1035)
	diverged := candidate("c1", 1035)
	diverged.Zip = 97599
	records := NewBusinessRecords(&b, address.Addresses{diverged, candidate("c2", 1035), candidate("c3", 1035)})
	require.Len(t, records, 1)
	assert.Equal(t, Matching, records[0].Status)
	{
		c2 := candidate("c2", 1035)
		assert.Equal(t, c2.Label(), records[0].OtherLabel)
	}
}

func TestBusinessMissing(t *testing.T) {
	b := license(1035)
	records := NewBusinessRecords(&b, address.Addresses{candidate("c1", 9999)})
	require.Len(t, records, 1)
	assert.Equal(t, Missing, records[0].Status)
	assert.Equal(t, b.Label(), records[0].Label)
}

// A license matching in the second target list must return that match, not a
// missing record from the first list.
func TestChainPriority(t *testing.T) {
	b := license(1035)
	first := address.Addresses{candidate("c1", 9999)}
	second := address.Addresses{candidate("c2", 1035)}
	records := Chain(&b, []address.Addresses{first, second})
	require.Len(t, records, 1)
	assert.Equal(t, Matching, records[0].Status)
	{
		c2 := candidate("c2", 1035)
		assert.Equal(t, c2.Label(), records[0].OtherLabel)
	}
}

func TestChainPrefersEarlierDivergent(t *testing.T) {
	b := license(1035)
	divergedEarly := candidate("c1", 1035)
	divergedEarly.Zip = 97599
	first := address.Addresses{divergedEarly}
	second := address.Addresses{candidate("c2", 9999)}
	records := Chain(&b, []address.Addresses{first, second})
	require.Len(t, records, 1)
	assert.Equal(t, Divergent, records[0].Status)
	assert.Equal(t, divergedEarly.Label(), records[0].OtherLabel)
}

func TestCompareChain(t *testing.T) {
	bs := address.BusinessLicenses{license(1035), license(500)}
	got := CompareChain(bs, []address.Addresses{{candidate("c1", 1035)}}, Options{Workers: 2})
	require.Len(t, got.Items, 2)
	assert.Equal(t, Matching, got.Items[0].Status)
	assert.Equal(t, Missing, got.Items[1].Status)
}

func TestDeduplicateLicenses(t *testing.T) {
	bs := address.BusinessLicenses{license(1), license(2)}
	bs[1].License = bs[0].License
	assert.Len(t, bs.DeduplicateLicenses(), 1)
}
