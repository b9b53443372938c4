package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

func partialQuery() address.Partial {
	return address.Partial{
		Number:         address.Ptr(int64(1035)),
		PreDirectional: address.Ptr(vocab.Northeast),
		StreetName:     address.Ptr("6TH"),
		PostType:       address.Ptr(vocab.Street),
	}
}

func TestPartialNumberGate(t *testing.T) {
	p := partialQuery()
	records := NewPartialRecords(&p, address.Addresses{candidate("c1", 9999)})
	require.Len(t, records, 1)
	assert.Equal(t, Missing, records[0].Status)
	assert.Empty(t, records[0].OtherLabel)
}

func TestPartialIdentityMismatchIsMissing(t *testing.T) {
	// A specified street that differs means wrong address, not divergent.
	p := partialQuery()
	p.StreetName = address.Ptr("7TH")
	records := NewPartialRecords(&p, address.Addresses{candidate("c1", 1035)})
	require.Len(t, records, 1)
	assert.Equal(t, Missing, records[0].Status)

	p = partialQuery()
	p.PostType = address.Ptr(vocab.Avenue)
	records = NewPartialRecords(&p, address.Addresses{candidate("c1", 1035)})
	require.Len(t, records, 1)
	assert.Equal(t, Missing, records[0].Status)
}

func TestPartialSubaddressDivergence(t *testing.T) {
	p := partialQuery()
	p.SubaddressID = address.Ptr("B")
	c := candidate("c1", 1035)
	c.SubaddressID = address.Ptr("C")
	records := NewPartialRecords(&p, address.Addresses{c})
	require.Len(t, records, 1)
	assert.Equal(t, Divergent, records[0].Status)
}

func TestPartialBuildingCheckedOnlyWithoutSubaddress(t *testing.T) {
	p := partialQuery()
	p.Building = address.Ptr("4")

	// Candidate carries a subaddress, so the building accessory is skipped
	// and the subaddress comparison drives the grade.
	withSub := candidate("c1", 1035)
	withSub.SubaddressID = address.Ptr("B")
	withSub.Building = address.Ptr("9")
	records := NewPartialRecords(&p, address.Addresses{withSub})
	require.Len(t, records, 1)
	assert.Equal(t, Divergent, records[0].Status)

	// Without a candidate subaddress the building difference diverges.
	withoutSub := candidate("c2", 1035)
	withoutSub.Building = address.Ptr("9")
	records = NewPartialRecords(&p, address.Addresses{withoutSub})
	require.Len(t, records, 1)
	assert.Equal(t, Divergent, records[0].Status)
}

func TestPartialMatchingTrimsDivergent(t *testing.T) {
	p := partialQuery()
	exact := candidate("c1", 1035)
	diverged := candidate("c2", 1035)
	diverged.SubaddressID = address.Ptr("B")
	records := NewPartialRecords(&p, address.Addresses{diverged, exact})
	require.Len(t, records, 1)
	assert.Equal(t, Matching, records[0].Status)
	assert.Equal(t, exact.Label(), records[0].OtherLabel)
}

func TestComparePartials(t *testing.T) {
	subjects := []address.Partial{partialQuery(), func() address.Partial {
		p := partialQuery()
		p.Number = address.Ptr(int64(9999))
		return p
	}()}
	got := ComparePartials(subjects, address.Addresses{candidate("c1", 1035)}, Options{Workers: 2})
	require.Len(t, got.Items, 2)
	assert.Equal(t, Matching, got.Items[0].Status)
	assert.Equal(t, Missing, got.Items[1].Status)
}

func TestCompareFireCarriesName(t *testing.T) {
	f := address.FireInspection{Name: "ROGUE COFFEE", Address: partialQuery()}
	got := CompareFire(address.FireInspections{f}, address.Addresses{candidate("c1", 1035)}, Options{})
	require.Len(t, got.Items, 1)
	assert.Equal(t, "ROGUE COFFEE", got.Items[0].Name)
	assert.Equal(t, Matching, got.Items[0].Status)
}
