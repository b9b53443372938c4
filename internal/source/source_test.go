package source

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

const cityCSV = `Add_Number,AddNum_Suf,St_PreDir,StreetNamePreModifier,StreetNamePreType,StreetNameSeparator,St_Name,St_PosTyp,SubaddressType,SubaddressIdentifier,Floor,Building,Post_Code,STATUS,Post_Comm,StateName,GlobalID,x,y,latitude,longitude
1035,,NE,<Null>,<Null>,<Null>,6TH,Street,,B,,,97526,Current,Grants Pass,Oregon,{abc},1234.5,678.9,42.44,-123.32
100,,,,,,,Street,,,,,97526,Current,Grants Pass,Oregon,{bad},0,0,0,0
702,,,,,,JOSEPHINE,Nope,,,,,97526,Current,Grants Pass,Oregon,{bad2},0,0,0,0
`

func TestCityAddresses(t *testing.T) {
	got, err := CityAddresses(strings.NewReader(cityCSV), zap.NewNop())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// The empty street name and the bogus post type both drop their rows.
	if len(got) != 1 {
		t.Fatalf("expected 1 address, got %d", len(got))
	}
	a := got[0]
	if a.Number != 1035 || a.StreetName != "6TH" || a.PostType != vocab.Street {
		t.Errorf("unexpected address %+v", a)
	}
	if a.PreDirectional == nil || *a.PreDirectional != vocab.Northeast {
		t.Errorf("expected NE pre directional")
	}
	if a.SubaddressID == nil || *a.SubaddressID != "B" {
		t.Errorf("expected subaddress B")
	}
	if a.PostalCommunity != vocab.GrantsPass || a.State != vocab.Oregon {
		t.Errorf("unexpected community or state %+v", a)
	}
	if a.ObjectID != "{abc}" {
		t.Errorf("unexpected object id %q", a.ObjectID)
	}
	if a.Label() != "1035 NE 6TH ST #B" {
		t.Errorf("unexpected label %q", a.Label())
	}
}

const countyCSV = `add_number,addnum_suf,st_predir,st_premod,st_pretyp,st_presep,st_name,st_postyp,unittype,unit,floor,st_fullad,uninc_comm,post_code,state,status,x,y,latitude,longitude
4520,,NE,,Avenue,of the,OAKS,,APT,12,,4520 AVENUE OF THE OAKS,Merlin,97532,OR,Retired,1.0,2.0,42.5,-123.4
`

func TestCountyAddresses(t *testing.T) {
	got, err := CountyAddresses(strings.NewReader(countyCSV), zap.NewNop())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// The missing post type drops the only row.
	if len(got) != 0 {
		t.Fatalf("expected 0 addresses, got %d", len(got))
	}
}

const countyGoodCSV = `add_number,addnum_suf,st_predir,st_premod,st_pretyp,st_presep,st_name,st_postyp,unittype,unit,floor,st_fullad,uninc_comm,post_code,state,status,x,y,latitude,longitude
250,,,,,,MERLIN,RD,,,2,250 MERLIN RD,Merlin,97532,OR,Current,1.0,2.0,42.5,-123.4
`

func TestCountyAddressComponents(t *testing.T) {
	got, err := CountyAddresses(strings.NewReader(countyGoodCSV), zap.NewNop())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 address, got %d", len(got))
	}
	a := got[0]
	if a.PostType != vocab.Road || a.PostalCommunity != vocab.Merlin {
		t.Errorf("unexpected address %+v", a)
	}
	if a.Floor == nil || *a.Floor != 2 {
		t.Errorf("expected floor 2")
	}
	if a.Status != vocab.StatusCurrent {
		t.Errorf("unexpected status %v", a.Status)
	}
}

const licenseCSV = `CompanyName,ContactName,BusinessType,dba,BusinessPhone,LICENSENUMBER,EXPIRATIONDATE,ADDRESSLINE1,ADDRESSLINE2,PREDIRECTION,STREETTYPE,UNITORSUITE,CITY,STATE,POSTALCODE
ROGUE ROASTERS,JO DOE,RETAIL,,,23-00412,2026-06-30,1035, 6TH ,NE,ST,b,GRANTS PASS,OR,97526
BAD ROW,,RETAIL,,,23-00999,2026-01-01,not-a-number,MAIN,,ST,,GRANTS PASS,OR,97526
`

func TestBusinessLicenses(t *testing.T) {
	got, err := BusinessLicenses(strings.NewReader(licenseCSV), zap.NewNop())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 license, got %d", len(got))
	}
	b := got[0]
	if b.License != "23-00412" || b.Number != 1035 {
		t.Errorf("unexpected license %+v", b)
	}
	if b.PostType == nil || *b.PostType != vocab.Street {
		t.Errorf("expected street post type")
	}
	if b.SubaddressID == nil || *b.SubaddressID != "B" {
		t.Errorf("expected upper-cased subaddress B")
	}
}

const businessCSV = `company_name,contact_name,dba,street_address_label,license,industry_code,industry_name,sector_code,sector_name,subsector_code,subsector_name,tourism,district
THE HAUL,,,"500 SW G ST Food Trailer",23-00100,722330,Mobile Food Services,72,Accommodation and Food Services,722,Food Services,,
NOWHERE,,,"NO NUMBER HERE",23-00101,722330,Mobile Food Services,72,Accommodation and Food Services,722,Food Services,,
`

func TestBusinesses(t *testing.T) {
	got, err := Businesses(strings.NewReader(businessCSV), zap.NewNop())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// The unparseable address drops its row.
	if len(got) != 1 {
		t.Fatalf("expected 1 business, got %d", len(got))
	}
	b := got[0]
	if b.CompanyName != "THE HAUL" || b.IndustryCode != 722330 {
		t.Errorf("unexpected business %+v", b)
	}
	if b.Address.Label() != "500 SW G ST #FOOD TRAILER" {
		t.Errorf("unexpected parsed label %q", b.Address.Label())
	}
	if len(got.Partials()) != 1 {
		t.Errorf("expected 1 partial")
	}
}

const fireCSV = `Name,Address,Class,Subclass
ROGUE ROASTERS,"1035 NE 6TH ST B, Grants Pass",Mercantile,Coffee
MYSTERY,"???",Storage,
`

func TestFireInspections(t *testing.T) {
	got, err := FireInspections(strings.NewReader(fireCSV), zap.NewNop())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 inspection, got %d", len(got))
	}
	f := got[0]
	if f.Name != "ROGUE ROASTERS" {
		t.Errorf("unexpected name %q", f.Name)
	}
	if f.Address.SubaddressID == nil || *f.Address.SubaddressID != "B" {
		t.Errorf("expected subaddress B, got %+v", f.Address)
	}
	if f.Class == nil || *f.Class != "Mercantile" || f.Subclass == nil {
		t.Errorf("unexpected class fields %+v", f)
	}
}

func TestReadMissingColumn(t *testing.T) {
	_, err := CityAddresses(strings.NewReader("foo,bar\n1,2\n"), zap.NewNop())
	if err != nil {
		t.Fatalf("row errors should drop rows, not abort: %v", err)
	}
}
