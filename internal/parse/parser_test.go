package parse

import (
	"testing"

	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		number    int64
		suffix    string
		predir    *vocab.Directional
		street    string
		postType  *vocab.PostType
		subType   *vocab.SubaddressType
		subID     string
		community *vocab.PostalCommunity
		state     *vocab.State
		zip       int64
	}{
		{
			name:      "directional street and unit",
			input:     "1035 NE 6TH ST #B, GRANTS PASS",
			number:    1035,
			predir:    ptr(vocab.Northeast),
			street:    "6TH",
			postType:  ptr(vocab.Street),
			subID:     "B",
			community: ptr(vocab.GrantsPass),
		},
		{
			name:      "post type word inside street name",
			input:     "1072 ROGUE RIVER HWY #A & B, Grants Pass",
			number:    1072,
			street:    "ROGUE RIVER",
			postType:  ptr(vocab.Highway),
			subID:     "A B",
			community: ptr(vocab.GrantsPass),
		},
		{
			name:     "fractional suffix",
			input:    "100 1/2 SE MAPLE AVE",
			number:   100,
			suffix:   "1/2",
			predir:   ptr(vocab.Southeast),
			street:   "MAPLE",
			postType: ptr(vocab.Avenue),
		},
		{
			name:     "split cardinal pair",
			input:    "220 N E SAVAGE ST",
			number:   220,
			predir:   ptr(vocab.Northeast),
			street:   "SAVAGE",
			postType: ptr(vocab.Street),
		},
		{
			name:     "punctuated directional",
			input:    "220 N.E. SAVAGE ST",
			number:   220,
			predir:   ptr(vocab.Northeast),
			street:   "SAVAGE",
			postType: ptr(vocab.Street),
		},
		{
			name:     "typed subaddress",
			input:    "1899 NE 7TH ST STE 200",
			number:   1899,
			predir:   ptr(vocab.Northeast),
			street:   "7TH",
			postType: ptr(vocab.Street),
			subType:  ptr(vocab.Suite),
			subID:    "200",
		},
		{
			name:     "bare trailing identifier",
			input:    "500 SW G ST Food Trailer",
			number:   500,
			predir:   ptr(vocab.Southwest),
			street:   "G",
			postType: ptr(vocab.Street),
			subID:    "FOOD TRAILER",
		},
		{
			name:      "state and zip suffix",
			input:     "1321 WILLIAMS HWY, Grants Pass, OR 97527",
			number:    1321,
			street:    "WILLIAMS",
			postType:  ptr(vocab.Highway),
			community: ptr(vocab.GrantsPass),
			state:     ptr(vocab.Oregon),
			zip:       97527,
		},
		{
			name:      "unpunctuated community suffix",
			input:     "2600 WILLIAMS Grants Pass",
			number:    2600,
			street:    "WILLIAMS",
			community: ptr(vocab.GrantsPass),
		},
		{
			name:     "community name as street name",
			input:    "1500 GRANTS PASS PKWY",
			number:   1500,
			street:   "GRANTS PASS",
			postType: ptr(vocab.Parkway),
		},
		{
			name:   "no post type",
			input:  "233 ROGUE CIRCLE",
			number: 233,
			street: "ROGUE",
			postType: ptr(vocab.Circle),
		},
		{
			name:   "lower case input",
			input:  "713 ne a st",
			number: 713,
			predir: ptr(vocab.Northeast),
			street: "A",
			postType: ptr(vocab.Street),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got.Number == nil || *got.Number != tt.number {
				t.Errorf("number = %v, want %d", got.Number, tt.number)
			}
			if tt.suffix != "" && (got.NumberSuffix == nil || *got.NumberSuffix != tt.suffix) {
				t.Errorf("suffix = %v, want %q", got.NumberSuffix, tt.suffix)
			}
			if !optEqual(got.PreDirectional, tt.predir) {
				t.Errorf("pre directional = %v, want %v", got.PreDirectional, tt.predir)
			}
			if got.StreetName == nil || *got.StreetName != tt.street {
				t.Errorf("street = %v, want %q", got.StreetName, tt.street)
			}
			if !optEqual(got.PostType, tt.postType) {
				t.Errorf("post type = %v, want %v", got.PostType, tt.postType)
			}
			if !optEqual(got.SubaddressType, tt.subType) {
				t.Errorf("subaddress type = %v, want %v", got.SubaddressType, tt.subType)
			}
			if tt.subID == "" {
				if got.SubaddressID != nil {
					t.Errorf("subaddress id = %q, want none", *got.SubaddressID)
				}
			} else if got.SubaddressID == nil || *got.SubaddressID != tt.subID {
				t.Errorf("subaddress id = %v, want %q", got.SubaddressID, tt.subID)
			}
			if !optEqual(got.PostalCommunity, tt.community) {
				t.Errorf("community = %v, want %v", got.PostalCommunity, tt.community)
			}
			if !optEqual(got.State, tt.state) {
				t.Errorf("state = %v, want %v", got.State, tt.state)
			}
			if tt.zip != 0 && (got.Zip == nil || *got.Zip != tt.zip) {
				t.Errorf("zip = %v, want %d", got.Zip, tt.zip)
			}
		})
	}
}

func TestParsePreTypeAndSeparator(t *testing.T) {
	got, err := Parse("4520 AVENUE OF THE OAKS")
	if err != nil {
		t.Fatal(err)
	}
	if got.PreType == nil || *got.PreType != vocab.PreTypeAvenue {
		t.Errorf("pre type = %v", got.PreType)
	}
	if got.Separator == nil {
		t.Error("separator not recognized")
	}
	if got.StreetName == nil || *got.StreetName != "OAKS" {
		t.Errorf("street = %v", got.StreetName)
	}

	got, err = Parse("150 MOUNT BALDY RD")
	if err != nil {
		t.Fatal(err)
	}
	if got.PreType == nil || *got.PreType != vocab.PreTypeMount {
		t.Errorf("pre type = %v", got.PreType)
	}
	if got.StreetName == nil || *got.StreetName != "BALDY" {
		t.Errorf("street = %v", got.StreetName)
	}
	if got.PostType == nil || *got.PostType != vocab.Road {
		t.Errorf("post type = %v", got.PostType)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "no leading number", input: "MAIN ST"},
		{name: "whitespace only", input: "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) must fail", tt.input)
			}
			perr, ok := err.(*Error)
			if !ok {
				t.Fatalf("error type %T, want *Error", err)
			}
			if perr.Rule != "address number" {
				t.Errorf("rule = %q, want address number", perr.Rule)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func optEqual[T comparable](got, want *T) bool {
	if got == nil || want == nil {
		return got == want
	}
	return *got == *want
}
