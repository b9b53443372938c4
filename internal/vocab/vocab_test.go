package vocab

import (
	"testing"
)

func TestMatchDirectional(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Directional
		ok    bool
	}{
		{name: "abbreviation", input: "NE", want: Northeast, ok: true},
		{name: "lower case abbreviation", input: "ne", want: Northeast, ok: true},
		{name: "full word", input: "Northwest", want: Northwest, ok: true},
		{name: "punctuated", input: "N.E.", want: Northeast, ok: true},
		{name: "single letter", input: "w", want: West, ok: true},
		{name: "street name lookalike", input: "Nelson", ok: false},
		{name: "blank", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchDirectional(tt.input)
			if ok != tt.ok {
				t.Fatalf("MatchDirectional(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MatchDirectional(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchDirectionalAbbreviatedIsStrict(t *testing.T) {
	if _, ok := MatchDirectionalAbbreviated("north"); ok {
		t.Error("abbreviated matching must not accept full words")
	}
	if _, ok := MatchDirectionalAbbreviated("N"); !ok {
		t.Error("abbreviated matching must accept postal abbreviations")
	}
}

func TestMatchPostType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PostType
		ok    bool
	}{
		{name: "abbreviation", input: "HWY", want: Highway, ok: true},
		{name: "full word", input: "street", want: Street, ok: true},
		{name: "local alternate", input: "terr", want: Terrace, ok: true},
		{name: "crossing abbreviation", input: "XING", want: Crossing, ok: true},
		{name: "river is a post type", input: "RIVER", want: River, ok: true},
		{name: "park is not a post type", input: "park", ok: false},
		{name: "fall is not a post type", input: "fall", ok: false},
		{name: "unrecognized", input: "BEAVILLA", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchPostType(tt.input)
			if ok != tt.ok {
				t.Fatalf("MatchPostType(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MatchPostType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchSubaddressType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SubaddressType
		ok    bool
	}{
		{name: "suite designator", input: "STE", want: Suite, ok: true},
		{name: "suite full word", input: "Suite", want: Suite, ok: true},
		{name: "apartment", input: "apt", want: Apartment, ok: true},
		{name: "unit", input: "UNIT", want: Unit, ok: true},
		{name: "trailer", input: "TRLR", want: Trailer, ok: true},
		{name: "unrecognized", input: "B", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchSubaddressType(tt.input)
			if ok != tt.ok {
				t.Fatalf("MatchSubaddressType(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MatchSubaddressType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchStatusDefaultsToOther(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{input: "Current", want: StatusCurrent},
		{input: "RETIRED", want: StatusRetired},
		{input: "virtual", want: StatusVirtual},
		{input: "", want: StatusOther},
		{input: "bogus", want: StatusOther},
	}

	for _, tt := range tests {
		if got := MatchStatus(tt.input); got != tt.want {
			t.Errorf("MatchStatus(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMatchPostalCommunity(t *testing.T) {
	a, ok := MatchPostalCommunity("Grants Pass")
	if !ok || a != GrantsPass {
		t.Fatalf("MatchPostalCommunity(Grants Pass) = %v, %v", a, ok)
	}
	b, ok := MatchPostalCommunity("gp")
	if !ok || b != GrantsPass {
		t.Fatalf("MatchPostalCommunity(gp) = %v, %v", b, ok)
	}
	if _, ok := MatchPostalCommunity("Portland"); ok {
		t.Error("unlisted community must not match")
	}
}

func TestMatchState(t *testing.T) {
	s, ok := MatchState("Oregon")
	if !ok || s != Oregon {
		t.Fatalf("MatchState(Oregon) = %v, %v", s, ok)
	}
	s, ok = MatchState("or")
	if !ok || s != Oregon {
		t.Fatalf("MatchState(or) = %v, %v", s, ok)
	}
	if _, ok := MatchState("Cascadia"); ok {
		t.Error("unlisted state must not match")
	}
}

// Every variant must survive a round trip through mixed matching of its own
// label.
func TestVocabularyRoundTrip(t *testing.T) {
	for v, e := range directionalLabels {
		got, ok := MatchDirectional(e)
		if !ok || got != v {
			t.Errorf("directional round trip failed for %v", e)
		}
	}
	for v, e := range postTypes {
		got, ok := MatchPostType(e.label)
		if !ok || got != v {
			t.Errorf("post type round trip failed for %v", e.label)
		}
	}
	for v, e := range subaddressTypes {
		got, ok := MatchSubaddressType(e.label)
		if !ok || got != v {
			t.Errorf("subaddress type round trip failed for %v", e.label)
		}
	}
	for v, e := range states {
		got, ok := MatchState(e.label)
		if !ok || got != v {
			t.Errorf("state round trip failed for %v", e.label)
		}
	}
	for v, label := range preTypeLabels {
		got, ok := MatchPreType(label)
		if !ok || got != v {
			t.Errorf("pre type round trip failed for %v", label)
		}
	}
	for v, label := range preModifierLabels {
		got, ok := MatchPreModifier(label)
		if !ok || got != v {
			t.Errorf("pre modifier round trip failed for %v", label)
		}
	}
}
