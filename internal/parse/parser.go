// Package parse decomposes a single-line address string into a structured
// partial address using a fixed grammar observed in local agency data. The
// grammar is deterministic over the closed component vocabularies; a token
// either resolves or it does not, and unrecognized vocabulary never guesses.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grantspass-gis/addrpoint/internal/address"
	"github.com/grantspass-gis/addrpoint/internal/vocab"
)

// Error reports a grammar failure with the rule that failed and the input
// that remained unconsumed. The caller decides whether to skip the record or
// abort the batch.
type Error struct {
	Rule      string
	Remainder string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse failed at rule %s, remaining input %q", e.Rule, e.Remainder)
}

var fractionPattern = regexp.MustCompile(`^\d+/\d+$`)

type scanner struct {
	tokens []string
	pos    int
}

func newScanner(input string) *scanner {
	return &scanner{tokens: strings.Fields(input)}
}

func (s *scanner) done() bool {
	return s.pos >= len(s.tokens)
}

// peek returns the token at offset n from the cursor without consuming it.
func (s *scanner) peek(n int) (string, bool) {
	if s.pos+n >= len(s.tokens) {
		return "", false
	}
	return s.tokens[s.pos+n], true
}

func (s *scanner) next() string {
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

func (s *scanner) remainder() string {
	return strings.Join(s.tokens[s.pos:], " ")
}

// clean strips the punctuation that agency exports attach to tokens and
// reports whether the token carried a trailing comma, which closes the
// street-name region.
func clean(tok string) (word string, comma bool) {
	comma = strings.HasSuffix(tok, ",")
	word = strings.Trim(tok, ",")
	return word, comma
}

// stripPeriods removes periods, used where punctuated forms like "N.E."
// should match their plain spelling.
func stripPeriods(tok string) string {
	return strings.ReplaceAll(tok, ".", "")
}

// Parse converts one free-text address line into a partial address. The
// address number is mandatory; everything after it is parsed opportunistically
// against the component vocabularies.
func Parse(input string) (address.Partial, error) {
	var out address.Partial
	s := newScanner(input)
	if s.done() {
		return out, &Error{Rule: "address number", Remainder: ""}
	}

	if err := parseNumber(s, &out); err != nil {
		return address.Partial{}, err
	}
	parseNumberSuffix(s, &out)
	parsePreDirectional(s, &out)
	parsePreModifier(s, &out)
	parsePreType(s, &out)
	parseSeparator(s, &out)
	parseStreet(s, &out)
	parseSubaddress(s, &out)
	parseCommunity(s, &out)
	parseState(s, &out)
	parseZip(s, &out)
	return out, nil
}

func parseNumber(s *scanner, out *address.Partial) error {
	tok, _ := clean(s.tokens[s.pos])
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return &Error{Rule: "address number", Remainder: s.remainder()}
	}
	s.next()
	out.Number = address.Ptr(n)
	return nil
}

func parseNumberSuffix(s *scanner, out *address.Partial) {
	tok, ok := s.peek(0)
	if !ok {
		return
	}
	word, _ := clean(tok)
	if strings.Contains(word, ".") || !fractionPattern.MatchString(word) {
		return
	}
	s.next()
	out.NumberSuffix = address.Ptr(word)
}

// parsePreDirectional matches only postal abbreviations so that street names
// spelled like directional words are left intact. Split cardinal pairs like
// "N E" collapse to the intercardinal.
func parsePreDirectional(s *scanner, out *address.Partial) {
	tok, ok := s.peek(0)
	if !ok {
		return
	}
	word, comma := clean(tok)
	word = stripPeriods(word)
	d, ok := vocab.MatchDirectionalAbbreviated(word)
	if !ok {
		return
	}
	// The directional must not be the last word of the street portion.
	if next, ok := s.peek(1); !ok || comma || startsNonAlphanumeric(next) {
		return
	}
	if !comma && (d == vocab.North || d == vocab.South) {
		if next, ok := s.peek(1); ok {
			nw, ncomma := clean(next)
			if second, ok2 := vocab.MatchDirectionalAbbreviated(stripPeriods(nw)); ok2 && (second == vocab.East || second == vocab.West) {
				// Require a street name after the pair.
				if _, ok3 := s.peek(2); ok3 && !ncomma {
					s.next()
					s.next()
					out.PreDirectional = address.Ptr(compound(d, second))
					return
				}
			}
		}
	}
	s.next()
	out.PreDirectional = address.Ptr(d)
}

func compound(ns, ew vocab.Directional) vocab.Directional {
	switch {
	case ns == vocab.North && ew == vocab.East:
		return vocab.Northeast
	case ns == vocab.North && ew == vocab.West:
		return vocab.Northwest
	case ns == vocab.South && ew == vocab.East:
		return vocab.Southeast
	default:
		return vocab.Southwest
	}
}

func parsePreModifier(s *scanner, out *address.Partial) {
	tok, ok := s.peek(0)
	if !ok {
		return
	}
	word, comma := clean(tok)
	m, ok := vocab.MatchPreModifier(word)
	if !ok || comma {
		return
	}
	// The modifier must not be the last word of the street portion.
	if _, ok := s.peek(1); !ok {
		return
	}
	s.next()
	out.PreModifier = address.Ptr(m)
}

func parsePreType(s *scanner, out *address.Partial) {
	tok, ok := s.peek(0)
	if !ok {
		return
	}
	word, comma := clean(tok)
	p, ok := vocab.MatchPreType(word)
	if !ok || comma {
		return
	}
	if _, ok := s.peek(1); !ok {
		return
	}
	s.next()
	out.PreType = address.Ptr(p)
}

func parseSeparator(s *scanner, out *address.Partial) {
	if out.PreType == nil {
		return
	}
	first, ok := s.peek(0)
	if !ok {
		return
	}
	second, ok := s.peek(1)
	if !ok {
		return
	}
	fw, fc := clean(first)
	sw, sc := clean(second)
	if fc || sc {
		return
	}
	if sep, ok := vocab.MatchSeparator(fw + " " + sw); ok {
		if _, ok := s.peek(2); ok {
			s.next()
			s.next()
			out.Separator = address.Ptr(sep)
		}
	}
}

func startsNonAlphanumeric(tok string) bool {
	if tok == "" {
		return true
	}
	r := rune(tok[0])
	return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
}

// parseStreet consumes street-name tokens greedily with a one-token
// lookahead. A token matching the post-type vocabulary ends the street name
// only when what follows cannot continue it: end of input, a subaddress
// type, a postal community, a state, a zip code, or punctuation. A post-type
// word followed by another post-type candidate stays part of the street
// name, which is how "ROGUE RIVER HWY" keeps RIVER. Once at least one word
// is taken, a postal community at the cursor closes the street name, so an
// unpunctuated "2600 WILLIAMS Grants Pass" keeps WILLIAMS as the street.
func parseStreet(s *scanner, out *address.Partial) {
	var words []string
	for !s.done() {
		if len(words) > 0 && communityAt(s, 0) > 0 {
			break
		}
		tok, _ := s.peek(0)
		word, comma := clean(tok)
		if startsNonAlphanumeric(word) {
			break
		}
		if stopsStreet(word) {
			break
		}
		if pt, ok := vocab.MatchPostType(word); ok && len(words) > 0 && streetEndsAfter(s, comma) {
			s.next()
			out.PostType = address.Ptr(pt)
			break
		}
		s.next()
		words = append(words, strings.ToUpper(word))
		if comma {
			break
		}
	}
	if len(words) > 0 {
		out.StreetName = address.Ptr(strings.Join(words, " "))
	}
}

// stopsStreet reports whether the cursor sits on a zip code rather than a
// street word. State words do not stop the loop here; streets named
// "WASHINGTON" are real. The community stop lives in parseStreet so that
// the first street word is always taken even when it spells a community.
func stopsStreet(word string) bool {
	return isZip(word)
}

// streetEndsAfter reports whether the token after the cursor terminates the
// street portion, making the current token the post type. Only another
// post-type candidate continues the street name; anything else, subaddress,
// postal suffix, punctuation, or a plain word, ends it.
func streetEndsAfter(s *scanner, comma bool) bool {
	if comma {
		return true
	}
	next, ok := s.peek(1)
	if !ok {
		return true
	}
	word, _ := clean(next)
	if startsNonAlphanumeric(word) {
		return true
	}
	if _, ok := vocab.MatchPostType(word); ok {
		return false
	}
	return true
}

// communityAt returns the number of tokens at offset n that form a postal
// community name, or zero.
func communityAt(s *scanner, n int) int {
	first, ok := s.peek(n)
	if !ok {
		return 0
	}
	fw, _ := clean(first)
	if second, ok := s.peek(n + 1); ok {
		sw, _ := clean(second)
		if _, ok := vocab.MatchPostalCommunity(fw + " " + sw); ok {
			return 2
		}
	}
	if _, ok := vocab.MatchPostalCommunity(fw); ok {
		return 1
	}
	return 0
}

func isZip(word string) bool {
	if len(word) != 5 {
		return false
	}
	_, err := strconv.Atoi(word)
	return err == nil
}

// stripMarks removes the punctuation that introduces subaddress tokens.
func stripMarks(tok string) string {
	return strings.Trim(tok, "#.&-,")
}

// parseSubaddress takes an optional subaddress type followed by identifier
// tokens. Identifiers strip their punctuation and join with single spaces,
// so "#A & B" becomes "A B". Bare trailing words with no type token are
// accepted as an identifier.
func parseSubaddress(s *scanner, out *address.Partial) {
	if tok, ok := s.peek(0); ok {
		word, _ := clean(tok)
		if st, ok := vocab.MatchSubaddressType(stripMarks(word)); ok {
			s.next()
			out.SubaddressType = address.Ptr(st)
		}
	}
	var ids []string
	for !s.done() {
		if communityAt(s, 0) > 0 {
			break
		}
		tok, _ := s.peek(0)
		word, comma := clean(tok)
		if isZip(word) {
			break
		}
		if _, ok := vocab.MatchState(word); ok && len(word) > 2 {
			break
		}
		s.next()
		if id := strings.ToUpper(stripMarks(word)); id != "" {
			ids = append(ids, id)
		}
		if comma {
			break
		}
	}
	if len(ids) > 0 {
		out.SubaddressID = address.Ptr(strings.Join(ids, " "))
	}
}

func parseCommunity(s *scanner, out *address.Partial) {
	n := communityAt(s, 0)
	if n == 0 {
		return
	}
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		w, _ := clean(s.next())
		words = append(words, w)
	}
	if c, ok := vocab.MatchPostalCommunity(strings.Join(words, " ")); ok {
		out.PostalCommunity = address.Ptr(c)
	}
}

func parseState(s *scanner, out *address.Partial) {
	tok, ok := s.peek(0)
	if !ok {
		return
	}
	word, _ := clean(tok)
	if st, ok := vocab.MatchState(word); ok {
		s.next()
		out.State = address.Ptr(st)
	}
}

func parseZip(s *scanner, out *address.Partial) {
	tok, ok := s.peek(0)
	if !ok {
		return
	}
	word, _ := clean(tok)
	if !isZip(word) {
		return
	}
	s.next()
	n, _ := strconv.ParseInt(word, 10, 64)
	out.Zip = address.Ptr(n)
}
