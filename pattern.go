// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// nodeKind is one instruction kind of compiled glob.
type nodeKind uint8

const (
	// nodeLiteral matches text exactly.
	nodeLiteral nodeKind = iota
	// nodeAnyChar matches one character except "/" ("?").
	nodeAnyChar
	// nodeStar matches any run without "/" ("*").
	nodeStar
	// nodeGlobstar matches any run including "/" ("**").
	nodeGlobstar
	// nodeGlobstarDir matches zero or more whole directories ("**/" at segment start).
	nodeGlobstarDir
	// nodeClass matches one character from a set ("[...]").
	nodeClass
	// nodeAlternation matches one of alternatives ("{a,b}").
	nodeAlternation
	// nodeRange matches a decimal integer in inclusive range ("{1..5}").
	nodeRange
)

// node is one compiled glob instruction.
type node struct {
	// class is set for nodeClass.
	class *charClass
	// text is set for nodeLiteral.
	text string
	// alts is set for nodeAlternation.
	alts [][]node
	// lo and hi bound nodeRange.
	lo, hi int
	kind   nodeKind
}

// charClass is compiled "[...]" set.
type charClass struct {
	ranges  []runeRange
	negated bool
}

// runeRange is inclusive rune range of a class.
type runeRange struct {
	lo, hi rune
}

// matches reports whether class accepts r.
func (c *charClass) matches(r rune) bool {
	in := false
	for _, rr := range c.ranges {
		if r >= rr.lo && r <= rr.hi {
			in = true
			break
		}
	}

	return in != c.negated
}

// parseGlob compiles glob text into node list.
//
// base is the offset of src within the pattern as written, used in errors.
// atSegmentStart reports whether src begins right after "/" (or at the anchor),
// which allows leading "**/" to match zero directories.
func parseGlob(src string, base int, atSegmentStart bool) ([]node, error) {
	nodes := make([]node, 0, 4)
	var lit strings.Builder

	flush := func() {
		if lit.Len() == 0 {
			return
		}

		nodes = append(nodes, node{kind: nodeLiteral, text: lit.String()})
		lit.Reset()
	}

	segmentStart := func(i int) bool {
		if i == 0 {
			return atSegmentStart
		}

		return src[i-1] == '/'
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\\':
			if i+1 >= len(src) {
				lit.WriteByte('\\')
				continue
			}

			_, size := utf8.DecodeRuneInString(src[i+1:])
			lit.WriteString(src[i+1 : i+1+size])
			i += size

		case '?':
			flush()
			nodes = append(nodes, node{kind: nodeAnyChar})

		case '*':
			flush()
			j := i
			for j < len(src) && src[j] == '*' {
				j++
			}

			if j-i == 1 {
				nodes = append(nodes, node{kind: nodeStar})
				continue
			}

			if segmentStart(i) && j < len(src) && src[j] == '/' {
				// "**/" consumes its slash so zero directories leave no "//".
				nodes = append(nodes, node{kind: nodeGlobstarDir})
				i = j
				continue
			}

			nodes = append(nodes, node{kind: nodeGlobstar})
			i = j - 1

		case '[':
			end := findClassEnd(src, i)
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated character class at offset %d", ErrMalformedPattern, base+i)
			}

			flush()
			nodes = append(nodes, node{kind: nodeClass, class: parseClass(src[i+1 : end])})
			i = end

		case '{':
			end := findBraceEnd(src, i)
			if end < 0 {
				return nil, fmt.Errorf("%w: unbalanced \"{\" at offset %d", ErrMalformedPattern, base+i)
			}

			flush()
			braced, err := parseBrace(src[i+1:end], base+i+1, segmentStart(i))
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, braced...)
			i = end

		case '}':
			return nil, fmt.Errorf("%w: unbalanced \"}\" at offset %d", ErrMalformedPattern, base+i)

		default:
			lit.WriteByte(c)
		}
	}

	flush()
	return nodes, nil
}

// parseBrace compiles body of "{...}" group starting at offset base.
func parseBrace(body string, base int, atSegmentStart bool) ([]node, error) {
	if lo, hi, ok := parseNumericRange(body); ok {
		return []node{{kind: nodeRange, lo: lo, hi: hi}}, nil
	}

	parts, starts := splitAlternatives(body)
	if len(parts) < 2 {
		// "{single}" and "{}" are literal text.
		inner, err := parseGlob(body, base, false)
		if err != nil {
			return nil, err
		}

		out := make([]node, 0, len(inner)+2)
		out = append(out, node{kind: nodeLiteral, text: "{"})
		out = append(out, inner...)
		out = append(out, node{kind: nodeLiteral, text: "}"})
		return out, nil
	}

	alts := make([][]node, 0, len(parts))
	for i, part := range parts {
		alt, err := parseGlob(part, base+starts[i], atSegmentStart)
		if err != nil {
			return nil, err
		}

		alts = append(alts, alt)
	}

	return []node{{kind: nodeAlternation, alts: alts}}, nil
}

// parseNumericRange parses "n1..n2" brace body, swapping descending bounds.
func parseNumericRange(body string) (int, int, bool) {
	left, right, ok := strings.Cut(body, "..")
	if !ok || !isInteger(left) || !isInteger(right) {
		return 0, 0, false
	}

	lo, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, false
	}

	hi, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, false
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi, true
}

// isInteger reports whether s is optionally signed decimal digits.
func isInteger(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// splitAlternatives splits brace body on top-level commas and returns
// every part with its offset in body.
func splitAlternatives(body string) ([]string, []int) {
	parts := make([]string, 0, 4)
	starts := make([]int, 0, 4)
	depth := 0
	start := 0

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				starts = append(starts, start)
				start = i + 1
			}
		}
	}

	return append(parts, body[start:]), append(starts, start)
}

// findBraceEnd locates matching "}" for "{" at start, honoring nesting and escapes.
func findBraceEnd(src string, start int) int {
	depth := 0
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// findClassEnd locates closing bracket for a glob char class.
func findClassEnd(src string, start int) int {
	if start < 0 || start >= len(src) || src[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(src) && (src[idx] == '!' || src[idx] == '^') {
		idx++
	}

	// Leading "]" is literal member.
	if idx < len(src) && src[idx] == ']' {
		idx++
	}

	for ; idx < len(src); idx++ {
		switch src[idx] {
		case '\\':
			idx++
		case ']':
			return idx
		}
	}

	return -1
}

// parseClass compiles char class body (without brackets).
func parseClass(body string) *charClass {
	cls := &charClass{}

	i := 0
	if i < len(body) && (body[i] == '!' || body[i] == '^') {
		cls.negated = true
		i++
	}

	for i < len(body) {
		lo, size := classRune(body, i)
		i += size

		if i+1 < len(body) && body[i] == '-' {
			hi, hiSize := classRune(body, i+1)
			i += 1 + hiSize
			cls.ranges = append(cls.ranges, runeRange{lo: lo, hi: hi})
			continue
		}

		cls.ranges = append(cls.ranges, runeRange{lo: lo, hi: lo})
	}

	return cls
}

// classRune decodes one class member at i, resolving "\" escape.
func classRune(body string, i int) (rune, int) {
	if body[i] == '\\' && i+1 < len(body) {
		r, size := utf8.DecodeRuneInString(body[i+1:])
		return r, size + 1
	}

	return utf8.DecodeRuneInString(body[i:])
}
