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

// Matcher tests absolute paths against one section pattern anchored to a directory.
type Matcher struct {
	pattern string
	dir     string
	// prog is the flattened pattern; every instruction knows its successor.
	prog []inst
	// start is the entry instruction, acceptPC when pattern is empty after the anchor.
	start int
	// exactDir is set for pattern "/" which selects the anchor directory itself.
	exactDir bool
	// never is set for empty pattern.
	never bool
}

// acceptPC marks the end of program: input must be fully consumed.
const acceptPC = -1

// inst is one program instruction. It mirrors node but replaces nested
// alternatives with entry indices and links every instruction to its successor.
type inst struct {
	class  *charClass
	text   string
	alts   []int
	next   int
	lo, hi int
	kind   nodeKind
}

// Compile compiles section pattern anchored to dir with EditorConfig section rules:
// a pattern without "/" matches at any depth below dir ("**/" is implied),
// a leading "/" is stripped and anchors pattern to dir exactly.
func Compile(pattern string, dir string) (*Matcher, error) {
	return compile(pattern, dir, true)
}

// CompileExact compiles pattern anchored to dir without implied "**/" prefix,
// so "*.txt" matches only direct children of dir.
func CompileExact(pattern string, dir string) (*Matcher, error) {
	return compile(pattern, dir, false)
}

// compile builds matcher for anchor + "/" + normalized pattern.
func compile(pattern string, dir string, matchAnyDepth bool) (*Matcher, error) {
	m := &Matcher{
		pattern: pattern,
		dir:     normalizeAnchor(dir),
	}

	switch pattern {
	case "":
		m.never = true
		return m, nil
	case "/":
		m.exactDir = true
		return m, nil
	}

	// base maps offsets in body back to the pattern as written.
	body, base := pattern, 0
	if strings.HasPrefix(body, "/") {
		body, base = body[1:], 1
	} else if matchAnyDepth && !strings.Contains(body, "/") {
		body, base = "**/"+body, -3
	}

	nodes, err := parseGlob(body, base, true)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}

	// Anchor is literal text: glob meta in directory names is not interpreted.
	anchored := make([]node, 0, len(nodes)+1)
	anchored = append(anchored, node{kind: nodeLiteral, text: m.dir + "/"})
	anchored = append(anchored, nodes...)

	m.prog = make([]inst, 0, len(anchored))
	m.start = flatten(&m.prog, anchored, acceptPC)
	return m, nil
}

// flatten appends nodes to prog back to front so each instruction can point
// at its successor, and returns the entry index of the sequence.
func flatten(prog *[]inst, nodes []node, next int) int {
	cur := next
	for i := len(nodes) - 1; i >= 0; i-- {
		n := &nodes[i]
		in := inst{
			kind:  n.kind,
			text:  n.text,
			class: n.class,
			lo:    n.lo,
			hi:    n.hi,
			next:  cur,
		}

		if n.kind == nodeAlternation {
			in.alts = make([]int, 0, len(n.alts))
			for _, alt := range n.alts {
				in.alts = append(in.alts, flatten(prog, alt, cur))
			}
		}

		*prog = append(*prog, in)
		cur = len(*prog) - 1
	}

	return cur
}

// Pattern returns source pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Match reports whether absolute path matches compiled pattern.
func (m *Matcher) Match(path string) bool {
	if m == nil || m.never {
		return false
	}

	candidate := normalizeSlashes(path)
	if m.exactDir {
		return strings.TrimRight(candidate, "/") == m.dir
	}

	width := len(candidate) + 1
	r := &matchRun{
		prog:   m.prog,
		s:      candidate,
		width:  width,
		failed: make([]uint64, (len(m.prog)*width+63)/64),
	}

	return r.match(m.start, 0)
}

// matchRun is the state of one Match call.
//
// Successor of every instruction is fixed, so the outcome depends only on
// (instruction, offset); failed pairs are recorded and never retried.
// That bounds work by program size times input length.
type matchRun struct {
	prog   []inst
	s      string
	failed []uint64
	width  int
}

// match reports whether program from pc matches the rest of input at off.
func (r *matchRun) match(pc int, off int) bool {
	if pc == acceptPC {
		return off == len(r.s)
	}

	key := pc*r.width + off
	if r.failed[key/64]&(1<<(key%64)) != 0 {
		return false
	}

	if r.step(pc, off) {
		return true
	}

	r.failed[key/64] |= 1 << (key % 64)
	return false
}

// step runs one instruction.
func (r *matchRun) step(pc int, off int) bool {
	in := &r.prog[pc]
	rest := r.s[off:]

	switch in.kind {
	case nodeLiteral:
		return strings.HasPrefix(rest, in.text) && r.match(in.next, off+len(in.text))

	case nodeAnyChar:
		c, size := utf8.DecodeRuneInString(rest)
		if size == 0 || c == '/' {
			return false
		}

		return r.match(in.next, off+size)

	case nodeClass:
		c, size := utf8.DecodeRuneInString(rest)
		if size == 0 || c == '/' || !in.class.matches(c) {
			return false
		}

		return r.match(in.next, off+size)

	case nodeStar:
		if r.match(in.next, off) {
			return true
		}

		if rest == "" || rest[0] == '/' {
			return false
		}

		_, size := utf8.DecodeRuneInString(rest)
		return r.match(pc, off+size)

	case nodeGlobstar:
		if r.match(in.next, off) {
			return true
		}

		if rest == "" {
			return false
		}

		_, size := utf8.DecodeRuneInString(rest)
		return r.match(pc, off+size)

	case nodeGlobstarDir:
		if r.match(in.next, off) {
			return true
		}

		// Consume one more "dir/" and retry.
		slash := strings.IndexByte(rest, '/')
		return slash >= 0 && r.match(pc, off+slash+1)

	case nodeAlternation:
		for _, alt := range in.alts {
			if r.match(alt, off) {
				return true
			}
		}

		return false

	case nodeRange:
		return matchRange(in.lo, in.hi, rest, func(n int) bool {
			return r.match(in.next, off+n)
		})
	}

	return false
}

// matchRange matches canonical decimal integer in [lo, hi] at start of s and
// hands the consumed length to next.
//
// Leading zeros, "+" and "-0" are not canonical and never match.
func matchRange(lo int, hi int, s string, next func(int) bool) bool {
	start := 0
	if start < len(s) && s[start] == '-' {
		start++
	}

	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	for i := start + 1; i <= end; i++ {
		digits := s[start:i]
		if len(digits) > 1 && digits[0] == '0' {
			return false
		}

		if start == 1 && digits == "0" {
			continue
		}

		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return false
		}

		if n >= lo && n <= hi && next(i) {
			return true
		}
	}

	return false
}
