// Package phone formats and validates phone numbers for contact display.
// This is part of the platform layer and contains no business logic.
//
// Every operation is total: malformed input falls back to the cleaned digit
// string instead of failing, and callers use IsValid to decide whether to trust
// the formatted result.
package phone

import (
	"strings"

	"golang.org/x/text/width"
)

// Formatter applies a fixed set of Rules. It is immutable and safe for concurrent use.
type Formatter struct {
	rules Rules
}

// New builds a Formatter. Rules are copied; call Rules.Validate first when they
// come from user input.
func New(rules Rules) Formatter {
	return Formatter{rules: rules.clone()}
}

// Rules returns a copy of the formatter's rules.
func (f Formatter) Rules() Rules {
	return f.rules.clone()
}

// RemoveFormat keeps only digits and "+".
func (f Formatter) RemoveFormat(input string) string {
	folded := fold(input)
	var b strings.Builder
	b.Grow(len(folded))
	for _, ch := range folded {
		if isDigit(ch) || ch == '+' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Format renders input as "+CC G1-G2-G3" when its country code has a configured
// grouping and the national part has the matching length. Numbers without "+"
// use the local country grouping without a prefix. Anything else comes back as
// the RemoveFormat result.
func (f Formatter) Format(input string) string {
	clean := f.RemoveFormat(input)
	if clean == "" {
		return ""
	}

	if digits, ok := strings.CutPrefix(clean, "+"); ok {
		if strings.Contains(digits, "+") {
			return clean
		}
		code, national, ok := splitCallingCode(digits)
		if !ok {
			return clean
		}
		groups, ok := f.rules.Groups[code]
		if !ok || len(national) != groupTotal(groups) {
			return clean
		}
		grouped, ok := group(national, groups, f.rules.Separator)
		if !ok {
			return clean
		}
		return "+" + code + " " + grouped
	}

	if strings.Contains(clean, "+") || f.rules.LocalCountry == "" {
		return clean
	}
	groups := f.rules.Groups[f.rules.LocalCountry]
	if len(clean) != groupTotal(groups) {
		return clean
	}
	if grouped, ok := group(clean, groups, f.rules.Separator); ok {
		return grouped
	}
	return clean
}

// FormatAndDelZero drops the trunk zero after the country code, then formats.
func (f Formatter) FormatAndDelZero(input string) string {
	return f.Format(f.DelZero(input))
}

// DelZero removes one trunk zero written after the country code: "+860156…",
// "+86 0156…", "(+86) 0156…" and "+44 (0)20…" lose the zero, everything else
// is untouched. Text before the "+" is kept. No grouping is applied.
func (f Formatter) DelZero(input string) string {
	s := fold(input)

	start := strings.IndexFunc(s, func(ch rune) bool { return isDigit(ch) || ch == '+' })
	if start < 0 || s[start] != '+' {
		return s
	}

	runEnd := start + 1
	for runEnd < len(s) && isDigit(rune(s[runEnd])) {
		runEnd++
	}
	code, _, ok := splitCallingCode(s[start+1 : runEnd])
	if !ok {
		return s
	}

	pos := start + 1 + len(code)
	zero := pos
	for zero < len(s) && strings.IndexByte(" -)", s[zero]) >= 0 {
		zero++
	}

	switch {
	case strings.HasPrefix(s[zero:], "(0)"):
		end := zero + len("(0)")
		if zero > pos {
			// "+44 (0) 20" keeps a single separator
			for end < len(s) && s[end] == ' ' {
				end++
			}
		}
		return s[:zero] + s[end:]
	case zero < len(s) && s[zero] == '0':
		return s[:zero] + s[zero+1:]
	default:
		return s
	}
}

// IsValid reports whether input is digits with an optional leading "+" once the
// allowed separators are removed, and whether the digit count is within bounds.
func (f Formatter) IsValid(input string) bool {
	s := fold(input)
	var b strings.Builder
	for _, ch := range s {
		if strings.ContainsRune(f.rules.AllowedSeparators, ch) {
			continue
		}
		b.WriteRune(ch)
	}

	digits := strings.TrimPrefix(b.String(), "+")
	if digits == "" {
		return false
	}
	for _, ch := range digits {
		if !isDigit(ch) {
			return false
		}
	}
	return len(digits) >= f.rules.MinDigits && len(digits) <= f.rules.MaxDigits
}

// splitCallingCode takes the shortest prefix of digits that is a known calling
// code. Calling codes are prefix-free, so at most one length matches.
func splitCallingCode(digits string) (code, national string, ok bool) {
	for n := 1; n <= 3 && n <= len(digits); n++ {
		if _, known := knownCallingCode(digits[:n]); known {
			return digits[:n], digits[n:], true
		}
	}
	return "", "", false
}

// group splits digits by the group sizes. It fails on sizes below 1, which
// Rules.Validate rejects but New does not check.
func group(digits string, groups []int, sep string) (string, bool) {
	parts := make([]string, 0, len(groups))
	offset := 0
	for _, size := range groups {
		if size < 1 || offset+size > len(digits) {
			return "", false
		}
		parts = append(parts, digits[offset:offset+size])
		offset += size
	}
	return strings.Join(parts, sep), offset == len(digits)
}

// fold maps fullwidth forms such as "＋８６" to ASCII.
func fold(s string) string {
	return width.Narrow.String(s)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
