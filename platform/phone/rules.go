package phone

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"contact_phone_backend/platform/apperr"

	"github.com/nyaruka/phonenumbers"
	"gopkg.in/yaml.v3"
)

// unknownRegion is what libphonenumber reports for calling codes it has no metadata for.
const unknownRegion = "ZZ"

const (
	DefaultSeparator         = "-"
	DefaultAllowedSeparators = " -()"
	DefaultMinDigits         = 7
	DefaultMaxDigits         = 15
	DefaultLocalCountry      = "86"
	DefaultRegion            = "CN"
)

// Rules configures grouping and validation. The zero value is not usable; start
// from DefaultRules or LoadRules.
type Rules struct {
	// Groups maps a calling code ("86") to the digit group sizes of its national number.
	Groups map[string][]int `yaml:"groups"`
	// Separator is placed between groups.
	Separator string `yaml:"separator"`
	// LocalCountry selects the grouping for numbers written without "+".
	// Empty leaves such numbers ungrouped.
	LocalCountry string `yaml:"local_country"`
	MinDigits    int    `yaml:"min_digits"`
	MaxDigits    int    `yaml:"max_digits"`
	// AllowedSeparators lists the characters IsValid tolerates besides digits and "+".
	AllowedSeparators string `yaml:"allowed_separators"`
	// DefaultRegion is the ISO region used for metadata lookups.
	DefaultRegion string `yaml:"default_region"`
}

// DefaultRules returns the mainland China display convention: +86 156-3394-4345.
func DefaultRules() Rules {
	return Rules{
		Groups:            map[string][]int{"86": {3, 4, 4}},
		Separator:         DefaultSeparator,
		LocalCountry:      DefaultLocalCountry,
		MinDigits:         DefaultMinDigits,
		MaxDigits:         DefaultMaxDigits,
		AllowedSeparators: DefaultAllowedSeparators,
		DefaultRegion:     DefaultRegion,
	}
}

// LoadRules reads a YAML rules file. Keys missing from the file keep their defaults.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

// rulesFile mirrors Rules with pointers so a key set to an empty value can be
// told apart from a missing key.
type rulesFile struct {
	Groups            map[string][]int `yaml:"groups"`
	Separator         *string          `yaml:"separator"`
	LocalCountry      *string          `yaml:"local_country"`
	MinDigits         *int             `yaml:"min_digits"`
	MaxDigits         *int             `yaml:"max_digits"`
	AllowedSeparators *string          `yaml:"allowed_separators"`
	DefaultRegion     *string          `yaml:"default_region"`
}

// ParseRules decodes YAML rules on top of DefaultRules and validates the result.
// A file that replaces groups without naming local_country drops local grouping
// when the default local country is no longer among the groups.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	var decoded rulesFile
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return Rules{}, apperr.Wrap(apperr.KindValidation, "malformed rules file", err)
	}
	rules.merge(decoded)
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

func (r *Rules) merge(o rulesFile) {
	if o.Groups != nil {
		r.Groups = o.Groups
		if _, ok := r.Groups[r.LocalCountry]; !ok && o.LocalCountry == nil {
			r.LocalCountry = ""
		}
	}
	setIfPresent(&r.Separator, o.Separator)
	setIfPresent(&r.LocalCountry, o.LocalCountry)
	setIfPresent(&r.MinDigits, o.MinDigits)
	setIfPresent(&r.MaxDigits, o.MaxDigits)
	setIfPresent(&r.AllowedSeparators, o.AllowedSeparators)
	if o.DefaultRegion != nil {
		r.DefaultRegion = strings.ToUpper(*o.DefaultRegion)
	}
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports every problem with the rules at once as an apperr validation
// error whose Details hold the individual messages.
func (r Rules) Validate() error {
	var problems []string

	if r.MinDigits < 1 {
		problems = append(problems, "min_digits must be at least 1")
	}
	if r.MaxDigits < r.MinDigits {
		problems = append(problems, "max_digits must not be below min_digits")
	}
	for _, ch := range r.AllowedSeparators {
		if isDigit(ch) || ch == '+' {
			problems = append(problems, fmt.Sprintf("allowed_separators must not contain %q", ch))
		}
	}
	if r.Separator == "" {
		problems = append(problems, "separator must not be empty")
	}
	for _, ch := range r.Separator {
		if !strings.ContainsRune(r.AllowedSeparators, ch) {
			problems = append(problems, fmt.Sprintf("separator character %q is not an allowed separator", ch))
		}
	}
	for code, groups := range r.Groups {
		if _, ok := knownCallingCode(code); !ok {
			problems = append(problems, fmt.Sprintf("unknown calling code %q", code))
		}
		if len(groups) == 0 {
			problems = append(problems, fmt.Sprintf("calling code %q has no groups", code))
		}
		for _, size := range groups {
			if size < 1 {
				problems = append(problems, fmt.Sprintf("calling code %q has non-positive group size %d", code, size))
			}
		}
	}
	if r.LocalCountry != "" {
		if _, ok := r.Groups[r.LocalCountry]; !ok {
			problems = append(problems, fmt.Sprintf("local_country %q has no groups", r.LocalCountry))
		}
	}
	if r.DefaultRegion != "" && phonenumbers.GetCountryCodeForRegion(r.DefaultRegion) == 0 {
		problems = append(problems, fmt.Sprintf("unknown default_region %q", r.DefaultRegion))
	}

	if len(problems) > 0 {
		return apperr.Validation("invalid phone rules").WithDetails(problems)
	}
	return nil
}

func (r Rules) clone() Rules {
	out := r
	out.Groups = make(map[string][]int, len(r.Groups))
	for code, groups := range r.Groups {
		out.Groups[code] = append([]int(nil), groups...)
	}
	return out
}

// knownCallingCode reports whether code is a calling code libphonenumber has metadata for.
func knownCallingCode(code string) (int, bool) {
	if code == "" || len(code) > 3 || code[0] == '0' {
		return 0, false
	}
	for _, ch := range code {
		if !isDigit(ch) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, false
	}
	return n, phonenumbers.GetRegionCodeForCountryCode(n) != unknownRegion
}

func groupTotal(groups []int) int {
	total := 0
	for _, size := range groups {
		total += size
	}
	return total
}
