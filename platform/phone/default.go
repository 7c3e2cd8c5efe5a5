package phone

// defaultFormatter is never mutated; Formatter has no setters.
var defaultFormatter = New(DefaultRules())

// Format formats input with DefaultRules. See Formatter.Format.
func Format(input string) string { return defaultFormatter.Format(input) }

// FormatAndDelZero formats input with DefaultRules after dropping the trunk zero.
func FormatAndDelZero(input string) string { return defaultFormatter.FormatAndDelZero(input) }

// DelZero removes the trunk zero after the country code.
func DelZero(input string) string { return defaultFormatter.DelZero(input) }

// IsValid checks input against DefaultRules.
func IsValid(input string) bool { return defaultFormatter.IsValid(input) }

// RemoveFormat keeps only digits and "+".
func RemoveFormat(input string) string { return defaultFormatter.RemoveFormat(input) }

// NormalizeE164 formats a phone number to E.164 using the default region.
func NormalizeE164(input string) string { return defaultFormatter.NormalizeE164(input) }
