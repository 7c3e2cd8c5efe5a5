package phone

import (
	"strings"

	"contact_phone_backend/platform/apperr"

	"github.com/nyaruka/phonenumbers"
)

// LineType is the libphonenumber classification of a number.
type LineType string

const (
	LineTypeFixedLine         LineType = "FIXED_LINE"
	LineTypeMobile            LineType = "MOBILE"
	LineTypeFixedLineOrMobile LineType = "FIXED_LINE_OR_MOBILE"
	LineTypeTollFree          LineType = "TOLL_FREE"
	LineTypePremiumRate       LineType = "PREMIUM_RATE"
	LineTypeSharedCost        LineType = "SHARED_COST"
	LineTypeVoIP              LineType = "VOIP"
	LineTypePersonalNumber    LineType = "PERSONAL_NUMBER"
	LineTypePager             LineType = "PAGER"
	LineTypeUAN               LineType = "UAN"
	LineTypeVoicemail         LineType = "VOICEMAIL"
	LineTypeUnknown           LineType = "UNKNOWN"
)

// Details describes a number using libphonenumber metadata.
type Details struct {
	E164          string   `json:"e164"`
	International string   `json:"international"`
	National      string   `json:"national"`
	Region        string   `json:"region"`
	CountryCode   int      `json:"countryCode"`
	Type          LineType `json:"type"`
	Valid         bool     `json:"valid"`
}

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func (f Formatter) NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(fold(input))
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, f.rules.DefaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// Describe parses input against region, or the default region when region is
// empty. Numbers that parse but fail metadata validation are returned with
// Valid set to false.
func (f Formatter) Describe(input, region string) (*Details, error) {
	trimmed := strings.TrimSpace(fold(input))
	if trimmed == "" {
		return nil, apperr.Validation("phone number cannot be empty")
	}
	if region == "" {
		region = f.rules.DefaultRegion
	}
	region = strings.ToUpper(region)

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "phone number could not be parsed", err).WithOp("phone.Describe")
	}

	return &Details{
		E164:          phonenumbers.Format(number, phonenumbers.E164),
		International: phonenumbers.Format(number, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(number, phonenumbers.NATIONAL),
		Region:        phonenumbers.GetRegionCodeForNumber(number),
		CountryCode:   int(number.GetCountryCode()),
		Type:          lineType(phonenumbers.GetNumberType(number)),
		Valid:         phonenumbers.IsValidNumber(number),
	}, nil
}

func lineType(t phonenumbers.PhoneNumberType) LineType {
	switch t {
	case phonenumbers.FIXED_LINE:
		return LineTypeFixedLine
	case phonenumbers.MOBILE:
		return LineTypeMobile
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return LineTypeFixedLineOrMobile
	case phonenumbers.TOLL_FREE:
		return LineTypeTollFree
	case phonenumbers.PREMIUM_RATE:
		return LineTypePremiumRate
	case phonenumbers.SHARED_COST:
		return LineTypeSharedCost
	case phonenumbers.VOIP:
		return LineTypeVoIP
	case phonenumbers.PERSONAL_NUMBER:
		return LineTypePersonalNumber
	case phonenumbers.PAGER:
		return LineTypePager
	case phonenumbers.UAN:
		return LineTypeUAN
	case phonenumbers.VOICEMAIL:
		return LineTypeVoicemail
	default:
		return LineTypeUnknown
	}
}
