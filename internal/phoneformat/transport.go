package phoneformat

// NumberRequest carries a single raw number.
type NumberRequest struct {
	Number string `json:"number" validate:"required,max=64"`
}

// FormatRequest asks for display formatting, optionally dropping the trunk zero.
type FormatRequest struct {
	Number     string `json:"number" validate:"required,max=64"`
	DeleteZero bool   `json:"deleteZero"`
}

// DescribeRequest asks for libphonenumber metadata. Region is an ISO 3166 code
// used for numbers written without "+".
type DescribeRequest struct {
	Number string `json:"number" validate:"required,phone"`
	Region string `json:"region" validate:"omitempty,len=2,alpha"`
}

// BatchRequest formats many numbers at once. The upper bound is enforced by the
// service from configuration.
type BatchRequest struct {
	Numbers    []string `json:"numbers" validate:"required,min=1,dive,max=64"`
	DeleteZero bool     `json:"deleteZero"`
}

// FormatResponse is the display form of one number.
type FormatResponse struct {
	Input      string `json:"input"`
	Formatted  string `json:"formatted"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
}

// NormalizeResponse is the separator-free form of one number.
type NormalizeResponse struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	E164       string `json:"e164"`
}

// ValidateResponse reports whether a number passes the shape check.
type ValidateResponse struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
}

// DelZeroResponse is a number with its trunk zero removed.
type DelZeroResponse struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

// BatchResponse holds one FormatResponse per requested number, in order.
type BatchResponse struct {
	Items []FormatResponse `json:"items"`
}
