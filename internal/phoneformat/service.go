package phoneformat

import (
	"context"
	"fmt"

	"contact_phone_backend/platform/apperr"
	"contact_phone_backend/platform/logger"
	"contact_phone_backend/platform/phone"
)

// Service adapts phone.Formatter to the request/response types of the API.
type Service struct {
	formatter  phone.Formatter
	batchLimit int
	log        *logger.Logger
}

func NewService(formatter phone.Formatter, batchLimit int, log *logger.Logger) *Service {
	return &Service{formatter: formatter, batchLimit: batchLimit, log: log}
}

func (s *Service) Format(req FormatRequest) FormatResponse {
	var formatted string
	if req.DeleteZero {
		formatted = s.formatter.FormatAndDelZero(req.Number)
	} else {
		formatted = s.formatter.Format(req.Number)
	}
	return FormatResponse{
		Input:      req.Number,
		Formatted:  formatted,
		Normalized: s.formatter.RemoveFormat(formatted),
		Valid:      s.formatter.IsValid(req.Number),
	}
}

func (s *Service) Normalize(req NumberRequest) NormalizeResponse {
	return NormalizeResponse{
		Input:      req.Number,
		Normalized: s.formatter.RemoveFormat(req.Number),
		E164:       s.formatter.NormalizeE164(req.Number),
	}
}

func (s *Service) Validate(req NumberRequest) ValidateResponse {
	return ValidateResponse{Input: req.Number, Valid: s.formatter.IsValid(req.Number)}
}

func (s *Service) DelZero(req NumberRequest) DelZeroResponse {
	return DelZeroResponse{Input: req.Number, Result: s.formatter.DelZero(req.Number)}
}

func (s *Service) Describe(ctx context.Context, req DescribeRequest) (*phone.Details, error) {
	details, err := s.formatter.Describe(req.Number, req.Region)
	if err != nil {
		s.log.WithContext(ctx).Debug("describe rejected", "error", err)
		return nil, err
	}
	return details, nil
}

// Batch formats every number in order. Requests above the configured limit are
// rejected as a whole.
func (s *Service) Batch(ctx context.Context, req BatchRequest) (BatchResponse, error) {
	if len(req.Numbers) > s.batchLimit {
		return BatchResponse{}, apperr.Validation(fmt.Sprintf("at most %d numbers per batch", s.batchLimit)).
			WithOp("phoneformat.Batch").
			WithDetails(map[string]int{"limit": s.batchLimit, "received": len(req.Numbers)})
	}

	items := make([]FormatResponse, 0, len(req.Numbers))
	valid := 0
	for _, number := range req.Numbers {
		item := s.Format(FormatRequest{Number: number, DeleteZero: req.DeleteZero})
		if item.Valid {
			valid++
		}
		items = append(items, item)
	}

	s.log.WithContext(ctx).Debug("batch formatted", "count", len(items), "valid", valid)
	return BatchResponse{Items: items}, nil
}
