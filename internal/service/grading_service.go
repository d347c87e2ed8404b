package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tutorbase/grading-backend/internal/answercheck"
	"github.com/tutorbase/grading-backend/internal/config"
	"github.com/tutorbase/grading-backend/internal/model"
	"github.com/tutorbase/grading-backend/internal/schema"
)

// Grading errors the handler maps to specific API codes.
var (
	ErrDescriptorInvalid = errors.New("descriptor invalid")
	ErrNoAnswer          = errors.New("no answer submitted")
)

// GradingService is the attempt-grading entry point: it sanitizes the
// untrusted submission, validates the descriptor shape, runs the
// equivalence engine and audit-logs the verdict. Persisting the
// verdict as part of an attempt record is the caller's duty — the
// returned ValidationResult is the authoritative grade and a
// client-submitted correctness flag must never be trusted instead.
type GradingService struct {
	defaultMode model.MatchMode
	log         zerolog.Logger
}

// NewGradingService creates a new GradingService.
func NewGradingService(cfg *config.Config, log zerolog.Logger) *GradingService {
	mode, ok := model.ParseMatchMode(cfg.DefaultMatchMode)
	if !ok {
		log.Warn().Str("mode", cfg.DefaultMatchMode).Msg("Unknown DEFAULT_MATCH_MODE, falling back to algebraic")
	}
	return &GradingService{
		defaultMode: mode,
		log:         log.With().Str("component", "grading_service").Logger(),
	}
}

// Grade grades one attempt. It is synchronous and pure apart from the
// audit log entry.
func (s *GradingService) Grade(ctx context.Context, req model.GradeRequest) (*model.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := schema.ValidateDescriptor(req.Descriptor); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptorInvalid, err)
	}
	var d model.AnswerDescriptor
	if err := json.Unmarshal(req.Descriptor, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptorInvalid, err)
	}
	// The question's declared type on the request wins over whatever
	// the stored descriptor carries.
	d.AnswerType = model.AnswerType(req.AnswerType)

	mode := s.defaultMode
	if req.Mode != "" {
		mode, _ = model.ParseMatchMode(req.Mode)
	}

	var res model.ValidationResult
	switch {
	case len(req.Selections) > 0 && d.AnswerType == model.AnswerTypeMatching:
		res = answercheck.ValidateSelections(req.Selections, d, mode)

	case len(req.Answers) > 0 && d.AnswerType == model.AnswerTypeFillBlank:
		values := make([]string, len(req.Answers))
		for i, a := range req.Answers {
			values[i] = answercheck.Sanitize(a)
		}
		res = answercheck.ValidateBlankValues(values, d, mode)

	case req.Answer != "":
		res = answercheck.ValidateAnswer(answercheck.Sanitize(req.Answer), d, mode)

	default:
		return nil, ErrNoAnswer
	}

	s.log.Info().
		Str("answer_type", string(d.AnswerType)).
		Str("mode", string(res.Mode)).
		Str("match_type", string(res.MatchType)).
		Bool("is_correct", res.IsCorrect).
		Msg("Attempt graded")

	return &res, nil
}

// Compare runs a direct two-answer comparison under the requested
// mode, reporting the canonical forms for audit display.
func (s *GradingService) Compare(ctx context.Context, req model.CompareRequest) (*model.CompareResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := s.defaultMode
	if req.Mode != "" {
		mode, _ = model.ParseMatchMode(req.Mode)
	}

	user := answercheck.Sanitize(req.User)
	d := model.AnswerDescriptor{
		AnswerType: model.AnswerTypeShortAnswer,
		Value:      model.FlexString(answercheck.Sanitize(req.Correct)),
		Alternates: req.Alternates,
	}
	res := answercheck.ValidateAnswer(user, d, mode)

	return &model.CompareResponse{
		Equal:             res.IsCorrect,
		NormalizedUser:    res.NormalizedUser,
		NormalizedCorrect: res.NormalizedCorrect,
	}, nil
}

// NormalizeAnswer returns the canonical form of a raw answer.
func (s *GradingService) NormalizeAnswer(raw string) string {
	return answercheck.Normalize(answercheck.Sanitize(raw))
}
