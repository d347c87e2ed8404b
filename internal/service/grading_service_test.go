package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorbase/grading-backend/internal/config"
	"github.com/tutorbase/grading-backend/internal/model"
)

func newTestService(t *testing.T) *GradingService {
	t.Helper()
	cfg := &config.Config{DefaultMatchMode: "algebraic"}
	return NewGradingService(cfg, zerolog.Nop())
}

func TestGrade(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("numeric correct", func(t *testing.T) {
		res, err := svc.Grade(ctx, model.GradeRequest{
			Answer:     "32",
			AnswerType: "numeric",
			Descriptor: json.RawMessage(`{"answer_type":"numeric","value":"32"}`),
		})
		require.NoError(t, err)
		assert.True(t, res.IsCorrect)
		assert.Equal(t, model.ModeAlgebraic, res.Mode)
	})

	t.Run("unevaluated expression rejected for numeric", func(t *testing.T) {
		res, err := svc.Grade(ctx, model.GradeRequest{
			Answer:     "2^5",
			AnswerType: "numeric",
			Descriptor: json.RawMessage(`{"answer_type":"numeric","value":"32"}`),
		})
		require.NoError(t, err)
		assert.False(t, res.IsCorrect)
	})

	t.Run("request type wins over descriptor type", func(t *testing.T) {
		// Descriptor says short_answer; the request declares numeric,
		// so the expression must be rejected, not evaluated.
		res, err := svc.Grade(ctx, model.GradeRequest{
			Answer:     "30+2",
			AnswerType: "numeric",
			Descriptor: json.RawMessage(`{"answer_type":"short_answer","value":"32"}`),
		})
		require.NoError(t, err)
		assert.False(t, res.IsCorrect)
	})

	t.Run("mode override", func(t *testing.T) {
		req := model.GradeRequest{
			Answer:     "2/4",
			AnswerType: "short_answer",
			Descriptor: json.RawMessage(`{"answer_type":"short_answer","value":"1/2"}`),
			Mode:       "strict",
		}
		res, err := svc.Grade(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsCorrect)
		assert.Equal(t, model.ModeStrict, res.Mode)

		req.Mode = ""
		res, err = svc.Grade(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsCorrect)
	})

	t.Run("fill blank values", func(t *testing.T) {
		res, err := svc.Grade(ctx, model.GradeRequest{
			Answers:    []string{"0.5", "3/4"},
			AnswerType: "fill_blank",
			Descriptor: json.RawMessage(`{"answer_type":"fill_blank","blanks":[{"value":"1/2"},{"value":"0.75"}]}`),
		})
		require.NoError(t, err)
		assert.True(t, res.IsCorrect)
		assert.Len(t, res.Blanks, 2)
	})

	t.Run("matching selections", func(t *testing.T) {
		res, err := svc.Grade(ctx, model.GradeRequest{
			Selections: []int{0, 2, 1},
			AnswerType: "matching",
			Descriptor: json.RawMessage(`{"answer_type":"matching","correct_matches":[0,2,1]}`),
		})
		require.NoError(t, err)
		assert.True(t, res.IsCorrect)
	})

	t.Run("sanitizes submission", func(t *testing.T) {
		res, err := svc.Grade(ctx, model.GradeRequest{
			Answer:     "3\u200b2",
			AnswerType: "numeric",
			Descriptor: json.RawMessage(`{"answer_type":"numeric","value":"32"}`),
		})
		require.NoError(t, err)
		assert.True(t, res.IsCorrect)
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		_, err := svc.Grade(ctx, model.GradeRequest{
			Answer:     "32",
			AnswerType: "numeric",
			Descriptor: json.RawMessage(`{"answer_type":"numeric","bogus":true}`),
		})
		assert.ErrorIs(t, err, ErrDescriptorInvalid)
	})

	t.Run("no answer submitted", func(t *testing.T) {
		_, err := svc.Grade(ctx, model.GradeRequest{
			AnswerType: "numeric",
			Descriptor: json.RawMessage(`{"answer_type":"numeric","value":"32"}`),
		})
		assert.ErrorIs(t, err, ErrNoAnswer)
	})

	t.Run("expired context", func(t *testing.T) {
		expired, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()
		<-expired.Done()
		_, err := svc.Grade(expired, model.GradeRequest{
			Answer:     "32",
			AnswerType: "numeric",
			Descriptor: json.RawMessage(`{"answer_type":"numeric","value":"32"}`),
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestCompare(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("equivalent answers", func(t *testing.T) {
		res, err := svc.Compare(ctx, model.CompareRequest{User: "1/2", Correct: "0.5"})
		require.NoError(t, err)
		assert.True(t, res.Equal)
		assert.Equal(t, "1/2", res.NormalizedUser)
		assert.Equal(t, "0.5", res.NormalizedCorrect)
	})

	t.Run("strict mode", func(t *testing.T) {
		res, err := svc.Compare(ctx, model.CompareRequest{User: "2/4", Correct: "1/2", Mode: "strict"})
		require.NoError(t, err)
		assert.False(t, res.Equal)
	})

	t.Run("alternates", func(t *testing.T) {
		res, err := svc.Compare(ctx, model.CompareRequest{
			User:       "0.5",
			Correct:    "one half",
			Alternates: []string{"1/2"},
		})
		require.NoError(t, err)
		assert.True(t, res.Equal)
	})
}

func TestNormalizeAnswer(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, "1/2", svc.NormalizeAnswer(` \frac{1}{2} `))
	assert.Equal(t, "-2,2", svc.NormalizeAnswer("x = 2, x = -2"))
}

func TestDefaultModeFallback(t *testing.T) {
	cfg := &config.Config{DefaultMatchMode: "bogus"}
	svc := NewGradingService(cfg, zerolog.Nop())
	assert.Equal(t, model.ModeAlgebraic, svc.defaultMode)
}
