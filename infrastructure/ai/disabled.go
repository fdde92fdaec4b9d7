package ai

import (
	"context"
	"errors"

	"taskjar/domain/ports"
)

// ErrGeneratorDisabled is returned when no Gemini API key is configured.
var ErrGeneratorDisabled = errors.New("task generation is not configured")

// DisabledGenerator stands in when the Gemini client cannot be built.
// Every call fails, which routes callers onto their deterministic
// fallback plans.
type DisabledGenerator struct{}

func NewDisabledGenerator() *DisabledGenerator {
	return &DisabledGenerator{}
}

func (DisabledGenerator) Generate(ctx context.Context, prompt string) ([]ports.GeneratedTask, error) {
	return nil, ErrGeneratorDisabled
}

func (DisabledGenerator) GenerateWeekly(ctx context.Context, prompt, weekStart, weekEnd string) ([]ports.GeneratedTask, error) {
	return nil, ErrGeneratorDisabled
}
