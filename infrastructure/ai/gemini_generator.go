package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"taskjar/domain/ports"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	maxOutputTokens = 2048
	defaultTemp     = 0.7

	// Hard cap on tasks accepted from a single generation.
	maxGeneratedTasks = 20
)

// GeminiGenerator implements ports.TaskGenerator on top of the Gemini
// API. Responses are requested as JSON and validated before anything
// reaches the task pipeline.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewGeminiGenerator(apiKey, model string) (*GeminiGenerator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		logger: slog.Default().With("component", "gemini"),
	}, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) ([]ports.GeneratedTask, error) {
	return g.generateWithRetry(ctx, buildTaskPrompt(prompt))
}

func (g *GeminiGenerator) GenerateWeekly(ctx context.Context, prompt, weekStart, weekEnd string) ([]ports.GeneratedTask, error) {
	tasks, err := g.generateWithRetry(ctx, buildWeeklyPrompt(prompt, weekStart, weekEnd))
	if err != nil {
		return nil, err
	}
	return DistributeWeek(tasks, weekStart, weekEnd), nil
}

func (g *GeminiGenerator) generateWithRetry(ctx context.Context, prompt string) ([]ports.GeneratedTask, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		tasks, err := g.generate(ctx, prompt)
		if err == nil {
			return tasks, nil
		}
		lastErr = err
		g.logger.WarnContext(ctx, "Generation failed, retrying",
			"attempt", i+1,
			"error", err,
		)
		time.Sleep(retryBaseDelay * time.Duration(i+1))
	}
	return nil, fmt.Errorf("generation failed after %d retries: %w", maxRetries, lastErr)
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) ([]ports.GeneratedTask, error) {
	model := g.client.GenerativeModel(g.model)
	g.configureModel(model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	jsonString, err := g.extractJSON(resp)
	if err != nil {
		return nil, err
	}

	return DecodeTasks(jsonString)
}

func (g *GeminiGenerator) configureModel(model *genai.GenerativeModel) {
	model.ResponseMIMEType = "application/json"
	model.Temperature = toPtr(float32(defaultTemp))
	model.TopP = toPtr(float32(0.95))
	model.TopK = toPtr(int32(40))
	model.MaxOutputTokens = toPtr(int32(maxOutputTokens))
}

func (g *GeminiGenerator) extractJSON(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type: %T", part)
	}

	return string(text), nil
}

func toPtr[T any](v T) *T {
	return &v
}

func buildTaskPrompt(userPrompt string) string {
	var b strings.Builder
	b.WriteString("You turn a student's free-text goal into a short list of concrete, doable tasks.\n\n")
	b.WriteString("Goal:\n")
	b.WriteString(userPrompt)
	b.WriteString("\n\nRespond with JSON only, in this shape:\n")
	b.WriteString(`{"tasks":[{"name":"...","description":"...","priority":"low|medium|high","difficulty":"easy|moderate|hard"}]}`)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- 3 to 8 tasks, each independently completable in one sitting\n")
	b.WriteString("- name under 80 characters, description one sentence\n")
	b.WriteString("- priority and difficulty must use exactly the listed values\n")
	return b.String()
}

func buildWeeklyPrompt(userPrompt, weekStart, weekEnd string) string {
	var b strings.Builder
	b.WriteString("You plan a student's week as a list of concrete tasks spread across the days.\n\n")
	b.WriteString("Week: ")
	b.WriteString(weekStart)
	b.WriteString(" to ")
	b.WriteString(weekEnd)
	b.WriteString(" (inclusive)\n\nGoals for the week:\n")
	b.WriteString(userPrompt)
	b.WriteString("\n\nRespond with JSON only, in this shape:\n")
	b.WriteString(`{"tasks":[{"name":"...","description":"...","priority":"low|medium|high","difficulty":"easy|moderate|hard","scheduledFor":"YYYY-MM-DD"}]}`)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- 5 to 14 tasks, every scheduledFor inside the given week\n")
	b.WriteString("- spread tasks across the days rather than stacking one day\n")
	b.WriteString("- priority and difficulty must use exactly the listed values\n")
	return b.String()
}

// DecodeTasks parses the model's JSON into generated tasks. Accepts
// either a {"tasks":[...]} wrapper or a bare array, tolerating the
// markdown fences some responses still carry despite the JSON MIME
// type.
func DecodeTasks(raw string) ([]ports.GeneratedTask, error) {
	cleaned := StripJSONFence(raw)

	var wrapper struct {
		Tasks []ports.GeneratedTask `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err == nil && wrapper.Tasks != nil {
		return validateTasks(wrapper.Tasks)
	}

	var bare []ports.GeneratedTask
	if err := json.Unmarshal([]byte(cleaned), &bare); err != nil {
		return nil, fmt.Errorf("failed to parse generated tasks: %w", err)
	}
	return validateTasks(bare)
}

// StripJSONFence removes a surrounding markdown code fence if present.
func StripJSONFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func validateTasks(tasks []ports.GeneratedTask) ([]ports.GeneratedTask, error) {
	out := make([]ports.GeneratedTask, 0, len(tasks))
	for _, t := range tasks {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			continue
		}
		out = append(out, t)
		if len(out) == maxGeneratedTasks {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no usable tasks in response")
	}
	return out, nil
}

// DistributeWeek forces every task's scheduled date inside the week
// window. Valid in-window dates are kept; missing or out-of-range dates
// are reassigned round-robin across the days so no single day stacks
// up.
func DistributeWeek(tasks []ports.GeneratedTask, weekStart, weekEnd string) []ports.GeneratedTask {
	start, errStart := time.Parse("2006-01-02", weekStart)
	end, errEnd := time.Parse("2006-01-02", weekEnd)
	if errStart != nil || errEnd != nil || end.Before(start) {
		return tasks
	}

	days := int(end.Sub(start).Hours()/24) + 1
	next := 0
	for i := range tasks {
		if d, err := time.Parse("2006-01-02", tasks[i].ScheduledFor); err == nil {
			if !d.Before(start) && !d.After(end) {
				continue
			}
		}
		tasks[i].ScheduledFor = start.AddDate(0, 0, next%days).Format("2006-01-02")
		next++
	}
	return tasks
}
