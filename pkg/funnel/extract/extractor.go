package extract

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"wealth-advisor-be/internal/constant"
	"wealth-advisor-be/pkg/funnel/lead"
	"wealth-advisor-be/pkg/llm"
)

// Extractor turns free-form visitor text into a partial lead record with one
// constrained model call. It is deliberately best-effort: a failed call or
// garbage output yields the empty partial, never an error the caller has to
// handle. A missed fact costs a re-ask; a blocked turn costs the lead.
type Extractor struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewExtractor(llmProvider llm.LLMProvider, logger *log.Logger) *Extractor {
	return &Extractor{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (e *Extractor) Extract(ctx context.Context, text string) lead.Partial {
	history := []llm.Message{
		{Role: "system", Content: constant.ExtractionPromptV1},
		{Role: "user", Content: text},
	}

	raw, err := e.llmProvider.Chat(ctx, history,
		llm.WithTemperature(0),
		llm.WithMaxTokens(300),
	)
	if err != nil {
		e.logger.Printf("[EXTRACT] call failed, treating as no facts: %v", err)
		return lead.Partial{}
	}

	partial, err := parsePartial(raw)
	if err != nil {
		e.logger.Printf("[EXTRACT] unparseable output, treating as no facts: %v", err)
		return lead.Partial{}
	}

	return partial
}

// parsePartial tolerates the fenced ```json blocks models wrap output in.
func parsePartial(raw string) (lead.Partial, error) {
	cleaned := strings.TrimSpace(raw)
	if idx := strings.Index(cleaned, "{"); idx >= 0 {
		cleaned = cleaned[idx:]
	}
	if idx := strings.LastIndex(cleaned, "}"); idx >= 0 {
		cleaned = cleaned[:idx+1]
	}

	var partial lead.Partial
	if err := json.Unmarshal([]byte(cleaned), &partial); err != nil {
		return lead.Partial{}, err
	}

	return sanitize(partial), nil
}

// sanitize drops the "null"-as-string and empty-string values extraction
// models produce instead of real nulls.
func sanitize(p lead.Partial) lead.Partial {
	p.Name = dropNullish(p.Name)
	p.Profession = dropNullish(p.Profession)
	p.Contact = dropNullish(p.Contact)
	p.Phone = dropNullish(p.Phone)
	p.WealthBracket = dropNullish(p.WealthBracket)
	p.IncomeBracket = dropNullish(p.IncomeBracket)

	objectives := p.Objectives[:0]
	for _, o := range p.Objectives {
		o = strings.TrimSpace(o)
		if o != "" && !isNullish(o) {
			objectives = append(objectives, o)
		}
	}
	p.Objectives = objectives

	return p
}

func dropNullish(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" || isNullish(trimmed) {
		return nil
	}
	return &trimmed
}

func isNullish(v string) bool {
	switch strings.ToLower(v) {
	case "null", "none", "n/a", "na", "non renseigné":
		return true
	}
	return false
}
