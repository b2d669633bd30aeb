package compose

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wealth-advisor-be/internal/constant"
	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/pkg/funnel/lead"
	"wealth-advisor-be/pkg/funnel/qcm"
	"wealth-advisor-be/pkg/funnel/stage"
	"wealth-advisor-be/pkg/llm"
)

// Composer assembles the per-turn prompt and invokes the model exactly once
// (plus at most one extra call, ever, for the completion recommendation).
type Composer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger

	// maxReplyRunes bounds the user-visible reply; longer output is cut at
	// the last sentence boundary. Approximate on purpose, not token counting.
	maxReplyRunes int
	maxTokens     int
}

type Input struct {
	Question string
	Stage    stage.Stage
	Lead     lead.Record
	Qcm      qcm.Progress
	History  []entity.Turn
	Docs     []entity.KnowledgeDocument

	// WantRecommendation asks for the one-shot recommendation block. The
	// caller only sets it when the persisted flag says none was generated.
	WantRecommendation bool
}

type Result struct {
	Reply string

	// RecommendationGenerated tells the caller to persist the guard flag.
	RecommendationGenerated bool
}

func NewComposer(llmProvider llm.LLMProvider, maxReplyRunes int, logger *log.Logger) *Composer {
	if maxReplyRunes <= 0 {
		maxReplyRunes = 1600
	}
	return &Composer{
		llmProvider:   llmProvider,
		logger:        logger,
		maxReplyRunes: maxReplyRunes,
		maxTokens:     500,
	}
}

// Compose builds the prompt and generates the reply. A failed completion
// degrades to the fixed fallback reply; it never errors the turn.
func (c *Composer) Compose(ctx context.Context, in Input) Result {
	history := c.buildHistory(in)

	reply, err := c.llmProvider.Chat(ctx, history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		c.logger.Printf("[COMPOSE] generation failed, using fallback: %v", err)
		return Result{Reply: constant.FallbackReply}
	}

	reply = truncateAtSentence(strings.TrimSpace(reply), c.maxReplyRunes)

	result := Result{Reply: reply}

	if in.WantRecommendation && in.Stage == stage.Complete {
		if block, ok := c.generateRecommendation(ctx, in); ok {
			result.Reply = reply + "\n\n" + block
			result.RecommendationGenerated = true
		}
	}

	return result
}

func (c *Composer) buildHistory(in Input) []llm.Message {
	var system strings.Builder
	system.WriteString(constant.SystemPolicyV2)
	system.WriteString("\n\n")

	if len(in.Docs) > 0 {
		system.WriteString("DOCUMENTS DE RÉFÉRENCE :\n")
		for _, doc := range in.Docs {
			system.WriteString(fmt.Sprintf("Titre: %s\nContenu: %s\nURL: %s\n\n", doc.Title, doc.Content, doc.URL))
		}
	}

	system.WriteString("PROFIL DU VISITEUR :\n")
	system.WriteString(serializeState(in.Lead, in.Qcm))
	system.WriteString("\nDIRECTIVE :\n")
	system.WriteString(stage.Directive(in.Stage))

	messages := []llm.Message{{Role: "system", Content: system.String()}}

	for _, turn := range in.History {
		messages = append(messages,
			llm.Message{Role: "user", Content: turn.Question},
			llm.Message{Role: "assistant", Content: turn.Reply},
		)
	}

	messages = append(messages, llm.Message{Role: "user", Content: in.Question})
	return messages
}

func (c *Composer) generateRecommendation(ctx context.Context, in Input) (string, bool) {
	var prompt strings.Builder
	prompt.WriteString(constant.RecommendationPromptV1)
	prompt.WriteString("\n\nPROFIL :\n")
	prompt.WriteString(serializeState(in.Lead, in.Qcm))
	if len(in.Docs) > 0 {
		prompt.WriteString("\nRESSOURCES DISPONIBLES :\n")
		for _, doc := range in.Docs {
			prompt.WriteString(fmt.Sprintf("- %s (%s)\n", doc.Title, doc.URL))
		}
	}

	block, err := c.llmProvider.Generate(ctx, prompt.String(),
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		// Not fatal: the flag stays unset and the next turn retries.
		c.logger.Printf("[COMPOSE] recommendation generation failed: %v", err)
		return "", false
	}

	return strings.TrimSpace(block), true
}

func serializeState(record lead.Record, progress qcm.Progress) string {
	var b strings.Builder
	writeField := func(label string, v *string) {
		if v != nil {
			b.WriteString(fmt.Sprintf("- %s : %s\n", label, *v))
		} else {
			b.WriteString(fmt.Sprintf("- %s : (inconnu)\n", label))
		}
	}

	writeField("Nom", record.Name)
	writeField("Profession", record.Profession)
	writeField("Contact", record.Contact)
	writeField("Téléphone", record.Phone)
	writeField("Patrimoine financier", record.WealthBracket)
	writeField("Revenu annuel", record.IncomeBracket)

	if len(record.Objectives) > 0 {
		b.WriteString("- Objectifs : " + strings.Join(record.Objectives, ", ") + "\n")
	} else {
		b.WriteString("- Objectifs : (inconnus)\n")
	}

	for _, key := range []string{constant.QcmKeyObjectives, constant.QcmKeyWealth, constant.QcmKeyIncome, constant.QcmKeyPhone} {
		if progress.Answered(key) {
			b.WriteString(fmt.Sprintf("- QCM %s : %s\n", key, progress[key]))
		}
	}

	return b.String()
}

// truncateAtSentence cuts the text at the last sentence boundary before the
// rune limit and appends the ask-for-specifics notice. Replies with no
// boundary before the limit are hard-cut instead of returned whole.
func truncateAtSentence(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}

	window := runes[:maxRunes]
	cut := -1
	for i := len(window) - 1; i >= 0; i-- {
		switch window[i] {
		case '.', '!', '?':
			cut = i + 1
		}
		if cut >= 0 {
			break
		}
	}
	if cut <= 0 {
		cut = maxRunes
	}

	return strings.TrimSpace(string(window[:cut])) + constant.TruncationNotice
}
