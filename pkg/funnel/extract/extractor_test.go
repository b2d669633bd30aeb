package extract

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"wealth-advisor-be/pkg/llm"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func newTestExtractor(reply string, err error) *Extractor {
	return NewExtractor(&stubLLM{reply: reply, err: err}, log.New(io.Discard, "", 0))
}

func TestExtractParsesModelOutput(t *testing.T) {
	e := newTestExtractor(`{"name": "Claire Dubois", "profession": "architecte"}`, nil)

	p := e.Extract(context.Background(), "Je suis Claire Dubois, architecte")

	if p.Name == nil || *p.Name != "Claire Dubois" {
		t.Errorf("name not extracted: %v", p.Name)
	}
	if p.Profession == nil || *p.Profession != "architecte" {
		t.Errorf("profession not extracted: %v", p.Profession)
	}
}

func TestExtractStripsCodeFence(t *testing.T) {
	e := newTestExtractor("```json\n{\"contact\": \"claire@x.fr\"}\n```", nil)

	p := e.Extract(context.Background(), "claire@x.fr")

	if p.Contact == nil || *p.Contact != "claire@x.fr" {
		t.Errorf("fenced JSON not parsed: %v", p.Contact)
	}
}

func TestExtractFailsOpen(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{name: "provider error", err: errors.New("timeout")},
		{name: "not JSON at all", reply: "Bonjour ! Comment puis-je aider ?"},
		{name: "truncated JSON", reply: `{"name": "Cl`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExtractor(tt.reply, tt.err)
			p := e.Extract(context.Background(), "peu importe")
			if !p.IsEmpty() {
				t.Errorf("want empty partial, got %+v", p)
			}
		})
	}
}

func TestExtractDropsNullishValues(t *testing.T) {
	e := newTestExtractor(`{"name": "null", "phone": "N/A", "contact": "  ", "objectives": ["", "null", "réduire mes impôts"]}`, nil)

	p := e.Extract(context.Background(), "peu importe")

	if p.Name != nil || p.Phone != nil || p.Contact != nil {
		t.Errorf("nullish strings kept: %+v", p)
	}
	if len(p.Objectives) != 1 || p.Objectives[0] != "réduire mes impôts" {
		t.Errorf("objectives not sanitized: %v", p.Objectives)
	}
}

func TestExtractTrimsWhitespace(t *testing.T) {
	e := newTestExtractor(`{"name": "  Paul Martin  "}`, nil)

	p := e.Extract(context.Background(), "Paul Martin")

	if p.Name == nil || *p.Name != "Paul Martin" {
		t.Errorf("whitespace not trimmed: %v", p.Name)
	}
}
