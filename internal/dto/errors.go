package dto

import "fmt"

// The turn pipeline classifies every failure so the orchestrator can decide
// what degrades and what propagates. Only ValidationError (400) and
// RetrievalError (500) ever reach the caller; the rest are absorbed with
// degraded behavior and reported to the log/event sink.

// ValidationError is a missing or malformed required input. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExtractionError is a failed or unparseable fact-extraction call,
// recovered as "no facts extracted".
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("fact extraction failed: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// RetrievalError is a failed embedding or nearest-neighbor lookup. It
// propagates: without retrieval there is nothing to ground the answer in.
type RetrievalError struct {
	Cause error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("knowledge retrieval failed: %v", e.Cause)
}

func (e *RetrievalError) Unwrap() error { return e.Cause }

// GenerationError is a failed chat completion, recovered with the fixed
// fallback reply to keep the conversation alive.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("reply generation failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// PersistenceError is a failed state-store read or write. Reads degrade to
// the empty state ("forgot everything" beats crashing); writes are logged.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("conversation store %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }
