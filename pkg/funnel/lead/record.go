package lead

const (
	StatusNew       = "new"
	StatusQualified = "qualified"
)

// Record is the accumulated qualification data for one conversation.
// Optional fields are pointers: nil means "never collected", which is the
// distinction the merge policy is built on.
type Record struct {
	Name          *string  `json:"name"`
	Profession    *string  `json:"profession"`
	Contact       *string  `json:"contact"`
	Phone         *string  `json:"phone"`
	WealthBracket *string  `json:"wealth_bracket"`
	IncomeBracket *string  `json:"income_bracket"`
	Objectives    []string `json:"objectives"`
	Status        string   `json:"status"`

	// RecommendationSent guards the one-shot recommendation block.
	RecommendationSent bool `json:"recommendation_sent"`
}

// Partial is what a single extraction pass produces. Same shape as Record
// minus the lifecycle fields the extractor must never touch.
type Partial struct {
	Name          *string  `json:"name"`
	Profession    *string  `json:"profession"`
	Contact       *string  `json:"contact"`
	Phone         *string  `json:"phone"`
	WealthBracket *string  `json:"wealth_bracket"`
	IncomeBracket *string  `json:"income_bracket"`
	Objectives    []string `json:"objectives"`
}

func NewRecord() Record {
	return Record{Status: StatusNew}
}

// IsEmpty reports whether the partial carries no facts at all.
func (p Partial) IsEmpty() bool {
	return p.Name == nil && p.Profession == nil && p.Contact == nil &&
		p.Phone == nil && p.WealthBracket == nil && p.IncomeBracket == nil &&
		len(p.Objectives) == 0
}

// Merge folds a partial into the record, fill-missing-only: a field that is
// already set is never overwritten, a nil incoming field never clears
// anything. Objectives are unioned. Status is re-derived afterwards and is
// monotone: once qualified, a record stays qualified.
func Merge(existing Record, incoming Partial) Record {
	merged := existing

	merged.Name = fillMissing(existing.Name, incoming.Name)
	merged.Profession = fillMissing(existing.Profession, incoming.Profession)
	merged.Contact = fillMissing(existing.Contact, incoming.Contact)
	merged.Phone = fillMissing(existing.Phone, incoming.Phone)
	merged.WealthBracket = fillMissing(existing.WealthBracket, incoming.WealthBracket)
	merged.IncomeBracket = fillMissing(existing.IncomeBracket, incoming.IncomeBracket)
	merged.Objectives = unionObjectives(existing.Objectives, incoming.Objectives)

	if merged.Status == "" {
		merged.Status = StatusNew
	}
	if merged.isQualifiable() {
		merged.Status = StatusQualified
	}

	return merged
}

// isQualifiable is the required subset: name, contact and wealth bracket.
func (r Record) isQualifiable() bool {
	return r.Name != nil && r.Contact != nil && r.WealthBracket != nil
}

func fillMissing(existing, incoming *string) *string {
	if existing != nil {
		return existing
	}
	if incoming == nil || *incoming == "" {
		return nil
	}
	v := *incoming
	return &v
}

func unionObjectives(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]bool, len(existing))
	result := make([]string, 0, len(existing)+len(incoming))
	for _, o := range existing {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		result = append(result, o)
	}
	for _, o := range incoming {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		result = append(result, o)
	}
	return result
}
