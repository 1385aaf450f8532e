package tools

// RiskTier grades the severity of an analysis result.
type RiskTier string

const (
	TierInfo    RiskTier = "info"
	TierSuccess RiskTier = "success"
	TierWarning RiskTier = "warning"
	TierDanger  RiskTier = "danger"
)

// Result is one tool invocation's report. Results are value types; merging
// enrichment data produces a new Result rather than mutating in place.
type Result struct {
	Tool     ToolID
	Target   string
	Tier     RiskTier
	Findings []string

	// Note states data provenance, e.g. "simulated data" vs live.
	Note string
}

// Merge returns a copy of r with extra findings appended and, when non-empty,
// the note replaced. The receiver is left untouched.
func (r Result) Merge(extra []string, note string) Result {
	out := r
	out.Findings = make([]string, 0, len(r.Findings)+len(extra))
	out.Findings = append(out.Findings, r.Findings...)
	out.Findings = append(out.Findings, extra...)
	if note != "" {
		out.Note = note
	}
	return out
}
