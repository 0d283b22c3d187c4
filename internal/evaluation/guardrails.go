package evaluation

import "fmt"

// GuardrailConfig sets the minimum scores a run must reach. Zero disables a check.
type GuardrailConfig struct {
	MinMacroF1    float64
	MinMicroF1    float64
	MinAvgMRRAt10 float64
}

// Guardrails turns an EvalSummary into pass/fail
type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	return &Guardrails{config: config}
}

// Check returns one message per failed threshold
func (g *Guardrails) Check(s *EvalSummary) []string {
	var failures []string
	if g.config.MinMacroF1 > 0 && s.MacroF1 < g.config.MinMacroF1 {
		failures = append(failures, fmt.Sprintf("macro F1 %.3f is below %.3f", s.MacroF1, g.config.MinMacroF1))
	}
	if g.config.MinMicroF1 > 0 && s.MicroF1 < g.config.MinMicroF1 {
		failures = append(failures, fmt.Sprintf("micro F1 %.3f is below %.3f", s.MicroF1, g.config.MinMicroF1))
	}
	if g.config.MinAvgMRRAt10 > 0 && len(s.Rankings) > 0 && s.AvgMRRAt10 < g.config.MinAvgMRRAt10 {
		failures = append(failures, fmt.Sprintf("MRR@10 %.3f is below %.3f", s.AvgMRRAt10, g.config.MinAvgMRRAt10))
	}
	return failures
}
