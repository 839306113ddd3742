package advisory

import (
	"crop-advisory-service/internal/models"
	"crop-advisory-service/internal/refdata"
)

// Resolver turns pest candidates and farmer context into concrete
// recommendations using the reference tables.
type Resolver struct {
	tables *refdata.Tables
}

// NewResolver builds a resolver over the given reference tables.
func NewResolver(tables *refdata.Tables) *Resolver {
	return &Resolver{tables: tables}
}

// Recommend picks the treatment for the highest-risk pest. Ties keep list
// order; an empty candidate list yields the default treatment and no pest name.
func (r *Resolver) Recommend(candidates []models.PestCandidate) (recommendation, pest string) {
	if len(candidates) == 0 {
		return r.tables.TreatmentFor(""), ""
	}
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Risk.Rank() > top.Risk.Rank() {
			top = c
		}
	}
	return r.tables.TreatmentFor(top.Pest), top.Pest
}

// SoilAdvice resolves fertility guidance for a soil type.
func (r *Resolver) SoilAdvice(soil string) string {
	return r.tables.SoilAdviceFor(soil)
}

// Schemes resolves the applicable government schemes for a crop.
func (r *Resolver) Schemes(crop string) []models.GovtScheme {
	return r.tables.SchemesFor(crop)
}
