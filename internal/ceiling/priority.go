package ceiling

import "sort"

// Reasons attached to priority entries, in precedence order.
const (
	ReasonHighInfluence  = "high influence"
	ReasonFoundation     = "foundation skill"
	ReasonFirstInDomain  = "first in domain"
	ReasonJunction       = "junction point"
	ReasonPrerequisite   = "prerequisite"
	ReasonFoundationTier = "foundation tier"
	ReasonCoverage       = "fills coverage"
)

// Priority weights.
const (
	downstreamWeight      = 3
	directWeight          = 2
	tierWeight            = 2
	tierCeiling           = 6
	unassessedDomainBonus = 5
	junctionBonus         = 3
	prerequisiteBonus     = 2
	heavyConstraintCost   = 8

	highInfluenceDownstream = 5
	foundationTierMax       = 2
)

// PriorityEntry ranks one unassessed skill for "assess this next".
type PriorityEntry struct {
	SkillID            string `json:"skillId"`
	Name               string `json:"name"`
	DomainID           string `json:"domainId"`
	Tier               int    `json:"tier"`
	Priority           int    `json:"priority"`
	Reason             string `json:"reason"`
	DownstreamCount    int    `json:"downstreamCount"`
	DirectDownstream   int    `json:"directDownstream"`
	IsJunction         bool   `json:"isJunction"`
	DomainUnassessed   bool   `json:"domainUnassessed"`
	HeavilyConstrained bool   `json:"heavilyConstrained"`
}

// StartHerePriority orders all unassessed skills by where assessing them
// yields the most information, highest priority first.
func (e *Engine) StartHerePriority(a Assessments) []PriorityEntry {
	assessedDomains := make(map[string]bool)
	for id := range a {
		if s, ok := e.skills[id]; ok {
			assessedDomains[s.DomainID] = true
		}
	}

	out := make([]PriorityEntry, 0, len(e.order))
	for _, id := range e.order {
		if _, ok := a.Assessed(id); ok {
			continue
		}
		s := e.skills[id]

		downstream := e.reach.transitive(id)
		direct := len(e.reach.direct(id))
		isPrereq := direct > 0
		isJunction := isPrereq && len(s.Prerequisites) > 0
		domainUnassessed := !assessedDomains[s.DomainID]
		c, hasCeiling := e.SkillCeiling(id, a)
		heavy := hasCeiling && c.Ceiling <= NeedsWork

		p := downstreamWeight*downstream + directWeight*direct + tierWeight*(tierCeiling-s.Tier)
		if domainUnassessed {
			p += unassessedDomainBonus
		}
		if isJunction {
			p += junctionBonus
		}
		if isPrereq {
			p += prerequisiteBonus
		}
		if heavy {
			p -= heavyConstraintCost
		}

		out = append(out, PriorityEntry{
			SkillID:            id,
			Name:               s.Name,
			DomainID:           s.DomainID,
			Tier:               s.Tier,
			Priority:           p,
			Reason:             priorityReason(downstream, s.Tier, isPrereq, domainUnassessed, isJunction),
			DownstreamCount:    downstream,
			DirectDownstream:   direct,
			IsJunction:         isJunction,
			DomainUnassessed:   domainUnassessed,
			HeavilyConstrained: heavy,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].SkillID < out[j].SkillID
	})
	return out
}

func priorityReason(downstream, tier int, isPrereq, domainUnassessed, isJunction bool) string {
	switch {
	case downstream >= highInfluenceDownstream:
		return ReasonHighInfluence
	case tier <= foundationTierMax && isPrereq:
		return ReasonFoundation
	case domainUnassessed:
		return ReasonFirstInDomain
	case isJunction:
		return ReasonJunction
	case isPrereq:
		return ReasonPrerequisite
	case tier <= foundationTierMax:
		return ReasonFoundationTier
	default:
		return ReasonCoverage
	}
}
