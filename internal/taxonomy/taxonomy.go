package taxonomy

import (
	"slices"
	"sort"
)

// Taxonomy holds the skill catalog and prerequisite graph with precomputed
// indices. It is immutable once built and safe for concurrent readers.
type Taxonomy struct {
	version     string
	skills      []Skill
	byID        map[string]*Skill
	domains     []Domain
	domainByID  map[string]*Domain
	subAreas    []SubArea
	subAreaByID map[string]*SubArea
	byDomain    map[string][]Skill
	bySubArea   map[string][]Skill
	byTier      map[int][]Skill
	roots       []Skill
	dependents  map[string][]string
	topoOrder   []Skill
	topoIndex   map[string]int
	relations   map[[2]string]Relation
	overrides   map[edgeKey]float64
	overrideSeq []Override
	edgeCount   int
}

// build constructs the taxonomy from a validated source.
// It builds all indices including topological order (Kahn's algorithm).
func build(src source) *Taxonomy {
	t := &Taxonomy{
		version:     src.version,
		skills:      src.skills,
		byID:        make(map[string]*Skill, len(src.skills)),
		domains:     src.domains,
		domainByID:  make(map[string]*Domain, len(src.domains)),
		subAreas:    src.subAreas,
		subAreaByID: make(map[string]*SubArea, len(src.subAreas)),
		byDomain:    make(map[string][]Skill),
		bySubArea:   make(map[string][]Skill),
		byTier:      make(map[int][]Skill),
		dependents:  make(map[string][]string),
		topoIndex:   make(map[string]int, len(src.skills)),
		relations:   src.relations,
		overrides:   make(map[edgeKey]float64, len(src.overrides)),
		overrideSeq: src.overrides,
	}

	for i := range t.skills {
		t.byID[t.skills[i].ID] = &t.skills[i]
	}
	for i := range t.domains {
		t.domainByID[t.domains[i].ID] = &t.domains[i]
	}
	for i := range t.subAreas {
		t.subAreaByID[t.subAreas[i].ID] = &t.subAreas[i]
	}
	for _, o := range src.overrides {
		t.overrides[edgeKey{o.Dependent, o.Prerequisite}] = o.Strength
	}

	// Build reverse edges (dependents)
	for i := range t.skills {
		t.edgeCount += len(t.skills[i].Prerequisites)
		for _, prereqID := range t.skills[i].Prerequisites {
			t.dependents[prereqID] = append(t.dependents[prereqID], t.skills[i].ID)
		}
	}
	for id := range t.dependents {
		sort.Strings(t.dependents[id])
	}

	// Topological sort (Kahn's algorithm)
	inDegree := make(map[string]int, len(t.skills))
	for i := range t.skills {
		inDegree[t.skills[i].ID] = len(t.skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		t.topoIndex[id] = len(t.topoOrder)
		t.topoOrder = append(t.topoOrder, *t.byID[id])

		for _, depID := range t.dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	for i := range t.skills {
		s := t.skills[i]
		if len(s.Prerequisites) == 0 {
			t.roots = append(t.roots, s)
		}
		t.byDomain[s.DomainID] = append(t.byDomain[s.DomainID], s)
		t.bySubArea[s.SubAreaID] = append(t.bySubArea[s.SubAreaID], s)
		t.byTier[s.Tier] = append(t.byTier[s.Tier], s)
	}

	// Domain groups read foundation-first: tier asc, then topological position.
	for _, group := range t.byDomain {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Tier != group[j].Tier {
				return group[i].Tier < group[j].Tier
			}
			return t.topoIndex[group[i].ID] < t.topoIndex[group[j].ID]
		})
	}

	return t
}

// Version returns the dataset version.
func (t *Taxonomy) Version() string {
	return t.version
}

// Len returns the number of skills.
func (t *Taxonomy) Len() int {
	return len(t.skills)
}

// EdgeCount returns the number of direct prerequisite edges.
func (t *Taxonomy) EdgeCount() int {
	return t.edgeCount
}

// Skill returns a skill by ID, or ErrSkillNotFound.
func (t *Taxonomy) Skill(id string) (Skill, error) {
	s, ok := t.byID[id]
	if !ok {
		return Skill{}, notFound(id)
	}
	return cloneSkill(*s), nil
}

// HasSkill reports whether id names a skill in the taxonomy.
func (t *Taxonomy) HasSkill(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// Skills returns all skills in dataset order.
func (t *Taxonomy) Skills() []Skill {
	return cloneSkills(t.skills)
}

// SkillsInDomain returns a domain's skills ordered by tier then topological position.
func (t *Taxonomy) SkillsInDomain(domainID string) []Skill {
	return cloneSkills(t.byDomain[domainID])
}

// SkillsInSubArea returns a sub-area's skills in dataset order.
func (t *Taxonomy) SkillsInSubArea(subAreaID string) []Skill {
	return cloneSkills(t.bySubArea[subAreaID])
}

// SkillsAtTier returns all skills of the given tier in dataset order.
func (t *Taxonomy) SkillsAtTier(tier int) []Skill {
	return cloneSkills(t.byTier[tier])
}

// Domain returns a domain by ID.
func (t *Taxonomy) Domain(id string) (Domain, bool) {
	d, ok := t.domainByID[id]
	if !ok {
		return Domain{}, false
	}
	out := *d
	out.SubAreas = slices.Clone(d.SubAreas)
	return out, true
}

// Domains returns all domains in dataset order.
func (t *Taxonomy) Domains() []Domain {
	out := make([]Domain, len(t.domains))
	for i, d := range t.domains {
		out[i] = d
		out[i].SubAreas = slices.Clone(d.SubAreas)
	}
	return out
}

// IsFoundational reports whether the domain is marked foundational.
func (t *Taxonomy) IsFoundational(domainID string) bool {
	d, ok := t.domainByID[domainID]
	return ok && d.Foundational
}

// SubArea returns a sub-area by ID.
func (t *Taxonomy) SubArea(id string) (SubArea, bool) {
	sa, ok := t.subAreaByID[id]
	if !ok {
		return SubArea{}, false
	}
	return cloneSubArea(*sa), true
}

// SubAreas returns all sub-areas in dataset order.
func (t *Taxonomy) SubAreas() []SubArea {
	out := make([]SubArea, len(t.subAreas))
	for i, sa := range t.subAreas {
		out[i] = cloneSubArea(sa)
	}
	return out
}

// SubAreaPrerequisites returns the structural prerequisite sub-areas of a sub-area.
func (t *Taxonomy) SubAreaPrerequisites(subAreaID string) []SubArea {
	sa, ok := t.subAreaByID[subAreaID]
	if !ok {
		return nil
	}
	result := make([]SubArea, 0, len(sa.Prerequisites))
	for _, id := range sa.Prerequisites {
		if p, ok := t.subAreaByID[id]; ok {
			result = append(result, cloneSubArea(*p))
		}
	}
	return result
}

// Prerequisites returns the direct prerequisite skills for a given skill ID.
func (t *Taxonomy) Prerequisites(id string) []Skill {
	s, ok := t.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := t.byID[prereqID]; ok {
			result = append(result, cloneSkill(*p))
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID, sorted by ID.
func (t *Taxonomy) Dependents(id string) []Skill {
	depIDs := t.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := t.byID[depID]; ok {
			result = append(result, cloneSkill(*s))
		}
	}
	return result
}

// Relation classifies how dependentDomain relies on prerequisiteDomain.
// Same-domain pairs and unlisted pairs are RelationRequires.
func (t *Taxonomy) Relation(dependentDomain, prerequisiteDomain string) Relation {
	if dependentDomain == prerequisiteDomain {
		return RelationRequires
	}
	if r, ok := t.relations[[2]string{dependentDomain, prerequisiteDomain}]; ok {
		return r
	}
	return RelationRequires
}

// Override returns the pinned coupling strength for an edge, if any.
func (t *Taxonomy) Override(dependentID, prerequisiteID string) (float64, bool) {
	v, ok := t.overrides[edgeKey{dependentID, prerequisiteID}]
	return v, ok
}

// Overrides returns all pinned edge strengths in dataset order.
func (t *Taxonomy) Overrides() []Override {
	return slices.Clone(t.overrideSeq)
}

// RootSkills returns all skills with no prerequisites.
func (t *Taxonomy) RootSkills() []Skill {
	return cloneSkills(t.roots)
}

// TopologicalOrder returns all skills in a valid topological order.
func (t *Taxonomy) TopologicalOrder() []Skill {
	return cloneSkills(t.topoOrder)
}

func cloneSkill(s Skill) Skill {
	s.Prerequisites = slices.Clone(s.Prerequisites)
	return s
}

func cloneSkills(skills []Skill) []Skill {
	if skills == nil {
		return nil
	}
	out := make([]Skill, len(skills))
	for i, s := range skills {
		out[i] = cloneSkill(s)
	}
	return out
}

func cloneSubArea(sa SubArea) SubArea {
	sa.Prerequisites = slices.Clone(sa.Prerequisites)
	sa.SubGroups = slices.Clone(sa.SubGroups)
	return sa
}
