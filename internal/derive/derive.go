// Package derive holds the pure transformations applied to fetched
// collections before render: grouping skills by category, filtering projects,
// and computing dashboard aggregates. All functions are deterministic in
// their inputs and keep no state.
package derive

import (
	"strings"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

// SkillGroup is one category bucket with its members in their original
// relative order.
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []*model.Skill `json:"skills"`
}

// GroupSkillsByCategory buckets skills by exact category string. Groups
// appear in insertion order of their first occurrence; skills with an empty
// category land in "Other".
func GroupSkillsByCategory(skills []*model.Skill) []SkillGroup {
	idx := make(map[string]int, len(skills))
	var groups []SkillGroup
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = "Other"
		}
		i, ok := idx[cat]
		if !ok {
			i = len(groups)
			idx[cat] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// FilterProjectsByTech keeps projects whose tech stack contains the query as
// a case-insensitive substring of any tag. An empty query keeps everything.
func FilterProjectsByTech(projects []*model.Project, query string) []*model.Project {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return projects
	}
	var out []*model.Project
	for _, p := range projects {
		for _, tech := range p.TechStack {
			if strings.Contains(strings.ToLower(tech), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// FilterFeatured keeps only featured projects.
func FilterFeatured(projects []*model.Project) []*model.Project {
	var out []*model.Project
	for _, p := range projects {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// TechFilters returns the unique tech tags across projects in first-seen
// order, capped at max (the public filter bar shows a handful). max <= 0
// means no cap.
func TechFilters(projects []*model.Project, max int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range projects {
		for _, tech := range p.TechStack {
			if seen[tech] {
				continue
			}
			seen[tech] = true
			out = append(out, tech)
		}
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// Stats are the dashboard aggregates.
type Stats struct {
	Projects       int            `json:"projects"`
	Skills         int            `json:"skills"`
	Contacts       int            `json:"contacts"`
	UnreadContacts int            `json:"unread_contacts"`
	SkillsByGroup  map[string]int `json:"skills_by_category"`
	AvgSkillLevel  int            `json:"avg_skill_level"`
}

// DashboardStats computes totals, per-category counts and the rounded
// average skill level. Zero skills yields a zero average rather than a
// division by zero.
func DashboardStats(projects []*model.Project, skills []*model.Skill, contacts []*model.Contact) Stats {
	st := Stats{
		Projects:      len(projects),
		Skills:        len(skills),
		Contacts:      len(contacts),
		SkillsByGroup: make(map[string]int),
	}
	for _, m := range contacts {
		if !m.IsRead {
			st.UnreadContacts++
		}
	}
	sum := 0
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = "Other"
		}
		st.SkillsByGroup[cat]++
		sum += s.Level
	}
	if len(skills) > 0 {
		st.AvgSkillLevel = (sum + len(skills)/2) / len(skills)
	}
	return st
}

// RecentContacts returns the first n of an already newest-first list.
func RecentContacts(contacts []*model.Contact, n int) []*model.Contact {
	if len(contacts) <= n {
		return contacts
	}
	return contacts[:n]
}
