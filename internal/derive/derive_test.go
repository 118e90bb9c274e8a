package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyamorozov/portfolio-cms/internal/model"
)

func skill(name, category string, level int) *model.Skill {
	return &model.Skill{Name: name, Category: category, Level: level}
}

func project(title string, stack []string, featured bool) *model.Project {
	return &model.Project{Title: title, TechStack: stack, IsFeatured: featured}
}

func TestGroupSkillsByCategory_InsertionOrder(t *testing.T) {
	skills := []*model.Skill{
		skill("Go", "Backend", 90),
		skill("React", "Frontend", 80),
		skill("MySQL", "Backend", 70),
		skill("Figma", "", 40),
	}

	groups := GroupSkillsByCategory(skills)
	require.Len(t, groups, 3)

	// Groups keep first-occurrence order; members keep relative order.
	assert.Equal(t, "Backend", groups[0].Category)
	assert.Equal(t, []*model.Skill{skills[0], skills[2]}, groups[0].Skills)
	assert.Equal(t, "Frontend", groups[1].Category)
	// Empty category rows land in Other.
	assert.Equal(t, "Other", groups[2].Category)
	assert.Equal(t, "Figma", groups[2].Skills[0].Name)
}

func TestGroupSkillsByCategory_Empty(t *testing.T) {
	assert.Empty(t, GroupSkillsByCategory(nil))
}

func TestFilterProjectsByTech(t *testing.T) {
	projects := []*model.Project{
		project("Shop", []string{"React", "Go"}, false),
		project("Blog", []string{"Vue"}, false),
		project("API", []string{"Go", "MySQL"}, true),
	}

	// Case-insensitive substring match against any tag.
	got := FilterProjectsByTech(projects, "react")
	require.Len(t, got, 1)
	assert.Equal(t, "Shop", got[0].Title)

	got = FilterProjectsByTech(projects, "GO")
	assert.Len(t, got, 2)

	// Empty and whitespace queries keep everything.
	assert.Equal(t, projects, FilterProjectsByTech(projects, ""))
	assert.Equal(t, projects, FilterProjectsByTech(projects, "   "))

	assert.Empty(t, FilterProjectsByTech(projects, "rust"))
}

func TestFilterFeatured(t *testing.T) {
	projects := []*model.Project{
		project("Shop", nil, false),
		project("API", nil, true),
	}
	got := FilterFeatured(projects)
	require.Len(t, got, 1)
	assert.Equal(t, "API", got[0].Title)
}

func TestTechFilters(t *testing.T) {
	projects := []*model.Project{
		project("Shop", []string{"React", "Go"}, false),
		project("API", []string{"Go", "MySQL", "Redis"}, false),
	}

	// Unique tags in first-seen order.
	assert.Equal(t, []string{"React", "Go", "MySQL", "Redis"}, TechFilters(projects, 0))
	// Capped at max.
	assert.Equal(t, []string{"React", "Go"}, TechFilters(projects, 2))
}

func TestDashboardStats(t *testing.T) {
	skills := []*model.Skill{
		skill("Go", "Backend", 90),
		skill("React", "Frontend", 75),
		skill("Figma", "", 40),
	}
	contacts := []*model.Contact{
		{IsRead: false},
		{IsRead: true},
		{IsRead: false},
	}
	projects := []*model.Project{project("Shop", nil, false)}

	st := DashboardStats(projects, skills, contacts)
	assert.Equal(t, 1, st.Projects)
	assert.Equal(t, 3, st.Skills)
	assert.Equal(t, 3, st.Contacts)
	assert.Equal(t, 2, st.UnreadContacts)
	assert.Equal(t, map[string]int{"Backend": 1, "Frontend": 1, "Other": 1}, st.SkillsByGroup)
	// (90+75+40)/3 = 68.33 rounds to 68.
	assert.Equal(t, 68, st.AvgSkillLevel)
}

func TestDashboardStats_Empty(t *testing.T) {
	st := DashboardStats(nil, nil, nil)
	assert.Zero(t, st.Projects)
	assert.Zero(t, st.AvgSkillLevel)
	assert.NotNil(t, st.SkillsByGroup)
}

func TestRecentContacts(t *testing.T) {
	contacts := []*model.Contact{{ID: 3}, {ID: 2}, {ID: 1}}
	assert.Len(t, RecentContacts(contacts, 2), 2)
	assert.Equal(t, uint64(3), RecentContacts(contacts, 2)[0].ID)
	// Shorter lists come back untouched.
	assert.Equal(t, contacts, RecentContacts(contacts, 5))
}
