package skills

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory_PreservesFirstAppearanceOrder(t *testing.T) {
	list := []types.Skill{
		{Name: "Docker", Category: types.CategoryTool},
		{Name: "Go", Category: types.CategoryLanguage},
		{Name: "Kubernetes", Category: types.CategoryTool},
		{Name: "Python", Category: types.CategoryLanguage},
		{Name: "AWS", Category: types.CategoryCloud},
	}

	groups := GroupByCategory(list)
	require.Len(t, groups, 3)

	assert.Equal(t, types.CategoryTool, groups[0].Category)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, groups[0].Names)
	assert.Equal(t, types.CategoryLanguage, groups[1].Category)
	assert.Equal(t, []string{"Go", "Python"}, groups[1].Names)
	assert.Equal(t, types.CategoryCloud, groups[2].Category)
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		category types.SkillCategory
		want     string
	}{
		{types.CategoryLanguage, "Languages"},
		{types.CategoryFramework, "Frameworks"},
		{types.CategoryTool, "Tools"},
		{types.CategoryDatabase, "Databases"},
		{types.CategoryCloud, "Clouds"},
		{types.CategorySoft, "Softs"},
		{types.CategoryOther, "Others"},
		{types.SkillCategory(""), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryLabel(tt.category))
	}
}

func TestContains_CaseInsensitive(t *testing.T) {
	list := []types.Skill{{Name: "GraphQL", Category: types.CategoryFramework}}

	assert.True(t, Contains(list, "graphql"))
	assert.True(t, Contains(list, "GRAPHQL"))
	assert.False(t, Contains(list, "REST"))
}
