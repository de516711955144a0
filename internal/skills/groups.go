package skills

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Group is one category bucket of skill names, in document order.
type Group struct {
	Category types.SkillCategory
	Label    string
	Names    []string
}

// GroupByCategory partitions a flat skill list into category buckets. Bucket
// order follows the first appearance of each category in the list, so every
// layout renders the same grouping.
func GroupByCategory(list []types.Skill) []Group {
	index := make(map[types.SkillCategory]int)
	var groups []Group
	for _, skill := range list {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, Group{
				Category: skill.Category,
				Label:    CategoryLabel(skill.Category),
			})
		}
		groups[i].Names = append(groups[i].Names, skill.Name)
	}
	return groups
}

// CategoryLabel returns the pluralized, capitalized display label for a
// category, e.g. "language" becomes "Languages".
func CategoryLabel(category types.SkillCategory) string {
	name := string(category)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:] + "s"
}

// Contains reports whether the list already holds a skill with the given
// name, compared case-insensitively. Used for duplicate rejection on add.
func Contains(list []types.Skill, name string) bool {
	for _, skill := range list {
		if strings.EqualFold(skill.Name, name) {
			return true
		}
	}
	return false
}
