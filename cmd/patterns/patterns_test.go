package patterns

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/txn-categorizer/internal/categorizer"
	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	pdb "fjacquet/txn-categorizer/internal/patterns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategorizer() *categorizer.Categorizer {
	db := pdb.NewDatabase([]pdb.CategoryPatterns{
		{Category: "Coffee", Patterns: []string{"cafe", "blue tokai"}},
		{Category: "Tea", Patterns: []string{"chai point"}},
	})
	return categorizer.NewCategorizer(db, nil, logging.NewMockLogger(), categorizer.DefaultOptions())
}

func TestPatternsCommand_Structure(t *testing.T) {
	assert.Equal(t, "patterns", Cmd.Use)
	names := []string{}
	for _, c := range Cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "add"}, names)
	assert.Error(t, addCmd.Args(addCmd, []string{"Coffee"}))
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, List(&out, newCategorizer(), ""))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"SPECIFICITY", "CATEGORY", "PATTERN"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"9", "Coffee", "blue", "tokai"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"9", "Tea", "chai", "point"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"4", "Coffee", "cafe"}, strings.Fields(lines[3]))
}

func TestList_CategoryFilter(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, List(&out, newCategorizer(), "Tea"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "chai point")
}

func TestAdd(t *testing.T) {
	cat := newCategorizer()

	var out bytes.Buffer
	added, err := Add(&out, cat, "Tea", "Third Wave Chai")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "Added \"Third Wave Chai\" to Tea\n", out.String())
	assert.Equal(t, "Tea", cat.Categorize("THIRD WAVE CHAI", ""))

	out.Reset()
	added, err = Add(&out, cat, "Tea", "third wave chai")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Contains(t, out.String(), "already known")

	assert.Equal(t, models.CategoryUncategorized, cat.Categorize("Random Shop", ""))
}

func TestAdd_UnknownCategory(t *testing.T) {
	cat := newCategorizer()

	var out bytes.Buffer
	added, err := Add(&out, cat, "Cofee", "third wave")
	require.ErrorIs(t, err, categorizer.ErrUnknownCategory)
	assert.False(t, added)
	assert.Contains(t, err.Error(), `"Cofee"`)
	assert.Contains(t, err.Error(), "valid categories: Coffee, Tea")
	assert.Empty(t, out.String())
	assert.NotContains(t, cat.Vocabulary(), "Cofee")
	assert.Empty(t, cat.CustomPatterns())

	_, err = Add(&out, cat, models.CategoryUncategorized, "anything")
	require.ErrorIs(t, err, categorizer.ErrUnknownCategory)
}

func TestAdd_BuiltInCategoryMissingFromDatabase(t *testing.T) {
	cat := newCategorizer()

	var out bytes.Buffer
	added, err := Add(&out, cat, models.CategoryPets, "pawsome pals")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, models.CategoryPets, cat.Categorize("Pawsome Pals", ""))
}
