package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCategories_FixedSet(t *testing.T) {
	// Act
	categories := AllCategories()

	// Assert: набор категорий фиксирован — ровно 5 элементов в стабильном порядке
	require.Len(t, categories, 5, "AllCategories должен всегда возвращать 5 категорий")
	assert.Equal(t, CategoryGeneral, categories[0].Name)
	assert.Equal(t, CategoryHealth, categories[1].Name)
	assert.Equal(t, CategoryEmotionalSupport, categories[2].Name)
	assert.Equal(t, CategoryResources, categories[3].Name)
	assert.Equal(t, CategoryOther, categories[4].Name)

	for _, c := range categories {
		assert.NotEmpty(t, c.Description, "У каждой категории должно быть описание")
		assert.NotEmpty(t, c.ColorCode, "У каждой категории должен быть цвет")
	}
}

func TestAllCategories_ReturnsCopy(t *testing.T) {
	// Act: изменяем возвращенный срез
	first := AllCategories()
	first[0].Description = "mutated"

	// Assert: внутренний список не должен измениться
	second := AllCategories()
	assert.NotEqual(t, "mutated", second[0].Description, "AllCategories должен возвращать копию")
}

func TestNormalizeCategory(t *testing.T) {
	// Arrange
	testCases := []struct {
		name     string
		raw      string
		expected Category
	}{
		{"известная категория", "health", CategoryHealth},
		{"категория с подчеркиванием", "emotional_support", CategoryEmotionalSupport},
		{"неизвестная категория", "gossip", CategoryGeneral},
		{"пустая строка", "", CategoryGeneral},
		{"регистр имеет значение", "Health", CategoryGeneral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeCategory(tc.raw))
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryOther.IsValid())
	assert.False(t, Category("unknown").IsValid())
}
