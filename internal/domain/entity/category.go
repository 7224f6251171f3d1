package entity

// Category — закрытый набор категорий вопросов.
// Единственное место в приложении, где перечислены допустимые категории.
type Category string

const (
	CategoryGeneral          Category = "general"
	CategoryHealth           Category = "health"
	CategoryEmotionalSupport Category = "emotional_support"
	CategoryResources        Category = "resources"
	CategoryOther            Category = "other"
)

// CategoryInfo описывает категорию для отображения: имя, описание и цвет.
// question_count заполняется сервисом из живых данных.
type CategoryInfo struct {
	Name        Category
	Description string
	ColorCode   string
}

// allCategories — порядок важен: в этом порядке категории показываются пользователю
var allCategories = []CategoryInfo{
	{CategoryGeneral, "General questions about reproductive health", "#3498db"},
	{CategoryHealth, "Questions about sexual and reproductive health", "#f39c12"},
	{CategoryEmotionalSupport, "Questions about emotional and psychological support", "#9b59b6"},
	{CategoryResources, "Questions about available support and resources", "#1abc9c"},
	{CategoryOther, "Other questions not covered in specific categories", "#95a5a6"},
}

// AllCategories возвращает фиксированный список категорий (всегда 5 элементов)
func AllCategories() []CategoryInfo {
	out := make([]CategoryInfo, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid проверяет, входит ли категория в допустимый набор
func (c Category) IsValid() bool {
	for _, ci := range allCategories {
		if ci.Name == c {
			return true
		}
	}
	return false
}

// NormalizeCategory приводит произвольную строку к допустимой категории.
// Неизвестные значения заменяются на general, а не отклоняются.
func NormalizeCategory(raw string) Category {
	c := Category(raw)
	if !c.IsValid() {
		return CategoryGeneral
	}
	return c
}
