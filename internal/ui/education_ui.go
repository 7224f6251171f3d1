package ui

import (
	"fmt"
	"strconv"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/service"
)

// EducationUI — консольный интерфейс учебных модулей.
// guest=true отключает сохранение прогресса.
type EducationUI struct {
	term     *Term
	svc      *service.EducationService
	username string
	guest    bool
}

// NewEducationUI создает интерфейс обучения
func NewEducationUI(term *Term, svc *service.EducationService, username string, guest bool) *EducationUI {
	return &EducationUI{
		term:     term,
		svc:      svc,
		username: username,
		guest:    guest,
	}
}

// Run показывает меню учебных ресурсов
func (u *EducationUI) Run() {
	for {
		u.term.ClearScreen()
		u.term.Header("EDUCATIONAL RESOURCES")

		if u.guest {
			u.term.InfoBox("Guest access", []string{
				"Viewing educational content as guest",
				"Progress will not be saved",
				"Create an account to track your learning!",
			})
		}

		u.term.Section("Choose an option:")
		u.term.MenuOption(1, "Browse All Topics")
		u.term.MenuOption(2, "Browse by Category")
		if !u.guest {
			u.term.MenuOption(3, "My Progress")
		}
		u.term.MenuOption(0, "Back to Main Menu")

		choice := u.term.Prompt("\nEnter your choice: ")
		switch choice {
		case "1":
			u.browseModules("")
		case "2":
			u.browseByCategory()
		case "3":
			if !u.guest {
				u.showProgress()
				break
			}
			u.term.Error("Invalid choice. Please try again.")
			u.term.Pause()
		case "0":
			return
		default:
			u.term.Error("Invalid choice. Please try again.")
			u.term.Pause()
		}
	}
}

func (u *EducationUI) browseModules(category string) {
	var modules []entity.EducationalModule
	var err error
	if category == "" {
		modules, err = u.svc.GetModules()
	} else {
		modules, err = u.svc.GetModulesByCategory(category)
	}
	if err != nil {
		u.term.Error("Could not load modules. Please try again later.")
		u.term.Pause()
		return
	}

	if len(modules) == 0 {
		u.term.Warn("No topics found.")
		u.term.Pause()
		return
	}

	u.term.ClearScreen()
	u.term.Header("AVAILABLE TOPICS")

	currentCategory := ""
	for _, m := range modules {
		if m.Category != currentCategory {
			currentCategory = m.Category
			u.term.Section(categoryTitle(m.Category) + ":")
		}
		u.term.Printf("   %d. %s [%s]\n", m.ID, m.Title, m.DifficultyLevel)
	}

	choice := u.term.Prompt("\nEnter module number to read, or '0' to go back: ")
	id, err := strconv.ParseUint(choice, 10, 32)
	if err != nil || id == 0 {
		return
	}
	u.readModule(uint(id))
}

func (u *EducationUI) browseByCategory() {
	categories, err := u.svc.GetCategories()
	if err != nil {
		u.term.Error("Could not load categories. Please try again later.")
		u.term.Pause()
		return
	}
	if len(categories) == 0 {
		u.term.Warn("No categories available yet.")
		u.term.Pause()
		return
	}

	u.term.Section("Categories:")
	for i, c := range categories {
		u.term.Printf("%d. %s\n", i+1, categoryTitle(c))
	}

	choice, err := u.term.PromptInt("\nEnter category number: ")
	if err != nil || choice < 1 || choice > len(categories) {
		u.term.Error("Invalid category selection.")
		u.term.Pause()
		return
	}

	u.browseModules(categories[choice-1])
}

// readModule показывает контент модуля и предлагает отметить прохождение
func (u *EducationUI) readModule(id uint) {
	module, err := u.svc.GetModule(id)
	if err != nil {
		u.term.Error("Module not found.")
		u.term.Pause()
		return
	}

	u.term.ClearScreen()
	u.term.Header(module.Title)
	u.term.Printf("Category: %s\n", categoryTitle(module.Category))
	u.term.Printf("Difficulty: %s\n", module.DifficultyLevel)
	u.term.Separator()
	u.term.Println(WrapText(module.Content, 70))
	u.term.Separator()

	if u.guest {
		u.term.Println("\nCreate an account to track completed modules.")
		u.term.Pause()
		return
	}

	if !u.term.Confirm("\nMark this module as completed?") {
		return
	}

	score := 0
	if u.term.Confirm("Did you take a self-check quiz for it?") {
		score, err = u.term.PromptInt("Your score (0-100): ")
		if err != nil {
			u.term.Error("Please enter a valid number.")
			u.term.Pause()
			return
		}
	}

	if err := u.svc.CompleteModule(u.username, id, score); err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	u.term.Success("Progress saved. Keep learning!")
	u.term.Pause()
}

func (u *EducationUI) showProgress() {
	summary, err := u.svc.GetProgress(u.username)
	if err != nil {
		u.term.Error("Could not load your progress. Please try again later.")
		u.term.Pause()
		return
	}

	u.term.ClearScreen()
	u.term.Header("MY LEARNING PROGRESS")

	u.term.Printf("Modules completed: %d/%d (%.1f%%)\n",
		summary.CompletedModules, summary.TotalModules, summary.CompletedPercent)
	if summary.AverageScore > 0 {
		u.term.Printf("Average quiz score: %.1f%%\n", summary.AverageScore)
	}

	if len(summary.Recent) > 0 {
		u.term.Section("Recently completed:")
		for _, r := range summary.Recent {
			dateStr := "unknown"
			if r.CompletionDate != nil {
				dateStr = r.CompletionDate.Format("2006-01-02")
			}
			scoreStr := ""
			if r.Score > 0 {
				scoreStr = fmt.Sprintf(" — score %d%%", r.Score)
			}
			u.term.Printf("   • %s (%s)%s\n", r.Title, dateStr, scoreStr)
		}
	} else if summary.CompletedModules == 0 {
		u.term.Println("\nReady to start your learning journey!")
	}

	u.term.Pause()
}
