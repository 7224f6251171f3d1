package ui

import (
	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/service"
	"github.com/yourusername/teen-support/internal/session"
)

// App связывает сервисы с консольными экранами и управляет навигацией
type App struct {
	term          *Term
	authSvc       *service.AuthService
	qnaSvc        *service.QnAService
	counselingSvc *service.CounselingService
	educationSvc  *service.EducationService
	resourceSvc   *service.ResourceService
	store         *session.Store
}

// NewApp создает консольное приложение
func NewApp(
	term *Term,
	authSvc *service.AuthService,
	qnaSvc *service.QnAService,
	counselingSvc *service.CounselingService,
	educationSvc *service.EducationService,
	resourceSvc *service.ResourceService,
	store *session.Store,
) *App {
	return &App{
		term:          term,
		authSvc:       authSvc,
		qnaSvc:        qnaSvc,
		counselingSvc: counselingSvc,
		educationSvc:  educationSvc,
		resourceSvc:   resourceSvc,
		store:         store,
	}
}

// Run запускает главный цикл приложения: стартовое меню,
// затем меню пользователя или гостя
func (a *App) Run() {
	authUI := NewAuthUI(a.term, a.authSvc, a.store)

	for {
		result, user := authUI.Run()
		switch result {
		case AuthResultExit:
			a.term.Println("\nTake care. Remember: you are not alone.")
			return
		case AuthResultGuest:
			a.guestMenu()
		case AuthResultLoggedIn:
			a.mainMenu(authUI, user)
		}
	}
}

// mainMenu — меню вошедшего пользователя
func (a *App) mainMenu(authUI *AuthUI, user *entity.User) {
	for {
		a.term.ClearScreen()
		a.term.Header("MAIN MENU - Welcome " + user.Username)
		a.showDashboard(user)

		a.term.Section("What would you like to do today?")
		a.term.Separator()
		a.term.MenuOption(1, "Educational Resources")
		a.term.MenuOption(2, "Support & Counseling")
		a.term.MenuOption(3, "Find Local Services")
		a.term.MenuOption(4, "Anonymous Q&A")
		a.term.MenuOption(5, "Emergency Resources")
		a.term.MenuOption(6, "Delete My Account")
		a.term.MenuOption(7, "Logout")
		a.term.Separator()

		switch a.term.Prompt("\nPlease select an option (1-7): ") {
		case "1":
			NewEducationUI(a.term, a.educationSvc, user.Username, false).Run()
		case "2":
			NewCounselingUI(a.term, a.counselingSvc, user.Username).Run()
		case "3":
			NewResourcesUI(a.term, a.resourceSvc).Run()
		case "4":
			NewQnAUI(a.term, a.qnaSvc, user.Username).Run()
		case "5":
			a.emergencyResources()
		case "6":
			if authUI.DeleteAccount(user.Username) {
				return
			}
		case "7":
			if a.term.Confirm("Are you sure you want to logout?") {
				authUI.Logout()
				a.term.Pause()
				return
			}
		default:
			a.term.Error("Invalid option. Please choose 1-7.")
			a.term.Pause()
		}
	}
}

// guestMenu — ограниченное меню гостя
func (a *App) guestMenu() {
	for {
		a.term.ClearScreen()
		a.term.Header("GUEST MENU - Limited Access")

		a.term.InfoBox("Guest limitations", []string{
			"Cannot ask questions in Q&A",
			"Progress is not saved",
			"Create an account for full access!",
		})

		a.term.Section("Available for guests:")
		a.term.Separator()
		a.term.MenuOption(1, "View Educational Content")
		a.term.MenuOption(2, "Find Local Services")
		a.term.MenuOption(3, "Emergency Resources")
		a.term.MenuOption(4, "Back to Welcome Screen")
		a.term.Separator()

		switch a.term.Prompt("\nPlease select an option (1-4): ") {
		case "1":
			NewEducationUI(a.term, a.educationSvc, "", true).Run()
		case "2":
			NewResourcesUI(a.term, a.resourceSvc).Run()
		case "3":
			a.emergencyResources()
		case "4":
			return
		default:
			a.term.Error("Invalid option. Please choose 1-4.")
			a.term.Pause()
		}
	}
}

// showDashboard печатает сводку прогресса пользователя
func (a *App) showDashboard(user *entity.User) {
	a.term.Section("Your dashboard:")
	a.term.Printf("   Last login: %s\n", FormatDate(user.LastLogin))

	progress, err := a.educationSvc.GetProgress(user.Username)
	if err != nil {
		return
	}

	if progress.TotalModules > 0 && progress.CompletedModules > 0 {
		a.term.Printf("   Learning progress: %d/%d modules (%.1f%%)\n",
			progress.CompletedModules, progress.TotalModules, progress.CompletedPercent)
		if progress.AverageScore > 0 {
			a.term.Printf("   Average quiz score: %.1f%%\n", progress.AverageScore)
		}
	} else {
		a.term.Println("   Ready to start your learning journey!")
	}
}

// emergencyResources печатает контакты экстренной помощи.
// Горячие линии берутся из справочника ресурсов, если он доступен.
func (a *App) emergencyResources() {
	a.term.ClearScreen()
	a.term.Header("EMERGENCY RESOURCES")

	a.term.InfoBox("If you are in immediate danger", []string{
		"Call 112 immediately",
		"Go to the nearest emergency room",
		"Contact a trusted adult",
	})

	hotlines, err := a.resourceSvc.GetByType(entity.ResourceTypeHotline)
	if err != nil || len(hotlines) == 0 {
		a.term.Section("Hotlines:")
		a.term.Println("   National Mental Health Helpline: 114")
		a.term.Println("   Gender-Based Violence Hotline: 3677")
		a.term.Pause()
		return
	}

	a.term.Section("Hotlines:")
	for _, h := range hotlines {
		badge := ""
		if h.IsAvailable247 {
			badge = " [24/7]"
		}
		a.term.Printf("   %s: %s%s\n", h.Name, h.Phone, badge)
	}

	a.term.Println("\nRemember: you are not alone. Help is available.")
	a.term.Pause()
}
