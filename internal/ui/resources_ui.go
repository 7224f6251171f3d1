package ui

import (
	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/service"
)

// ResourcesUI — консольный справочник местных служб поддержки
type ResourcesUI struct {
	term *Term
	svc  *service.ResourceService
}

// NewResourcesUI создает интерфейс справочника ресурсов
func NewResourcesUI(term *Term, svc *service.ResourceService) *ResourcesUI {
	return &ResourcesUI{term: term, svc: svc}
}

// Run показывает меню поиска служб
func (u *ResourcesUI) Run() {
	for {
		u.term.ClearScreen()
		u.term.Header("FIND LOCAL SERVICES")

		u.term.Section("Choose an option:")
		u.term.MenuOption(1, "All Resources")
		u.term.MenuOption(2, "By Type (clinic, NGO, hotline, counseling center)")
		u.term.MenuOption(3, "By City")
		u.term.MenuOption(4, "Available 24/7")
		u.term.MenuOption(0, "Back to Main Menu")

		switch u.term.Prompt("\nEnter your choice (0-4): ") {
		case "1":
			u.showResources(u.svc.GetAll())
		case "2":
			u.byType()
		case "3":
			u.byCity()
		case "4":
			u.showResources(u.svc.GetAvailable247())
		case "0":
			return
		default:
			u.term.Error("Invalid choice. Please try again.")
			u.term.Pause()
		}
	}
}

func (u *ResourcesUI) byType() {
	types, err := u.svc.GetTypes()
	if err != nil {
		u.term.Error("Could not load resource types. Please try again later.")
		u.term.Pause()
		return
	}

	u.term.Section("Resource types:")
	for i, t := range types {
		u.term.Printf("%d. %s\n", i+1, categoryTitle(t))
	}

	choice, err := u.term.PromptInt("\nEnter type number: ")
	if err != nil || choice < 1 || choice > len(types) {
		u.term.Error("Invalid selection.")
		u.term.Pause()
		return
	}

	u.showResources(u.svc.GetByType(types[choice-1]))
}

func (u *ResourcesUI) byCity() {
	cities, err := u.svc.GetCities()
	if err == nil && len(cities) > 0 {
		u.term.Section("Cities with known resources:")
		for _, c := range cities {
			u.term.Printf("   • %s\n", c)
		}
	}

	city := u.term.Prompt("\nEnter city name (partial match works): ")
	u.showResources(u.svc.GetByCity(city))
}

// showResources печатает список ресурсов с контактами
func (u *ResourcesUI) showResources(resources []entity.SupportResource, err error) {
	if err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	if len(resources) == 0 {
		u.term.Warn("No resources found.")
		u.term.Pause()
		return
	}

	u.term.ClearScreen()
	u.term.Header("SUPPORT RESOURCES")

	currentCity := ""
	for _, r := range resources {
		if r.City != currentCity {
			currentCity = r.City
			u.term.Section(currentCity + ":")
		}

		badge := ""
		if r.IsAvailable247 {
			badge = " [24/7]"
		}
		u.term.Printf("\n%s (%s)%s\n", r.Name, categoryTitle(r.Type), badge)
		if r.Description != "" {
			u.term.Println("   " + WrapText(r.Description, 70))
		}
		if r.Phone != "" {
			u.term.Printf("   Phone: %s\n", r.Phone)
		}
		if r.Email != "" {
			u.term.Printf("   Email: %s\n", r.Email)
		}
		if r.Address != "" {
			u.term.Printf("   Address: %s\n", r.Address)
		}
		if r.Website != "" {
			u.term.Printf("   Website: %s\n", r.Website)
		}
	}

	u.term.Pause()
}
