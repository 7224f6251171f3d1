package ui

import (
	"strconv"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/pkg/validate"
	"github.com/yourusername/teen-support/internal/service"
)

// CounselingUI — консольный интерфейс записи на консультации
type CounselingUI struct {
	term     *Term
	svc      *service.CounselingService
	username string
}

// NewCounselingUI создает интерфейс консультаций
func NewCounselingUI(term *Term, svc *service.CounselingService, username string) *CounselingUI {
	return &CounselingUI{
		term:     term,
		svc:      svc,
		username: username,
	}
}

// Run показывает меню консультаций
func (u *CounselingUI) Run() {
	for {
		u.term.ClearScreen()
		u.term.Header("SUPPORT & COUNSELING")

		u.term.InfoBox("You are not alone", []string{
			"Support is available and confidential",
			"Professional help is just a call away",
		})

		u.term.Section("Choose an option:")
		u.term.MenuOption(1, "Schedule a Counseling Session")
		u.term.MenuOption(2, "My Sessions")
		u.term.MenuOption(3, "Reschedule a Session")
		u.term.MenuOption(4, "Cancel a Session")
		u.term.MenuOption(5, "Edit Session Topic")
		u.term.MenuOption(6, "Delete a Session Record")
		u.term.MenuOption(0, "Back to Main Menu")

		switch u.term.Prompt("\nEnter your choice (0-6): ") {
		case "1":
			u.schedule()
		case "2":
			u.listSessions()
			u.term.Pause()
		case "3":
			u.reschedule()
		case "4":
			u.cancel()
		case "5":
			u.editTopic()
		case "6":
			u.deleteRecord()
		case "0":
			return
		default:
			u.term.Error("Invalid choice. Please try again.")
			u.term.Pause()
		}
	}
}

func (u *CounselingUI) schedule() {
	u.term.ClearScreen()
	u.term.Header("SCHEDULE A SESSION")

	u.term.Println("You can leave the name empty to stay anonymous.")
	clientName := u.term.Prompt("Name (optional): ")
	topic := u.term.Prompt("What would you like to talk about? ")

	dateRaw := u.term.Prompt("Preferred date (YYYY-MM-DD): ")
	date, err := validate.FutureDate(dateRaw)
	if err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	session, err := u.svc.Schedule(u.username, clientName, topic, date)
	if err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	u.term.Success("Session scheduled!")
	u.term.Printf("Session #%d on %s. A counselor will confirm the time.\n",
		session.ID, session.PreferredDate.Format("2006-01-02"))
	u.term.Pause()
}

// listSessions печатает сессии пользователя и возвращает их
func (u *CounselingUI) listSessions() []entity.CounselingSession {
	sessions, err := u.svc.GetUserSessions(u.username)
	if err != nil {
		u.term.Error("Could not load your sessions. Please try again later.")
		return nil
	}

	if len(sessions) == 0 {
		u.term.Warn("You have no counseling sessions yet.")
		return nil
	}

	u.term.Section("Your sessions:")
	for _, s := range sessions {
		u.term.Printf("#%d  %s  [%s]  %s\n",
			s.ID,
			s.PreferredDate.Format("2006-01-02"),
			s.Status,
			Truncate(s.Topic, 50))
	}
	return sessions
}

func (u *CounselingUI) reschedule() {
	u.term.ClearScreen()
	u.term.Header("RESCHEDULE A SESSION")

	if sessions := u.listSessions(); len(sessions) == 0 {
		u.term.Pause()
		return
	}

	id, err := u.promptSessionID()
	if err != nil {
		return
	}

	dateRaw := u.term.Prompt("New date (YYYY-MM-DD): ")
	date, err := validate.FutureDate(dateRaw)
	if err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	if _, err := u.svc.Reschedule(u.username, id, date); err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	u.term.Success("Session rescheduled.")
	u.term.Pause()
}

func (u *CounselingUI) cancel() {
	u.term.ClearScreen()
	u.term.Header("CANCEL A SESSION")

	if sessions := u.listSessions(); len(sessions) == 0 {
		u.term.Pause()
		return
	}

	id, err := u.promptSessionID()
	if err != nil {
		return
	}

	if !u.term.Confirm("Cancel this session?") {
		return
	}

	if err := u.svc.Cancel(u.username, id); err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	u.term.Success("Session cancelled.")
	u.term.Pause()
}

func (u *CounselingUI) editTopic() {
	u.term.ClearScreen()
	u.term.Header("EDIT SESSION TOPIC")

	if sessions := u.listSessions(); len(sessions) == 0 {
		u.term.Pause()
		return
	}

	id, err := u.promptSessionID()
	if err != nil {
		return
	}

	topic := u.term.Prompt("New topic: ")
	if _, err := u.svc.UpdateTopic(u.username, id, topic); err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	u.term.Success("Topic updated.")
	u.term.Pause()
}

// deleteRecord удаляет запись безвозвратно, поэтому требует
// напечатать DELETE вместо обычного подтверждения
func (u *CounselingUI) deleteRecord() {
	u.term.ClearScreen()
	u.term.Header("DELETE A SESSION RECORD")

	if sessions := u.listSessions(); len(sessions) == 0 {
		u.term.Pause()
		return
	}

	id, err := u.promptSessionID()
	if err != nil {
		return
	}

	u.term.Warn("This permanently removes the record. It cannot be undone.")
	if u.term.Prompt("Type DELETE to confirm: ") != "DELETE" {
		u.term.Println("Deletion cancelled.")
		u.term.Pause()
		return
	}

	if err := u.svc.Delete(u.username, id); err != nil {
		u.term.Error(userMessage(err))
		u.term.Pause()
		return
	}

	u.term.Success("Session record deleted.")
	u.term.Pause()
}

func (u *CounselingUI) promptSessionID() (uint, error) {
	raw := u.term.Prompt("\nSession number (#): ")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		u.term.Error("Please enter a valid session number.")
		u.term.Pause()
		return 0, err
	}
	return uint(id), nil
}
