package ui

import (
	"errors"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/service"
	"github.com/yourusername/teen-support/internal/session"

	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// AuthUI — консольный интерфейс регистрации и входа
type AuthUI struct {
	term    *Term
	authSvc *service.AuthService
	store   *session.Store
}

// NewAuthUI создает интерфейс аутентификации
func NewAuthUI(term *Term, authSvc *service.AuthService, store *session.Store) *AuthUI {
	return &AuthUI{
		term:    term,
		authSvc: authSvc,
		store:   store,
	}
}

// Результаты стартового меню
const (
	AuthResultLoggedIn = "logged_in"
	AuthResultGuest    = "guest"
	AuthResultExit     = "exit"
)

// Run показывает стартовое меню и возвращает результат вместе
// с вошедшим пользователем (nil для гостя и выхода)
func (u *AuthUI) Run() (string, *entity.User) {
	// Сначала пробуем восстановить сохраненную сессию
	if user := u.tryRestoreSession(); user != nil {
		return AuthResultLoggedIn, user
	}

	for {
		u.term.ClearScreen()
		u.term.Header("TEEN SUPPORT SYSTEM")

		u.term.InfoBox("Welcome", []string{
			"A safe, anonymous space for questions and support.",
			"No personal data is collected: just pick a nickname.",
		})

		u.term.Section("Choose an option:")
		u.term.MenuOption(1, "Create New Account")
		u.term.MenuOption(2, "Login with Username")
		u.term.MenuOption(3, "Continue as Guest (Limited Access)")
		u.term.MenuOption(4, "Exit System")

		switch u.term.Prompt("\nPlease select an option (1-4): ") {
		case "1":
			if user := u.register(); user != nil {
				return AuthResultLoggedIn, user
			}
		case "2":
			if user := u.login(); user != nil {
				return AuthResultLoggedIn, user
			}
		case "3":
			if u.term.Confirm("Continue as guest?") {
				return AuthResultGuest, nil
			}
		case "4":
			return AuthResultExit, nil
		default:
			u.term.Error("Invalid option. Please choose 1-4.")
			u.term.Pause()
		}
	}
}

// tryRestoreSession предлагает продолжить сохраненную сессию
func (u *AuthUI) tryRestoreSession() *entity.User {
	sess, err := u.store.Restore()
	if err != nil {
		return nil
	}

	u.term.Printf("\nSaved session found for '%s'.\n", sess.Username)
	if !u.term.Confirm("Continue with saved session?") {
		return nil
	}

	user, err := u.authSvc.Login(sess.Username)
	if err != nil {
		// Аккаунт мог быть деактивирован после сохранения сессии
		u.term.Warn("Saved session is no longer valid.")
		if clearErr := u.store.Clear(); clearErr != nil {
			u.term.Warn("Could not remove the stale session file.")
		}
		u.term.Pause()
		return nil
	}

	u.term.Success("Welcome back, " + user.Username + "!")
	return user
}

func (u *AuthUI) register() *entity.User {
	u.term.ClearScreen()
	u.term.Header("CREATE NEW ACCOUNT")

	u.term.InfoBox("Username rules", []string{
		"3-20 characters, starts with a letter",
		"Letters, digits and underscore only",
		"Pick a nickname, not your real name",
	})

	username := u.term.Prompt("\nChoose a username: ")
	age, err := u.term.PromptInt("Your age (13-19): ")
	if err != nil {
		u.term.Error("Please enter a valid number for age.")
		u.term.Pause()
		return nil
	}

	user, err := u.authSvc.Register(username, age)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			u.term.Error(userMessage(err))
			if suggestions := u.authSvc.SuggestUsernames(username, 3); len(suggestions) > 0 {
				u.term.Println("Available alternatives:")
				for _, s := range suggestions {
					u.term.Println("   " + s)
				}
			}
		case errors.Is(err, apperrors.ErrValidation):
			u.term.Error(userMessage(err))
		default:
			u.term.Error("Could not create the account. Please try again later.")
		}
		u.term.Pause()
		return nil
	}

	u.saveSession(user.Username)
	u.term.Success("Account created! Welcome, " + user.Username + "!")
	u.term.Pause()
	return user
}

func (u *AuthUI) login() *entity.User {
	u.term.ClearScreen()
	u.term.Header("LOGIN")

	username := u.term.Prompt("Username: ")

	user, err := u.authSvc.Login(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			u.term.Error("No active account with that username.")
		} else {
			u.term.Error("Could not log in. Please try again later.")
		}
		u.term.Pause()
		return nil
	}

	u.saveSession(user.Username)
	u.term.Success("Welcome back, " + user.Username + "!")
	u.term.Pause()
	return user
}

// saveSession запоминает имя для следующего запуска
func (u *AuthUI) saveSession(username string) {
	if _, err := u.store.Save(username); err != nil {
		// Сессия — удобство, не требование
		u.term.Warn("Could not save the session file.")
	}
}

// Logout очищает сохраненную сессию
func (u *AuthUI) Logout() {
	if err := u.store.Clear(); err != nil {
		u.term.Warn("Could not remove the session file.")
	}
	u.term.Success("Logged out. See you soon!")
}

// DeleteAccount деактивирует аккаунт после подтверждения
func (u *AuthUI) DeleteAccount(username string) bool {
	u.term.Warn("This will deactivate your account. Your questions and answers stay anonymous in the system.")
	if !u.term.Confirm("Deactivate account '" + username + "'?") {
		return false
	}

	if err := u.authSvc.Deactivate(username); err != nil {
		u.term.Error("Could not deactivate the account. Please try again later.")
		u.term.Pause()
		return false
	}

	if err := u.store.Clear(); err != nil {
		u.term.Warn("Could not remove the session file.")
	}
	u.term.Success("Account deactivated. Take care!")
	u.term.Pause()
	return true
}
