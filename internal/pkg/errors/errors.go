package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden используется, когда действие запрещено для данного пользователя
	// (например, голосование за ответы на собственный вопрос).
	ErrForbidden = errors.New("forbidden")

	// ErrConflict используется для конфликтов состояния
	// (например, попытка зарегистрировать уже занятое имя пользователя).
	ErrConflict = errors.New("resource state conflict")

	// ErrUnavailable используется, когда хранилище недоступно или запрос к нему
	// завершился ошибкой. Позволяет вызывающему коду отличать "не найдено"
	// от "хранилище недоступно" — раньше оба случая выглядели как пустой результат.
	ErrUnavailable = errors.New("storage unavailable")
)
