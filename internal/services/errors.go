package services

import "errors"

var (
	ErrUnknown        = errors.New("[service]: unknown error")
	ErrRecordNotFound = errors.New("[service]: record not found")
	// ErrCodeTaken пользовательский код уже занят. Повторных попыток для
	// пользовательских кодов нет: выбор пользователя либо проходит, либо нет.
	ErrCodeTaken = errors.New("[service]: custom code already in use")
	// ErrCodeExhausted генератор не смог подобрать свободный код за отведенное
	// число попыток.
	ErrCodeExhausted = errors.New("[service]: failed to generate unique short code")
	// ErrInvalidCode пользовательский код не прошел проверку формата.
	ErrInvalidCode = errors.New("[service]: invalid custom code")
)
