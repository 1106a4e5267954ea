// Package sql предоставляет реализацию репозитория ссылок поверх gorm
// (SQLite или PostgreSQL, подключение открывается с TranslateError).
//
// Все методы репозитория преобразуют ошибки gorm в общие ошибки уровня репозитория:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
