package models

import "time"

// Ограничения полей модели.
const (
	// CodeMaxLength максимальная длина короткого кода (в том числе пользовательского).
	CodeMaxLength = 32
	// TargetURLMaxLength максимальная длина целевой ссылки.
	TargetURLMaxLength = 2048
	// NoteMaxLength максимальная длина заметки.
	NoteMaxLength = 255
)

// Link структура модели хранения короткой ссылки.
// Записи никогда физически не удаляются: деактивированный код не может быть выдан повторно.
type Link struct {
	ID            uint       `gorm:"primarykey" json:"ID"`
	Code          string     `gorm:"size:32;uniqueIndex;not null" json:"code"`
	TargetURL     string     `gorm:"size:2048;not null" json:"targetUrl"`
	CreatedAt     time.Time  `json:"createdAt"`
	ClickCount    uint64     `gorm:"not null;default:0" json:"clickCount"`
	LastClickedAt *time.Time `json:"lastClickedAt"`
	Active        bool       `gorm:"not null;default:true" json:"active"`
	Note          *string    `gorm:"size:255" json:"note,omitempty"`
}
