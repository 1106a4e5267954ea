package shortcode

import (
	"math/rand/v2"
	"regexp"

	"github.com/pkg/errors"

	"github.com/workpent/shortlink/internal/models"
)

// Alphabet алфавит генерируемых кодов (62 символа).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength длина генерируемого кода по умолчанию.
const DefaultLength = 7

// customCodeRegex допустимый формат пользовательского кода.
// Шире алфавита генератора на `-` и `_`.
var customCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// ErrInvalidCustomCode пользовательский код не прошел проверку формата.
var ErrInvalidCustomCode = errors.New("invalid custom code")

// Generator генерирует случайные кандидаты коротких кодов.
// Уникальность кандидата не гарантируется, за неё отвечает вызывающая сторона.
type Generator struct {
	length int
}

func NewGenerator() *Generator {
	return &Generator{length: DefaultLength}
}

// WithLength возвращает генератор с заданной длиной кода.
func (g *Generator) WithLength(length int) *Generator {
	if length <= 0 || length > models.CodeMaxLength {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Generate возвращает случайную строку из Alphabet.
// Криптографическая стойкость не требуется, достаточно равномерного выбора символов.
func (g *Generator) Generate() string {
	b := make([]byte, g.length)
	for i := range b {
		b[i] = Alphabet[rand.IntN(len(Alphabet))]
	}
	return string(b)
}

// ValidateCustom проверяет формат пользовательского кода: латиница, цифры, `-`, `_`,
// длина от 1 до 32 символов.
func ValidateCustom(code string) error {
	if !customCodeRegex.MatchString(code) {
		return errors.Wrapf(ErrInvalidCustomCode, "code `%s`", code)
	}
	return nil
}
