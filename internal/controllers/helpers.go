package controllers

import (
	"net/url"
	"regexp"
	"time"

	"github.com/pkg/errors"

	"github.com/workpent/shortlink/internal/models"
)

const (
	DefaultRequestTimeout = 3 * time.Second

	// DefaultListLimit размер страницы списка по умолчанию.
	DefaultListLimit = 50
)

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

// validateURL проверяет, является ли строка корректным абсолютным URL.
// Проверка происходит до любого обращения к хранилищу.
func validateURL(rawURL string) (*url.URL, error) {
	if len(rawURL) > models.TargetURLMaxLength {
		return nil, errors.Errorf("URL must be at most %d characters", models.TargetURLMaxLength)
	}

	parsedURL, err := url.ParseRequestURI(rawURL)

	if err != nil {
		return nil, errors.New("invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, errors.New("URL must have http or https scheme")
	}

	if parsedURL.Host == "" {
		return nil, errors.New("URL must have a host")
	}

	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return nil, errors.New("invalid hostname")
	}

	return parsedURL, nil
}
