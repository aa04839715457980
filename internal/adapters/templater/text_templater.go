package templater

import (
	"strings"
	"sync"
	"text/template"

	"iostream/internal/ports"

	"go.uber.org/zap"
)

var _ ports.Templater = (*TextTemplater)(nil)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the templater's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

func SetLogger(l *zap.Logger) {
	logger = l
}

type TextTemplater struct{}

func ProvideTextTemplater() ports.Templater {
	return &TextTemplater{}
}

// Render executes templateText against values. A reference to a missing key
// is retried with missing keys rendered as "<no value>" and logged.
func (t TextTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", err
	}
	var result strings.Builder
	err = tmpl.Execute(&result, values)
	if err != nil {
		originalErr := err
		// Retry with the default missingkey behavior
		tmpl, err = template.New(templateName).Parse(templateText)
		if err != nil {
			return "", err
		}
		var resultWithMissingKeys strings.Builder
		err = tmpl.Execute(&resultWithMissingKeys, values)
		if err != nil {
			return "", err
		}
		Logger().Warn("template references a missing key",
			zap.String("template", templateName),
			zap.Error(originalErr))
		return resultWithMissingKeys.String(), nil
	}

	return result.String(), nil
}
