package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/radarx-tracker/internal/tracker"
)

const (
	// FieldJobTitle is the structured log field key for the job being matched.
	FieldJobTitle = "job_title"
	// FieldStage is the structured log field key for a pipeline stage name.
	FieldStage = "stage"

	maxTitleLength = 80
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced by a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// StageFields describes a single derived stage.
func StageFields(stage tracker.Stage) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldStage, Value: stage.Name},
		StringField{Key: "state", Value: string(stage.State)},
	)
	if stage.Resolved() {
		fields = append(fields, zap.String("detail", stage.Detail))
	}
	return fields
}

// ViewFields summarises an evaluation. Empty values are dropped.
func ViewFields(view tracker.View) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldJobTitle, Value: TruncateForLog(view.JobTitle, maxTitleLength)},
		StringField{Key: "message", Value: view.SelectedMessage()},
	)
	return append(fields,
		zap.Int("percentage", view.Percentage),
		zap.Int("recommended", view.Recommended),
	)
}
