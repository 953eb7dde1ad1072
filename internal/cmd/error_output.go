package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/journal-cli/internal/calendar"
	"github.com/salmonumbrella/journal-cli/internal/journal"
	"github.com/salmonumbrella/journal-cli/internal/output"
)

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid --error-format %q (expected auto|text|json|yaml)", format)
	}
}

func effectiveErrorFormat(ctx context.Context) string {
	format := strings.ToLower(strings.TrimSpace(ErrorFormatFromContext(ctx)))
	if format == "" || format == "auto" {
		switch output.FormatFromContext(ctx) {
		case output.FormatJSON, output.FormatNDJSON:
			return "json"
		case output.FormatYAML:
			return "yaml"
		default:
			return "text"
		}
	}
	return format
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	switch effectiveErrorFormat(ctx) {
	case "json":
		enc := json.NewEncoder(stderrFromContext(ctx))
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case "yaml":
		enc := yaml.NewEncoder(stderrFromContext(ctx))
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintln(stderrFromContext(ctx), err)
}

func buildErrorEnvelope(err error) map[string]interface{} {
	payload := map[string]interface{}{
		"error": map[string]interface{}{
			"message": err.Error(),
		},
	}

	errMap := payload["error"].(map[string]interface{})
	errMap["category"] = "system"
	errMap["type"] = "error"

	var invalidMonthErr calendar.InvalidMonthError
	if errors.As(err, &invalidMonthErr) {
		errMap["type"] = "validation"
		errMap["category"] = "user"
	}

	// A bad row length is a bug in row construction, never user input.
	var rowLengthErr calendar.RowLengthError
	if errors.As(err, &rowLengthErr) {
		errMap["type"] = "internal"
		errMap["category"] = "system"
	}

	var notFoundErr journal.NotFoundError
	if errors.As(err, &notFoundErr) {
		errMap["type"] = "not_found"
		errMap["category"] = "user"
	}

	var existsErr journal.AlreadyExistsError
	if errors.As(err, &existsErr) {
		errMap["type"] = "already_exists"
		errMap["category"] = "user"
	}

	return payload
}
