package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

func stringArg(request mcp.CallToolRequest, name string) string {
	s, _ := request.Params.Arguments[name].(string)
	return strings.TrimSpace(s)
}

// intArg reads a whole number. JSON numbers arrive as float64.
func intArg(request mcp.CallToolRequest, name string) (int, bool, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, true, fmt.Errorf("'%s' must be a whole number, got %v", name, v)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, true, fmt.Errorf("'%s' must be a whole number: %w", name, err)
		}
		return int(n), true, nil
	default:
		return 0, true, fmt.Errorf("'%s' must be a number", name)
	}
}

// listArg accepts a JSON array of strings or a comma-separated string.
func listArg(request mcp.CallToolRequest, name string) []string {
	var parts []string
	switch v := request.Params.Arguments[name].(type) {
	case string:
		parts = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dayArg parses a YYYY-MM-DD argument. Missing values yield fallback.
func dayArg(request mcp.CallToolRequest, name string, fallback time.Time) (time.Time, error) {
	s := stringArg(request, name)
	if s == "" {
		return fallback, nil
	}
	d, err := wellbeing.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("'%s' must be a date in YYYY-MM-DD format, got %q", name, s)
	}
	return d, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func unknownMoodWarning(m wellbeing.Mood) string {
	return fmt.Sprintf("mood %q is not one of %s; it was stored as-is and does not change the index", m.String(), moodList())
}

func moodList() string {
	labels := make([]string, len(wellbeing.Moods))
	for i, m := range wellbeing.Moods {
		labels[i] = m.String()
	}
	return strings.Join(labels, ", ")
}
