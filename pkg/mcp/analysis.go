package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

func (t *Tools) GetAdvice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	j, errResult := t.journalFor(ctx, request)
	if errResult != nil {
		return errResult, nil
	}
	r, errResult := t.recordFor(ctx, request, j)
	if errResult != nil {
		return errResult, nil
	}

	switch part := strings.ToLower(stringArg(request, "part")); part {
	case "", "all":
		advice := wellbeing.Advise(r)
		return mcp.NewToolResultText(strings.Join([]string{advice.Verdict, advice.Nutrition, advice.Workout}, "\n\n")), nil
	case "verdict":
		return mcp.NewToolResultText(wellbeing.Verdict(r)), nil
	case "nutrition":
		return mcp.NewToolResultText(wellbeing.Nutrition(r)), nil
	case "workout":
		return mcp.NewToolResultText(wellbeing.Workout(r)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown part '%s' (want all, verdict, nutrition or workout).", part)), nil
	}
}

func (t *Tools) fieldHistory(ctx context.Context, request mcp.CallToolRequest) (wellbeing.Field, *wellbeing.History, *mcp.CallToolResult) {
	field, err := wellbeing.ParseField(stringArg(request, "field"))
	if err != nil {
		return wellbeing.Field{}, nil, mcp.NewToolResultError(err.Error())
	}
	j, errResult := t.journalFor(ctx, request)
	if errResult != nil {
		return wellbeing.Field{}, nil, errResult
	}
	h, err := journal.LoadHistory(ctx, t.DB, j.ID)
	if err != nil {
		return wellbeing.Field{}, nil, mcp.NewToolResultError(fmt.Sprintf("Failed to load journal '%s': %v", j.Name, err))
	}
	return field, h, nil
}

func (t *Tools) GetStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field, h, errResult := t.fieldHistory(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	stats, err := h.Statistics(field)
	if errors.Is(err, wellbeing.ErrEmptyDataset) {
		return mcp.NewToolResultError("No logged days yet, nothing to summarize."), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compute statistics: %v", err)), nil
	}
	return jsonResult(stats)
}

func (t *Tools) GetWeeklyAverages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	field, h, errResult := t.fieldHistory(ctx, request)
	if errResult != nil {
		return errResult, nil
	}
	weeks := h.WeeklyAverages(field)
	if len(weeks) == 0 {
		return mcp.NewToolResultText("[]"), nil
	}
	return jsonResult(weeks)
}

func (t *Tools) GetIndexGuide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(wellbeing.IndexGuide), nil
}
