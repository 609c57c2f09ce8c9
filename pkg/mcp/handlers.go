package mcp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

// Tools holds what every tool handler needs. Each call loads the journal it
// works on from the database; nothing is cached between calls.
type Tools struct {
	DB             *sql.DB
	DefaultJournal string
	Logger         *zap.Logger
	Now            func() time.Time
}

func (t *Tools) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t *Tools) log() *zap.Logger {
	if t.Logger == nil {
		return zap.NewNop()
	}
	return t.Logger
}

// journalFor resolves the "journal" argument, creating the default journal
// on first use.
func (t *Tools) journalFor(ctx context.Context, request mcp.CallToolRequest) (journal.Journal, *mcp.CallToolResult) {
	name := stringArg(request, "journal")
	if name == "" {
		j, err := journal.EnsureJournal(ctx, t.DB, t.DefaultJournal)
		if err != nil {
			return journal.Journal{}, mcp.NewToolResultError(fmt.Sprintf("Failed to open default journal '%s': %v", t.DefaultJournal, err))
		}
		return j, nil
	}

	j, err := journal.ResolveJournal(ctx, t.DB, name)
	if errors.Is(err, journal.ErrJournalNotFound) {
		return journal.Journal{}, mcp.NewToolResultError(fmt.Sprintf("Journal '%s' not found.", name))
	}
	if err != nil {
		return journal.Journal{}, mcp.NewToolResultError(fmt.Sprintf("Error finding journal '%s': %v", name, err))
	}
	return j, nil
}

// recordFor loads the day named by the "date" argument, or the latest day
// when it is omitted.
func (t *Tools) recordFor(ctx context.Context, request mcp.CallToolRequest, j journal.Journal) (wellbeing.Record, *mcp.CallToolResult) {
	if stringArg(request, "date") == "" {
		h, err := journal.LoadHistory(ctx, t.DB, j.ID)
		if err != nil {
			return wellbeing.Record{}, mcp.NewToolResultError(fmt.Sprintf("Failed to load journal '%s': %v", j.Name, err))
		}
		r, ok := h.Latest()
		if !ok {
			return wellbeing.Record{}, mcp.NewToolResultError(fmt.Sprintf("Journal '%s' has no logged days yet.", j.Name))
		}
		return r, nil
	}

	day, err := dayArg(request, "date", time.Time{})
	if err != nil {
		return wellbeing.Record{}, mcp.NewToolResultError(err.Error())
	}
	r, err := journal.GetRecord(ctx, t.DB, j.ID, day)
	if errors.Is(err, journal.ErrRecordNotFound) {
		return wellbeing.Record{}, mcp.NewToolResultError(fmt.Sprintf("No entry for %s in journal '%s'.", day.Format(wellbeing.DateLayout), j.Name))
	}
	if err != nil {
		return wellbeing.Record{}, mcp.NewToolResultError(fmt.Sprintf("Failed to read %s: %v", day.Format(wellbeing.DateLayout), err))
	}
	return r, nil
}

// RegisterTools adds every mindlog tool to s.
func RegisterTools(s *server.MCPServer, t *Tools) {
	RegisterPingTool(s)

	s.AddTool(mcp.NewTool("create_journal",
		mcp.WithDescription("Creates a new journal. Use one journal per person."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Unique name for the new journal.")),
		mcp.WithString("description", mcp.Description("Optional description for the journal.")),
	), t.CreateJournal)

	s.AddTool(mcp.NewTool("list_journals",
		mcp.WithDescription("Lists all journals."),
		mcp.WithBoolean("active_only", mcp.Description("Only list active journals.")),
	), t.ListJournals)

	s.AddTool(mcp.NewTool("log_day",
		mcp.WithDescription("Logs mood, sleep and screen time for a day and returns the mental health index with advice. Logging the same date again replaces it."),
		mcp.WithString("date", mcp.Description("Day in YYYY-MM-DD format. Defaults to today.")),
		mcp.WithString("mood", mcp.Description("One of Happy, Sad, Angry, Calm, Anxious, Energetic.")),
		mcp.WithNumber("mood_rating", mcp.Required(), mcp.Description("Mood rating from 0 to 10.")),
		mcp.WithNumber("screen_hours", mcp.Required(), mcp.Description("Hours of screen time, 0 to 24.")),
		mcp.WithNumber("sleep_hours", mcp.Required(), mcp.Description("Hours slept, 0 to 24.")),
		mcp.WithString("journal_text", mcp.Description("Free-form journal entry for the day.")),
		mcp.WithString("journal", mcp.Description("Journal name or id. Defaults to the configured journal.")),
	), t.LogDay)

	s.AddTool(mcp.NewTool("get_day",
		mcp.WithDescription("Returns a logged day with its index and tags."),
		mcp.WithString("date", mcp.Description("Day in YYYY-MM-DD format. Defaults to the latest logged day.")),
		mcp.WithString("journal", mcp.Description("Journal name or id.")),
	), t.GetDay)

	s.AddTool(mcp.NewTool("list_days",
		mcp.WithDescription("Lists logged days in chronological order."),
		mcp.WithString("from", mcp.Description("First day to include (YYYY-MM-DD).")),
		mcp.WithString("to", mcp.Description("Last day to include (YYYY-MM-DD).")),
		mcp.WithString("journal", mcp.Description("Journal name or id.")),
	), t.ListDays)

	s.AddTool(mcp.NewTool("get_advice",
		mcp.WithDescription("Returns the mental health assessment, nutrition suggestions and exercise recommendations for a day."),
		mcp.WithString("date", mcp.Description("Day in YYYY-MM-DD format. Defaults to the latest logged day.")),
		mcp.WithString("part", mcp.DefaultString("all"), mcp.Enum("all", "verdict", "nutrition", "workout"), mcp.Description("Which advice to return.")),
		mcp.WithString("journal", mcp.Description("Journal name or id.")),
	), t.GetAdvice)

	s.AddTool(mcp.NewTool("get_statistics",
		mcp.WithDescription("Returns weekly averages and overall average, minimum and maximum of a field."),
		mcp.WithString("field", mcp.Required(), mcp.Enum("screen", "sleep", "mood", "index"), mcp.Description("Field to summarize.")),
		mcp.WithString("journal", mcp.Description("Journal name or id.")),
	), t.GetStatistics)

	s.AddTool(mcp.NewTool("get_weekly_averages",
		mcp.WithDescription("Returns the average of a field for each ISO week."),
		mcp.WithString("field", mcp.Required(), mcp.Enum("screen", "sleep", "mood", "index"), mcp.Description("Field to average.")),
		mcp.WithString("journal", mcp.Description("Journal name or id.")),
	), t.GetWeeklyAverages)

	s.AddTool(mcp.NewTool("tag_day",
		mcp.WithDescription("Adds or removes tags on a logged day."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Day in YYYY-MM-DD format.")),
		mcp.WithString("add_tags", mcp.Description("Comma-separated tags to add.")),
		mcp.WithString("remove_tags", mcp.Description("Comma-separated tags to remove.")),
		mcp.WithString("journal", mcp.Description("Journal name or id.")),
	), t.TagDay)

	s.AddTool(mcp.NewTool("search_days",
		mcp.WithDescription("Finds days by tags (ranked by matches) or by mood and date range."),
		mcp.WithString("tags", mcp.Description("Comma-separated tags. Takes precedence over mood filters.")),
		mcp.WithString("moods", mcp.Description("Comma-separated mood labels.")),
		mcp.WithString("from", mcp.Description("First day to include (YYYY-MM-DD).")),
		mcp.WithString("to", mcp.Description("Last day to include (YYYY-MM-DD).")),
		mcp.WithString("journal", mcp.Description("Journal name or id.")),
	), t.SearchDays)

	s.AddTool(mcp.NewTool("get_index_guide",
		mcp.WithDescription("Explains how the mental health index is calculated."),
	), t.GetIndexGuide)
}

// RegisterPingTool registers the simple ping tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong' to check if the mindlog MCP server is alive."),
	)
	s.AddTool(pingTool, pingHandler)
}

func pingHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong_mindlog"), nil
}

func (t *Tools) CreateJournal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(request, "name")
	if name == "" {
		return mcp.NewToolResultError("'name' parameter is required and must be a non-empty string."), nil
	}

	j, err := journal.CreateJournal(ctx, t.DB, name, stringArg(request, "description"))
	if errors.Is(err, journal.ErrJournalExists) {
		return mcp.NewToolResultError(fmt.Sprintf("Journal '%s' already exists.", name)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create journal: %v", err)), nil
	}
	t.log().Info("journal created", zap.String("journal", j.Name), zap.String("id", j.ID.String()))
	return jsonResult(j)
}

func (t *Tools) ListJournals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	activeOnly, _ := request.Params.Arguments["active_only"].(bool)
	journals, err := journal.ListJournals(ctx, t.DB, activeOnly)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list journals: %v", err)), nil
	}
	if len(journals) == 0 {
		return mcp.NewToolResultText("[]"), nil
	}
	return jsonResult(journals)
}

type loggedDay struct {
	Record   wellbeing.Record `json:"record"`
	Replaced bool             `json:"replaced"`
	Advice   wellbeing.Advice `json:"advice"`
	Warning  string           `json:"warning,omitempty"`
}

func (t *Tools) LogDay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	j, errResult := t.journalFor(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	day, err := dayArg(request, "date", t.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := wellbeing.Input{
		Date:    day,
		Mood:    wellbeing.ParseMood(stringArg(request, "mood")),
		Journal: stringArg(request, "journal_text"),
	}
	for _, arg := range []struct {
		name string
		dst  *int
	}{
		{"mood_rating", &in.MoodRating},
		{"screen_hours", &in.ScreenHours},
		{"sleep_hours", &in.SleepHours},
	} {
		v, ok, err := intArg(request, arg.name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("'%s' parameter is required.", arg.name)), nil
		}
		*arg.dst = v
	}
	if in.MoodRating < 0 || in.MoodRating > 10 {
		return mcp.NewToolResultError(fmt.Sprintf("'mood_rating' must be between 0 and 10, got %d", in.MoodRating)), nil
	}

	r, err := wellbeing.NewRecord(in)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	replaced, err := journal.SaveRecord(ctx, t.DB, j.ID, r)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save %s: %v", r.Key(), err)), nil
	}
	t.log().Info("day logged",
		zap.String("journal", j.Name),
		zap.String("day", r.Key()),
		zap.Float64("index", r.Index()),
		zap.Bool("replaced", replaced),
	)

	res := loggedDay{Record: r, Replaced: replaced, Advice: wellbeing.Advise(r)}
	if !r.Mood().IsKnown() {
		res.Warning = unknownMoodWarning(r.Mood())
		t.log().Warn("unknown mood stored", zap.String("day", r.Key()), zap.String("mood", r.Mood().String()))
	}
	return jsonResult(res)
}

type dayDetails struct {
	Record wellbeing.Record `json:"record"`
	Tags   []string         `json:"tags"`
}

func (t *Tools) GetDay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	j, errResult := t.journalFor(ctx, request)
	if errResult != nil {
		return errResult, nil
	}
	r, errResult := t.recordFor(ctx, request, j)
	if errResult != nil {
		return errResult, nil
	}

	tags, err := journal.ListTagsForRecord(ctx, t.DB, j.ID, r.Date())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read tags for %s: %v", r.Key(), err)), nil
	}
	if tags == nil {
		tags = []string{}
	}
	return jsonResult(dayDetails{Record: r, Tags: tags})
}

func (t *Tools) ListDays(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	j, errResult := t.journalFor(ctx, request)
	if errResult != nil {
		return errResult, nil
	}
	from, err := dayArg(request, "from", time.Time{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := dayArg(request, "to", time.Time{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := journal.ListRecords(ctx, t.DB, j.ID, from, to)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list days: %v", err)), nil
	}
	if len(records) == 0 {
		return mcp.NewToolResultText("[]"), nil
	}
	return jsonResult(records)
}

func (t *Tools) TagDay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	j, errResult := t.journalFor(ctx, request)
	if errResult != nil {
		return errResult, nil
	}
	day, err := dayArg(request, "date", time.Time{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if day.IsZero() {
		return mcp.NewToolResultError("'date' parameter is required."), nil
	}

	add, remove := listArg(request, "add_tags"), listArg(request, "remove_tags")
	if len(add) == 0 && len(remove) == 0 {
		return mcp.NewToolResultError("No tags provided (use add_tags or remove_tags)."), nil
	}

	for _, tag := range add {
		if err := journal.TagRecord(ctx, t.DB, j.ID, day, tag); err != nil {
			if errors.Is(err, journal.ErrRecordNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("No entry for %s in journal '%s'.", day.Format(wellbeing.DateLayout), j.Name)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to add tag '%s': %v", tag, err)), nil
		}
	}
	for _, tag := range remove {
		if err := journal.DetachTag(ctx, t.DB, j.ID, day, tag); err != nil && !errors.Is(err, journal.ErrTagNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to remove tag '%s': %v", tag, err)), nil
		}
	}

	tags, err := journal.ListTagsForRecord(ctx, t.DB, j.ID, day)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read tags: %v", err)), nil
	}
	if tags == nil {
		tags = []string{}
	}
	return jsonResult(tags)
}

func (t *Tools) SearchDays(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	j, errResult := t.journalFor(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	if tags := listArg(request, "tags"); len(tags) > 0 {
		matches, err := journal.SearchRecordsByTags(ctx, t.DB, j.ID, tags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to search days: %v", err)), nil
		}
		if len(matches) == 0 {
			return mcp.NewToolResultText("[]"), nil
		}
		return jsonResult(matches)
	}

	var filter journal.Filter
	for _, m := range listArg(request, "moods") {
		filter.Moods = append(filter.Moods, wellbeing.ParseMood(m))
	}
	var err error
	if filter.From, err = dayArg(request, "from", time.Time{}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if filter.To, err = dayArg(request, "to", time.Time{}); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := journal.FilterRecords(ctx, t.DB, j.ID, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search days: %v", err)), nil
	}
	if len(records) == 0 {
		return mcp.NewToolResultText("[]"), nil
	}
	return jsonResult(records)
}
