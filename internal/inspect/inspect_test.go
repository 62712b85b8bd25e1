package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styledterm/internal/logger"
	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

func TestCheckReportsMalformedValues(t *testing.T) {
	stack := components.StyleStack{
		components.Style{
			"color":         "blurple",
			"padding":       "wide",
			"opacity":       2,
			"fontWeight":    "heavy",
			"shadowColor":   "#000",
			"border-radius": 4,
		},
	}

	got := describe(Check(stack))
	assert.Equal(t, []string{
		"border-radius: not a camelCase property name",
		"color: blurple is not a terminal colour",
		"fontWeight: heavy is not one of [normal bold 100 200 300 400 500 600 700 800 900]",
		"opacity: 2 is not between 0 and 1",
		"padding: wide is not a number of cells",
		"shadowColor: unknown property",
	}, got)
}

func TestCheckAcceptsWellFormedValues(t *testing.T) {
	stack := components.StyleStack{
		components.Style{
			"color":           "#3b82f6",
			"backgroundColor": map[string]any{"light": "#ffffff", "dark": "#0f172a"},
			"borderColor":     lipgloss.AdaptiveColor{Light: "12", Dark: "4"},
			"padding":         1,
			"fontWeight":      700,
			"textAlign":       "center",
			"opacity":         0.5,
		},
		nil,
	}

	assert.Empty(t, Check(stack))
}

func TestCheckReportsOverrides(t *testing.T) {
	stack := components.StyleStack{
		components.Style{"color": "#000", "padding": 1},
		components.Style{"color": "#111"},
		components.StyleStack{components.Style{"color": "#222"}},
	}

	issues := Check(stack)
	require.Len(t, issues, 2)
	assert.Equal(t, Issue{Index: 0, Property: "color", Severity: SeverityInfo, Message: "overridden by entry 2"}, issues[0])
	assert.Equal(t, Issue{Index: 1, Property: "color", Severity: SeverityInfo, Message: "overridden by entry 2"}, issues[1])
}

func TestInspectorIgnoresStacksWithoutDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	i := New(log)
	i.Inspect(components.StyleStack{components.Style{"color": "nope"}}, nil, false)

	assert.Empty(t, buf.String())
	assert.Equal(t, Stats{}, i.Stats())
}

func TestInspectorLogsIssues(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	i := New(log)
	root := &styled.Root{Styles: components.Style{"color": "#fff"}}
	i.Inspect(components.StyleStack{
		root.Styles,
		components.Style{"padding": "wide"},
		components.Style{"color": "#000"},
	}, root, true)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	require.Len(t, entries, 3)
	assert.Equal(t, "style stack", entries[0]["message"])
	assert.Equal(t, "inspect", entries[0]["component"])
	assert.Equal(t, true, entries[0]["root"])

	assert.Equal(t, "style override", entries[1]["message"])
	assert.Equal(t, "root", entries[1]["entry"])
	assert.Equal(t, "color", entries[1]["property"])

	assert.Equal(t, "style issue", entries[2]["message"])
	assert.Equal(t, "warn", entries[2]["level"])
	assert.Equal(t, "computed[0]", entries[2]["entry"])

	assert.Equal(t, Stats{Stacks: 1, Issues: 2}, i.Stats())
}

func TestInspectorWiredThroughStyledComponents(t *testing.T) {
	i := New(nil)
	ctx := styled.WithInspector(context.Background(), i)

	debugTitle := styled.Text(styled.Static(components.Style{"color": "red"}), styled.WithDebugStyles(true))
	plainTitle := styled.Text(styled.Static(components.Style{"color": "red"}))

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			debugTitle.Render(ctx, components.Props{"children": "hi"})
		}()
		go func() {
			defer wg.Done()
			plainTitle.Render(ctx, components.Props{"children": "hi"})
		}()
	}
	wg.Wait()

	assert.Equal(t, Stats{Stacks: 16, Issues: 16}, i.Stats())
}

func TestSourceOf(t *testing.T) {
	assert.Equal(t, "root", sourceOf(0, 3, true))
	assert.Equal(t, "computed[0]", sourceOf(1, 3, true))
	assert.Equal(t, "caller", sourceOf(2, 3, true))
	assert.Equal(t, "computed[0]", sourceOf(0, 2, false))
	assert.Equal(t, "caller", sourceOf(1, 2, false))
}

func describe(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Property + ": " + issue.Message
	}
	return out
}
