package gallery

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

func render(t *testing.T, themeName, screenName string, frame Frame) string {
	t.Helper()
	def, ok := theme.Preset(themeName)
	require.True(t, ok)
	screen, err := Lookup(screenName)
	require.NoError(t, err)
	frame.Theme = def
	return frame.Render(context.Background(), screen)
}

func TestNamesAreInDisplayOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"overview", "typography", "form", "lists", "media"}, Names())
	assert.Len(t, Screens(), len(Names()))
}

func TestLookupUnknownScreen(t *testing.T) {
	t.Parallel()
	_, err := Lookup("settings")
	require.Error(t, err)

	var notFound *styledErrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "screen", notFound.Kind)
	assert.Equal(t, Names(), notFound.Known)
}

func TestEveryScreenRendersUnderEveryTheme(t *testing.T) {
	t.Parallel()
	for _, name := range theme.Names() {
		for _, screen := range Screens() {
			view := render(t, name, screen.Name, Frame{Width: 80})
			assert.Contains(t, view, screen.Title, "%s/%s", name, screen.Name)
		}
	}
}

func TestHeaderReadsContextualData(t *testing.T) {
	t.Parallel()
	view := render(t, theme.Light, "overview", Frame{Width: 72})
	assert.Contains(t, view, "light · Overview · 72 cols")

	view = render(t, theme.Mono, "lists", Frame{})
	assert.Contains(t, view, "mono · Lists")
	assert.NotContains(t, view, "cols")
}

func TestFormShowsStateValues(t *testing.T) {
	t.Parallel()
	view := render(t, theme.Dark, "form", Frame{Width: 80, State: State{
		Focus:  "email",
		Values: map[string]string{"email": "ada@x.io", "password": "hunter2"},
	}})

	assert.Contains(t, view, "ada@x.io")
	assert.Contains(t, view, "Ada Lovelace")
	assert.NotContains(t, view, "hunter2")
	assert.Contains(t, view, "•••")
	assert.Contains(t, view, "Submit")
}

func TestListsScreen(t *testing.T) {
	t.Parallel()
	view := render(t, theme.Dark, "lists", Frame{Width: 80})
	for _, want := range []string{"1. Inbox", "3. Archive", "FRUIT", "VEGETABLES", "• apple", "• leek"} {
		assert.Contains(t, view, want)
	}
}

func TestMediaScrollFollowsOffset(t *testing.T) {
	t.Parallel()
	view := render(t, theme.Dark, "media", Frame{Width: 80, State: State{Offset: 2}})

	assert.Contains(t, view, "log line 03")
	assert.Contains(t, view, "log line 06")
	assert.NotContains(t, view, "log line 01")
	assert.NotContains(t, view, "log line 07")
	assert.Contains(t, view, "release banner")
	assert.Contains(t, view, "avatar")
}

func TestFrameInspectorSeesDebugKit(t *testing.T) {
	t.Parallel()
	var plain, debug atomic.Int64
	inspector := styled.InspectorFunc(func(_ components.StyleStack, root *styled.Root, enabled bool) {
		require.NotNil(t, root)
		if enabled {
			debug.Add(1)
		} else {
			plain.Add(1)
		}
	})

	render(t, theme.Dark, "overview", Frame{Inspector: inspector})
	assert.Positive(t, plain.Load())
	assert.Zero(t, debug.Load())

	plainCount := plain.Load()
	render(t, theme.Dark, "overview", Frame{Inspector: inspector, Debug: true})
	assert.Equal(t, plainCount, debug.Load())
	assert.Equal(t, plainCount, plain.Load())
}

func TestKitForIsShared(t *testing.T) {
	t.Parallel()
	assert.Same(t, KitFor(false), KitFor(false))
	assert.Same(t, KitFor(true), KitFor(true))
	assert.NotSame(t, KitFor(false), KitFor(true))
}

func TestTokenStyle(t *testing.T) {
	t.Parallel()
	tokens := styled.Theme{
		"typography": map[string]any{
			"title": map[string]any{"fontWeight": "bold"},
			"body":  components.Style{"color": "#fff"},
		},
	}

	assert.Equal(t, components.Style{"fontWeight": "bold"}, tokenStyle(tokens, "typography.title"))
	assert.Equal(t, components.Style{"color": "#fff"}, tokenStyle(tokens, "typography.body"))
	assert.Nil(t, tokenStyle(tokens, "typography.missing"))
}
