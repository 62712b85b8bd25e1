package inspect

import (
	"strconv"
	"sync/atomic"

	"github.com/alexisbeaulieu97/styledterm/internal/logger"
	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// Stats counts what an Inspector has seen since it was created.
type Stats struct {
	Stacks int64
	Issues int64
}

// Inspector logs the style stacks of components defined with debug styles.
// Stacks built without the debug flag are ignored.
type Inspector struct {
	log    *logger.Logger
	stacks atomic.Int64
	issues atomic.Int64
}

var _ styled.Inspector = (*Inspector)(nil)

// New returns an Inspector writing to log. A nil log discards output but
// still counts.
func New(log *logger.Logger) *Inspector {
	if log == nil {
		log = logger.Nop()
	}
	return &Inspector{log: log.WithComponent("inspect")}
}

// Inspect implements styled.Inspector.
func (i *Inspector) Inspect(stack components.StyleStack, root *styled.Root, debug bool) {
	if !debug {
		return
	}
	i.stacks.Add(1)

	hasRoot := root != nil
	i.log.DebugFields("style stack", map[string]any{
		"entries":  len(stack),
		"root":     hasRoot,
		"computed": components.Flatten(stack),
	})

	for _, issue := range Check(stack) {
		i.issues.Add(1)
		fields := map[string]any{
			"entry":    sourceOf(issue.Index, len(stack), hasRoot),
			"property": issue.Property,
			"detail":   issue.Message,
		}
		if issue.Severity == SeverityWarn {
			i.log.WarnFields("style issue", fields)
		} else {
			i.log.DebugFields("style override", fields)
		}
	}
}

// Stats returns a snapshot of the counters.
func (i *Inspector) Stats() Stats {
	return Stats{Stacks: i.stacks.Load(), Issues: i.issues.Load()}
}

// sourceOf names a stack position: the theme root, a computed style or the
// caller's style prop.
func sourceOf(index, size int, hasRoot bool) string {
	switch {
	case hasRoot && index == 0:
		return "root"
	case index == size-1:
		return "caller"
	default:
		if hasRoot {
			index--
		}
		return "computed[" + strconv.Itoa(index) + "]"
	}
}
