package rewrite

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-regexmark/internal/markup"
	"github.com/alnah/go-regexmark/internal/ruleset"
)

// Stats counts what a pass did.
type Stats struct {
	Candidates int
	Qualified  int
	Leaves     int
	Replaced   int
	Failed     int
}

// Option configures a pass.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger for pass statistics and replacement failures.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Rewrite runs one pass of set over tree. It never fails: a leaf that cannot
// be replaced is left as it is and counted in Stats.Failed.
func Rewrite(tree Tree, set *ruleset.Set, opts ...Option) Stats {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	var stats Stats
	if tree == nil || set.Len() == 0 {
		return stats
	}

	visited := make(map[Leaf]struct{})
	for _, el := range tree.Candidates() {
		stats.Candidates++
		if !set.Qualifies(el.Text()) {
			continue
		}
		stats.Qualified++

		// Collected up front: replacing a leaf mutates the element.
		leaves := el.Leaves()
		for _, leaf := range leaves {
			if _, seen := visited[leaf]; seen {
				continue
			}
			visited[leaf] = struct{}{}
			stats.Leaves++

			text := leaf.Text()
			if strings.TrimSpace(text) == "" {
				continue
			}

			frag := markup.Synthesize(text, set.EvaluateLeaf(text))
			if frag.Unchanged() {
				continue
			}
			if err := leaf.Replace(frag); err != nil {
				stats.Failed++
				o.logger.Warn().
					Err(err).
					Str("text", text).
					Strs("classes", frag.Classes()).
					Msg("Leaving text unchanged")
				continue
			}
			stats.Replaced++
		}
	}

	o.logger.Debug().
		Int("candidates", stats.Candidates).
		Int("qualified", stats.Qualified).
		Int("leaves", stats.Leaves).
		Int("replaced", stats.Replaced).
		Msg("Rewrite pass done")
	return stats
}
