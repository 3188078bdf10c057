package regexmark_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-regexmark"
)

// Example renders a note with a hide rule. For PDF output, leave HTMLOnly
// unset (requires Chrome).
func Example() {
	r, err := regexmark.NewRenderer(regexmark.WithRules([]regexmark.Rule{
		{Regex: `\[\[(.+?)\]\]`, Class: "wikilink", Hide: true},
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	result, err := r.Render(context.Background(), regexmark.Input{
		Markdown: "See [[Home]] for details.",
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(result.HTML, `data-contents="[[Home]]">Home</span>`) {
		fmt.Println("marked", result.Stats.Replaced)
	}
	// Output: marked 1
}

// ExampleMarkHTML marks HTML that was already rendered elsewhere.
func ExampleMarkHTML() {
	out, err := regexmark.MarkHTML(`<p>TODO: ship it</p>`, []regexmark.Rule{
		{Regex: "TODO", Class: "todo"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: <p><span><span class="todo" data-contents="TODO: ship it">TODO: ship it</span></span></p>
}

// ExampleRenderer_Diagnostics lists rules that cannot take part.
func ExampleRenderer_Diagnostics() {
	r, err := regexmark.NewRenderer(regexmark.WithRules([]regexmark.Rule{
		{Regex: "[^x]", Class: "anything"},
		{Regex: "(open", Class: "broken"},
		{Regex: "ok", Class: "fine"},
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	for _, d := range r.Diagnostics() {
		fmt.Println("rule", d.Index, "ignored")
	}
	// Output:
	// rule 0 ignored
	// rule 1 ignored
}
