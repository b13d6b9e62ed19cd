package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

// emit prints value as JSON with --json and calls tables otherwise.
func emit(value any, tables func(out io.Writer)) error {
	if *jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(value)
	}
	tables(os.Stdout)
	return nil
}

// finish prints the result of a scrape and then returns its error. Failed fetches still come
// with a default result which is printed as well.
func finish(err error, value any, tables func(out io.Writer)) error {
	emitErr := emit(value, tables)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}
	return emitErr
}

func joinValues(values []string) string {
	return strings.Join(values, " / ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
