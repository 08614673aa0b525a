package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/marcus/codenest/internal/content"
	"github.com/marcus/codenest/internal/output"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [query]",
	Short: "List the learning paths",
	Long: `List the learning paths grouped by level.

An optional query fuzzy-matches path titles, best match first:

  codenest paths tre      # Trees
  codenest paths --level Beginner
  codenest paths heap --long`,
	GroupID: "page",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)

	pathsCmd.Flags().StringP("level", "l", "", "Only show paths at this level (Beginner, Intermediate, Advanced)")
	pathsCmd.Flags().Bool("long", false, "Render each path as a markdown card")
	pathsCmd.Flags().Int("width", 80, "Wrap width for --long")
}

// pathSource adapts paths to fuzzy.Source.
type pathSource []content.Path

func (p pathSource) String(i int) string { return p[i].Title }

func (p pathSource) Len() int { return len(p) }

// filterPaths keeps the catalog's paths at level (if set) whose title
// fuzzy-matches query (if set). Matches come back best first.
func filterPaths(catalog *content.Catalog, query string, level content.Level) ([]content.Path, error) {
	paths := catalog.Paths
	if level != "" {
		if !level.IsValid() {
			return nil, fmt.Errorf("invalid level %q (want one of %s)", level, levelList())
		}
		paths = catalog.ByLevel(level)
	}

	if query == "" {
		return paths, nil
	}
	matches := fuzzy.FindFrom(query, pathSource(paths))
	out := make([]content.Path, 0, len(matches))
	for _, m := range matches {
		out = append(out, paths[m.Index])
	}
	return out, nil
}

func levelList() string {
	levels := content.AllLevels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// renderPathsLong renders each path's markdown with glamour.
func renderPathsLong(w io.Writer, paths []content.Path, width int) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	for _, p := range paths {
		out, err := r.Render(p.Markdown())
		if err != nil {
			return fmt.Errorf("render %q: %w", p.Title, err)
		}
		fmt.Fprint(w, out)
	}
	return nil
}

// renderPathsTree prints the paths grouped by level.
func renderPathsTree(w io.Writer, brand string, paths []content.Path) {
	fmt.Fprintln(w, output.Header(brand+" learning paths"))
	for _, line := range output.RenderTreeLines(output.PathTree(paths), output.TreeRenderOptions{}) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, output.Muted(fmt.Sprintf("%d path(s)", len(paths))))
}

func runPaths(cmd *cobra.Command, args []string) error {
	catalog, err := content.Default()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	level, _ := cmd.Flags().GetString("level")

	paths, err := filterPaths(catalog, query, content.Level(level))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no learning path matches %q", query)
	}

	out := cmd.OutOrStdout()
	if long, _ := cmd.Flags().GetBool("long"); long {
		width, _ := cmd.Flags().GetInt("width")
		return renderPathsLong(out, paths, width)
	}
	renderPathsTree(out, catalog.Brand, paths)
	return nil
}
