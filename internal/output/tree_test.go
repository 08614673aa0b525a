package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marcus/codenest/internal/content"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_SingleNode(t *testing.T) {
	nodes := []TreeNode{
		{Label: "Arrays", Detail: "Master Arrays"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{ShowDetail: true})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if !strings.Contains(line, "└──") {
		t.Errorf("expected last-item connector, got: %s", line)
	}
	if !strings.Contains(line, "Arrays - Master Arrays") {
		t.Errorf("expected label and detail in output, got: %s", line)
	}
}

func TestRenderTreeLines_MultipleNodes(t *testing.T) {
	nodes := []TreeNode{
		{Label: "First"},
		{Label: "Second"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	// First node should have ├──
	if !strings.Contains(lines[0], "├──") {
		t.Errorf("expected non-last connector for first node, got: %s", lines[0])
	}

	// Last node should have └──
	if !strings.Contains(lines[1], "└──") {
		t.Errorf("expected last connector for second node, got: %s", lines[1])
	}
}

func TestRenderTreeLines_WithChildren(t *testing.T) {
	nodes := []TreeNode{
		{
			Label: "Parent",
			Children: []TreeNode{
				{Label: "Child 1"},
				{Label: "Child 2"},
			},
		},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (parent + 2 children), got %d: %v", len(lines), lines)
	}

	// Children should be indented
	if !strings.HasPrefix(lines[1], "    ") {
		t.Errorf("expected indentation for child, got: %s", lines[1])
	}
}

func TestRenderTreeLines_MaxDepth(t *testing.T) {
	nodes := []TreeNode{
		{
			Label: "Level 0",
			Children: []TreeNode{
				{
					Label:    "Level 1",
					Children: []TreeNode{{Label: "Level 2"}},
				},
			},
		},
	}

	lines := RenderTreeLines(nodes, TreeRenderOptions{MaxDepth: 1})

	if len(lines) != 1 {
		t.Errorf("expected 1 line with MaxDepth=1, got %d: %v", len(lines), lines)
	}
}

func TestRenderTree(t *testing.T) {
	root := TreeNode{
		Label:    "Root",
		Children: []TreeNode{{Label: "Child", Detail: "hidden"}},
	}

	result := RenderTree(root, TreeRenderOptions{Indentation: 1})

	if strings.Contains(result, "Root") {
		t.Errorf("root should not be rendered, got: %s", result)
	}
	if !strings.HasPrefix(result, "  └── Child") {
		t.Errorf("expected indented child, got: %q", result)
	}
	if strings.Contains(result, "hidden") {
		t.Errorf("detail shown without ShowDetail: %s", result)
	}
}

func TestPathTree(t *testing.T) {
	paths := []content.Path{
		{Title: "Trees", Level: content.LevelAdvanced},
		{Title: "Arrays", Level: content.LevelBeginner},
		{Title: "Heaps", Level: content.LevelAdvanced},
	}

	roots := PathTree(paths)

	if len(roots) != 2 {
		t.Fatalf("expected 2 levels (empty levels skipped), got %d: %+v", len(roots), roots)
	}
	if roots[0].Label != string(content.LevelBeginner) || roots[1].Label != string(content.LevelAdvanced) {
		t.Errorf("levels out of order: %q, %q", roots[0].Label, roots[1].Label)
	}
	if got := roots[1].Children; len(got) != 2 || got[0].Label != "Trees" || got[1].Label != "Heaps" {
		t.Errorf("advanced children = %+v, want Trees then Heaps", got)
	}
}

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "listening on %s", "http://127.0.0.1:8080")
	if got := buf.String(); !strings.Contains(got, "listening on http://127.0.0.1:8080") || !strings.HasSuffix(got, "\n") {
		t.Errorf("Success wrote %q", got)
	}
}
