package output

import (
	"strings"

	"github.com/marcus/codenest/internal/content"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	Label    string
	Detail   string
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth    int  // 0 = unlimited
	ShowDetail  bool // Whether to append each node's detail
	Indentation int  // Base indentation level (for nested contexts)
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, strings.Repeat("  ", opts.Indentation))
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, strings.Repeat("  ", opts.Indentation))
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		line := prefix + connector + node.Label
		if opts.ShowDetail && node.Detail != "" {
			line += " - " + node.Detail
		}
		lines = append(lines, line)

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}

// PathTree groups paths under their level, in level order. Levels with no
// paths are left out.
func PathTree(paths []content.Path) []TreeNode {
	var roots []TreeNode
	for _, level := range content.AllLevels() {
		var children []TreeNode
		for _, p := range paths {
			if p.Level == level {
				children = append(children, TreeNode{Label: p.Title, Detail: p.Description})
			}
		}
		if len(children) > 0 {
			roots = append(roots, TreeNode{Label: string(level), Children: children})
		}
	}
	return roots
}
