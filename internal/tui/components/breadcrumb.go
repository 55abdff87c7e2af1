package components

import (
	"strings"

	"glance/internal/tui/styles"
	"glance/pkg/types"
)

// breadcrumbSeparator is the directional glyph between crumbs.
const breadcrumbSeparator = " ⮕ "

// RenderBreadcrumb renders the Home crumb followed by one crumb per
// path segment. The last crumb is highlighted as the current
// location.
func RenderBreadcrumb(path types.Path, st styles.Set) string {
	var sb strings.Builder

	if path.IsRoot() {
		sb.WriteString(st.CrumbHere.Render("Home"))
	} else {
		sb.WriteString(st.Crumb.Render("Home"))
	}

	for i, segment := range path {
		sb.WriteString(st.Muted.Render(breadcrumbSeparator))
		if i == len(path)-1 {
			sb.WriteString(st.CrumbHere.Render(segment))
		} else {
			sb.WriteString(st.Crumb.Render(segment))
		}
	}

	return st.Breadcrumb.Render(sb.String())
}

// CrumbTargets returns the navigation target of every crumb, Home
// first: activating crumb i navigates to the path truncated at that
// segment.
func CrumbTargets(path types.Path) []types.Path {
	targets := make([]types.Path, 0, len(path)+1)
	targets = append(targets, types.Path{})
	for i := range path {
		targets = append(targets, path.Truncate(i+1))
	}
	return targets
}
