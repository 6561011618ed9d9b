package views

import (
	"net/url"
	"strconv"

	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NoResults is shown whenever a resolved list has nothing to display
const NoResults = "No Results Found"

const skeletonCards = 6

// ListState renders a list view according to its phase
func ListState[T any](view listing.View[T], idlePrompt string, card func(T) g.Node) g.Node {
	switch view.Phase {
	case listing.PhaseIdle:
		return Div(Class("empty"), g.Attr("data-state", "idle"),
			P(g.Text(idlePrompt)),
		)
	case listing.PhaseLoading:
		skeletons := make([]g.Node, skeletonCards)
		for i := range skeletons {
			skeletons[i] = Div(Class("skeleton"))
		}
		return Div(Class("grid"), g.Attr("data-state", "loading"), g.Attr("aria-busy", "true"), g.Group(skeletons))
	case listing.PhasePopulated:
		return Div(Class("grid"), g.Attr("data-state", "populated"),
			g.Map(view.Items, card),
		)
	}
	return Div(Class("empty"), g.Attr("data-state", "empty"),
		H3(g.Text(NoResults)),
	)
}

// Pager renders previous and next links preserving the current query
func Pager(path string, query url.Values, meta *pagination.Meta) g.Node {
	if meta == nil || meta.TotalPages <= 1 {
		return nil
	}
	link := func(page int, label string) g.Node {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		return A(Class("btn btn-outline"), Href(path+"?"+q.Encode()), g.Text(label))
	}
	return Nav(Class("pager"), g.Attr("aria-label", "Pagination"),
		g.If(meta.HasPrev, link(meta.Page-1, "Previous")),
		Span(g.Textf("Page %d of %d", meta.Page, meta.TotalPages)),
		g.If(meta.HasNext, link(meta.Page+1, "Next")),
	)
}
