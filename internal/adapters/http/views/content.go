package views

import (
	"net/url"
	"strings"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomePage renders the landing page
func HomePage(meta PageMeta, summary *domain.FundingSummary, posts []domain.BlogPost) g.Node {
	return Page(meta,
		Section(Class("hero"),
			H1(g.Text("Donate blood, save lives")),
			P(Class("lead"), g.Text("Find people who need your blood group nearby, or support blood drives with a donation.")),
			Div(Class("hero-actions"),
				A(Class("btn"), Href("/search"), Icon(domain.IconSearch, "icon"), g.Text("Search Requests")),
				A(Class("btn btn-outline"), Href("/donation-requests"), Icon(domain.IconDrop, "icon"), g.Text("Pending Requests")),
			),
		),
		summaryPanel(summary),
		g.If(len(posts) > 0, Section(
			H2(g.Text("From the blog")),
			Div(Class("grid"), g.Map(posts, postCard)),
		)),
	)
}

// AboutPage renders the static about page
func AboutPage(meta PageMeta) g.Node {
	return Page(meta,
		pageHeading("About Us", "We connect voluntary blood donors with patients and hospitals."),
		Section(Class("grid"),
			Div(Class("card"), Icon(domain.IconDrop, "icon"), H3(g.Text("Our mission")),
				P(g.Text("Make sure no patient waits for blood because a willing donor could not be found."))),
			Div(Class("card"), Icon(domain.IconHospital, "icon"), H3(g.Text("How it works")),
				P(g.Text("Hospitals and families post donation requests. Donors search by blood group and location and volunteer."))),
			Div(Class("card"), Icon(domain.IconHeart, "icon"), H3(g.Text("Funding")),
				P(g.Text("Donations pay for blood drives, screening kits and donor transport."))),
		),
	)
}

// BlogPage renders the post list with category and free-text filters
func BlogPage(meta PageMeta, page services.BlogPage, query url.Values) g.Node {
	return Page(meta,
		pageHeading("Blog", "News, donation tips and stories from our donors."),
		contentFilterForm("/blog", page.Filter, page.Categories, "Search posts"),
		ListState(page.View, "", postCard),
		Pager("/blog", query, page.Meta),
	)
}

// BlogPostPage renders one post
func BlogPostPage(meta PageMeta, p domain.BlogPost) g.Node {
	return Page(meta,
		Article(Class("post"),
			Span(Class("badge"), g.Text(p.Category)),
			H1(g.Text(p.Title)),
			P(Class("byline"), g.Text(byline(p))),
			g.Map(paragraphs(p.Body), func(s string) g.Node { return P(g.Text(s)) }),
			A(Class("btn btn-outline"), Href("/blog"), g.Text("Back to blog")),
		),
	)
}

// HelpPage renders the FAQ list
func HelpPage(meta PageMeta, page services.HelpPage) g.Node {
	return Page(meta,
		pageHeading("Help Center", "Answers to common questions about donating and funding."),
		contentFilterForm("/help", page.Filter, page.Categories, "Search help"),
		ListState(page.View, "", faqItem),
	)
}

func postCard(p domain.BlogPost) g.Node {
	return Article(Class("card"),
		Span(Class("badge"), g.Text(p.Category)),
		H3(A(Href("/blog/"+url.PathEscape(p.Slug)), g.Text(p.Title))),
		P(g.Text(p.Excerpt)),
		P(Class("byline"), g.Text(byline(p))),
	)
}

func faqItem(q domain.FAQ) g.Node {
	return g.El("details", Class("card"),
		g.El("summary", g.Text(q.Question)),
		P(g.Text(q.Answer)),
	)
}

func contentFilterForm(action string, f domain.ContentFilter, categories []string, placeholder string) g.Node {
	return g.El("form", Method("get"), Action(action), Class("filters"),
		selectField("category", "Category", categories, f.Category, "All"),
		g.El("label",
			Span(g.Text("Search")),
			Input(Type("search"), Name("search"), Value(f.Search), Placeholder(placeholder)),
		),
		Button(Type("submit"), Class("btn"), Icon(domain.IconSearch, "icon"), g.Text("Apply")),
	)
}

func byline(p domain.BlogPost) string {
	date := ""
	if !p.PublishedAt.IsZero() {
		date = p.PublishedAt.Format("02 Jan 2006")
	}
	return joinNonEmpty(" · ", p.Author, date)
}

func paragraphs(body string) []string {
	var out []string
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.Join(strings.Fields(block), " ")
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
