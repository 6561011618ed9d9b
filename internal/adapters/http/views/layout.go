package views

import (
	"strings"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/listing"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const siteName = "BloodLink"

// PageMeta is the per-request chrome state shared by every page
type PageMeta struct {
	Title    string
	Path     string
	URL      string // path with query, where the theme toggle returns to
	Theme    domain.Theme
	Identity *domain.Identity
	LoginURL string
	Toasts   []listing.Toast
}

type navItem struct {
	Label string
	Href  string
}

var navItems = []navItem{
	{"Home", "/"},
	{"Donation Requests", "/donation-requests"},
	{"Search", "/search"},
	{"Funding", "/funding"},
	{"Blog", "/blog"},
	{"About", "/about"},
	{"Help", "/help"},
	{"Contact", "/contact"},
}

// Page wraps body in the document shell, navbar, toasts and footer
func Page(meta PageMeta, body ...g.Node) g.Node {
	title := siteName
	if meta.Title != "" {
		title = meta.Title + " | " + siteName
	}
	return Doctype(
		HTML(Lang("en"), g.Attr("data-theme", string(meta.Theme)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				g.El("style", g.Raw(baseCSS)),
			),
			Body(
				navbar(meta),
				toasts(meta.Toasts),
				Main(Class("container"), g.Group(body)),
				footer(),
			),
		),
	)
}

func navbar(meta PageMeta) g.Node {
	return Header(Class("navbar"),
		A(Class("brand"), Href("/"), Icon(domain.IconDrop, "icon brand-icon"), g.Text(siteName)),
		Nav(
			Ul(g.Map(navItems, func(it navItem) g.Node {
				return Li(A(Href(it.Href), g.If(active(meta.Path, it.Href), Class("active")), g.Text(it.Label)))
			})),
		),
		Div(Class("navbar-actions"),
			themeToggle(meta),
			account(meta),
		),
	)
}

func active(path, href string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func themeToggle(meta PageMeta) g.Node {
	icon, label := domain.IconMoon, "Switch to dark mode"
	if meta.Theme == domain.ThemeDark {
		icon, label = domain.IconSun, "Switch to light mode"
	}
	return g.El("form", Method("post"), Action("/theme/toggle"), Class("theme-toggle"),
		Input(Type("hidden"), Name("next"), Value(returnTo(meta))),
		Button(Type("submit"), g.Attr("aria-label", label), g.Attr("title", label), Icon(icon, "icon")),
	)
}

func returnTo(meta PageMeta) string {
	if meta.URL != "" {
		return meta.URL
	}
	return meta.Path
}

func account(meta PageMeta) g.Node {
	if meta.Identity == nil {
		return A(Class("btn btn-outline"), Href(meta.LoginURL), g.Text("Sign in"))
	}
	name := meta.Identity.Name
	if name == "" {
		name = meta.Identity.Email
	}
	return Span(Class("donor"), g.Text(name))
}

func toasts(list []listing.Toast) g.Node {
	if len(list) == 0 {
		return nil
	}
	return Div(Class("toasts"), g.Attr("role", "status"),
		g.Map(list, func(t listing.Toast) g.Node {
			return Div(Class("toast toast-"+string(t.Level)), g.Text(t.Message))
		}),
	)
}

func footer() g.Node {
	return Footer(Class("footer"),
		Div(Class("footer-brand"), Icon(domain.IconDrop, "icon"), g.Text(siteName)),
		P(g.Text("Connecting blood donors with patients across Bangladesh.")),
		Ul(Class("footer-links"),
			Li(A(Href("/about"), g.Text("About"))),
			Li(A(Href("/blog"), g.Text("Blog"))),
			Li(A(Href("/help"), g.Text("Help"))),
			Li(A(Href("/contact"), g.Text("Contact"))),
		),
		Div(Class("footer-contact"),
			Span(Icon(domain.IconMail, "icon"), g.Text("support@bloodlink.example.org")),
			Span(Icon(domain.IconPhone, "icon"), g.Text("+880 1700-000000")),
		),
	)
}

// Icon renders a closed-set icon. Unknown icons render nothing.
func Icon(name domain.Icon, class string) g.Node {
	path, ok := name.Path()
	if !ok {
		return nil
	}
	return g.El("svg",
		g.Attr("class", class),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", path)),
	)
}

const baseCSS = `
:root{--bg:#fff;--fg:#1f2937;--muted:#6b7280;--card:#f9fafb;--accent:#dc2626;--border:#e5e7eb}
[data-theme=dark]{--bg:#111827;--fg:#f3f4f6;--muted:#9ca3af;--card:#1f2937;--accent:#f87171;--border:#374151}
body{margin:0;font-family:system-ui,sans-serif;background:var(--bg);color:var(--fg)}
a{color:var(--accent)}
.container{max-width:72rem;margin:0 auto;padding:1.5rem}
.navbar{display:flex;align-items:center;gap:1rem;padding:.75rem 1.5rem;border-bottom:1px solid var(--border)}
.navbar ul{display:flex;gap:1rem;list-style:none;margin:0;padding:0}
.navbar a.active{font-weight:600}
.navbar-actions{margin-left:auto;display:flex;gap:.75rem;align-items:center}
.icon{width:1.25rem;height:1.25rem;vertical-align:middle}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(16rem,1fr));gap:1rem}
.card{background:var(--card);border:1px solid var(--border);border-radius:.5rem;padding:1rem}
.skeleton{height:8rem;background:var(--border);border-radius:.5rem}
.empty{text-align:center;color:var(--muted);padding:3rem 0}
.toasts{position:fixed;top:1rem;right:1rem;display:flex;flex-direction:column;gap:.5rem}
.toast{padding:.75rem 1rem;border-radius:.375rem;color:#fff}
.toast-success{background:#16a34a}.toast-error{background:#dc2626}.toast-warning{background:#d97706}
.badge{display:inline-block;padding:.125rem .5rem;border-radius:9999px;background:var(--accent);color:#fff;font-weight:600}
.filters{display:flex;flex-wrap:wrap;gap:.75rem;margin-bottom:1rem}
.field-error{color:#dc2626;font-size:.875rem}
.footer{border-top:1px solid var(--border);padding:1.5rem;color:var(--muted)}
`
