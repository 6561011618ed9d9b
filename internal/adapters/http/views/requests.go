package views

import (
	"net/url"
	"strings"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LocationOptions feeds the district and upazila selectors
type LocationOptions struct {
	Districts []string
	Upazilas  []string
}

// RequestsPage renders the pending donation requests with local filters
func RequestsPage(meta PageMeta, page services.RequestPage, opts LocationOptions, query url.Values) g.Node {
	return Page(meta,
		pageHeading("Pending Donation Requests", "People who need blood right now. Filter by blood group and location."),
		requestFilterForm("/donation-requests", page.Filter, opts, "Filter"),
		ListState(page.View, "", requestCard),
		Pager("/donation-requests", query, page.Meta),
	)
}

// SearchPage renders the donor search. Nothing is listed until a search is submitted.
func SearchPage(meta PageMeta, page services.RequestPage, opts LocationOptions, query url.Values) g.Node {
	return Page(meta,
		pageHeading("Search Donation Requests", "Find requests that match your blood group near you."),
		requestFilterForm("/search", page.Filter, opts, "Search"),
		ListState(page.View, "Choose a blood group or location and press Search.", requestCard),
		Pager("/search", query, page.Meta),
	)
}

// RequestDetailsPage renders one donation request
func RequestDetailsPage(meta PageMeta, r domain.DonationRequest) g.Node {
	return Page(meta,
		Article(Class("card request-details"),
			Div(Span(Class("badge"), g.Text(string(r.BloodGroup))), Span(Class("status"), g.Text(r.Status.Label()))),
			H1(g.Text(r.RecipientName)),
			dl(
				[2]string{"Hospital", r.Hospital},
				[2]string{"District", r.RecipientDistrict},
				[2]string{"Upazila", r.RecipientUpazila},
				[2]string{"Address", r.Address},
				[2]string{"Date", r.Date},
				[2]string{"Time", r.Time},
			),
			g.If(r.Message != "", P(Class("request-message"), g.Text(r.Message))),
			A(Class("btn btn-outline"), Href("/donation-requests"), g.Text("Back to requests")),
		),
	)
}

func requestCard(r domain.DonationRequest) g.Node {
	return Article(Class("card"),
		Div(Class("card-head"),
			Span(Class("badge"), g.Text(string(r.BloodGroup))),
			Span(Class("status"), g.Text(r.Status.Label())),
		),
		H3(g.Text(r.RecipientName)),
		P(Icon(domain.IconHospital, "icon"), g.Text(r.Hospital)),
		P(Icon(domain.IconLocation, "icon"), g.Text(joinNonEmpty(", ", r.RecipientUpazila, r.RecipientDistrict))),
		P(Icon(domain.IconCalendar, "icon"), g.Text(r.Date), Icon(domain.IconClock, "icon"), g.Text(r.Time)),
		A(Class("btn"), Href("/donation-requests/"+url.PathEscape(r.ID)), g.Text("View Details")),
	)
}

func requestFilterForm(action string, f domain.RequestFilter, opts LocationOptions, submit string) g.Node {
	groups := make([]string, 0, len(domain.BloodGroups))
	for _, bg := range domain.BloodGroups {
		groups = append(groups, string(bg))
	}
	return g.El("form", Method("get"), Action(action), Class("filters"),
		selectField("bloodGroup", "Blood group", groups, f.BloodGroup, "All"),
		selectField("district", "District", opts.Districts, f.District, "All"),
		selectField("upazila", "Upazila", opts.Upazilas, f.Upazila, "All"),
		Button(Type("submit"), Class("btn"), Icon(domain.IconSearch, "icon"), g.Text(submit)),
	)
}

func selectField(name, label string, options []string, selected, allLabel string) g.Node {
	return g.El("label",
		Span(g.Text(label)),
		Select(Name(name),
			Option(Value(""), g.Text(allLabel), g.If(selected == "", Selected())),
			g.Map(options, func(o string) g.Node {
				return Option(Value(o), g.Text(o), g.If(strings.EqualFold(o, selected), Selected()))
			}),
		),
	)
}

func dl(rows ...[2]string) g.Node {
	var items []g.Node
	for _, r := range rows {
		if strings.TrimSpace(r[1]) == "" {
			continue
		}
		items = append(items, g.El("dt", g.Text(r[0])), g.El("dd", g.Text(r[1])))
	}
	return g.El("dl", g.Group(items))
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func pageHeading(title, lead string) g.Node {
	return Header(Class("page-heading"),
		H1(g.Text(title)),
		g.If(lead != "", P(Class("lead"), g.Text(lead))),
	)
}
