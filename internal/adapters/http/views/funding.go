package views

import (
	"fmt"
	"net/url"

	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FundingPage renders the funding list, totals and the donate form
func FundingPage(meta PageMeta, page services.FundingPage, query url.Values) g.Node {
	return Page(meta,
		pageHeading("Funding", "Every contribution keeps blood drives running."),
		summaryPanel(page.Summary),
		donateForm(meta),
		ListState(page.View, "", fundingCard),
		Pager("/funding", query, page.Meta),
	)
}

// PaymentSuccessPage is shown after the payment processor redirects back
func PaymentSuccessPage(meta PageMeta) g.Node {
	return Page(meta,
		Section(Class("card success-panel"),
			Icon(domain.IconHeart, "icon"),
			H1(g.Text("Payment Successful")),
			P(g.Text("Thank you for supporting blood donation. Your contribution will appear in the funding list shortly.")),
			A(Class("btn"), Href("/funding"), g.Text("Back to funding")),
		),
	)
}

func summaryPanel(sum *domain.FundingSummary) g.Node {
	if sum == nil {
		return nil
	}
	return Section(Class("summary"),
		Div(Class("card"), P(g.Text("Total raised")), H2(g.Text(FormatAmount(sum.TotalAmount)))),
		Div(Class("card"), P(g.Text("Donations")), H2(g.Textf("%d", sum.TotalDonations))),
	)
}

func donateForm(meta PageMeta) g.Node {
	if meta.Identity == nil {
		return P(Class("donate-signin"),
			A(Href(meta.LoginURL), g.Text("Sign in")),
			g.Text(" to make a donation."),
		)
	}
	return g.El("form", Method("post"), Action("/funding/checkout"), Class("filters donate-form"),
		g.El("label",
			Span(g.Text("Amount")),
			Input(Type("number"), Name("donateAmount"), g.Attr("min", "1"), g.Attr("step", "any"), Required()),
		),
		Button(Type("submit"), Class("btn"), Icon(domain.IconHeart, "icon"), g.Text("Give Fund")),
	)
}

func fundingCard(f domain.Funding) g.Node {
	paid := ""
	if !f.PaidAt.IsZero() {
		paid = f.PaidAt.Format("02 Jan 2006")
	}
	return Article(Class("card"),
		H3(g.Text(f.DonorName)),
		P(Class("amount"), g.Text(FormatAmount(f.Amount))),
		g.If(paid != "", P(Icon(domain.IconCalendar, "icon"), g.Text(paid))),
	)
}

// FormatAmount renders a currency amount
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
