package views

import (
	"bloodlink-web/internal/core/domain"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactForm is the contact page state. Values are kept after a failed submit.
type ContactForm struct {
	Values domain.ContactMessage
	Errors map[string]string
	Sent   bool
}

// ContactPage renders the contact form or, after a successful submit, the success panel
func ContactPage(meta PageMeta, form ContactForm) g.Node {
	if form.Sent {
		return Page(meta,
			Section(Class("card success-panel"),
				Icon(domain.IconMail, "icon"),
				H1(g.Text("Message Sent")),
				P(g.Text("Thanks for reaching out. We usually reply within two working days.")),
				A(Class("btn"), Href("/"), g.Text("Back to home")),
			),
		)
	}

	v := form.Values
	return Page(meta,
		pageHeading("Contact Us", "Questions, feedback or partnership ideas? Send us a message."),
		g.El("form", Method("post"), Action("/contact"), Class("card contact-form"),
			textField("name", "Name", "text", v.Name, form.Errors),
			textField("email", "Email", "email", v.Email, form.Errors),
			textField("subject", "Subject", "text", v.Subject, form.Errors),
			g.El("label",
				Span(g.Text("Message")),
				Textarea(Name("message"), g.Attr("rows", "6"), Required(), g.Text(v.Message)),
				fieldError(form.Errors, "message"),
			),
			Button(Type("submit"), Class("btn"), Icon(domain.IconMail, "icon"), g.Text("Send Message")),
		),
	)
}

func textField(name, label, typ, value string, errs map[string]string) g.Node {
	return g.El("label",
		Span(g.Text(label)),
		Input(Type(typ), Name(name), Value(value), g.If(name != "subject", Required())),
		fieldError(errs, name),
	)
}

func fieldError(errs map[string]string, name string) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return Span(Class("field-error"), g.Text(msg))
}

// ErrorPage renders a full-page error
func ErrorPage(meta PageMeta, status int, message string) g.Node {
	return Page(meta,
		Section(Class("empty"),
			H1(g.Textf("%d", status)),
			P(g.Text(message)),
			A(Class("btn"), Href("/"), g.Text("Back to home")),
		),
	)
}
