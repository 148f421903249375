package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/brochure/content"
)

// Layout wraps body in the site chrome: head, header, breadcrumbs, flash
// message, footer with the newsletter form, and the forms script.
func Layout(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if data.CSRFToken != "" {
			h.raw(`<meta name="csrf-token"`)
			h.attr("content", data.CSRFToken)
			h.raw(">")
		}
		h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
		h.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		h.attr("title", data.SiteName)
		h.raw(">")
		if h.err != nil {
			return h.err
		}
		if err := Head(data.Meta, data.Schema).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</head><body><header><a href="/" class="font-bold">`)
		h.text(data.SiteName)
		h.raw(`</a><nav>`)
		for _, item := range data.Nav {
			h.raw("<a")
			h.attr("href", item.Href)
			h.attr("class", NavClass(item.Active))
			if item.Active {
				h.raw(` aria-current="page"`)
			}
			h.raw(">")
			h.text(item.Label)
			h.raw("</a>")
		}
		h.raw("</nav></header>")

		if len(data.Breadcrumbs) > 1 {
			h.raw(`<nav aria-label="Breadcrumb" class="breadcrumbs"><ol>`)
			for i, c := range data.Breadcrumbs {
				h.raw("<li>")
				if i == len(data.Breadcrumbs)-1 {
					h.raw(`<span aria-current="page">`)
					h.text(c.Name)
					h.raw("</span>")
				} else {
					h.raw("<a")
					h.attr("href", c.URL)
					h.raw(">")
					h.text(c.Name)
					h.raw("</a>")
				}
				h.raw("</li>")
			}
			h.raw("</ol></nav>")
		}
		if data.Flash != "" {
			h.raw(`<div role="status" class="flash">`)
			h.text(data.Flash)
			h.raw("</div>")
		}

		h.raw("<main>")
		if h.err != nil {
			return h.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw("</main><footer>")
		if h.err != nil {
			return h.err
		}
		if err := SubscribeForm(data.CSRFToken, data.SubscribeFormID, data.Path).Render(ctx, w); err != nil {
			return err
		}
		h.raw("<p>&copy; ")
		h.raw(strconv.Itoa(data.Year))
		h.raw(" ")
		h.text(data.SiteName)
		h.raw(`</p></footer><script src="/public/forms.js" defer></script></body></html>`)
		return h.err
	})
}

// Page renders a registered static page. The contact page gets the contact form.
func Page(data PageData) templ.Component {
	return Layout(data, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<h1>")
		h.text(data.Heading)
		h.raw("</h1>")
		if data.Intro != "" {
			h.raw(`<p class="lead">`)
			h.text(data.Intro)
			h.raw("</p>")
		}
		if h.err != nil {
			return h.err
		}
		if data.Key == "contact" {
			return ContactForm(data.CSRFToken).Render(ctx, w)
		}
		return nil
	}))
}

// ResourceList renders the resources index.
func ResourceList(data PageData, resources []content.Resource) templ.Component {
	return Layout(data, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<h1>")
		h.text(data.Heading)
		h.raw("</h1>")
		if len(resources) == 0 {
			h.raw("<p>New resources are on the way.</p>")
			return h.err
		}
		h.raw(`<ul class="resources">`)
		for _, r := range resources {
			h.raw("<li")
			if r.Featured {
				h.raw(` class="featured"`)
			}
			h.raw("><h2><a")
			h.attr("href", r.Path())
			h.raw(">")
			h.text(r.Title)
			h.raw("</a></h2><p>")
			h.text(r.Description)
			h.raw("</p><time")
			h.attr("datetime", r.DatePublished)
			h.raw(">")
			h.text(FormatDate(r.DatePublished))
			h.raw("</time></li>")
		}
		h.raw("</ul>")
		return h.err
	}))
}

// ResourceDetail renders one resource. r.HTML is already sanitized.
func ResourceDetail(data PageData, r content.Resource) templ.Component {
	return Layout(data, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<article><h1>")
		h.text(r.Title)
		h.raw(`</h1><p class="byline">`)
		h.text(r.Author)
		h.raw(" &middot; <time")
		h.attr("datetime", r.DatePublished)
		h.raw(">")
		h.text(FormatDate(r.DatePublished))
		h.raw("</time>")
		if len(r.Tags) > 0 {
			h.raw(` &middot; <span class="tags">`)
			h.text(JoinTags(r.Tags))
			h.raw("</span>")
		}
		h.raw("</p>")
		h.raw(r.HTML)
		if r.DownloadURL != "" {
			h.raw(`<p><a class="button"`)
			h.attr("href", r.DownloadURL)
			h.raw(" download>Download</a></p>")
		}
		h.raw("</article>")
		return h.err
	}))
}

// ContactForm posts to /api/contact. Without JavaScript it submits
// form-encoded and the server redirects back with a flash message.
func ContactForm(csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form method="post" action="/api/contact" data-form="contact">`)
		hiddenInputs(h, csrfToken, "/contact/")
		h.raw(`<label>Name <input type="text" name="name" required></label>`)
		h.raw(`<label>Email <input type="email" name="email" required></label>`)
		h.raw(`<label>Subject <input type="text" name="subject"></label>`)
		h.raw(`<label>Message <textarea name="message" rows="6" required></textarea></label>`)
		h.raw(`<button type="submit">Send message</button><p data-form-status></p></form>`)
		return h.err
	})
}

// SubscribeForm posts to /api/subscribe. It renders nothing when no form id is configured.
func SubscribeForm(csrfToken, formID, redirect string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if formID == "" {
			return nil
		}
		if redirect == "" {
			redirect = "/"
		}
		h := &htmlWriter{w: w}
		h.raw(`<form method="post" action="/api/subscribe" data-form="subscribe">`)
		hiddenInputs(h, csrfToken, redirect)
		h.raw(`<input type="hidden" name="formId"`)
		h.attr("value", formID)
		h.raw(">")
		h.raw(`<label>First name <input type="text" name="firstName"></label>`)
		h.raw(`<label>Email <input type="email" name="email" required></label>`)
		h.raw(`<button type="submit">Subscribe</button><p data-form-status></p></form>`)
		return h.err
	})
}

func hiddenInputs(h *htmlWriter, csrfToken, redirect string) {
	if csrfToken != "" {
		h.raw(`<input type="hidden" name="_csrf"`)
		h.attr("value", csrfToken)
		h.raw(">")
	}
	h.raw(`<input type="hidden" name="redirect"`)
	h.attr("value", redirect)
	h.raw(">")
}

// NotFound is the 404 page.
func NotFound() templ.Component {
	return errorPage("Page not found", "The page you are looking for does not exist.")
}

// ServerError is the 5xx page.
func ServerError() templ.Component {
	return errorPage("Something went wrong", "Please try again in a moment.")
}

func errorPage(title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="robots" content="noindex, nofollow"><title>`)
		h.text(title)
		h.raw("</title></head><body><main><h1>")
		h.text(title)
		h.raw("</h1><p>")
		h.text(message)
		h.raw(`</p><p><a href="/">Back to home</a></p></main></body></html>`)
		return h.err
	})
}
