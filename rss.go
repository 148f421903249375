package brochure

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/eringen/brochure/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

func (a *App) renderRSS(c echo.Context, resources []content.Resource) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(resources))
	var latest time.Time
	for _, r := range resources {
		link := BuildURL(base, "resources", r.Slug)
		items = append(items, rssItem{
			Title:       r.Title,
			Link:        link,
			Description: r.Description,
			Author:      r.Author,
			Categories:  r.Tags,
			PubDate:     r.Published.Format(time.RFC1123Z),
			GUID:        link,
		})
		if r.Modified.After(latest) {
			latest = r.Modified
		}
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        BuildURL(base),
			Description: a.Config.Description,
			Language:    languageTag(a.Config.Locale),
			Items:       items,
		},
	}
	if !latest.IsZero() {
		feed.Channel.LastBuildDate = latest.Format(time.RFC1123Z)
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}

// languageTag turns an og:locale like "en_US" into the RSS form "en-us".
// An unparsable locale yields "" so the element is omitted.
func languageTag(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	return strings.ToLower(tag.String())
}
