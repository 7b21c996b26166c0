// ABOUTME: Metadata scraping fallback for pages where readability finds no image or site name
// ABOUTME: Uses colly to read Open Graph and standard meta tags

package extract

import (
	"time"

	"readstash-api/core/domain"
	"readstash-api/pkg/utils/timeutil"

	"github.com/gocolly/colly"
)

const (
	scrapeUserAgent = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
	scrapeTimeout   = 10 * time.Second
	scrapeMaxBody   = 5 * 1024 * 1024
)

// scrapeMetadata fills missing article metadata from the page's meta tags.
// Scrape failures leave the article unchanged.
func (s *Service) scrapeMetadata(targetURL string, article *domain.Article) {
	c := colly.NewCollector(
		colly.UserAgent(scrapeUserAgent),
		colly.MaxBodySize(scrapeMaxBody),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(scrapeTimeout)

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		property := e.Attr("property")
		name := e.Attr("name")
		value := e.Attr("content")

		if value == "" {
			return
		}

		switch property {
		case "og:image":
			if article.Image == "" {
				article.Image = value
			}
		case "og:site_name":
			if article.SiteName == "" {
				article.SiteName = value
			}
		case "article:published_time":
			if article.PublishedAt == nil {
				if published := timeutil.ParseFlexibleTime(value); !published.IsZero() {
					article.PublishedAt = &published
				}
			}
		}

		if name == "twitter:image" && article.Image == "" {
			article.Image = value
		}
		if name == "author" && article.Author == "" {
			article.Author = value
		}
	})

	if err := c.Visit(targetURL); err != nil {
		s.logError("Metadata scrape failed", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return
	}

	c.Wait()
}
