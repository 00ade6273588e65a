package server

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/storage"
	"go.uber.org/zap"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Sitemap lists the landing pages and one page per catalog entry. When the catalog cannot be
// read only the site root is listed.
func (s Server) Sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		base := strings.TrimSuffix(s.config.PublicURL, "/")
		now := s.now().UTC().Format(time.RFC3339)

		set := urlSet{
			Xmlns: sitemapNamespace,
			URLs:  []sitemapURL{{Loc: base, LastMod: now, ChangeFreq: "daily", Priority: 1}},
		}

		list, err := s.catalog.List(r.Context(), storage.ListFilter{})
		if err != nil {
			log.Error("failed to list content for sitemap", zap.Error(err))
		} else {
			set.URLs = append(set.URLs,
				sitemapURL{Loc: base + "/?type=movie", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
				sitemapURL{Loc: base + "/?type=series", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
			)
			for _, c := range list {
				set.URLs = append(set.URLs, sitemapURL{
					Loc:        base + "/" + string(c.Type) + "/" + c.ID,
					LastMod:    c.UpdatedAt.UTC().Format(time.RFC3339),
					ChangeFreq: "weekly",
					Priority:   0.8,
				})
			}
		}

		b, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			log.Error("failed to encode sitemap", zap.Error(err))
			http.Error(w, "failed to encode sitemap", http.StatusInternalServerError)
			return
		}

		w.Header().Set("content-type", "application/xml")
		w.Write([]byte(xml.Header))
		w.Write(b)
	}
}
