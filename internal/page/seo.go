// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

type offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

type softwareApplication struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	URL                 string `json:"url,omitempty"`
	ApplicationCategory string `json:"applicationCategory"`
	OperatingSystem     string `json:"operatingSystem"`
	Offers              offer  `json:"offers"`
	FeatureList         string `json:"featureList"`
}

// JSONLD returns the schema.org SoftwareApplication description of the tool.
func JSONLD(c Content) ([]byte, error) {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name+" conversion")
	}
	doc := softwareApplication{
		Context:             "https://schema.org",
		Type:                "SoftwareApplication",
		Name:                c.Meta.SiteName,
		URL:                 c.Meta.CanonicalURL,
		ApplicationCategory: "DeveloperApplication",
		OperatingSystem:     "Any",
		Offers:              offer{Type: "Offer", Price: "0", PriceCurrency: "USD"},
		FeatureList:         strings.Join(names, ", "),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON-LD: %w", err)
	}
	return data, nil
}

// RobotsTxt allows all crawlers and points them at the sitemap.
func RobotsTxt(siteURL string) string {
	siteURL = strings.TrimRight(siteURL, "/")
	return "User-agent: *\nAllow: /\n\nSitemap: " + siteURL + "/sitemap.xml\n"
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap returns a sitemap listing the single page.
func Sitemap(siteURL string) ([]byte, error) {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: strings.TrimRight(siteURL, "/") + "/", ChangeFreq: "monthly", Priority: "1.0"},
		},
	}
	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}
