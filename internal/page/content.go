// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package page renders the single-page converter: header, the four base
// fields, feature list, FAQ, footer, and the SEO metadata around them.
package page

import (
	"strings"

	"github.com/pdiddy/base-converter/pkg/types"
)

// Metadata is the document head: title, description, social cards and
// crawler hints.
type Metadata struct {
	Title        string
	Description  string
	Keywords     []string
	Author       string
	CanonicalURL string
	SiteName     string
	Locale       string
	Robots       string

	OGTitle       string
	OGDescription string
	OGImage       string

	TwitterCard        string
	TwitterTitle       string
	TwitterDescription string
}

// Feature is one card in the feature grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// FAQItem is a question with a Markdown answer.
type FAQItem struct {
	Question string
	Answer   string
}

// Field is one input row of the converter.
type Field struct {
	Base        types.Base
	Name        string
	Prefix      string
	Placeholder string
}

// Content is everything the page shows.
type Content struct {
	Meta      Metadata
	Heading   string
	Tagline   string
	Intro     string
	Fields    []Field
	Features  []Feature
	FAQ       []FAQItem
	Publisher string
	Copyright string
}

// DefaultContent returns the stock page copy with canonical links rooted at
// siteURL.
func DefaultContent(siteURL string) Content {
	siteURL = strings.TrimRight(siteURL, "/")
	desc := "Convert numbers between binary, decimal, hexadecimal, and octal."

	fields := make([]Field, 0, len(types.Bases))
	for _, b := range types.Bases {
		fields = append(fields, Field{
			Base:        b,
			Name:        b.Name(),
			Prefix:      b.Prefix(),
			Placeholder: "Enter " + strings.ToLower(b.Name()) + " number...",
		})
	}

	return Content{
		Meta: Metadata{
			Title:       "Number Base Converter | Binary, Decimal, Hex | Free Tool",
			Description: "Convert numbers between binary, decimal, hexadecimal, and octal bases. Free online base converter for programmers.",
			Keywords: []string{
				"base converter", "binary converter", "decimal to hex",
				"hex to decimal", "octal converter", "number base",
			},
			Author:             "SmartOK Tools",
			CanonicalURL:       siteURL,
			SiteName:           "Base Converter",
			Locale:             "en_US",
			Robots:             "index, follow",
			OGTitle:            "Number Base Converter | Binary, Decimal, Hex",
			OGDescription:      desc,
			OGImage:            siteURL + "/og-image.svg",
			TwitterCard:        "summary_large_image",
			TwitterTitle:       "Base Converter",
			TwitterDescription: desc,
		},
		Heading: "Number Base Converter",
		Tagline: "Binary · Octal · Decimal · Hex",
		Intro:   "Convert between binary, decimal, hexadecimal, and octal number systems instantly. Essential tool for programmers and students.",
		Fields:  fields,
		Features: []Feature{
			{Icon: "🔢", Title: "Multiple Bases", Description: "Convert between binary, octal, decimal, and hexadecimal instantly."},
			{Icon: "⚡", Title: "Real-time", Description: "See conversions update as you type. No button clicks needed."},
			{Icon: "📋", Title: "Easy Copy", Description: "Copy any base value with one click, including prefixes."},
			{Icon: "🎯", Title: "Visual Feedback", Description: "Highlighted field shows which base you are currently editing."},
			{Icon: "💻", Title: "Programmer Friendly", Description: "Perfect for debugging, learning, and quick conversions."},
			{Icon: "💯", Title: "Free Forever", Description: "No registration, no limits. Completely free."},
		},
		FAQ: []FAQItem{
			{
				Question: "What number bases are supported?",
				Answer:   "We support **binary** (base 2), **octal** (base 8), **decimal** (base 10), and **hexadecimal** (base 16).",
			},
			{
				Question: "Is this tool free?",
				Answer:   "Yes, completely free. No registration required.",
			},
			{
				Question: "Do I need to click a convert button?",
				Answer:   "No! Just type in any field and all other bases update automatically in real-time.",
			},
			{
				Question: "Which inputs are accepted?",
				Answer: "Whole numbers up to `9007199254740991` in either direction. A leading `-` keeps the sign in every base, " +
					"and each field accepts its own prefix (`0b`, `0o`, `0x`). Anything else clears the fields.",
			},
		},
		Publisher: "SmartOK Tools",
		Copyright: "© 2024 SmartOK Tools. Free online tools.",
	}
}
