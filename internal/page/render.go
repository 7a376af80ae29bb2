// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns Content into the HTML document.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewRenderer parses the page template and configures the Markdown
// converter used for FAQ answers.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return &Renderer{tmpl: tmpl, md: md}, nil
}

type faqView struct {
	Question string
	Answer   template.HTML
}

type pageData struct {
	Content
	Keywords string
	JSONLD   template.JS
	FAQ      []faqView
}

// Render writes the full page for c to w.
func (r *Renderer) Render(w io.Writer, c Content) error {
	ld, err := JSONLD(c)
	if err != nil {
		return err
	}

	faq := make([]faqView, 0, len(c.FAQ))
	for _, item := range c.FAQ {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(item.Answer), &buf); err != nil {
			return fmt.Errorf("converting FAQ answer %q: %w", item.Question, err)
		}
		// Answers are page-owned Markdown; goldmark drops raw HTML without WithUnsafe.
		faq = append(faq, faqView{Question: item.Question, Answer: template.HTML(buf.String())})
	}

	data := pageData{
		Content:  c,
		Keywords: strings.Join(c.Meta.Keywords, ", "),
		JSONLD:   template.JS(ld),
		FAQ:      faq,
	}
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
