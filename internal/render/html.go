package render

import (
	"html/template"
	"strings"

	"wattplan-cloud/internal/slides"
)

var slideTemplate = template.Must(template.New("slide").Parse(`<section class="slide slide-{{.Type}}">
<h2>{{.Title}}</h2>
<dl>
{{- range .Fields}}
<dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{- end}}
</dl>
</section>`))

// SlideHTML renders one slide into a self-contained HTML fragment for the
// progress UI and the slideshow consumer.
func SlideHTML(slide slides.Slide) (string, error) {
	fields, err := SlideFields(slide.Content)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = slideTemplate.Execute(&b, struct {
		Type   slides.SlideType
		Title  string
		Fields []Field
	}{slide.SlideType, slide.Title, fields})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
