package note

import (
	"bytes"
	"text/template"

	"github.com/frizinak/gohan/dict"
	"github.com/frizinak/gohan/hsk"
)

const wordTpl = `{{ tag .Level }}

**{{ .Pinyin }}**

{{ .Gloss }}
{{ if gt (len .Glosses) 1 }}
## Meanings

{{ range .Glosses }}- {{ . }}
{{ end }}{{ end -}}
{{ if gt (len .Symbols) 1 }}
## Components

{{ range .Symbols }}- [[{{ link . }}]]{{ with anno . }} {{ . }}{{ end }}
{{ end }}{{ end -}}`

const symbolTpl = `{{ range $i, $l := .Levels }}{{ if $i }} {{ end }}{{ tag $l }}{{ end }}

**{{ .Symbol }}** has no standalone entry in the loaded word set; it only appears as a component.
{{ if .Glosses }}
## Meanings in context

{{ range .Glosses }}- {{ . }}
{{ end }}{{ end -}}
{{ if .Compounds }}
## Used in

{{ range .Compounds }}- [[{{ wordnote . }}]]
{{ end }}{{ end -}}`

// Renderer turns words and symbols into note bodies. Rendering never
// fails: missing glosses simply render no block.
type Renderer struct {
	word   *template.Template
	symbol *template.Template
}

func New(d *dict.Dict) *Renderer {
	funcs := template.FuncMap{
		"tag":  func(l hsk.Level) string { return l.Tag() },
		"link": d.Resolve,
		"anno": func(sym string) string {
			si, ok := d.Symbol(sym)
			if !ok {
				return ""
			}
			if si.Standalone {
				return "(word)"
			}
			return "(component)"
		},
		"wordnote": d.NoteFor,
	}

	return &Renderer{
		word:   template.Must(template.New("word").Funcs(funcs).Parse(wordTpl)),
		symbol: template.Must(template.New("symbol").Funcs(funcs).Parse(symbolTpl)),
	}
}

func (r *Renderer) Word(w *hsk.Word) string {
	var buf bytes.Buffer
	_ = r.word.Execute(&buf, w)
	return buf.String()
}

// Symbol renders the placeholder note for a non-standalone symbol,
// carrying its aggregated glosses, level tags and the words using it.
func (r *Renderer) Symbol(si *dict.SymbolInfo) string {
	var buf bytes.Buffer
	_ = r.symbol.Execute(&buf, si)
	return buf.String()
}
