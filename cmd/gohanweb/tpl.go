package main

import (
	"html/template"

	"github.com/frizinak/gohan/data"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
)

func appJS() string {
	m := minify.New()
	m.AddFunc("application/javascript", js.Minify)
	out, err := m.String("application/javascript", data.AppJS)
	if err != nil {
		return data.AppJS
	}
	return out
}

const mainTplStr = `{{- define "word" -}}
<td class="smol hanzi"><a href="{{ absWord . }}">{{ .Form }}</a></td>
<td class="img-container">{{ if hasImg }}<a class="img" href="#"><img src="{{ absImg . }}"/></a>{{ end }}</td>
<td class="smol">{{ .Pinyin }}</td>
<td class="smol">#hsk{{ .Level }}</td>
<td>
<ul>
{{- range .Glosses -}}
<li>{{ . }}</li>
{{- end -}}
</ul>
</td>
<td class="smollish">
<a href="{{ absNote . }}">note</a>
<a class="copy" href="#" data-copy="{{ .Form }}">copy</a>
</td>
{{- end -}}

{{- define "header" -}}
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{ . }}</title>
	<style>
		*                { padding: 0; margin: 0; box-sizing: border-box; }
		html, body       { background-color: #151515; color: #fff; }
		main             { max-width: 1400px; width: 95%; margin: 20px auto 0 auto; }
		.hanzi a         { font-size: 2em; text-decoration: none; }
		.copy            { display: block; transition: color 500ms; }
		.copy.copied     { color: #afa; }
		.copy.error      { color: #faa; }
		.results table   { width: 100%; }
		.results         { margin-top: 40px; }
		td               { padding: 20px; width: 20%; }
		td.smol          { width: 5%; }
		td.smollish      { width: 10%; }
		td.img-container { text-align: center; }
		img              { height: 150px; width: auto; }
		a                { color: #ccc; text-decoration: underline; }
		form             { position: relative; }
		form input       { min-height: 2em; font-size: 2em; background-color: #333; color: #fff; outline: none; border: 1px solid #ccc; padding: 20px; width: 89%; }
		form .submit     { position: absolute; top: 0; right: 0; width: 10%; margin-left: 1%; }
	</style>
</head>
<body>
<main>
{{- end -}}

{{- define "footer" -}}
</main>
<script src="/asset/app.js"></script>
</body>
</html>
{{- end -}}

{{- define "results" -}}
{{ if .Words -}}
<table>
{{- range .Words }}
<tr>{{ template "word" . }}</tr>
{{ end -}}
</table>
{{ else -}}
No results
{{ end -}}
{{- end -}}

{{ template "header" "gohan" }}
<div class="input">
<form>
<input type="text"   class="val"    value="{{ .Query }}" />
<input type="submit" class="submit" value=">"            />
</form>
</div>
<div class="results">
{{ template "results" . }}
</div>
{{ template "footer" }}`

func (app *App) templates() {
	tpl := template.Must(template.New("words").Funcs(template.FuncMap{
		"absWord": absWord,
		"absNote": absNote,
		"absImg":  absImg,
		"hasImg":  func() bool { return len(app.conf.Font) != 0 },
	}).Parse(mainTplStr))

	app.wordsTpl = tpl

	app.homeTpl = template.Must(tpl.New("home").Parse(`
{{- template "header" . }}
<a href="/w/%E4%BD%A0%E5%A5%BD"><h1>你好</h1></a>
{{ template "footer" }}`))

	app.resultsTpl = template.Must(tpl.New("xhr").Parse(`
{{- template "results" . -}}
`))

	app.errTpl = template.Must(tpl.New("err").Parse(`
{{- template "header" "Error" }}
	{{ . }}
{{ template "footer" }}`))
}
