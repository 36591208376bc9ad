package server

import (
	"fmt"
	"html/template"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

var templateFuncs = template.FuncMap{
	"count": models.FormatCount,
	"percent": func(f float64) string {
		return fmt.Sprintf("%.1f%%", f*100)
	},
}

const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Video Insight</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
pre { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; }
.error { color: #a00; }
label { display: block; margin-top: .75rem; }
</style>
</head>
<body>
<h1>🎬 Video Insight</h1>
{{end}}

{{define "foot"}}</body>
</html>
{{end}}

{{define "form"}}{{template "head"}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/analyze">
<label>Video URL <input type="text" name="url" size="60" required value="{{.Form.URL}}"></label>
<label>Audio language
<select name="source">
<option value="auto">Auto-detect</option>
{{range .Languages}}<option value="{{.}}"{{if eq (print .) $.Form.Source}} selected{{end}}>{{.Name}}</option>{{end}}
</select></label>
<label>Output language
<select name="target">
<option value="original">Same as audio</option>
{{range .Languages}}<option value="{{.}}"{{if eq (print .) $.Form.Target}} selected{{end}}>{{.Name}}</option>{{end}}
</select></label>
<label>Summary style
<select name="style">
{{range .Styles}}<option value="{{.}}"{{if eq (print .) $.Form.Style}} selected{{end}}>{{.Label}}</option>{{end}}
</select></label>
<p><button type="submit">Analyze</button></p>
</form>
{{template "foot"}}{{end}}

{{define "result"}}{{template "head"}}
{{with .Run}}
<h2>📺 {{.Metadata.Title}}</h2>
<p><strong>Channel:</strong> {{.Metadata.Author}} &middot;
<strong>Duration:</strong> {{.Metadata.DurationFormatted}} &middot;
<strong>Views:</strong> {{count .Metadata.Views}}</p>

<h3>🌐 Language Settings</h3>
<p><strong>Audio:</strong> {{if .Directive.Source.IsSet}}{{.Directive.Source.Name}}{{else}}Auto-detected{{end}} &middot;
<strong>Output:</strong> {{if .Directive.Target.IsSet}}{{.Directive.Target.Name}}{{else}}Same as audio{{end}}</p>

<h3>📋 Summary ({{.Summary.Style.Label}}, {{percent .Summary.CompressionRatio}})</h3>
<pre>{{.Summary.Summary}}</pre>

{{with .Analysis}}<h3>🔍 Analysis</h3>
<pre>{{.Analysis}}</pre>{{end}}

<h3>📝 Transcript</h3>
<pre>{{.Transcript.Text}}</pre>

<p>Report saved to <code>{{.Outputs.Report}}</code></p>
{{end}}
<p><a href="/">Analyze another video</a></p>
{{template "foot"}}{{end}}
`
