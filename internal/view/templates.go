package view

const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Header.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<header>
<h1 id="app-title">{{.Header.Title}}</h1>
{{- if .Header.Description}}
<p id="app-description">{{.Header.Description}}</p>
{{- end}}
{{- if .Header.Disclaimer}}
<p id="disclaimer">{{.Header.Disclaimer}}</p>
{{- end}}
</header>
<div class="layout">
<nav id="nav">
{{- if .Parts}}
<ul class="nav-parts">
{{- range .Parts}}
<li class="nav-part{{if .Selected}} selected{{end}}"><a href="{{.Href}}">{{.Title}}</a></li>
{{- end}}
</ul>
{{- end}}
{{- if .SectionsOpen}}
<div id="nav-sections">
<h3>{{.PartTitle}}</h3>
<ul class="nav-sections">
{{- range .Sections}}
{{- if .Disabled}}
<li class="nav-section disabled">{{.Title}}</li>
{{- else}}
<li class="nav-section{{if .Selected}} selected{{end}}"><a href="{{.Href}}">{{.Title}}</a></li>
{{- end}}
{{- end}}
</ul>
</div>
{{- end}}
</nav>
<main id="content">
{{- range .Content}}
{{- if .IsHeading}}
{{- if eq .Level 1}}
<h1>{{.Text}}</h1>
{{- else if eq .Level 2}}
<h2>{{.Text}}</h2>
{{- else if eq .Level 3}}
<h3>{{.Text}}</h3>
{{- else}}
<h4>{{.Text}}</h4>
{{- end}}
{{- else if .IsParagraph}}
<p{{if .Muted}} class="muted"{{end}}>{{.Text}}</p>
{{- else if .IsSummary}}
<div class="summary">{{.Text}}</div>
{{- else if .IsNote}}
<div class="note">{{.Text}}</div>
{{- else if .IsError}}
<div class="note error">{{.Text}}</div>
{{- else if .IsMeta}}
<p class="meta">{{.Text}}</p>
{{- else if .IsBack}}
<p class="back"><a href="{{.BackHref}}">{{.Text}}</a></p>
{{- end}}
{{- end}}
</main>
</div>
{{- if .Location}}
<script>history.replaceState(null, "", {{.Location}});</script>
{{- end}}
</body>
</html>
`

const pageCSS = `
body { margin: 0; font-family: system-ui, sans-serif; color: #111827; line-height: 1.6; }
header { padding: 1rem 1.5rem; border-bottom: 1px solid #e5e7eb; background: #f9fafb; }
header h1 { margin: 0; font-size: 1.4rem; }
#disclaimer { color: #555; font-size: 0.85rem; }
.layout { display: flex; }
#nav { width: 18rem; padding: 1rem; border-right: 1px solid #e5e7eb; }
#nav ul { list-style: none; padding: 0; margin: 0 0 1rem; }
#nav li { padding: 0.25rem 0.5rem; border-radius: 4px; }
#nav li a { color: inherit; text-decoration: none; display: block; }
#nav li.selected { background: #e0e7ff; }
#nav li.disabled { color: #9ca3af; cursor: default; }
#content { flex: 1; padding: 1rem 2rem; max-width: 60rem; }
.summary { margin: 0.5rem 0; }
.note, .muted { color: #555; }
.note { font-size: 0.9rem; margin: 0.5rem 0; }
.error { color: #b91c1c; }
.meta { color: #6b7280; }
.back a { color: #2563eb; cursor: pointer; text-decoration: none; }
`
