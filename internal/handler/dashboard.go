package handler

import (
	"html/template"

	"requestprofiler/internal/profiler"
)

type dashboardRow struct {
	Timestamp   string
	RequestPath string
	HTTPMethod  string
	StatusCode  int
	TotalTimeMs string
	CPUTimeMs   string
}

type dashboardData struct {
	Rows []dashboardRow
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Request Profiler Dashboard</title>
<style>
body { font-family: sans-serif; background-color: #f3f4f6; color: #374151; }
.container { max-width: 90%; margin: 2rem auto; padding: 1.5rem; background-color: #ffffff; border-radius: 0.75rem; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); }
h1 { color: #1f2937; }
table { width: 100%; border-collapse: collapse; margin-top: 1.5rem; }
th, td { padding: 0.75rem; border: 1px solid #e5e7eb; text-align: left; }
th { background-color: #f9fafb; color: #4b5563; }
tr:nth-child(even) { background-color: #f3f4f6; }
.message { text-align: center; color: #6b7280; }
.actions a { color: white; padding: 0.5rem 1rem; border-radius: 0.5rem; text-decoration: none; display: inline-block; margin-top: 1rem; margin-right: 0.5rem; }
.clear { background-color: #dc2626; }
.export { background-color: #10b981; }
</style>
</head>
<body>
<div class="container">
<h1>Request Profiler Dashboard</h1>
{{if .Rows}}<table>
<tr><th>Timestamp</th><th>RequestPath</th><th>HTTPMethod</th><th>StatusCode</th><th>TotalTimeMs</th><th>CPUTimeMs</th></tr>
{{range .Rows}}<tr><td>{{.Timestamp}}</td><td>{{.RequestPath}}</td><td>{{.HTTPMethod}}</td><td>{{.StatusCode}}</td><td>{{.TotalTimeMs}}</td><td>{{.CPUTimeMs}}</td></tr>
{{end}}</table>
{{else}}<p class="message">No profiling data collected yet. Make some requests with ?profile=true or set PROFILER_ENABLED=true.</p>
{{end}}<div class="actions">
<a class="clear" href="/profiler/clear">Clear Data</a>
<a class="export" href="/profiler/metrics.csv">Export to CSV</a>
</div>
</div>
</body>
</html>
`))

func dashboardRows(entries []profiler.Entry) []dashboardRow {
	rows := make([]dashboardRow, len(entries))
	for i, e := range entries {
		rows[i] = dashboardRow{
			Timestamp:   e.Timestamp.Format(profiler.TimestampLayout),
			RequestPath: e.Path,
			HTTPMethod:  e.Method,
			StatusCode:  e.StatusCode,
			TotalTimeMs: formatMillis(e.TotalTimeMs),
			CPUTimeMs:   formatMillis(e.CPUTimeMs),
		}
	}
	return rows
}
