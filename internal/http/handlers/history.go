package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"earn-recycle-engine/internal/config"
	"earn-recycle-engine/internal/history"
	"earn-recycle-engine/internal/httpapi"
)

type pageLink struct {
	N       int
	Href    string
	Current bool
}

type historyPage struct {
	View    history.View
	Options []history.StatusOption
	Pages   []pageLink
	Prev    string
	Next    string
}

var historyTmpl = template.Must(template.New("history").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Recycling History</title></head>
<body>
<h1>Recycling History</h1>
<form method="get" action="/view/history">
  <input type="search" name="q" value="{{.View.Search}}" placeholder="Search by name, category or ID">
  <select name="status">
  {{- range .Options}}
    <option value="{{.Value}}"{{if eq .Value $.View.Status}} selected{{end}}>{{.Label}} ({{.Count}})</option>
  {{- end}}
  </select>
  <button type="submit">Filter</button>
</form>
{{- with .View.Empty}}
<div class="empty">
  <p class="empty-title">{{.Title}}</p>
  <p class="empty-hint">{{.Hint}}</p>
</div>
{{- else}}
<table class="history">
  <thead><tr><th>Request</th><th>Status</th><th>Submitted</th><th>Collected</th><th>Weight</th><th>Earnings</th></tr></thead>
  <tbody>
  {{- range .View.Rows}}
    <tr data-id="{{.ID}}">
      <td class="request"><span class="name">{{.RequestName}}</span> <span class="id">{{.ID}}</span> <span class="category">{{.Category}}</span></td>
      <td class="status"><span class="{{.StatusDisplay.Color}} {{.StatusDisplay.Bg}}">{{.StatusDisplay.Icon}} {{.StatusDisplay.Label}}</span>
        {{- with .FailureReason}} <span class="failure">{{.}}</span>{{end}}</td>
      <td class="submitted">{{.SubmittedDisplay}} <small>{{.SubmittedAgo}}</small></td>
      <td class="collected">{{.CollectedDisplay}}{{with .CollectedAgo}} <small>{{.}}</small>{{end}}</td>
      <td class="weight">{{.Weight}}</td>
      <td class="earnings">{{.Earnings}}</td>
    </tr>
  {{- end}}
  </tbody>
</table>
{{- end}}
{{- if .View.ShowPager}}
<nav class="pager">
  <p class="summary">Showing {{.View.ShowingFrom}} to {{.View.ShowingTo}} of {{.View.TotalCount}} results</p>
  {{- if .Prev}}<a class="prev" href="{{.Prev}}">Previous</a>{{end}}
  {{- range .Pages}}
  <a class="page{{if .Current}} current{{end}}" href="{{.Href}}">{{.N}}</a>
  {{- end}}
  {{- if .Next}}<a class="next" href="{{.Next}}">Next</a>{{end}}
  <p class="page-of">Page {{.View.Page}} of {{.View.DisplayPages}}</p>
</nav>
{{- else if .View.ShowingAll}}
<p class="summary">Showing all {{.View.TotalCount}} results</p>
{{- end}}
</body>
</html>
`))

// History serves GET /view/history with the same query parameters as the
// JSON endpoint.
func (h Handlers) History(w http.ResponseWriter, r *http.Request) {
	cfg, _ := h.CfgVal.Load().(config.Config)

	q, err := httpapi.ParseHistoryQuery(r, cfg.History.PageSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.Catalog.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	p := history.Presenter{Labels: cfg.Labels}
	view := p.BuildView(q, history.FilterAndPaginate(snap.Requests, q), h.now())
	page := historyPage{
		View:    view,
		Options: p.StatusOptions(snap.Requests),
	}
	for _, n := range view.PageWindow {
		page.Pages = append(page.Pages, pageLink{N: n, Href: pageHref(q, n), Current: n == view.Page})
	}
	if view.Page > 1 {
		page.Prev = pageHref(q, view.Page-1)
	}
	if view.Page < view.TotalPages {
		page.Next = pageHref(q, view.Page+1)
	}

	var buf bytes.Buffer
	if err := historyTmpl.Execute(&buf, page); err != nil {
		log.Printf("[view] history render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func pageHref(q history.Query, n int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Status != "" && q.Status != history.FilterAll {
		v.Set("status", string(q.Status))
	}
	v.Set("page", strconv.Itoa(n))
	return "/view/history?" + v.Encode()
}
