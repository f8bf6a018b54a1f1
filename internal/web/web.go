// Package web sirve las pantallas HTML: una tabla por módulo con el mismo filtro
// que la API y los links de export.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"dairy-records/internal/domain/dashboard"
	"dairy-records/internal/domain/records"
	"dairy-records/internal/platform/export"
	"dairy-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFiles embed.FS

// CountsFunc es dashboard.Service.Counts.
type CountsFunc func(ctx context.Context) (dashboard.Counts, error)

type Pages struct {
	sources []records.Source
	symbol  string
	counts  CountsFunc
	index   *template.Template
	table   *template.Template
}

func New(sources []records.Source, currencySymbol string, counts CountsFunc) (*Pages, error) {
	parse := func(page string) (*template.Template, error) {
		return template.ParseFS(templateFiles, "templates/"+page, "templates/layout.html")
	}
	index, err := parse("index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	table, err := parse("table.html")
	if err != nil {
		return nil, fmt.Errorf("parse table template: %w", err)
	}
	return &Pages{sources: sources, symbol: currencySymbol, counts: counts, index: index, table: table}, nil
}

func RegisterRoutes(r chi.Router, p *Pages) {
	r.Route("/ui", func(r chi.Router) {
		r.Get("/", p.indexPage)
		r.Get("/{resource}", p.tablePage)
	})
}

type navItem struct {
	Name  string
	Title string
}

type indexView struct {
	Title  string
	Nav    []navItem
	Counts *dashboard.Counts
}

// filterView repite en el form lo que vino en la query (tal cual, sin normalizar).
type filterView struct {
	Query  string
	From   string
	To     string
	Active string
	Status string
}

type tableView struct {
	Title   string
	Name    string
	Nav     []navItem
	Filter  filterView
	Headers []string
	Rows    [][]string

	query url.Values
}

// ExportURL: misma query de la página con format (y sin limit, el export es completo).
func (v tableView) ExportURL(format string) template.URL {
	q := url.Values{}
	for k, vs := range v.query {
		if k == "limit" || k == "format" {
			continue
		}
		q[k] = vs
	}
	q.Set("format", format)
	return template.URL("/" + url.PathEscape(v.Name) + "/export?" + q.Encode())
}

func (p *Pages) nav() []navItem {
	return lo.Map(p.sources, func(s records.Source, _ int) navItem {
		return navItem{Name: s.Name, Title: s.Title}
	})
}

func (p *Pages) indexPage(w http.ResponseWriter, r *http.Request) {
	view := indexView{Title: "Dairy records", Nav: p.nav()}
	if p.counts != nil {
		c, err := p.counts(r.Context())
		if err != nil {
			records.WriteError(w, r, err)
			return
		}
		view.Counts = &c
	}
	p.render(w, r, p.index, view)
}

func (p *Pages) tablePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")
	src, ok := lo.Find(p.sources, func(s records.Source) bool { return s.Name == name })
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := records.ParseListFilter(r)
	if err != nil {
		records.WriteError(w, r, err)
		return
	}
	t, err := src.Table(r.Context(), f)
	if err != nil {
		records.WriteError(w, r, err)
		return
	}

	qs := r.URL.Query()
	view := tableView{
		Title: src.Title,
		Name:  src.Name,
		Nav:   p.nav(),
		Filter: filterView{
			Query:  qs.Get("q"),
			From:   qs.Get("from"),
			To:     qs.Get("to"),
			Active: qs.Get("active"),
			Status: qs.Get("status"),
		},
		Headers: t.Headers(),
		Rows:    p.cells(t),
		query:   qs,
	}
	p.render(w, r, p.table, view)
}

func (p *Pages) cells(t export.Table) [][]string {
	return lo.Map(t.Rows, func(row []any, _ int) []string {
		out := make([]string, len(row))
		for i, v := range row {
			kind := export.KindText
			if i < len(t.Columns) {
				kind = t.Columns[i].Kind
			}
			out[i] = export.Display(v, kind, p.symbol)
		}
		return out
	})
}

// render ejecuta a un buffer para no mandar media página si el template falla.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, tmpl.Name(), data); err != nil {
		logger.FromContext(r.Context()).Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
