package controllers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"nellis/internal/models"
	"nellis/internal/providers"
	"nellis/internal/services"
	"nellis/internal/structures"
)

// Renderer turns page views into console output. Rendered tables are cached
// by page, collection version and query, so any mutation invalidates them.
type Renderer struct {
	cache  providers.CacheProviderInterface
	logger providers.Logger
	json   bool
}

func NewRenderer(conf *structures.Config, cache providers.CacheProviderInterface, logger providers.Logger) *Renderer {
	return &Renderer{cache: cache, logger: logger, json: conf.JSON}
}

type tableJSON struct {
	Page    string     `json:"page"`
	Query   string     `json:"query,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (r *Renderer) format() string {
	if r.json {
		return "json"
	}
	return "table"
}

func (r *Renderer) serveFromCacheOrCompute(w io.Writer, cacheKey string, compute func() ([]byte, error)) error {
	if cacheKey != "" {
		if data, ok := r.cache.Get(cacheKey); ok {
			_, err := w.Write(data)
			return err
		}
	}

	data, err := compute()
	if err != nil {
		return err
	}
	if cacheKey != "" {
		r.cache.Set(cacheKey, data)
	}
	_, err = w.Write(data)
	return err
}

// RenderView writes the view as a table, or as JSON in JSON mode.
func RenderView[T models.Record](r *Renderer, w io.Writer, view services.PageView[T]) error {
	key := ""
	if !view.Volatile {
		key = providers.RenderCacheKey(r.format(), view.Page, view.Version, view.Query)
	}

	headers := make([]string, len(view.Columns))
	for i, col := range view.Columns {
		headers[i] = col.Header
	}

	return r.serveFromCacheOrCompute(w, key, func() ([]byte, error) {
		r.logger.Debugf(providers.TypeQuery, "render %s query=%q rows=%d", view.Page, view.Query, len(view.Cells))
		if r.json {
			return marshalLine(tableJSON{Page: view.Page, Query: view.Query, Columns: headers, Rows: view.Cells})
		}
		var buf bytes.Buffer
		if err := writeTable(&buf, headers, view.Cells); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%d %s\n", len(view.Cells), plural(len(view.Cells), "record", "records"))
		return buf.Bytes(), nil
	})
}

// RenderFields writes one record's fields as aligned name/value lines.
func (r *Renderer) RenderFields(w io.Writer, fields []services.FieldValue) error {
	if r.json {
		return r.writeJSON(w, fields)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Name, f.Value)
	}
	return tw.Flush()
}

// RenderCounts writes value counts sorted by value.
func (r *Renderer) RenderCounts(w io.Writer, field string, counts map[string]int) error {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if r.json {
		return r.writeJSON(w, counts)
	}
	rows := make([][]string, len(keys))
	for i, k := range keys {
		label := k
		if label == "" {
			label = "(empty)"
		}
		rows[i] = []string{label, fmt.Sprint(counts[k])}
	}
	return writeTable(w, []string{field, "Count"}, rows)
}

func (r *Renderer) writeJSON(w io.Writer, v any) error {
	data, err := marshalLine(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func marshalLine(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
