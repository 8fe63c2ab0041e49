// Package listquery implements the filter/sort/select/paginate middleware
// that runs ahead of public list handlers. It parses Mongo-style query
// parameters (averageCost[lte]=10000, careers[in]=Business, sort=-name,
// select=name,city, page/limit), executes the query through a caller-supplied
// run function, and stashes the finished {success,count,pagination,data}
// envelope in the request context. The list handler returns the envelope
// unmodified.
package listquery

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when the caller does not pass limit.
const DefaultLimit = 25

// MaxLimit bounds caller-supplied page sizes.
const MaxLimit = 100

// Reserved parameter names that never become filter fields.
var reserved = map[string]struct{}{
	"select": {}, "sort": {}, "page": {}, "limit": {},
}

// Params is the parsed query: a Mongo filter, sort document, projection,
// and the page window.
type Params struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.M
	Page       int
	Limit      int
}

// Skip returns the number of documents to skip for the requested page.
func (p Params) Skip() int64 { return int64((p.Page - 1) * p.Limit) }

// PageRef describes one page link in the pagination block.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries optional next/prev page links.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Envelope is the pre-shaped list response the middleware computes.
type Envelope struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	Pagination Pagination `json:"pagination"`
	Data       any        `json:"data"`
}

// RunFunc executes the parsed query and returns the page of results, the
// number of items in that page, and the total number of matching documents.
type RunFunc func(ctx context.Context, p Params) (data any, count int, total int64, err error)

type ctxKey string

const envelopeKey ctxKey = "listEnvelope"

// FromContext returns the envelope stored by the middleware.
func FromContext(ctx context.Context) (Envelope, bool) {
	env, ok := ctx.Value(envelopeKey).(Envelope)
	return env, ok
}

// Parse builds Params from the request's query string. fields maps public
// parameter names to stored field names (e.g. averageCost -> average_cost);
// unmapped names pass through unchanged.
func Parse(r *http.Request, fields map[string]string) Params {
	q := r.URL.Query()

	p := Params{
		Filter: bson.M{},
		Page:   1,
		Limit:  DefaultLimit,
	}

	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		p.Limit = n
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}

	if sel := q.Get("select"); sel != "" {
		p.Projection = bson.M{}
		for _, f := range strings.Split(sel, ",") {
			if f = strings.TrimSpace(f); f != "" {
				p.Projection[mapField(f, fields)] = 1
			}
		}
	}

	if sort := q.Get("sort"); sort != "" {
		for _, f := range strings.Split(sort, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			order := 1
			if strings.HasPrefix(f, "-") {
				order = -1
				f = f[1:]
			}
			p.Sort = append(p.Sort, bson.E{Key: mapField(f, fields), Value: order})
		}
	}
	if len(p.Sort) == 0 {
		p.Sort = bson.D{{Key: "created_at", Value: -1}}
	}

	for key, vals := range q {
		if len(vals) == 0 {
			continue
		}
		if _, skip := reserved[key]; skip {
			continue
		}
		field, op := splitOperator(key)
		field = mapField(field, fields)
		switch op {
		case "":
			p.Filter[field] = coerce(vals[0])
		case "in":
			var list []any
			for _, part := range strings.Split(vals[0], ",") {
				if part = strings.TrimSpace(part); part != "" {
					list = append(list, coerce(part))
				}
			}
			p.Filter[field] = bson.M{"$in": list}
		case "gt", "gte", "lt", "lte", "ne":
			merged, ok := p.Filter[field].(bson.M)
			if !ok {
				merged = bson.M{}
			}
			merged["$"+op] = coerce(vals[0])
			p.Filter[field] = merged
		}
	}

	return p
}

// splitOperator separates "field[op]" into its parts; op is "" for plain keys.
func splitOperator(key string) (field, op string) {
	open := strings.IndexByte(key, '[')
	if open < 0 || !strings.HasSuffix(key, "]") {
		return key, ""
	}
	return key[:open], key[open+1 : len(key)-1]
}

// coerce converts a query value to the most specific of bool, int, float64,
// falling back to the raw string.
func coerce(s string) any {
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func mapField(name string, fields map[string]string) string {
	if fields == nil {
		return name
	}
	if mapped, ok := fields[name]; ok {
		return mapped
	}
	return name
}

// paginate computes next/prev links for the page window.
func paginate(p Params, total int64) Pagination {
	var pg Pagination
	start := p.Skip()
	end := start + int64(p.Limit)
	if end < total {
		pg.Next = &PageRef{Page: p.Page + 1, Limit: p.Limit}
	}
	if start > 0 {
		pg.Prev = &PageRef{Page: p.Page - 1, Limit: p.Limit}
	}
	return pg
}

// Middleware parses the query, runs it, and stores the envelope in context.
// A query failure short-circuits with a 500; handlers downstream never see a
// partially built envelope.
func Middleware(log *zap.Logger, fields map[string]string, run RunFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := Parse(r, fields)

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
			defer cancel()

			data, count, total, err := run(ctx, p)
			if err != nil {
				log.Error("list query failed", zap.String("path", r.URL.Path), zap.Error(err))
				apierr.JSON(w, http.StatusInternalServerError, struct {
					Success bool   `json:"success"`
					Error   string `json:"error"`
				}{Success: false, Error: "server error"})
				return
			}

			env := Envelope{
				Success:    true,
				Count:      count,
				Pagination: paginate(p, total),
				Data:       data,
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), envelopeKey, env)))
		})
	}
}
