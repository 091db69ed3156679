package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var (
	identRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	operatorRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\[(gt|gte|lt|lte)\]$`)

	sqlOperators = map[string]string{
		"gt":  ">",
		"gte": ">=",
		"lt":  "<",
		"lte": "<=",
	}
)

// reserved keys never become filters
var reservedKeys = map[string]bool{
	"sort":   true,
	"fields": true,
	"page":   true,
	"limit":  true,
}

type FilterClause struct {
	Column   string
	Operator string
	Value    string
}

type SortField struct {
	Column string
	Desc   bool
}

// QuerySpec is the structured form of a list query string. It is built once
// per request and applied to a gorm query just before execution.
type QuerySpec struct {
	Filters []FilterClause
	Sort    []SortField
	Fields  []string
	Page    int
	Limit   int
}

func (s *QuerySpec) Offset() int {
	return (s.Page - 1) * s.Limit
}

// Apply chains the spec onto a gorm query. Filter columns are validated
// identifiers, so interpolating them is safe; values always bind.
func (s *QuerySpec) Apply(db *gorm.DB) *gorm.DB {
	q := db
	for _, f := range s.Filters {
		q = q.Where(fmt.Sprintf("%s %s ?", f.Column, f.Operator), f.Value)
	}
	if len(s.Fields) > 0 {
		q = q.Select(s.Fields)
	}
	for _, o := range s.Sort {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		q = q.Order(fmt.Sprintf("%s %s", o.Column, dir))
	}
	return q.Limit(s.Limit).Offset(s.Offset())
}

// ApiFeatures refines a collection read through four chainable steps:
// Filter, Sort, Projection, Pagination. One instance serves one request.
type ApiFeatures struct {
	db     *gorm.DB
	params map[string]string
	spec   QuerySpec
	err    error
}

func NewApiFeatures(db *gorm.DB, params map[string]string) *ApiFeatures {
	return &ApiFeatures{
		db:     db,
		params: params,
		spec:   QuerySpec{Page: DefaultPage, Limit: DefaultLimit},
	}
}

// Filter turns every non-reserved key into a where clause. Keys may carry a
// comparison suffix (duration[gte]=120); everything else is an equality
// match. Keys are not checked against the schema, unknown columns surface as
// query errors at execution time.
func (f *ApiFeatures) Filter() *ApiFeatures {
	for key, value := range f.params {
		if reservedKeys[key] {
			continue
		}

		if m := operatorRe.FindStringSubmatch(key); m != nil {
			f.spec.Filters = append(f.spec.Filters, FilterClause{
				Column:   ToSnakeCase(m[1]),
				Operator: sqlOperators[m[2]],
				Value:    value,
			})
			continue
		}

		if !identRe.MatchString(key) {
			if f.err == nil {
				f.err = BadRequest(fmt.Sprintf("malformed filter key %q", key))
			}
			continue
		}

		f.spec.Filters = append(f.spec.Filters, FilterClause{
			Column:   ToSnakeCase(key),
			Operator: "=",
			Value:    value,
		})
	}
	return f
}

// Sort reads a comma separated field list, each optionally prefixed with "-"
// for descending. Without a sort parameter records come back newest first.
func (f *ApiFeatures) Sort() *ApiFeatures {
	raw := f.params["sort"]
	if raw == "" {
		f.spec.Sort = []SortField{{Column: "created_at", Desc: true}}
		return f
	}

	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		desc := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")
		if !identRe.MatchString(field) {
			if f.err == nil {
				f.err = BadRequest(fmt.Sprintf("malformed sort field %q", field))
			}
			continue
		}
		f.spec.Sort = append(f.spec.Sort, SortField{Column: ToSnakeCase(field), Desc: desc})
	}
	return f
}

// Projection reads the fields allow-list. Absent, the query selects every
// column; there is no hidden meta field to strip on this storage engine.
func (f *ApiFeatures) Projection() *ApiFeatures {
	raw := f.params["fields"]
	if raw == "" {
		return f
	}

	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if !identRe.MatchString(field) {
			if f.err == nil {
				f.err = BadRequest(fmt.Sprintf("malformed projection field %q", field))
			}
			continue
		}
		f.spec.Fields = append(f.spec.Fields, ToSnakeCase(field))
	}
	return f
}

// Pagination reads page and limit. Anything non numeric or below 1 silently
// falls back to the defaults, it never errors.
func (f *ApiFeatures) Pagination() *ApiFeatures {
	if page, err := strconv.Atoi(f.params["page"]); err == nil && page >= 1 {
		f.spec.Page = page
	}
	if limit, err := strconv.Atoi(f.params["limit"]); err == nil && limit >= 1 {
		f.spec.Limit = limit
	}
	return f
}

// Spec exposes the built query spec, mainly for inspection.
func (f *ApiFeatures) Spec() QuerySpec {
	return f.spec
}

// Query applies the built spec to the underlying collection read. A malformed
// filter, sort or projection key surfaces here as a client error.
func (f *ApiFeatures) Query() (*gorm.DB, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.spec.Apply(f.db), nil
}

// ToSnakeCase maps the camelCase keys the front end sends onto column names.
func ToSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
