package router

import (
	"fmt"
	"strings"

	"movie_ticket_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// The engine replaces the decorator metadata the old stack scanned at class
// definition time. Handlers declare method, path, required body fields,
// required path params and their middleware next to each other; Compile turns
// every declaration into one flat, immutable route table entry at startup.
//
// Chain order per route, fixed: required-param check, required-body check,
// declared middleware in declaration order, handler. Use() appends, so a
// route declaring Protected() before AccessAllowedTo() runs them in exactly
// that order.

type Route struct {
	method      string
	path        string
	bodyFields  []string
	paramNames  []string
	middlewares []fiber.Handler
	handler     fiber.Handler
}

// Body marks request body fields that must be present and truthy before any
// declared middleware or the handler runs.
func (r *Route) Body(fields ...string) *Route {
	r.bodyFields = append(r.bodyFields, fields...)
	return r
}

// Params marks path parameters that must be non-empty.
func (r *Route) Params(names ...string) *Route {
	r.paramNames = append(r.paramNames, names...)
	return r
}

// Use appends pre-handler middleware. Declaration order is execution order.
func (r *Route) Use(mw ...fiber.Handler) *Route {
	r.middlewares = append(r.middlewares, mw...)
	return r
}

// Group collects routes mounted under a shared path prefix.
type Group struct {
	prefix string
	routes []*Route
}

func NewGroup(prefix string) *Group {
	return &Group{prefix: prefix}
}

func (g *Group) add(method, path string, handler fiber.Handler) *Route {
	r := &Route{method: method, path: path, handler: handler}
	g.routes = append(g.routes, r)
	return r
}

func (g *Group) Get(path string, h fiber.Handler) *Route    { return g.add(fiber.MethodGet, path, h) }
func (g *Group) Post(path string, h fiber.Handler) *Route   { return g.add(fiber.MethodPost, path, h) }
func (g *Group) Patch(path string, h fiber.Handler) *Route  { return g.add(fiber.MethodPatch, path, h) }
func (g *Group) Put(path string, h fiber.Handler) *Route    { return g.add(fiber.MethodPut, path, h) }
func (g *Group) Delete(path string, h fiber.Handler) *Route { return g.add(fiber.MethodDelete, path, h) }

// CompiledRoute is one mounted entry of the route table.
type CompiledRoute struct {
	Method string
	Path   string
	Chain  []fiber.Handler
}

// Table is the compiled route table. Built once at startup and read-only
// afterwards, so concurrent request handling needs no locking around it.
type Table struct {
	routes []CompiledRoute
}

var validMethods = map[string]bool{
	fiber.MethodGet:    true,
	fiber.MethodPost:   true,
	fiber.MethodPatch:  true,
	fiber.MethodPut:    true,
	fiber.MethodDelete: true,
}

// Compile reads every declaration back out and builds the route table. A
// route missing its method, path or handler is a configuration error, not a
// silent omission.
func Compile(groups ...*Group) (*Table, error) {
	table := &Table{}
	seen := map[string]bool{}

	for _, g := range groups {
		if !strings.HasPrefix(g.prefix, "/") {
			return nil, fmt.Errorf("router: group prefix %q must start with /", g.prefix)
		}
		for i, r := range g.routes {
			if r.method == "" || r.path == "" || r.handler == nil {
				return nil, fmt.Errorf("router: incomplete route %d in group %q (method %q, path %q)", i, g.prefix, r.method, r.path)
			}
			if !validMethods[r.method] {
				return nil, fmt.Errorf("router: unsupported method %q on %s%s", r.method, g.prefix, r.path)
			}
			if !strings.HasPrefix(r.path, "/") {
				return nil, fmt.Errorf("router: path %q in group %q must start with /", r.path, g.prefix)
			}

			fullPath := g.prefix + r.path
			if r.path == "/" {
				fullPath = g.prefix
			}
			key := r.method + " " + fullPath
			if seen[key] {
				return nil, fmt.Errorf("router: duplicate route %s", key)
			}
			seen[key] = true

			chain := make([]fiber.Handler, 0, len(r.middlewares)+3)
			if len(r.paramNames) > 0 {
				chain = append(chain, requireParams(r.paramNames))
			}
			if len(r.bodyFields) > 0 {
				chain = append(chain, requireBody(r.bodyFields))
			}
			chain = append(chain, r.middlewares...)
			chain = append(chain, r.handler)

			table.routes = append(table.routes, CompiledRoute{
				Method: r.method,
				Path:   fullPath,
				Chain:  chain,
			})
		}
	}
	return table, nil
}

// Mount registers the compiled table on the app.
func (t *Table) Mount(app *fiber.App) {
	for _, r := range t.routes {
		app.Add(r.Method, r.Path, r.Chain...)
	}
}

// Routes returns a copy of the table for inspection.
func (t *Table) Routes() []CompiledRoute {
	out := make([]CompiledRoute, len(t.routes))
	copy(out, t.routes)
	return out
}

func requireParams(names []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, name := range names {
			if c.Params(name) == "" {
				return utils.BadRequest(fmt.Sprintf("%s is required", name))
			}
		}
		return c.Next()
	}
}

func requireBody(fields []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := map[string]any{}
		if err := c.BodyParser(&body); err != nil {
			return utils.BadRequest("Invalid request")
		}
		for _, field := range fields {
			if isFalsy(body[field]) {
				return utils.BadRequest(fmt.Sprintf("%s is required", field))
			}
		}
		return c.Next()
	}
}

// isFalsy mirrors the presence semantics list endpoints always had: nil,
// false, zero and the empty string count as missing, an empty array does not
// (the struct validators deal with those).
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	}
	return false
}
