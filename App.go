package patrin

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"

	"github.com/patrin-io/patrin/consts"
	"github.com/patrin-io/patrin/core/rtr"
)

// App is the registration and dispatch surface over the router core.
//
// Lifecycle: register routes, call Build once, then dispatch. Registration
// after Build panics, and because no mutation occurs post-Build, concurrent
// Dispatch calls are safe without locking.
//
// The connection layer stays outside this package: whatever reads requests
// off the wire supplies (method, path, body) and writes the returned
// Response back out.
type App struct {
	config *Config
	logger *log.Logger
	router *rtr.Router[Handler]
	built  bool
}

// NewApp creates an App. A nil config means defaults.
func NewApp(config *Config) *App {
	if config == nil {
		config = DefaultConfig()
	}

	router := rtr.New[Handler]()
	router.TrimTrailingSlash(config.TrimTrailingSlash)

	return &App{
		config: config,
		logger: log.New(os.Stderr, "", log.LstdFlags),
		router: router,
	}
}

// SetLogger replaces the dispatch logger. Useful in tests.
func (app *App) SetLogger(logger *log.Logger) {
	app.logger = logger
}

// Register adds a route for the given method and pattern. It returns an
// *rtr.InvalidPatternError or *rtr.DuplicateRouteError on bad input; on a
// duplicate the first registration stays active.
func (app *App) Register(method string, pattern string, handler Handler) error {
	if app.built {
		panic("patrin: routes cannot be registered after Build")
	}

	return app.router.Add(method, pattern, handler)
}

// Get registers a handler for GET requests on the given pattern.
// Like the other method shorthands it panics on registration errors:
// a duplicate or malformed route is a programming error and should fail
// at startup rather than be silently dropped.
func (app *App) Get(pattern string, handler Handler) {
	app.mustRegister(consts.MethodGet, pattern, handler)
}

// Post registers a handler for POST requests on the given pattern.
func (app *App) Post(pattern string, handler Handler) {
	app.mustRegister(consts.MethodPost, pattern, handler)
}

// Put registers a handler for PUT requests on the given pattern.
func (app *App) Put(pattern string, handler Handler) {
	app.mustRegister(consts.MethodPut, pattern, handler)
}

// Patch registers a handler for PATCH requests on the given pattern.
func (app *App) Patch(pattern string, handler Handler) {
	app.mustRegister(consts.MethodPatch, pattern, handler)
}

// Delete registers a handler for DELETE requests on the given pattern.
func (app *App) Delete(pattern string, handler Handler) {
	app.mustRegister(consts.MethodDelete, pattern, handler)
}

// Head registers a handler for HEAD requests on the given pattern.
func (app *App) Head(pattern string, handler Handler) {
	app.mustRegister(consts.MethodHead, pattern, handler)
}

// Options registers a handler for OPTIONS requests on the given pattern.
func (app *App) Options(pattern string, handler Handler) {
	app.mustRegister(consts.MethodOptions, pattern, handler)
}

func (app *App) mustRegister(method string, pattern string, handler Handler) {
	if err := app.Register(method, pattern, handler); err != nil {
		panic(serr.Wrap(err, "method", method, "pattern", pattern).Error())
	}
}

// Build freezes the route table. It must be called exactly once, after the
// last registration and before the first Dispatch.
func (app *App) Build() {
	if app.built {
		panic("patrin: Build called twice")
	}

	app.built = true

	if app.config.Debug {
		for _, r := range app.router.ListRoutes() {
			app.logger.Printf("route %-7s %s (%d params)", r.Method, r.Pattern, r.Params)
		}
	}
}

// ListRoutes exposes the route table in registration order.
func (app *App) ListRoutes() []rtr.RouteList {
	return app.router.ListRoutes()
}

// Dispatch routes one request: match the path, bind the variables, invoke the
// handler. Routing and extraction failures never escape as faults; they come
// back as 404, 405 or 400 responses with problem-details bodies. Every
// response carries a Request-ID header.
func (app *App) Dispatch(method string, path string, body []byte) Response {
	if !app.built {
		panic("patrin: Dispatch called before Build")
	}

	req := &Request{id: uuid.New(), method: method, path: path, body: body}

	handler, params, err := app.router.Lookup(method, path)
	if err != nil {
		return app.fail(req, err)
	}

	req.params = params

	res, err := handler.invoke(req)
	if err != nil {
		return app.fail(req, err)
	}

	res.Headers = append(res.Headers, Header{consts.HeaderRequestID, req.id.String()})

	if app.config.Debug {
		app.logger.Printf("%s %s %s -> %d", req.id, method, path, res.Status)
	}

	return res
}

func (app *App) fail(req *Request, err error) Response {
	res := app.problemResponse(req, err)
	res.Headers = append(res.Headers, Header{consts.HeaderRequestID, req.id.String()})

	app.logger.Printf("%s %s %s -> %d: %v", req.id, req.method, req.path, res.Status,
		serr.Wrap(err, "request_id", req.id.String()))

	return res
}
