package core

import "net/http"

// Route binds a method-aware ServeMux pattern to a handler.
type Route struct {
	Pattern string
	Handler http.Handler
}

type RuntimeContext struct {
	Env      string
	Reloader LiveReloaderInterface
}

// Routes is the site's route table. The live reload endpoint is only
// present when ctx carries a reloader.
func Routes(config Config, ctx RuntimeContext, renderer Renderer, assets *Assets) []Route {
	opts := HandlerOptions{DebugHeaders: config.DebugHeaders}

	routes := []Route{
		{Pattern: "GET /{$}", Handler: IndexHandler(renderer, opts)},
		{Pattern: "GET " + DemoPrefix + "{template}", Handler: DemoHandler(renderer, opts)},
		{Pattern: "GET " + StaticPrefix + "{file...}", Handler: StaticHandler(ctx.Env, assets)},
	}

	if ctx.Reloader != nil {
		routes = append(routes, Route{
			Pattern: "GET " + ReloadPath,
			Handler: http.HandlerFunc(ctx.Reloader.Handler),
		})
	}

	return routes
}

// NewRouter registers routes on a fresh ServeMux. Requests whose path
// matches a route but whose method does not get a 405.
func NewRouter(routes []Route) *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range routes {
		mux.Handle(route.Pattern, route.Handler)
	}
	return mux
}
