package contracts

import "github.com/julienschmidt/httprouter"

// RouteRegistrar is implemented by every HTTP surface mounted by pkg/app.
type RouteRegistrar interface {
	RegisterRoutes(*httprouter.Router)
}

// Stopper releases background workers owned by a component.
type Stopper interface {
	Stop()
}
