package router

import (
	"strconv"
	"strings"

	"github.com/abhisek/webdev100/internal/curriculum"
)

// RouteKind identifies a navigable place in the application.
type RouteKind int

const (
	RouteHome RouteKind = iota
	RouteNotFound
	RouteCatalog
	RouteDay
	RouteActivity
)

// String returns the kind's name for logs.
func (k RouteKind) String() string {
	switch k {
	case RouteHome:
		return "home"
	case RouteCatalog:
		return "catalog"
	case RouteDay:
		return "day"
	case RouteActivity:
		return "activity"
	default:
		return "not-found"
	}
}

// Route is a parsed navigation target. The zero value is home. Day is only
// meaningful for RouteDay and, when a day segment was numeric, for
// RouteNotFound.
type Route struct {
	Kind RouteKind
	Day  int
}

// Home is the root route.
func Home() Route { return Route{Kind: RouteHome} }

// Day returns the route for a single day.
func Day(n int) Route { return Route{Kind: RouteDay, Day: n} }

// DayPath returns the canonical path of day n.
func DayPath(n int) string {
	return "/day/" + strconv.Itoa(n)
}

// Parse maps a path to a route. Trailing slashes are ignored. A day
// segment that is not a canonical decimal number (no sign, no leading
// zeros) or lies outside the curriculum range yields RouteNotFound. Parse does not consult the catalog: a day inside the
// range still has to be looked up.
func Parse(path string) Route {
	p := strings.TrimRight(path, "/")
	switch p {
	case "":
		return Home()
	case "/days":
		return Route{Kind: RouteCatalog}
	case "/activity":
		return Route{Kind: RouteActivity}
	}

	rest, ok := strings.CutPrefix(p, "/day/")
	if !ok || strings.Contains(rest, "/") {
		return Route{Kind: RouteNotFound}
	}
	n, err := strconv.Atoi(rest)
	if err != nil || strconv.Itoa(n) != rest {
		return Route{Kind: RouteNotFound}
	}
	if n < curriculum.FirstDay || n > curriculum.LastDay {
		return Route{Kind: RouteNotFound, Day: n}
	}
	return Day(n)
}

// Path renders the canonical path for r. Not-found routes render as the
// day path when they carry a day, and as "/404" otherwise.
func (r Route) Path() string {
	switch r.Kind {
	case RouteHome:
		return "/"
	case RouteCatalog:
		return "/days"
	case RouteDay:
		return DayPath(r.Day)
	case RouteActivity:
		return "/activity"
	}
	if r.Day != 0 {
		return DayPath(r.Day)
	}
	return "/404"
}
