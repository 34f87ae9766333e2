package rtr

// RouteList represents a registered route for debugging and inspection purposes.
// Router implementations use it to expose their route tables in a
// human-readable format.
//
// This is primarily used for:
//   - Route table visualization at startup
//   - Debugging route shadowing (first-registered-wins)
//   - Testing route registration
type RouteList struct {
	Method  string
	Pattern string
	Params  int
}
