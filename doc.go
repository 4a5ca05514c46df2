// Package campusnav is a navigation engine for 3D campus models: a map of
// named landmarks joined by weighted walkways, a shortest-route solver, a
// smooth curve through the chosen landmarks, and a walker that plays the
// route back with a follow camera.
//
// What is in the box?
//
//	core/         - Graph of landmarks and directed connections
//	dijkstra/     - deterministic shortest routes (ties by discovery order)
//	routepath/    - arc-length Catmull-Rom curve through route waypoints
//	playback/     - Idle/Playing/Paused/Finished walker + follow camera rig
//	navigator/    - session: selection, routing, playback, directions
//	builder/      - marker logs → maps (Chain, SpanningTree)
//	mapio/        - JSON and YAML map documents
//	spatial/      - R-tree nearest-landmark lookup
//	mapsvg/       - top-down SVG rendering of a map and its route
//	config/       - YAML session configuration
//	bfs/, dfs/    - reachability and island detection
//	prim_kruskal/ - minimum spanning walkway sets
//	cmd/campusnav - route, author and check from the command line
//
// Quick start
//
//	g, _ := mapio.Load("campus.json")
//	s, _ := navigator.NewSession(g, navigator.WithSelection("gate", "library"))
//	s.Start()
//	for {
//	    f := s.Tick(1.0 / 60)
//	    // f.Sample.Position is the walker, f.Camera the eye and look-at.
//	    if f.Arrived {
//	        break
//	    }
//	}
//
// Determinism
//
//	The same map document always yields the same routes, curves and
//	frames: every tie resolves in key discovery or connection insertion
//	order, never by map iteration.
package campusnav
