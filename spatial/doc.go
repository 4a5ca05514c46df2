// Package spatial snaps arbitrary 3D points to campus landmarks.
//
// An Index stores every landmark of a core.Graph in an R-tree
// (github.com/dhconnelly/rtreego) so a click or a GPS fix can be mapped to
// the closest route endpoint without scanning the whole graph:
//
//	ix, err := spatial.New(g)
//	if err != nil {
//	    return err
//	}
//	hit, ok := ix.Nearest(mgl64.Vec3{12, 0, -3})
//	if ok {
//	    session.SelectStart(hit.Landmark.Key)
//	}
//
// Results are deterministic: equal distances are ordered by the graph's
// discovery order, like every other tie in campusnav.
package spatial
