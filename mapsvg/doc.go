// Package mapsvg renders a campus map as a top-down SVG.
//
// Landmarks are projected onto a plane (PlaneXZ for a y-up scene seen
// from above, PlaneXY for maps authored flat), framed by their bounding
// box plus Padding scene units, and scaled by Scale SVG units per scene
// unit. The plane's second axis points up in the drawing.
//
// Layers, bottom to top: background, connections, the highlighted route,
// landmarks with labels.
package mapsvg
