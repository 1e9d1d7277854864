package canvas

// isPointInPath implements spec §4.8 isPointInPath: the query point is
// given in the same user-space coordinates the path was built in, and
// is mapped through ctm before testing against the device-space
// flattened outline, matching how Fill() rasterizes the same path.
func isPointInPath(p *Path, ctm Matrix, x, y float64, rule FillRule) bool {
	subpaths := flattenPath(p, ctm)
	dx, dy := ctm.Transform(x, y)
	return PointInside(subpaths, rule, dx, dy)
}

// isPointInStroke implements spec §4.8 isPointInStroke: the query point
// is tested against the stroke outline geometry the same Stroke() call
// would fill, always under NonZero winding regardless of the current
// fill rule (the stroke outline is a union of bands, not a user path).
func isPointInStroke(p *Path, line LineState, ctm Matrix, x, y float64) bool {
	outline := StrokeOutline(p, line, ctm)
	dx, dy := ctm.Transform(x, y)
	return PointInside(outline, NonZero, dx, dy)
}
