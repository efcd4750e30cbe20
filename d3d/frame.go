package d3d

import "image"

// MovedRegion describes pixels whose content is unchanged since the previous
// frame but relocated on screen, e.g. a dragged window. Source is the
// top-left of the region before the move, Destination is where it lives now.
type MovedRegion struct {
	Source      image.Point
	Destination image.Rectangle
}

// Frame is the result of one successful GetLatestFrame call.
//
// Image points at the duplicator's reused output buffer; it is only
// refreshed when the frame reported at least one moved or updated region.
// Pixels are BGRA unless Options.EmitRGBA was set.
//
// CursorBitmap is non-nil only on frames that carried a shape update; the
// cursor keeps its previous shape on all other frames, so callers that
// overlay the cursor should hold on to the last bitmap they saw.
type Frame struct {
	Image *image.RGBA

	// Change metadata, in the order the duplication session reported it.
	// Regions may overlap; no merging is performed.
	MovedRegions   []MovedRegion
	UpdatedRegions []image.Rectangle

	CursorBitmap   *image.RGBA
	CursorLocation image.Point
	CursorHotSpot  image.Point
	CursorVisible  bool
}
