// Package export turns a rendered resume into downloadable artifacts: a PDF
// and per-page PNG images. Page geometry is computed here as pure math so the
// pagination rules are testable without a browser.
package export

// A4 page size in millimeters, portrait.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// Slice is one page's cut of the source image, in source pixels.
type Slice struct {
	Top    float64
	Height float64
}

// Plan is the complete placement of a captured image onto A4 pages.
type Plan struct {
	// Ratio scales source pixels to millimeters so the image fits the page
	// in both dimensions.
	Ratio float64
	// OffsetX centers the scaled image horizontally, in millimeters.
	OffsetX float64
	// Pages lists the vertical cuts, one per output page, top to bottom.
	Pages []Slice
}

// PlanPages computes how a captured image of the given pixel dimensions maps
// onto A4 pages. The image is scaled to the page width, preserving aspect
// ratio; content taller than one page at that scale is split across pages.
func PlanPages(imgWidth, imgHeight float64) Plan {
	if imgWidth <= 0 || imgHeight <= 0 {
		return Plan{Ratio: 1}
	}

	ratio := PageWidthMM / imgWidth

	plan := Plan{
		Ratio:   ratio,
		OffsetX: (PageWidthMM - imgWidth*ratio) / 2,
	}

	// One page holds pageHeight/ratio source pixels.
	pagePixels := PageHeightMM / ratio
	remaining := imgHeight
	top := 0.0
	for remaining > 0 {
		height := remaining
		if height > pagePixels {
			height = pagePixels
		}
		plan.Pages = append(plan.Pages, Slice{Top: top, Height: height})
		remaining -= height
		top += height
	}
	return plan
}

// PageCount returns how many A4 pages an image of the given pixel dimensions
// occupies.
func PageCount(imgWidth, imgHeight float64) int {
	return len(PlanPages(imgWidth, imgHeight).Pages)
}
