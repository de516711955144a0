package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"

	"github.com/chromedp/chromedp"
)

// applyFullHeight lifts height and overflow constraints so the capture covers
// the whole document, not just the viewport. Prior values are stashed for
// restoreLayout.
const applyFullHeight = `(() => {
	const b = document.body;
	window.__priorLayout = {
		height: b.style.height,
		maxHeight: b.style.maxHeight,
		overflow: b.style.overflow,
	};
	b.style.height = "auto";
	b.style.maxHeight = "none";
	b.style.overflow = "visible";
})()`

const restoreLayout = `(() => {
	const p = window.__priorLayout || {};
	const b = document.body;
	b.style.height = p.height || "";
	b.style.maxHeight = p.maxHeight || "";
	b.style.overflow = p.overflow || "";
	delete window.__priorLayout;
})()`

// PageImages renders the HTML, captures it as one full-height image, and cuts
// it into per-page PNGs following the page plan. The layout override is undone
// after the capture whether or not it succeeded.
func PageImages(ctx context.Context, html string) ([][]byte, error) {
	var shot []byte
	err := withPage(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		if err := chromedp.Evaluate(applyFullHeight, nil).Do(ctx); err != nil {
			return err
		}
		shotErr := chromedp.FullScreenshot(&shot, 100).Do(ctx)
		if err := chromedp.Evaluate(restoreLayout, nil).Do(ctx); err != nil && shotErr == nil {
			return err
		}
		return shotErr
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to capture page: %w", err)
	}
	return SliceImage(shot)
}

// SliceImage cuts a full-height PNG capture into one PNG per A4 page.
func SliceImage(capture []byte) ([][]byte, error) {
	src, err := png.Decode(bytes.NewReader(capture))
	if err != nil {
		return nil, fmt.Errorf("failed to decode capture: %w", err)
	}

	bounds := src.Bounds()
	plan := PlanPages(float64(bounds.Dx()), float64(bounds.Dy()))

	pages := make([][]byte, 0, len(plan.Pages))
	for _, slice := range plan.Pages {
		top := bounds.Min.Y + int(math.Round(slice.Top))
		height := int(math.Round(slice.Height))
		if top+height > bounds.Max.Y {
			height = bounds.Max.Y - top
		}

		page := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), height))
		draw.Draw(page, page.Bounds(), src, image.Pt(bounds.Min.X, top), draw.Src)

		var buf bytes.Buffer
		if err := png.Encode(&buf, page); err != nil {
			return nil, fmt.Errorf("failed to encode page: %w", err)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}
