package mupdf

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// baseDPI is the raster density that makes one rendered pixel equal one
// page-space unit at scale 1.0.
const baseDPI = 72.0

// Renderer implements the domain.PageRenderer interface on MuPDF via
// go-fitz. A document handle is opened per call: go-fitz handles are not
// safe for concurrent use, and sessions hold bytes, not handles.
type Renderer struct {
	logger domain.Logger
}

func NewRenderer(logger domain.Logger) domain.PageRenderer {
	return &Renderer{logger: logger}
}

// Inspect opens the bytes and reports page count, metadata and per-page
// dimensions in page-space units.
func (r *Renderer) Inspect(ctx context.Context, raw []byte) (*domain.DocumentInfo, error) {
	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	docMetadata := doc.Metadata()
	info := &domain.DocumentInfo{
		PageCount: doc.NumPage(),
	}
	if title, ok := docMetadata["title"]; ok && title != "" {
		info.Title = title
	}
	if author, ok := docMetadata["author"]; ok && author != "" {
		info.Author = author
	}

	info.Pages = make([]domain.PageDimensions, 0, info.PageCount)
	for pageNum := 0; pageNum < info.PageCount; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bound, err := doc.Bound(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to measure page %d: %w", pageNum+1, err)
		}
		info.Pages = append(info.Pages, domain.PageDimensions{
			Number: pageNum + 1,
			Width:  float64(bound.Dx()),
			Height: float64(bound.Dy()),
		})
	}
	return info, nil
}

// RenderPage rasterizes one page at the given zoom scale and encodes it as
// PNG. MuPDF can stall on hostile files, so the render runs in a goroutine
// raced against the caller's context.
func (r *Renderer) RenderPage(ctx context.Context, raw []byte, pageNumber int, scale float64) (*domain.RenderedPage, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", scale)
	}

	type renderResult struct {
		page *domain.RenderedPage
		err  error
	}
	resultCh := make(chan renderResult, 1)
	go func() {
		page, err := r.renderPage(raw, pageNumber, scale)
		resultCh <- renderResult{page: page, err: err}
	}()

	select {
	case res := <-resultCh:
		return res.page, res.err
	case <-ctx.Done():
		r.logger.Warn("Page render abandoned", "page", pageNumber, "error", ctx.Err())
		go func() { <-resultCh }() // drain so goroutine can exit
		return nil, ctx.Err()
	}
}

func (r *Renderer) renderPage(raw []byte, pageNumber int, scale float64) (*domain.RenderedPage, error) {
	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if pageNumber < 1 || pageNumber > doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range [1, %d]", pageNumber, doc.NumPage())
	}

	img, err := doc.ImageDPI(pageNumber-1, baseDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", pageNumber, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode page %d: %w", pageNumber, err)
	}

	b := img.Bounds()
	return &domain.RenderedPage{
		PageNumber: pageNumber,
		Scale:      scale,
		WidthPx:    b.Dx(),
		HeightPx:   b.Dy(),
		PNG:        buf.Bytes(),
	}, nil
}

// TextLayer returns MuPDF's positioned HTML rendition of one page. The
// surface overlays it on the raster so text stays selectable.
func (r *Renderer) TextLayer(ctx context.Context, raw []byte, pageNumber int) (string, error) {
	type textResult struct {
		html string
		err  error
	}
	resultCh := make(chan textResult, 1)
	go func() {
		html, err := r.textLayer(raw, pageNumber)
		resultCh <- textResult{html: html, err: err}
	}()

	select {
	case res := <-resultCh:
		return res.html, res.err
	case <-ctx.Done():
		r.logger.Warn("Text layer abandoned", "page", pageNumber, "error", ctx.Err())
		go func() { <-resultCh }() // drain so goroutine can exit
		return "", ctx.Err()
	}
}

func (r *Renderer) textLayer(raw []byte, pageNumber int) (string, error) {
	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if pageNumber < 1 || pageNumber > doc.NumPage() {
		return "", fmt.Errorf("page %d out of range [1, %d]", pageNumber, doc.NumPage())
	}

	html, err := doc.HTML(pageNumber-1, true)
	if err != nil {
		return "", fmt.Errorf("failed to extract text layer for page %d: %w", pageNumber, err)
	}
	return html, nil
}
