package service

import (
	"context"
	"fmt"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

const (
	// highlightOpacity keeps the page text readable under the fill.
	highlightOpacity = 0.4

	labelFontSize   = 9.0
	labelLineHeight = 14.0
	labelMargin     = 36.0
	labelMaxChars   = 50
)

// labelColor is the near-black used for the per-page summary labels.
var labelColor = domain.RGB{R: 0.15, G: 0.15, B: 0.15}

// ExportService implements the domain.ExportService interface. It draws the
// session's highlights onto a working copy of the document: a translucent
// rectangle at each highlight's own position, plus a short text label per
// highlight along the top of its page.
type ExportService struct {
	editor domain.DocumentEditor
	logger domain.Logger
}

func NewExportService(editor domain.DocumentEditor, logger domain.Logger) domain.ExportService {
	return &ExportService{
		editor: editor,
		logger: logger,
	}
}

// Export produces the annotated copy. Document bytes and the highlight list
// are read once up front; a document load racing the export replaces the
// session state without affecting the copy produced here. Any draw or save
// failure aborts the whole export with ErrExportFailed, leaving nothing
// partially written.
func (s *ExportService) Export(ctx context.Context, session *domain.Session) ([]byte, error) {
	doc, highlights, err := session.ExportState()
	if err != nil {
		return nil, err
	}

	edit, err := s.editor.Open(doc.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", domain.ErrExportFailed, err)
	}

	for _, group := range groupByPage(highlights) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
		}

		size, err := edit.PageSize(group.page)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", domain.ErrExportFailed, group.page, err)
		}

		for i, h := range group.items {
			// Stored positions are top-left page space; PDF user space has a
			// bottom-left origin.
			rect := domain.Rect{
				X:      h.Position.X,
				Y:      size.Height - h.Position.Y - h.Position.Height,
				Width:  h.Position.Width,
				Height: h.Position.Height,
			}
			if err := edit.DrawRect(group.page, rect, h.Color.RGB(), highlightOpacity); err != nil {
				return nil, fmt.Errorf("%w: highlight %s: %v", domain.ErrExportFailed, h.ID, err)
			}

			labelPos := domain.Point{
				X: labelMargin,
				Y: size.Height - labelMargin - float64(i)*labelLineHeight,
			}
			label := fmt.Sprintf("%d. %s", i+1, truncateLabel(h.Text, labelMaxChars))
			if err := edit.DrawText(group.page, label, labelPos, labelFontSize, labelColor); err != nil {
				return nil, fmt.Errorf("%w: label for %s: %v", domain.ErrExportFailed, h.ID, err)
			}
		}
	}

	out, err := edit.Save()
	if err != nil {
		return nil, fmt.Errorf("%w: save: %v", domain.ErrExportFailed, err)
	}

	s.logger.Info("Export complete",
		"session_id", session.ID, "highlights", len(highlights), "bytes", len(out))
	return out, nil
}

// pageGroup carries one page's highlights in store order.
type pageGroup struct {
	page  int
	items []*domain.Highlight
}

// groupByPage splits the store-ordered list into per-page groups, pages in
// first-seen order, so label ordinals count per page.
func groupByPage(highlights []*domain.Highlight) []pageGroup {
	index := make(map[int]int)
	var groups []pageGroup
	for _, h := range highlights {
		i, ok := index[h.PageNumber]
		if !ok {
			i = len(groups)
			index[h.PageNumber] = i
			groups = append(groups, pageGroup{page: h.PageNumber})
		}
		groups[i].items = append(groups[i].items, h)
	}
	return groups
}

// truncateLabel bounds a label so long selections cannot overflow their
// layout slot.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
