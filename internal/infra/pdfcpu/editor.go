package pdfcpu

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// setupOnce disables pdfcpu's on-disk config directory once per process so
// the editor never writes outside its own working memory.
var setupOnce sync.Once

// annotFlags marks stamped annotations as printable and locked against
// interactive editing.
const annotFlags = (1 << 2) | (1 << 7) // Print | Locked

// Editor implements the domain.DocumentEditor interface on pdfcpu.
type Editor struct {
	logger domain.Logger
}

func NewEditor(logger domain.Logger) domain.DocumentEditor {
	setupOnce.Do(api.DisableConfigDir)
	return &Editor{logger: logger}
}

// Open parses raw bytes into a private working context. The caller's slice
// is only read, never written.
func (e *Editor) Open(raw []byte) (domain.EditableDocument, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(raw), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}
	return &editableDocument{ctx: ctx}, nil
}

// editableDocument accumulates draw calls as annotation objects carrying
// appearance streams, the standard way to stamp content onto existing pages
// without rewriting their content streams.
type editableDocument struct {
	ctx *model.Context
}

func (d *editableDocument) PageCount() int {
	return d.ctx.PageCount
}

func (d *editableDocument) PageSize(pageNumber int) (domain.Size, error) {
	box, err := d.mediaBox(pageNumber)
	if err != nil {
		return domain.Size{}, err
	}
	return domain.Size{Width: box.Width(), Height: box.Height()}, nil
}

// mediaBox resolves the page's media box, inherited attributes included.
func (d *editableDocument) mediaBox(pageNumber int) (*types.Rectangle, error) {
	if pageNumber < 1 || pageNumber > d.ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range [1, %d]", pageNumber, d.ctx.PageCount)
	}
	_, _, inhPAttrs, err := d.ctx.PageDict(pageNumber, true)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve page %d: %w", pageNumber, err)
	}
	if inhPAttrs == nil || inhPAttrs.MediaBox == nil {
		return nil, fmt.Errorf("page %d has no media box", pageNumber)
	}
	return inhPAttrs.MediaBox, nil
}

// DrawRect stamps a filled translucent rectangle. The rect is PDF user
// space: origin bottom-left, units points.
func (d *editableDocument) DrawRect(pageNumber int, rect domain.Rect, color domain.RGB, opacity float64) error {
	if rect.Width <= 0 || rect.Height <= 0 {
		return fmt.Errorf("degenerate rect %+v", rect)
	}
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}

	content := fmt.Sprintf("/GS0 gs\n%s rg\n0 0 %s %s re\nf\n",
		fmtRGB(color), fmtNum(rect.Width), fmtNum(rect.Height))

	apRef, err := d.appearanceForm(content, rect.Width, rect.Height, types.Dict{
		"ExtGState": types.Dict{
			"GS0": types.Dict{
				"Type": types.Name("ExtGState"),
				"ca":   types.Float(opacity),
				"CA":   types.Float(opacity),
			},
		},
	})
	if err != nil {
		return err
	}

	annot := types.Dict{
		"Type":    types.Name("Annot"),
		"Subtype": types.Name("Square"),
		"Rect":    rectArray(rect),
		"F":       types.Integer(annotFlags),
		"C":       colorArray(color),
		"IC":      colorArray(color),
		"CA":      types.Float(opacity),
		"AP":      types.Dict{"N": *apRef},
	}
	return d.appendAnnotation(pageNumber, annot)
}

// DrawText stamps a short text label. pos is the label's bottom-left corner
// in PDF user space; fontSize is in points. Empty labels are skipped.
func (d *editableDocument) DrawText(pageNumber int, text string, pos domain.Point, fontSize float64, color domain.RGB) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if fontSize <= 0 {
		fontSize = 9
	}

	w, h := labelExtent(text, fontSize)
	content := fmt.Sprintf("BT\n/F1 %s Tf\n%s rg\n%s %s Td\n(%s) Tj\nET\n",
		fmtNum(fontSize), fmtRGB(color), fmtNum(labelPadX), fmtNum(fontSize*0.3), escapeText(text))

	apRef, err := d.appearanceForm(content, w, h, types.Dict{
		"Font": types.Dict{
			"F1": types.Dict{
				"Type":     types.Name("Font"),
				"Subtype":  types.Name("Type1"),
				"BaseFont": types.Name("Helvetica"),
			},
		},
	})
	if err != nil {
		return err
	}

	annot := types.Dict{
		"Type":     types.Name("Annot"),
		"Subtype":  types.Name("FreeText"),
		"Rect":     rectArray(domain.Rect{X: pos.X, Y: pos.Y, Width: w, Height: h}),
		"F":        types.Integer(annotFlags),
		"Contents": types.StringLiteral(sanitizeContents(text)),
		"DA":       types.StringLiteral(fmt.Sprintf("/Helv %s Tf %s rg", fmtNum(fontSize), fmtRGB(color))),
		"AP":       types.Dict{"N": *apRef},
	}
	return d.appendAnnotation(pageNumber, annot)
}

// appearanceForm builds a Form XObject whose box matches the annotation
// rect exactly, so form coordinates map 1:1 onto page points.
func (d *editableDocument) appearanceForm(content string, w, h float64, resources types.Dict) (*types.IndirectRef, error) {
	sd, err := d.ctx.NewStreamDictForBuf([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("failed to build appearance stream: %w", err)
	}
	sd.Dict["Type"] = types.Name("XObject")
	sd.Dict["Subtype"] = types.Name("Form")
	sd.Dict["BBox"] = types.NewNumberArray(0, 0, w, h)
	sd.Dict["Resources"] = resources
	if err := sd.Encode(); err != nil {
		return nil, fmt.Errorf("failed to encode appearance stream: %w", err)
	}
	return d.ctx.IndRefForNewObject(*sd)
}

// appendAnnotation allocates the annotation object and hooks it into the
// page's Annots array, following an indirect reference if one is there.
func (d *editableDocument) appendAnnotation(pageNumber int, annot types.Dict) error {
	if pageNumber < 1 || pageNumber > d.ctx.PageCount {
		return fmt.Errorf("page %d out of range [1, %d]", pageNumber, d.ctx.PageCount)
	}
	pageDict, _, _, err := d.ctx.PageDict(pageNumber, false)
	if err != nil {
		return fmt.Errorf("failed to resolve page %d: %w", pageNumber, err)
	}
	if pageDict == nil {
		return fmt.Errorf("page %d has no dictionary", pageNumber)
	}

	ref, err := d.ctx.IndRefForNewObject(annot)
	if err != nil {
		return fmt.Errorf("failed to allocate annotation: %w", err)
	}

	switch obj := pageDict["Annots"].(type) {
	case nil:
		pageDict["Annots"] = types.Array{*ref}
	case types.Array:
		pageDict["Annots"] = append(obj, *ref)
	default:
		arr, err := d.ctx.DereferenceArray(obj)
		if err != nil {
			return fmt.Errorf("failed to resolve Annots on page %d: %w", pageNumber, err)
		}
		pageDict["Annots"] = append(arr, *ref)
	}
	return nil
}

// Save serializes the working copy. The bytes the document was opened from
// stay untouched.
func (d *editableDocument) Save() ([]byte, error) {
	var buf bytes.Buffer
	if err := api.WriteContext(d.ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
