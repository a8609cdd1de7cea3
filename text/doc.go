// Package text measures and arranges plot labels.
//
// Layout decisions are made through a narrow capability, Measurer, which
// reports font metrics and the width of a single line. Nothing else about
// the platform text stack is assumed, so the same Arranger serves a real
// font backend and a fake measurer in tests.
//
// The pipeline for a label is:
//
//   - SplitLines: split on explicit line breaks only (no word wrap)
//   - vertical clipping: drop trailing lines that do not fit MaxHeight
//   - horizontal trimming: shorten each line with a Trimmer when the widest
//     line exceeds MaxWidth
//   - placement: position every line in rotated space around an anchor
//
// # Example usage
//
//	m, err := text.NewFaceMeasurer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	arr := text.NewArranger(text.NewCachingMeasurer(m, 1024), text.WithSquash(true))
//	layout := arr.Arrange("Temperature\n(°C)", plot.SP(40, 300), text.ArrangeOptions{
//	    Font:                text.Font{Family: text.FamilySans, Size: 12},
//	    Rotation:            -90,
//	    HorizontalAlignment: text.AlignCenter,
//	    VerticalAlignment:   text.AlignBottom,
//	})
//	for _, line := range layout.Lines {
//	    draw(line.Text, line.Position)
//	}
//
// # Measurers
//
//   - FaceMeasurer: golang.org/x/image/font/opentype faces, with the Go
//     fonts registered by default
//   - ShapingMeasurer: HarfBuzz shaping via github.com/go-text/typesetting
//     for kerning and ligature aware widths
//   - CachingMeasurer: memoizes widths of any Measurer
package text
