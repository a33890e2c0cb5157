// Command minaboxdemo prints resolved offsets for a spreadsheet-style grid
// with a sticky header row, a sticky header column and a locked corner.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/gogpu/minabox"
)

var alignments = map[string]minabox.Alignment{
	"top-start":     minabox.TopStart,
	"top-center":    minabox.TopCenter,
	"top-end":       minabox.TopEnd,
	"center-start":  minabox.CenterStart,
	"center":        minabox.Center,
	"center-end":    minabox.CenterEnd,
	"bottom-start":  minabox.BottomStart,
	"bottom-center": minabox.BottomCenter,
	"bottom-end":    minabox.BottomEnd,
	"top-left":      minabox.AbsoluteTopLeft,
	"top-right":     minabox.AbsoluteTopRight,
	"center-left":   minabox.AbsoluteCenterLeft,
	"center-right":  minabox.AbsoluteCenterRight,
	"bottom-left":   minabox.AbsoluteBottomLeft,
	"bottom-right":  minabox.AbsoluteBottomRight,
}

type config struct {
	rows, cols            int
	cellWidth, cellHeight float64
	width, height         float64
	dir, locale, sample   string
	align                 string
	pad                   float64
	scrollX, scrollY      float64
	first, count          int
	snap                  bool
}

func main() {
	var (
		cfg     config
		verbose = flag.Bool("v", false, "log registry and lookup diagnostics")
	)
	flag.IntVar(&cfg.rows, "rows", 100, "grid rows including the header row")
	flag.IntVar(&cfg.cols, "cols", 26, "grid columns including the header column")
	flag.Float64Var(&cfg.cellWidth, "cell-width", 80, "cell width in pixels")
	flag.Float64Var(&cfg.cellHeight, "cell-height", 24, "cell height in pixels")
	flag.Float64Var(&cfg.width, "width", 800, "viewport width")
	flag.Float64Var(&cfg.height, "height", 600, "viewport height")
	flag.StringVar(&cfg.dir, "dir", "auto", "layout direction: ltr, rtl or auto")
	flag.StringVar(&cfg.locale, "locale", "en", "BCP 47 locale used when -dir=auto")
	flag.StringVar(&cfg.sample, "sample", "", "sample cell text; its direction wins over -locale when -dir=auto")
	flag.StringVar(&cfg.align, "align", "center", "alignment name, e.g. top-start, center, bottom-right")
	flag.Float64Var(&cfg.pad, "pad", 0, "padding on every edge")
	flag.Float64Var(&cfg.scrollX, "scroll-x", 0, "current horizontal scroll offset")
	flag.Float64Var(&cfg.scrollY, "scroll-y", 0, "current vertical scroll offset")
	flag.IntVar(&cfg.first, "first", 0, "first index to print")
	flag.IntVar(&cfg.count, "count", 30, "number of indices to print")
	flag.BoolVar(&cfg.snap, "snap", false, "snap alignment to whole pixels")
	flag.Parse()

	if *verbose {
		minabox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatalf("minaboxdemo: %v", err)
	}
}

func run(w io.Writer, cfg config) error {
	dir, err := direction(cfg)
	if err != nil {
		return err
	}
	align, ok := alignments[strings.ToLower(cfg.align)]
	if !ok {
		return fmt.Errorf("unknown alignment %q", cfg.align)
	}

	store := minabox.NewStore()
	if err := store.PutAll(0, cfg.rows*cfg.cols, gridLayout(cfg)); err != nil {
		return err
	}

	var opts []minabox.Option
	if cfg.snap {
		opts = append(opts, minabox.WithPixelSnap())
	}
	vp := minabox.Viewport{Size: minabox.Sz(cfg.width, cfg.height), Direction: dir}
	p := minabox.NewPositionProvider(store, vp, opts...)
	pl := minabox.Placement{Alignment: align, Padding: minabox.UniformPadding(cfg.pad)}
	scroll := minabox.Off(cfg.scrollX, cfg.scrollY)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "# viewport %v %v, align %v, scroll %v\n", vp.Size, dir, align, scroll)
	fmt.Fprintln(tw, "index\trow\tcol\tkind\toffset")
	for i := cfg.first; i < cfg.first+cfg.count; i++ {
		row, col, kind := describe(cfg, i)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%v\n", i, row, col, kind, p.OffsetAt(i, pl, scroll))
	}
	return tw.Flush()
}

// direction picks the layout direction from -dir, falling back to the
// sample text and then the locale.
func direction(cfg config) (minabox.LayoutDirection, error) {
	switch strings.ToLower(cfg.dir) {
	case "ltr":
		return minabox.LTR, nil
	case "rtl":
		return minabox.RTL, nil
	case "auto", "":
	default:
		return minabox.LTR, fmt.Errorf("unknown direction %q", cfg.dir)
	}
	if cfg.sample != "" {
		return minabox.DirectionOfText(cfg.sample), nil
	}
	tag, err := language.Parse(cfg.locale)
	if err != nil {
		return minabox.LTR, fmt.Errorf("parse locale %q: %w", cfg.locale, err)
	}
	return minabox.DirectionForLocale(tag), nil
}

// gridLayout places cells row-major. Row 0 sticks to the top, column 0
// sticks to the start edge and the corner cell is locked on both axes.
func gridLayout(cfg config) func(int) minabox.Item {
	return func(i int) minabox.Item {
		row, col := i/cfg.cols, i%cfg.cols
		return minabox.Item{
			X:                float64(col) * cfg.cellWidth,
			Y:                float64(row) * cfg.cellHeight,
			Width:            minabox.Absolute(cfg.cellWidth),
			Height:           minabox.Absolute(cfg.cellHeight),
			LockHorizontally: col == 0,
			LockVertically:   row == 0,
		}
	}
}

func describe(cfg config, i int) (row, col int, kind string) {
	if i < 0 || cfg.cols <= 0 || i >= cfg.rows*cfg.cols {
		return -1, -1, "absent"
	}
	row, col = i/cfg.cols, i%cfg.cols
	switch {
	case row == 0 && col == 0:
		kind = "corner"
	case row == 0:
		kind = "header"
	case col == 0:
		kind = "row-header"
	default:
		kind = "cell"
	}
	return row, col, kind
}
