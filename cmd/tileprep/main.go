// Command tileprep cuts a labeled image into overlapping training tiles,
// clipping the polygon labels to each tile.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/tiff"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/internal/dataset"
	"github.com/AybarsKansu/image-labeling/internal/render"
	"github.com/AybarsKansu/image-labeling/internal/version"
)

func main() {
	imagePath := flag.String("image", "", "Path to source image (TIFF, PNG, or JPEG)")
	labelPath := flag.String("labels", "", "Path to label record JSON")
	outDir := flag.String("out", "tiles", "Output directory")
	tileSize := flag.Int("tile", 640, "Tile side in pixels")
	overlap := flag.Float64("overlap", 0.2, "Fractional overlap between tiles")
	resize := flag.Int("resize", 0, "Resize tiles to this side (0 = keep tile size)")
	minArea := flag.Float64("minarea", dataset.MinPolygonArea, "Minimum clipped polygon area in px²")
	flip := flag.Bool("flip", false, "Also emit horizontally mirrored tiles")
	keepAll := flag.Bool("keepall", false, "Keep tiles with no surviving labels")
	preview := flag.Bool("preview", false, "Also write tiles with label outlines drawn on")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tileprep %s (%s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	if *imagePath == "" || *labelPath == "" {
		fmt.Println("Usage: tileprep -image <path> -labels <record.json> [-out tiles] [-tile 640] [-overlap 0.2]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

	rec, err := annotation.LoadRecord(*labelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load labels: %v\n", err)
		os.Exit(1)
	}
	if rec.Width != bounds.Dx() || rec.Height != bounds.Dy() {
		fmt.Fprintf(os.Stderr, "Label record is %dx%d but image is %dx%d\n",
			rec.Width, rec.Height, bounds.Dx(), bounds.Dy())
		os.Exit(1)
	}
	fmt.Printf("Loaded %d labeled polygons\n", len(rec.Entries))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	opts := dataset.PrepOptions{
		TileSize: *tileSize,
		Overlap:  *overlap,
		Resize:   *resize,
		MinArea:  *minArea,
		Flip:     *flip,
		KeepAll:  *keepAll,
	}

	tiled := dataset.TileRecord(rec, opts)
	fmt.Printf("Writing %d tiles to %s\n", len(tiled), *outDir)

	written := 0
	for _, tr := range tiled {
		crop := dataset.CropTile(img, tr.Tile, opts.Resize)
		if opts.Resize > 0 {
			// Labels are normalized, so rescaling only changes the
			// recorded pixel dimensions.
			b := crop.Bounds()
			tr.Record.Width, tr.Record.Height = b.Dx(), b.Dy()
		}
		if err := writeTile(*outDir, crop, tr.Record, *preview); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write tile %d: %v\n", tr.Tile.Index, err)
			os.Exit(1)
		}
		written++

		if opts.Flip {
			flipped := dataset.FlipRecord(tr.Record)
			if err := writeTile(*outDir, dataset.FlipImage(crop), flipped, *preview); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to write flipped tile %d: %v\n", tr.Tile.Index, err)
				os.Exit(1)
			}
			written++
		}
	}
	fmt.Printf("Done: %d tile images with labels\n", written)
}

// writeTile saves one tile image as PNG plus its label record JSON,
// both named after the record's image name. With preview set, a copy
// with the label outlines drawn on is written alongside.
func writeTile(dir string, img image.Image, rec *annotation.LabelRecord, preview bool) error {
	base, _ := splitExt(rec.ImageName)

	if err := writePNG(filepath.Join(dir, base+".png"), img); err != nil {
		return err
	}
	if preview {
		if err := writePNG(filepath.Join(dir, base+"_preview.png"), render.Overlay(img, rec)); err != nil {
			return err
		}
	}
	return rec.Save(filepath.Join(dir, base+".json"))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)], ext
}
