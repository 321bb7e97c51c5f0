package dataset

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/internal/tiling"
)

// PrepOptions controls tiled training set preparation.
type PrepOptions struct {
	TileSize int     // tile side in pixels
	Overlap  float64 // fractional overlap between adjacent tiles, [0,1)
	Resize   int     // resize tiles to Resize x Resize; 0 keeps tile size
	MinArea  float64 // minimum clipped fragment area in px²
	Flip     bool    // also emit horizontally mirrored copies
	KeepAll  bool    // keep tiles with no surviving labels
}

// DefaultPrepOptions returns the preparation defaults.
func DefaultPrepOptions() PrepOptions {
	return PrepOptions{
		TileSize: 640,
		Overlap:  0.2,
		MinArea:  MinPolygonArea,
	}
}

// TiledRecord pairs one tile of the plan with the label record clipped
// to it.
type TiledRecord struct {
	Tile   tiling.Tile
	Record *annotation.LabelRecord
}

// TileRecord plans tiles over a full-image record and clips the record's
// labels to each tile. Tiles left without labels are dropped unless
// KeepAll is set; degenerate tiles are always dropped. Tile records are
// named <base>_t<index><ext> after the source image.
func TileRecord(rec *annotation.LabelRecord, opts PrepOptions) []TiledRecord {
	base, ext := splitImageName(rec.ImageName)

	var out []TiledRecord
	for _, t := range tiling.Plan(rec.Width, rec.Height, opts.TileSize, opts.Overlap) {
		if t.Degenerate() {
			continue
		}
		entries := ClipRecord(rec, t, opts.MinArea)
		if len(entries) == 0 && !opts.KeepAll {
			continue
		}
		out = append(out, TiledRecord{
			Tile: t,
			Record: &annotation.LabelRecord{
				ImageName: fmt.Sprintf("%s_t%d%s", base, t.Index, ext),
				Width:     t.Width(),
				Height:    t.Height(),
				Entries:   entries,
			},
		})
	}
	return out
}

// CropTile extracts the tile's pixels from the full image, optionally
// rescaled to resize x resize. Bilinear is good enough here; tiles are
// cut once during preparation, not per frame.
func CropTile(img image.Image, t tiling.Tile, resize int) image.Image {
	src := image.Rect(t.X1, t.Y1, t.X2, t.Y2).Add(img.Bounds().Min)

	if resize <= 0 || (t.Width() == resize && t.Height() == resize) {
		dst := image.NewRGBA(image.Rect(0, 0, t.Width(), t.Height()))
		xdraw.Copy(dst, image.Point{}, img, src, xdraw.Src, nil)
		return dst
	}

	dst := image.NewRGBA(image.Rect(0, 0, resize, t.Height()*resize/t.Width()))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}

func splitImageName(name string) (base, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}
