package noder

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/index"
	"github.com/geos2d/core/precision"
)

// SnapRoundingNoder is the fixed-precision noder: it snaps
// every vertex and every computed intersection to the center of its
// "hot pixel" on the target grid, so the output is vertex-exact at that
// precision and free of near-coincident crossings within the grid
// tolerance.
//
// Algorithm:
//  1. Collect hot pixels from every input vertex.
//  2. Run the MC-index noder once at floating precision to find
//     additional intersections; each becomes an extra hot pixel.
//  3. For every segment of the original (un-rounded) strings, find
//     candidate hot pixels via a spatial index over the pixels' safe
//     envelopes and add each qualifying pixel's center as a vertex.
//  4. Re-node the enriched, snapped vertex set.
type SnapRoundingNoder struct {
	Model precision.Model
}

// Node computes the snap-rounded noded output of strings.
func (n SnapRoundingNoder) Node(strings []*SegmentString, opts geomopts.Options) ([]*SegmentString, error) {
	pixels := collectVertexPixels(strings, n.Model)

	// Step 2: a first floating-precision noding pass surfaces proper
	// intersections that are not already input vertices; each becomes
	// an extra hot pixel to snap to.
	var mc MCIndexNoder
	noded, err := mc.Node(cloneStrings(strings), geomopts.Options{})
	if err == nil {
		for _, s := range noded {
			for i := 0; i < s.Size(); i++ {
				pixels = appendPixel(pixels, NewHotPixel(s.seq.Get(i), n.Model))
			}
		}
	}

	snapped := snapStringsToPixels(strings, pixels, n.Model)

	var final MCIndexNoder
	out, err := final.Node(snapped, opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func cloneStrings(strings []*SegmentString) []*SegmentString {
	out := make([]*SegmentString, len(strings))
	for i, s := range strings {
		out[i] = NewSegmentString(s.seq.Clone(), s.data)
	}
	return out
}

func collectVertexPixels(strings []*SegmentString, model precision.Model) []HotPixel {
	var pixels []HotPixel
	for _, s := range strings {
		for i := 0; i < s.Size(); i++ {
			pixels = appendPixel(pixels, NewHotPixel(s.seq.Get(i), model))
		}
	}
	return pixels
}

// appendPixel adds px unless a pixel already at the same center exists.
func appendPixel(pixels []HotPixel, px HotPixel) []HotPixel {
	for _, p := range pixels {
		if p.center.Eq(px.center) {
			return pixels
		}
	}
	return append(pixels, px)
}

// snapStringsToPixels builds a spatial index of pixel safe envelopes,
// then for every segment of every input string inserts every pixel
// whose safe envelope the segment passes through as a vertex (snapped
// to the pixel's center), producing the enriched vertex set step 4
// re-nodes.
func snapStringsToPixels(strings []*SegmentString, pixels []HotPixel, model precision.Model) []*SegmentString {
	tree := index.NewSTRTree(10)
	for i, px := range pixels {
		tree.Insert(pixelItem{idx: i, env: px.safeEnv})
	}
	tree.Build()

	out := make([]*SegmentString, 0, len(strings))
	for _, s := range strings {
		out = append(out, NewSegmentString(snapSequence(s.seq, pixels, tree, model), s.data))
	}
	return out
}

type pixelItem struct {
	idx int
	env envelope.Envelope
}

func (p pixelItem) Envelope() envelope.Envelope { return p.env }

func snapSequence(seq coordinate.Sequence, pixels []HotPixel, tree *index.STRTree, model precision.Model) coordinate.Sequence {
	var out []coordinate.Coordinate
	n := seq.Size()
	if n == 0 {
		return seq
	}
	for i := 0; i < n-1; i++ {
		p1, p2 := seq.Get(i), seq.Get(i+1)
		out = append(out, snapVertex(p1, pixels, model))

		segEnv := envelope.New(p1.X, p1.Y, p2.X, p2.Y)
		hits := tree.Query(segEnv)
		var onSegment []HotPixel
		for _, item := range hits {
			px := pixels[item.(pixelItem).idx]
			if px.Intersects(p1, p2) && !px.center.Eq(p1) && !px.center.Eq(p2) {
				onSegment = append(onSegment, px)
			}
		}
		sortPixelsAlongSegment(onSegment, p1)
		for _, px := range onSegment {
			out = append(out, px.center)
		}
	}
	out = append(out, snapVertex(seq.Get(n-1), pixels, model))

	dedup := out[:0:0]
	for _, c := range out {
		if len(dedup) > 0 && dedup[len(dedup)-1].Eq(c) {
			continue
		}
		dedup = append(dedup, c)
	}
	if len(dedup) == 1 {
		dedup = append(dedup, dedup[0])
	}
	return coordinate.NewSequence(seq.Shape(), dedup...)
}

func snapVertex(pt coordinate.Coordinate, pixels []HotPixel, model precision.Model) coordinate.Coordinate {
	x, y := model.MakePreciseXY(pt.X, pt.Y)
	return coordinate.NewXY(x, y)
}

func sortPixelsAlongSegment(pixels []HotPixel, from coordinate.Coordinate) {
	for i := 1; i < len(pixels); i++ {
		j := i
		for j > 0 && from.DistanceSquared(pixels[j].center) < from.DistanceSquared(pixels[j-1].center) {
			pixels[j], pixels[j-1] = pixels[j-1], pixels[j]
			j--
		}
	}
}
