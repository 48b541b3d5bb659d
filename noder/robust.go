package noder

import (
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/geomerr"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/precision"
)

// Noder is satisfied by MCIndexNoder and SnapRoundingNoder.
type Noder interface {
	Node(strings []*SegmentString, opts geomopts.Options) ([]*SegmentString, error)
}

// NodeRobust runs a three-stage escalation: (a) floating-precision MC
// noder; on a TopologyException, (b) snap rounding at a precision
// derived from the data envelope; on another TopologyException, (c)
// snap rounding at a coarser precision. The final failure (if any) is
// returned. overlay.Compute and relate.Compute both run their noding
// through this escalation.
func NodeRobust(strings []*SegmentString, opts geomopts.Options) ([]*SegmentString, error) {
	logDebugf("noding %d segment strings at floating precision", len(strings))
	var mc MCIndexNoder
	out, err := mc.Node(strings, opts)
	if err == nil {
		return out, nil
	}
	if !geomerr.IsTopology(err) {
		return nil, err
	}
	logDebugf("floating-precision noding failed (%v), escalating to snap rounding", err)

	env := combinedEnvelope(strings)
	diagonal := env.Diagonal()

	for _, digits := range []int{12, 8} {
		model := precision.FixedFromEnvelopeDiagonal(diagonal, digits)
		logDebugf("snap rounding at %d significant digits over envelope diagonal %g", digits, diagonal)
		snr := SnapRoundingNoder{Model: model}
		out, err = snr.Node(strings, opts)
		if err == nil {
			return out, nil
		}
		if !geomerr.IsTopology(err) {
			return nil, err
		}
		logDebugf("snap rounding at %d digits failed (%v)", digits, err)
	}

	logDebugf("noding exhausted all escalation precisions")
	return nil, geomerr.NewTopologyAt(env, "noding failed at floating and both snap-rounding escalation precisions")
}

func combinedEnvelope(strings []*SegmentString) envelope.Envelope {
	out := envelope.Null()
	for _, s := range strings {
		out = out.ExpandToInclude(s.Envelope())
	}
	return out
}
