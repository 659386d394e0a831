package repair

import (
	"github.com/go-ego/gse"
	"github.com/sirupsen/logrus"
)

type gseSegmenter struct {
	seg gse.Segmenter
}

// NewGseSegmenter loads the traditional-Chinese dictionary and returns a
// Segmenter backed by gse. Callers should treat a load failure as
// non-fatal and run the pipeline without resegmentation.
func NewGseSegmenter() (Segmenter, error) {
	g := &gseSegmenter{}
	if err := g.seg.LoadDict("zh_t"); err != nil {
		return nil, err
	}
	logrus.Debug("Chinese segmentation dictionary loaded")
	return g, nil
}

func (g *gseSegmenter) Cut(text string) []string {
	return g.seg.Cut(text, true)
}
