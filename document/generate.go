package document

import (
	"fmt"

	"github.com/grovetools/sticky/util/sanitize"
)

var filler = []string{
	"Headers stay pinned while their section crosses the top edge.",
	"A placeholder keeps the rows below from jumping.",
	"The next section pushes the header out as it arrives.",
	"Geometry is measured at most once per frame.",
	"Scroll, resize and touch events all request a frame.",
}

// Generate builds a document of n sections with lines body rows each,
// named "Section 1" through "Section n".
func Generate(n, lines int) *Document {
	doc := &Document{Title: "demo", Path: "demo"}
	for i := 1; i <= n; i++ {
		heading := fmt.Sprintf("Section %d", i)
		sec := Section{
			Heading: heading,
			Level:   2,
			Anchor:  sanitize.ForAnchor(heading),
			Source:  "demo",
		}
		for j := 0; j < lines; j++ {
			sec.Lines = append(sec.Lines, fmt.Sprintf("%d.%d  %s", i, j+1, filler[(i+j)%len(filler)]))
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}
