package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"pkt.systems/chipmd"
)

const defaultMarker = "{{chip}}"

// chip is a capability reference declared in front matter.
type chip struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type frontMatter struct {
	Chips []chip `yaml:"chips"`
}

// document is a message split into segments around chip markers.
type document struct {
	Segments []string
	Chips    []chip
}

// parseDocument reads optional YAML (or JSON) front matter listing chips
// and splits the body on marker. An empty marker keeps the body whole.
func parseDocument(src []byte, marker string) (document, error) {
	var doc document
	meta, body, ok := chipmd.SplitFrontMatter(src)
	if ok {
		var fm frontMatter
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return doc, fmt.Errorf("front matter: %w", err)
		}
		for i, c := range fm.Chips {
			if strings.TrimSpace(c.Name) == "" && strings.TrimSpace(c.Label) == "" {
				return doc, fmt.Errorf("front matter: chip %d has neither name nor label", i)
			}
		}
		doc.Chips = fm.Chips
	}
	text := strings.TrimSuffix(string(body), "\n")
	if marker == "" {
		doc.Segments = []string{text}
	} else {
		doc.Segments = strings.Split(text, marker)
	}
	return doc, nil
}

func (c chip) label() string {
	if c.Label != "" {
		return c.Label
	}
	return "@" + c.Name
}

func (c chip) node() *chipmd.Node {
	b := chipmd.NodeBuilder{}
	return b.Element(chipmd.ChipTag(c.URL), b.Text(c.label()))
}

// spliceChips fills insertion points with chips pairwise. Excess points
// stay empty and excess chips are ignored. It returns the number filled.
func spliceChips(points []chipmd.InsertionPoint[*chipmd.Node], chips []chip) int {
	n := min(len(points), len(chips))
	for i := 0; i < n; i++ {
		points[i].Node.Fill(chips[i].node())
	}
	return n
}
