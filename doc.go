// Package chipmd renders a small Markdown dialect into a content tree with
// tracked insertion points.
//
// Callers split a message into text segments around the places where rich
// elements ("chips") belong. PrepareText joins the segments with a reserved
// sentinel rune, and Render parses the result into a tree whose slot nodes
// mark each sentinel position, in order. The caller then splices chips into
// those slots.
//
// The dialect is deliberately small:
//   - Paragraphs, ATX headings (#..######), fenced code blocks (```lang)
//   - Unordered (- or *) and ordered (1. or 1)) lists, one level deep
//   - Inline *bold*, /italic/, ~strikethrough~, _underline_ and `code`,
//     never nested
//
// Fenced code tagged js, javascript, ts or typescript gets a best-effort
// highlight of comments, strings, keywords and numbers.
//
// Example:
//
//	text := chipmd.PrepareText([]string{"Ask ", " to *search* the web."})
//	res := chipmd.Render(text)
//	res.InsertionPoints[0].Node.Fill(chip)
//	err := chipmd.WriteANSI(chipmd.ANSIRequest{
//		Writer: os.Stdout,
//		Tree:   res.Tree,
//		Width:  80,
//		Theme:  chipmd.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The tree type is pluggable: RenderWith accepts any Builder, so the same
// parser can target a DOM binding, a virtual-node tree or a test double.
// Parsing and rendering never fail and keep no state between calls.
package chipmd
