package render

import (
	"bufio"
	"io"

	"lifegrid/pkg/sims/life"
)

// Text writes the snapshot as rows of "O " and ". ", one line per row.
func Text(w io.Writer, s life.Snapshot) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := ". "
			if s.Alive(y, x) {
				cell = "O "
			}
			if _, err := bw.WriteString(cell); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
