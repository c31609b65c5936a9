package export

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// WriteCSV writes every field double-quoted, with embedded quotes doubled,
// and records separated by a bare newline.
func WriteCSV(w io.Writer, rows iter.Seq[[]string]) error {
	bw := bufio.NewWriter(w)
	first := true
	for rec := range rows {
		if !first {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		first = false
		for i, field := range rec {
			if i > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(quote(field)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
