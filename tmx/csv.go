package tmx

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeCSV renders a grid the way Tiled stores CSV layer data: one row per
// line, every row but the last ending in a comma.
func EncodeCSV(grid [][]int) string {
	var b strings.Builder
	b.WriteByte('\n')
	for y, row := range grid {
		for x, v := range row {
			if x > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v))
		}
		if y < len(grid)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodeCSV parses CSV layer data back into rows.
func DecodeCSV(s string) ([][]int, error) {
	var out [][]int
	for i, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ",")
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %w", ErrMalformed, i, j, err)
			}
			row[j] = v
		}
		out = append(out, row)
	}
	return out, nil
}
