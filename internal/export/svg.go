package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/pdelab/internal/pde"
)

// ProfileToSVG renders one spatial profile u(x) as an SVG polyline.
func ProfileToSVG(x, u []float64, width, height int, strokeColor string) string {
	if len(x) < 2 || len(x) != len(u) {
		return ""
	}

	minX, maxX := x[0], x[len(x)-1]
	minY, maxY := u[0], u[0]
	for _, v := range u {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range x {
		px := (x[i] - minX) / rangeX * float64(width)
		py := float64(height) - (u[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// FieldToSVG renders the time evolution of a solved field as a stack of
// profiles: rows evenly spaced in time, fading from dim (early) to full
// opacity (final). rows is clamped to the number of time levels.
func FieldToSVG(res *pde.SolveResult, width, height, rows int) string {
	if res == nil || len(res.Field) == 0 || res.Grid == nil {
		return ""
	}
	nt := res.Grid.Nt()
	if rows < 2 {
		rows = 2
	}
	if rows > nt {
		rows = nt
	}

	x := res.Grid.X()
	minX, maxX := x[0], x[len(x)-1]
	minY, maxY := res.Field[0][0], res.Field[0][0]
	for _, row := range res.Field {
		for _, v := range row {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for k := 0; k < rows; k++ {
		idx := k * (nt - 1) / (rows - 1)
		opacity := 0.25 + 0.75*float64(k)/float64(rows-1)

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#00ff88" stroke-width="1.2" stroke-opacity="%.2f" d="M`, opacity))
		for i := range x {
			px := (x[i] - minX) / rangeX * float64(width)
			py := float64(height) - (res.Field[idx][i]-minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
