package display

import (
	"fmt"
	"io"
	"strings"
)

// RenderBoard prints the server's ASCII board with colored pieces. Squares
// listed in highlight are drawn green; highlighted empty squares show '*'.
func RenderBoard(w io.Writer, asciiBoard string, highlight []string) {
	marked := make(map[[2]int]bool, len(highlight))
	for _, sq := range highlight {
		if len(sq) == 2 {
			// row 0 is rank 8, matching the ASCII layout
			marked[[2]int{int('8' - sq[1]), int(sq[0] - 'a')}] = true
		}
	}

	lines := strings.Split(asciiBoard, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		isFileLine := i == 0 || i == len(lines)-1
		row := i - 1

		for j, char := range line {
			// cells sit at columns 2, 4, ... 16 of a rank line
			col := -1
			if !isFileLine && j >= 2 && j < 18 && j%2 == 0 {
				col = (j - 2) / 2
			}
			if col >= 0 && marked[[2]int{row, col}] {
				if char == '.' {
					char = '*'
				}
				fmt.Fprintf(w, "%s%c%s", Green, char, Reset)
				continue
			}

			switch {
			case isFileLine && char >= 'a' && char <= 'h':
				fmt.Fprintf(w, "%s%c%s", Cyan, char, Reset)
			case char == 'w' || char == 'W':
				fmt.Fprintf(w, "%s%c%s", Blue, char, Reset)
			case char == 'b' || char == 'B':
				fmt.Fprintf(w, "%s%c%s", Red, char, Reset)
			case char >= '1' && char <= '8':
				fmt.Fprintf(w, "%s%c%s", Cyan, char, Reset)
			default:
				fmt.Fprintf(w, "%c", char)
			}
		}
		fmt.Fprintln(w)
	}
}

// ColorForTurn returns colored turn indicator
func ColorForTurn(turn string) string {
	if turn == "w" {
		return Blue + "White" + Reset
	}
	return Red + "Black" + Reset
}
