package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`           _                               `, "#34d399"},
	{` _ __ ___ | |__   _____      ___ __ __ _ _ __  `, "#2dd4bf"},
	{`| '_ ` + "`" + ` _ \| '_ \ / __\ \ /\ / / '__/ _` + "`" + ` | '_ \ `, "#22d3ee"},
	{`| | | | | | | | | (__ \ V  V /| | | (_| | |_) |`, "#38bdf8"},
	{`|_| |_| |_|_| |_|\___| \_/\_/ |_|  \__,_| .__/ `, "#60a5fa"},
	{`                                        |_|    `, "#818cf8"},
}

// PrintBanner writes the mhcwrap banner to w, coloured for the detected profile.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w, termenv.String("  mhcflurry wrapper "+version).Faint())
	fmt.Fprintln(w)
}
