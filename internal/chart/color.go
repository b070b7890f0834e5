package chart

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ResolveColor turns a color token into RGBA. Accepted tokens are
// #rgb, #rgba, #rrggbb, #rrggbbaa and the SVG 1.1 color names.
// Hex digits without the leading '#' are rejected so that names such
// as "tan" are never read as hex.
func ResolveColor(token string) (gg.RGBA, error) {
	if strings.HasPrefix(token, "#") {
		return gg.ParseHex(token)
	}
	if c, ok := colornames.Map[strings.ToLower(token)]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("unknown color %q", token)
}

// ValidColor reports whether token can be drawn. The empty token is
// valid: encoders substitute the default palette.
func ValidColor(token string) bool {
	if token == "" {
		return true
	}
	_, err := ResolveColor(token)
	return err == nil
}
