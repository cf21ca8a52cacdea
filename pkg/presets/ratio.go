package presets

import (
	"fmt"
	"strconv"
	"strings"
)

// Ratio is a parsed "W:H" aspect ratio.
type Ratio struct {
	W int
	H int
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.W, r.H)
}

// Value returns W/H.
func (r Ratio) Value() float64 {
	return float64(r.W) / float64(r.H)
}

// ParseRatio parses "W:H". Both sides must be positive integers.
func ParseRatio(raw string) (Ratio, bool) {
	left, right, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return Ratio{}, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil || w <= 0 {
		return Ratio{}, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil || h <= 0 {
		return Ratio{}, false
	}
	return Ratio{W: w, H: h}, true
}

// ParseRatioList splits the comma separated arp_aspect_ratio value, trimming
// entries and dropping empty ones. Entries are returned as written.
func ParseRatioList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeRatio orders a ratio as smaller:larger so 16:9 and 9:16 compare
// equal. Unparseable input is returned unchanged.
func NormalizeRatio(raw string) string {
	r, ok := ParseRatio(raw)
	if !ok {
		return raw
	}
	if r.W <= r.H {
		return r.String()
	}
	return Ratio{W: r.H, H: r.W}.String()
}

// ContainsRatio reports whether target matches any entry of list in either
// orientation.
func ContainsRatio(list []string, target string) bool {
	normalized := NormalizeRatio(target)
	for _, entry := range list {
		if NormalizeRatio(entry) == normalized {
			return true
		}
	}
	return false
}

// SimplifyRatio reduces w:h by their greatest common divisor.
func SimplifyRatio(w, h int) string {
	d := gcd(w, h)
	if d == 0 {
		return fmt.Sprintf("%d:%d", w, h)
	}
	return fmt.Sprintf("%d:%d", w/d, h/d)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
