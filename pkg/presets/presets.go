// Package presets handles the dimension preset text stored in the
// arp_presets option. The grammar is line based: ">" starts a labelled
// group, "#" starts a comment and "WIDTH x HEIGHT" lines are entries.
package presets

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultText is the preset list used until the user edits the option.
const DefaultText = `> Portrait
640 x 1536
768 x 1344
832 x 1216
896 x 1152

> Landscape
1536 x 640
1344 x 768
1216 x 832
1152 x 896`

// Textbox height limits for the presets editor.
const (
	MinDisplayLines = 5
	MaxDisplayLines = 40
)

// OthersLabel names the group collecting entries listed before any label.
const OthersLabel = "Others"

// Preset is a single width/height entry.
type Preset struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Group is a labelled list of presets.
type Group struct {
	Label   string   `json:"label" yaml:"label"`
	Presets []Preset `json:"presets" yaml:"presets"`
}

var presetLine = regexp.MustCompile(`(?i)^(\d+)\s*x\s*(\d+)$`)

// LineCount returns the number of lines in text, counting newlines plus one.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// DisplayLines clamps LineCount(text) into [MinDisplayLines, MaxDisplayLines].
func DisplayLines(text string) int {
	return max(MinDisplayLines, min(MaxDisplayLines, LineCount(text)))
}

// Parse splits preset text into groups. Entries that appear before the first
// label land in a group labelled OthersLabel when autoLabel is set, or in an
// unlabelled group otherwise. Lines that are neither labels nor entries are
// ignored.
func Parse(text string, autoLabel bool) []Group {
	var (
		groups  []Group
		current *Group
	)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &Group{Label: strings.TrimSpace(line[1:])}
			continue
		}
		preset, ok := parseEntry(line)
		if !ok {
			continue
		}
		if current == nil {
			current = &Group{}
			if autoLabel {
				current.Label = OthersLabel
			}
		}
		current.Presets = append(current.Presets, preset)
	}
	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}

func parseEntry(line string) (Preset, bool) {
	match := presetLine.FindStringSubmatch(line)
	if match == nil {
		return Preset{}, false
	}
	width, err := strconv.Atoi(match[1])
	if err != nil {
		return Preset{}, false
	}
	height, err := strconv.Atoi(match[2])
	if err != nil {
		return Preset{}, false
	}
	return Preset{Width: width, Height: height}, true
}
