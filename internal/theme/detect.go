package theme

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// EnvPrefix prefixes the color override variables, e.g. FILE_ORGANIZER_FG.
const EnvPrefix = "FILE_ORGANIZER_"

var (
	hexLong  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hexShort = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
)

// terminalConfig is one place a terminal palette can come from.
type terminalConfig struct {
	paths []string // relative to the home directory, first readable wins
	parse func(path string) (Palette, bool)
}

// Priority order: Omarchy, Alacritty, Kitty, Foot.
var terminalConfigs = []terminalConfig{
	{paths: []string{".config/omarchy/current/theme/alacritty.toml"}, parse: parseAlacritty},
	{paths: []string{".config/alacritty/alacritty.toml", ".alacritty.toml"}, parse: parseAlacritty},
	{paths: []string{".config/kitty/kitty.conf"}, parse: parseKitty},
	{paths: []string{".config/foot/foot.ini"}, parse: parseFoot},
}

// Detect loads the palette for the current user
func Detect() Palette {
	home, _ := os.UserHomeDir()
	return DetectIn(home, os.Getenv)
}

// DetectIn loads the palette from terminal configs under home, then applies
// environment overrides read through getenv.
func DetectIn(home string, getenv func(string) string) Palette {
	p := DefaultPalette()
	if home != "" {
	search:
		for _, tc := range terminalConfigs {
			for _, rel := range tc.paths {
				if found, ok := tc.parse(filepath.Join(home, filepath.FromSlash(rel))); ok {
					p = found
					break search
				}
			}
		}
	}
	return applyEnv(p, getenv)
}

type alacrittyColors struct {
	Colors struct {
		Primary struct {
			Background string `toml:"background"`
			Foreground string `toml:"foreground"`
		} `toml:"primary"`
		Selection struct {
			Background string `toml:"background"`
		} `toml:"selection"`
	} `toml:"colors"`
}

func parseAlacritty(path string) (Palette, bool) {
	var cfg alacrittyColors
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Palette{}, false
	}
	primary := cfg.Colors.Primary
	return fromColors(primary.Background, primary.Foreground, cfg.Colors.Selection.Background)
}

func parseKitty(path string) (Palette, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Palette{}, false
	}
	defer f.Close()

	values := map[string]string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		values[fields[0]] = fields[1]
	}
	return fromColors(values["background"], values["foreground"], values["selection_background"])
}

func parseFoot(path string) (Palette, bool) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Palette{}, false
	}
	colors := cfg.Section("colors")
	return fromColors(
		colors.Key("background").String(),
		colors.Key("foreground").String(),
		colors.Key("selection-background").String(),
	)
}

// fromColors builds a palette from a terminal's background, foreground and
// optional selection color. Both bg and fg are required.
func fromColors(bg, fg, selection string) (Palette, bool) {
	if bg == "" || fg == "" {
		return Palette{}, false
	}
	p := DefaultPalette()
	p.BG = normalizeHex(bg)
	p.FG = normalizeHex(fg)
	p.Muted = scaleColor(p.FG, 0.5)
	if selection != "" {
		p.AccentBg = normalizeHex(selection)
	} else {
		p.AccentBg = MixColors(p.BG, p.FG, 0.15)
	}
	return p, true
}

func applyEnv(p Palette, getenv func(string) string) Palette {
	overrides := []struct {
		key string
		dst *string
	}{
		{"BG", &p.BG},
		{"FG", &p.FG},
		{"MUTED", &p.Muted},
		{"ACCENT", &p.Accent},
	}
	for _, o := range overrides {
		if v := getenv(EnvPrefix + o.key); v != "" {
			*o.dst = normalizeHex(v)
		}
	}
	return p
}

// normalizeHex converts 0xRRGGBB, RRGGBB and #RGB to #rrggbb form. Values it
// does not understand are returned with a leading #.
func normalizeHex(color string) string {
	color = strings.TrimSpace(color)
	if strings.HasPrefix(color, "0x") || strings.HasPrefix(color, "0X") {
		color = color[2:]
	}
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	switch {
	case hexLong.MatchString(color):
		return strings.ToLower(color)
	case hexShort.MatchString(color):
		r, g, b := color[1:2], color[2:3], color[3:4]
		return strings.ToLower("#" + r + r + g + g + b + b)
	}
	return color
}

func rgb(hex string) (r, g, b float64, ok bool) {
	hex = normalizeHex(hex)
	if !hexLong.MatchString(hex) {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff), true
}

func toHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(r), uint8(g), uint8(b))
}

// scaleColor multiplies each channel by factor
func scaleColor(hex string, factor float64) string {
	r, g, b, ok := rgb(hex)
	if !ok {
		return hex
	}
	return toHex(r*factor, g*factor, b*factor)
}

// MixColors blends hex2 into hex1 by t (0 keeps hex1, 1 gives hex2)
func MixColors(hex1, hex2 string, t float64) string {
	r1, g1, b1, ok1 := rgb(hex1)
	r2, g2, b2, ok2 := rgb(hex2)
	if !ok1 || !ok2 {
		return hex1
	}
	return toHex(r1+(r2-r1)*t, g1+(g2-g1)*t, b1+(b2-b1)*t)
}
