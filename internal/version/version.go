package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the jscs CLI, overridable at build time via
// -ldflags.
var (
	// Number is the plain semantic version. Machine-readable output
	// (JSON, SARIF, --version) uses this form only.
	Number = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var segmentColors = [3]*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders Number with each major.minor.patch segment tinted for
// terminal display. A version that does not split into three segments
// comes back as-is.
func Colored() string {
	core := Number
	var suffix string
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Number
	}
	for i, p := range parts {
		parts[i] = segmentColors[i].Sprint(p)
	}
	return strings.Join(parts, ".") + suffix
}
