package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/otbase"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
)

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for inspecting OpenType baseline tables and font diagnostics.")

	commando.
		Register("font").
		SetDescription("Print diagnostics and table information for an OpenType font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "OpenType font file path", "").
		AddArgument("tables...", "optional list of table tags (e.g. BASE,head)", "").
		AddFlag("strict,S", "reject unknown BaseCoord formats", commando.Bool, nil).
		AddFlag("verify,C", "verify table checksums", commando.Bool, nil).
		AddFlag("errors,e", "print parse errors and warnings", commando.Bool, nil).
		AddFlag("verbose,V", "trace font decoding and queries", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.
		Register("baselines").
		SetDescription("Print baseline positions and extents of a script from the BASE table.").
		SetShortDescription("query baselines").
		AddArgument("font", "OpenType font file path", "").
		AddFlag("script,s", "script (ISO 15924, e.g. Latn, Cyrl, Hani); derived from --lang if '-'", commando.String, "-").
		AddFlag("lang,l", "language tag (BCP 47, e.g. en, de, ja)", commando.String, "en").
		AddFlag("axis,a", "axis: h|v", commando.String, "h").
		AddFlag("feature,f", "feature tag for feature-specific extents", commando.String, "-").
		AddFlag("follow,F", "follow BaseCoord offsets of BaseValues tables", commando.Bool, nil).
		AddFlag("verbose,V", "trace font decoding and queries", commando.Bool, nil).
		SetAction(runBaselinesCommand)

	commando.Parse(nil)
}

// scriptAndLang resolves the --script and --lang flags to OpenType tags.
func scriptAndLang(flags map[string]commando.FlagValue) (ot.Tag, ot.Tag, error) {
	lang, err := parseLanguage(flags["lang"])
	if err != nil {
		return 0, 0, err
	}
	script, langsys := otquery.ForLanguage(lang)
	s, err := flags["script"].GetString()
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --script flag: %w", err)
	}
	if s = strings.TrimSpace(s); s != "" && s != "-" {
		scr, err := language.ParseScript(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid script %q: %w", s, err)
		}
		script = otquery.ScriptTag(scr)
	}
	return script, langsys, nil
}

func parseLanguage(flag commando.FlagValue) (language.Tag, error) {
	s, err := flag.GetString()
	if err != nil {
		return language.Und, fmt.Errorf("invalid --lang flag: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		s = "en"
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	return tag, nil
}

func parseAxis(s string) (otquery.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "h", "horizontal":
		return otquery.Horizontal, nil
	case "v", "vertical":
		return otquery.Vertical, nil
	}
	return otquery.Horizontal, fmt.Errorf("unsupported axis %q (expected h|v)", s)
}

func parseFeature(flag commando.FlagValue) (ot.Tag, error) {
	s, err := flag.GetString()
	if err != nil {
		return 0, fmt.Errorf("invalid --feature flag: %w", err)
	}
	if s = strings.TrimSpace(s); s == "" || s == "-" {
		return 0, nil
	}
	if len(s) > 4 {
		return 0, fmt.Errorf("feature tag %q is longer than 4 characters", s)
	}
	return ot.T(s), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func parseOptions(flags map[string]commando.FlagValue) []ot.ParseOption {
	var opts []ot.ParseOption
	if flagSet(flags, "strict") {
		opts = append(opts, ot.StrictCoordFormats)
	}
	if flagSet(flags, "follow") {
		opts = append(opts, ot.FollowCoordOffsets)
	}
	if flagSet(flags, "verify") {
		opts = append(opts, ot.VerifyChecksums)
	}
	return opts
}

// flagSet is false for flags not registered with a command.
func flagSet(flags map[string]commando.FlagValue, name string) bool {
	f, ok := flags[name]
	if !ok {
		return false
	}
	return mustFlagBool(f, name)
}

// traceConfig returns the trace levels for the library's tracers. With
// verbose set, decoding and queries are traced at level Info.
func traceConfig(verbose bool) testconfig.Conf {
	level := "Error"
	if verbose {
		level = "Info"
	}
	return testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.font.opentype": level,
		"trace.otbase":        level,
		"trace.otbase.query":  level,
	}
}

// setupTracing routes the library's tracers to the Go logger, which writes
// to stderr.
func setupTracing(flags map[string]commando.FlagValue) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := traceConfig(flagSet(flags, "verbose"))
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func mustLoadFont(path string, opts ...ot.ParseOption) *otbase.Font {
	f, err := otbase.LoadFont(path, opts...)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	return f
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}
