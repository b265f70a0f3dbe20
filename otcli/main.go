package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otbase"
	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otbase.cli'
func tracer() tracing.Trace {
	return tracing.Select("otbase.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.otbase.cli":    "Info",
		"trace.font.opentype": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	strict := flag.Bool("strict", false, "Reject unknown BaseCoord formats")
	follow := flag.Bool("follow", false, "Follow BaseCoord offsets of BaseValues tables")
	verify := flag.Bool("verify", false, "Verify table checksums")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)      // will set the correct level later
	pterm.Info.Println("Welcome to the BASE table CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("base > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	opts := parseOptions(*strict, *follow, *verify)
	if err := intp.loadFont(*fontname, opts...); err != nil { // font name provided by flag
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func parseOptions(strict, follow, verify bool) []ot.ParseOption {
	var opts []ot.ParseOption
	if strict {
		opts = append(opts, ot.StrictCoordFormats)
	}
	if follow {
		opts = append(opts, ot.FollowCoordOffsets)
	}
	if verify {
		opts = append(opts, ot.VerifyChecksums)
	}
	return opts
}

// Intp is our interpreter object. It keeps the font and the BASE path the
// user has walked so far: an axis, a script within it, and a language system.
type Intp struct {
	font   *otbase.Font
	repl   *readline.Instance
	axis   otquery.Direction
	script ot.Tag
	lang   ot.Tag
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( font=%s, axis=%s )", intp.font.Fontname, intp.axis))
	if intp.script != 0 {
		sb.WriteString(fmt.Sprintf(" -> script '%s'", intp.script))
	}
	if intp.lang != 0 {
		sb.WriteString(fmt.Sprintf(" -> lang '%s'", intp.lang))
	}
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code   int
	arg    string
	format string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TABLES
	ENTRY
	BASE
	AXIS
	SCRIPT
	LANG
	EXTENT
	ERRORS
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"tables": TABLES,
	"entry":  ENTRY,
	"base":   BASE,
	"axis":   AXIS,
	"script": SCRIPT,
	"lang":   LANG,
	"extent": EXTENT,
	"errors": ERRORS,
}

var opNames = []string{
	"quit",
	"help",
	"tables",
	"entry",
	"base",
	"axis",
	"script",
	"lang",
	"extent",
	"errors",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
		command.op[i].format = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many commands in one line: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "script:latn" or "entry:5" or "help:coord" or "base"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].format = getOptArg(c, 2)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	TABLES: tablesOp,
	ENTRY:  entryOp,
	BASE:   baseOp,
	AXIS:   axisOp,
	SCRIPT: scriptOp,
	LANG:   langOp,
	EXTENT: extentOp,
	ERRORS: errorsOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string, opts ...ot.ParseOption) (err error) {
	if fontname == "" {
		return errors.New("no font given, use flag -font")
	}
	intp.font, err = otbase.LoadFont(fontname, opts...)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	tracer().Infof("loaded font = %s", intp.font.Fontname)
	pterm.Printf("font tables: %v\n", intp.font.OT.TableTags())
	if !intp.font.HasBaselines() {
		pterm.Info.Println("font has no usable BASE table")
	}
	return nil
}

// ----------------------------------------------------------------------

var ErrNoBase = errors.New("font has no usable BASE table")
var ErrNoScript = errors.New("no script set")

func (intp *Intp) checkBase() (*ot.BaseTable, error) {
	if intp.font == nil || !intp.font.HasBaselines() {
		return nil, ErrNoBase
	}
	return intp.font.OT.Base, nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
