package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/otbase/ot"
	"github.com/npillmayer/otbase/otquery"
	"github.com/pterm/pterm"
)

func tablesOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errors.New("no font loaded"), false
	}
	printDirectory(intp.font.OT.Directory)
	return nil, false
}

func entryOp(intp *Intp, op *Op) (err error, stop bool) {
	if intp.font == nil {
		return errors.New("no font loaded"), false
	}
	td := intp.font.OT.Directory
	arg, ok := op.hasArg()
	if !ok {
		pterm.Printf("table directory has %d entries\n", td.Len())
		return
	}
	var e ot.DirectoryEntry
	if i, err2 := strconv.Atoi(arg); err2 == nil {
		if e, err = td.Entry(i); err != nil {
			return
		}
	} else if e, ok = td.EntryByTag(ot.T(arg)); !ok {
		return fmt.Errorf("table '%s' not found in font", arg), false
	}
	pterm.Printf("%s\n", e)
	if terr := intp.font.OT.TableError(e.Tag); terr != nil {
		pterm.Error.Println(terr)
	}
	return
}

func baseOp(intp *Intp, op *Op) (error, bool) {
	base, err := intp.checkBase()
	if err != nil {
		return err, false
	}
	pterm.Println(base.String())
	return nil, false
}

func axisOp(intp *Intp, op *Op) (error, bool) {
	base, err := intp.checkBase()
	if err != nil {
		return err, false
	}
	switch op.arg {
	case "", "h", "horizontal":
		intp.axis = otquery.Horizontal
	case "v", "vertical":
		intp.axis = otquery.Vertical
	default:
		return fmt.Errorf("unknown axis '%s', use h or v", op.arg), false
	}
	intp.script, intp.lang = 0, 0
	axis, ok := base.Horizontal()
	if intp.axis == otquery.Vertical {
		axis, ok = base.Vertical()
	}
	if !ok {
		pterm.Printf("font has no %s axis\n", intp.axis)
		return nil, false
	}
	pterm.Printf("baselines: %v\n", axis.BaselineTags())
	pterm.Printf("scripts:   %v\n", axis.ScriptTags())
	return nil, false
}

func scriptOp(intp *Intp, op *Op) (error, bool) {
	if _, err := intp.checkBase(); err != nil {
		return err, false
	}
	tag, ok := op.hasArg()
	if !ok {
		if intp.script == 0 {
			return ErrNoScript, false
		}
		tag = intp.script.String()
	}
	intp.script, intp.lang = ot.T(tag), 0
	set, ok := otquery.Baselines(intp.font.OT, intp.axis, intp.script)
	if !ok {
		return fmt.Errorf("no baselines for script '%s' on %s axis", tag, intp.axis), false
	}
	if set.Script != intp.script {
		pterm.Info.Printf("script '%s' not in font, using '%s'\n", intp.script, set.Script)
	}
	printBaselines(set)
	return nil, false
}

func langOp(intp *Intp, op *Op) (error, bool) {
	if _, err := intp.checkBase(); err != nil {
		return err, false
	}
	if intp.script == 0 {
		return ErrNoScript, false
	}
	tag, ok := op.hasArg()
	if !ok {
		intp.lang = 0
		return nil, false
	}
	intp.lang = ot.T(tag)
	scr, lang := otquery.FontSupportsScript(intp.font.OT, intp.axis, intp.script, intp.lang)
	pterm.Printf("records used: script '%s', language '%s'\n", scr, lang)
	return extentOp(intp, &Op{code: EXTENT})
}

func extentOp(intp *Intp, op *Op) (error, bool) {
	if _, err := intp.checkBase(); err != nil {
		return err, false
	}
	if intp.script == 0 {
		return ErrNoScript, false
	}
	var feature ot.Tag
	if tag, ok := op.hasArg(); ok {
		feature = ot.T(tag)
	}
	ext, ok := otquery.MinMaxExtent(intp.font.OT, intp.axis, intp.script, intp.lang, feature)
	if !ok {
		pterm.Printf("no extents for script '%s'\n", intp.script)
		return nil, false
	}
	printExtent(ext)
	return nil, false
}

func errorsOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errors.New("no font loaded"), false
	}
	printErrors(intp.font.OT.Errors(), intp.font.OT.Warnings())
	return nil, false
}
