package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/kobzarvs/qline/internal/config"
	"github.com/kobzarvs/qline/internal/editor"
	"github.com/kobzarvs/qline/internal/logger"
	"github.com/kobzarvs/qline/internal/ui"
)

// runPlain reads one command per line from in and prints the rows after
// every command. Unrecognized lines are skipped silently; "?" prints the
// help listing instead of the rows.
func runPlain(sess *editor.Session, parser *editor.Parser, opts config.EditorOptions, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, opts.Prompt+" ")
		if !sc.Scan() {
			break
		}
		raw := sc.Text()
		cmd, arg, err := parser.Parse(raw)
		if err != nil {
			logger.Debug("rejected input", "raw", raw, "error", err)
			continue
		}
		if err := sess.Execute(cmd, arg); err != nil {
			if errors.Is(err, editor.ErrQuit) {
				return nil
			}
			return err
		}
		if cmd == editor.CmdHelp {
			fmt.Fprint(out, ui.HelpText())
			continue
		}
		fmt.Fprint(out, ui.Text(sess.View(), opts.Marker))
	}
	fmt.Fprintln(out)
	return sc.Err()
}
