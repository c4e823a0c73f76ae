package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qline/internal/config"
	"github.com/kobzarvs/qline/internal/editor"
	"github.com/kobzarvs/qline/internal/logger"
	"github.com/kobzarvs/qline/internal/ui"
)

// App is the top-level runtime for qline.
type App struct {
	args []string
	in   io.Reader
	out  io.Writer
}

func New(args []string) *App {
	return &App{args: args, in: os.Stdin, out: os.Stdout}
}

type options struct {
	plain bool
	debug bool
}

var errUsage = errors.New("usage: qline [--plain] [--debug]")

func parseArgs(args []string) (options, error) {
	var opts options
	for _, arg := range args {
		switch arg {
		case "--plain", "-p":
			opts.plain = true
		case "--debug":
			opts.debug = true
		default:
			return opts, fmt.Errorf("%w: unknown argument %q", errUsage, arg)
		}
	}
	return opts, nil
}

func (a *App) Run() error {
	opts, err := parseArgs(a.args)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(opts.debug); err != nil {
		return err
	}
	defer logger.Close()

	parser, err := editor.NewParser(cfg.Aliases)
	if err != nil {
		return fmt.Errorf("config aliases: %w", err)
	}
	sess := editor.NewSession(sessionOptions(cfg)...)
	logger.Info("session started", "plain", opts.plain, "aliases", len(cfg.Aliases))

	if opts.plain {
		return runPlain(sess, parser, cfg.Editor, a.in, a.out)
	}

	runtime.LockOSThread()
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	return newLoop(sess, parser, cfg).run(s)
}

func sessionOptions(cfg config.Config) []editor.Option {
	var opts []editor.Option
	if cfg.Editor.SystemClipboard && !clipboard.Unsupported {
		opts = append(opts, editor.WithClipboardMirror(clipboard.WriteAll))
	}
	return opts
}

// loop is the interactive tcell front end: a prompt line whose contents
// are dispatched to the session on Enter.
type loop struct {
	sess   *editor.Session
	parser *editor.Parser
	styles ui.Styles
	marker string
	prompt *prompt

	status   string
	showHelp bool
}

func newLoop(sess *editor.Session, parser *editor.Parser, cfg config.Config) *loop {
	return &loop{
		sess:   sess,
		parser: parser,
		styles: ui.NewStyles(cfg.Theme),
		marker: cfg.Editor.Marker,
		prompt: newPrompt(cfg.Editor.Prompt+" ", cfg.Editor.HistorySize),
	}
}

func (l *loop) run(s tcell.Screen) error {
	l.draw(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if l.handleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		}
		l.draw(s)
	}
}

func (l *loop) draw(s tcell.Screen) {
	ui.Render(s, ui.Frame{
		View:        l.sess.View(),
		Marker:      l.marker,
		Prompt:      l.prompt.label,
		Input:       l.prompt.text,
		InputCursor: l.prompt.cursor,
		Status:      l.status,
		ShowHelp:    l.showHelp,
	}, l.styles)
}

// handleKey returns true when the loop should exit.
func (l *loop) handleKey(ev *tcell.EventKey) bool {
	if l.showHelp {
		l.showHelp = false
		if ev.Key() == tcell.KeyEscape {
			return false
		}
	}
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		return l.submit(l.prompt.take())
	}
	l.prompt.handleKey(ev)
	return false
}

// submit runs one raw input line. Blank lines are ignored; unknown input
// is reported on the status line.
func (l *loop) submit(raw string) bool {
	l.status = ""
	if isBlank(raw) {
		return false
	}
	cmd, arg, err := l.parser.Parse(raw)
	if err != nil {
		logger.Debug("rejected input", "raw", raw, "error", err)
		l.status = " " + err.Error()
		return false
	}
	if cmd == editor.CmdHelp {
		l.showHelp = true
	}
	if err := l.sess.Execute(cmd, arg); err != nil {
		if errors.Is(err, editor.ErrQuit) {
			return true
		}
		l.status = " " + err.Error()
	}
	return false
}
