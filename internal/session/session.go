package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/fastygo/lys/api/transport"
	"github.com/fastygo/lys/pkg/logger"
	"github.com/fastygo/lys/usecase"
)

// State of the read-eval-print loop.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session owns the console handles for one run of the assistant.
// Commands are read and executed strictly one at a time.
type Session struct {
	name       string
	in         *bufio.Reader
	out        *bufio.Writer
	dispatcher *usecase.Dispatcher
	logger     *zap.Logger
	state      State
}

// New acquires the input and output for a session. Close must be called to flush output.
func New(name string, in io.Reader, out io.Writer, dispatcher *usecase.Dispatcher, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		name:       name,
		in:         bufio.NewReader(in),
		out:        bufio.NewWriter(out),
		dispatcher: dispatcher,
		logger:     logger,
		state:      Running,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run greets the user and serves commands until "bye" or the end of input.
func (s *Session) Run(ctx context.Context) error {
	log := logger.WithSessionID(ctx, s.logger)
	log.Info("session started")

	if err := s.show(transport.Greeting(s.name)); err != nil {
		return err
	}

	for s.state == Running {
		line, err := s.readLine()
		if err == io.EOF {
			log.Info("input closed before bye")
			break
		}
		if err != nil {
			log.Error("failed to read input", zap.Error(err))
			return err
		}

		if err := s.handle(ctx, log, line); err != nil {
			return err
		}
	}

	log.Info("session ended", zap.Stringer("state", s.state))
	return nil
}

func (s *Session) handle(ctx context.Context, log *zap.Logger, line string) error {
	cmd := transport.ParseCommand(line)

	res, err := s.dispatcher.Execute(ctx, cmd.Keyword, cmd.Args)
	if err != nil {
		log.Debug("command rejected", zap.String("keyword", cmd.Keyword), zap.Error(err))
		return s.show(transport.FormatError(err))
	}
	log.Debug("command handled",
		zap.String("keyword", cmd.Keyword),
		zap.Bool("query", s.dispatcher.IsQuery(cmd.Keyword)),
	)

	for _, msg := range res.Messages {
		if err := s.show(msg); err != nil {
			return err
		}
	}
	if res.Terminate {
		s.state = Terminated
	}
	return nil
}

// readLine returns the next input line without its terminator. Lines have no length limit.
// A final line without a newline is still returned; io.EOF comes after it.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// show writes one framed reply block and flushes it so the user sees it before the next prompt.
func (s *Session) show(message string) error {
	if _, err := fmt.Fprintf(s.out, "%s\n%s\n%s\n", transport.Separator, message, transport.Separator); err != nil {
		return err
	}
	return s.out.Flush()
}

// Close flushes any pending output and ends the session.
func (s *Session) Close() error {
	s.state = Terminated
	return s.out.Flush()
}
