// Package session ties one conversation together: one patient profile, one
// turn history, one doctor-selection state machine and one injected store
// handle.  Both shells (CLI and Telegram) drive a Session one text line at a
// time; a session is single-threaded from the caller's perspective.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mediconnect-bot/internal/core"
	"mediconnect-bot/internal/extract"
	"mediconnect-bot/internal/store"
	"mediconnect-bot/pkg"
)

// Text is one outgoing message.  Markdown marks the scripted listings
// (doctor catalog, payment details) that shells may render with formatting.
type Text struct {
	Body     string
	Markdown bool
}

// Reply is the outcome of one HandleText call.
type Reply struct {
	Texts []Text
	// Done is set when the patient ended the session.
	Done bool
}

// Options configure a Session.
type Options struct {
	Chat  *core.ChatService
	Store store.Store
	Log   zerolog.Logger
	// MessageCap limits the number of chatted turns per session; zero means
	// unlimited.
	MessageCap int
	// TurnTimeout bounds each model call; zero means no timeout.
	TurnTimeout time.Duration
}

// Session is one continuous conversation with one patient.
type Session struct {
	id        string
	profile   pkg.PatientProfile
	history   []pkg.Message
	extractor *extract.Extractor
	chat      *core.ChatService
	selector  *core.Selector
	store     store.Store
	log       zerolog.Logger

	messageCap  int
	turnTimeout time.Duration
	userTurns   int
}

// New creates an empty session with a fresh random ID.
func New(opts Options) *Session {
	st := opts.Store
	if st == nil {
		st = store.Noop{}
	}
	id := uuid.NewString()
	return &Session{
		id:          id,
		extractor:   extract.New(opts.Log),
		chat:        opts.Chat,
		selector:    core.NewSelector(core.Catalog()),
		store:       st,
		log:         opts.Log.With().Str("session_id", id).Logger(),
		messageCap:  opts.MessageCap,
		turnTimeout: opts.TurnTimeout,
	}
}

// ID returns the session identifier used for persistence.
func (s *Session) ID() string { return s.id }

// Remaining reports how many chatted turns are left before the cap, or -1
// when the session is uncapped.
func (s *Session) Remaining() int {
	if s.messageCap <= 0 {
		return -1
	}
	left := s.messageCap - s.userTurns
	if left < 0 {
		left = 0
	}
	return left
}

// ProfileSnapshot renders the current profile, including the phase flags.
func (s *Session) ProfileSnapshot() string {
	return extract.RenderContext(&s.profile)
}

// Greet runs the opening turn.  It goes through the normal chat path so the
// model produces the phase-1 information request, but does not count toward
// the message cap.
func (s *Session) Greet(ctx context.Context) Text {
	texts := s.turn(ctx, "Hello")
	return texts[0]
}

// HandleText consumes one line of patient input and returns the outgoing
// messages.  Commands: quit/exit/bye end the session, info prints the
// profile snapshot without consuming a turn.
func (s *Session) HandleText(ctx context.Context, text string) Reply {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Reply{}
	}

	switch strings.ToLower(trimmed) {
	case "quit", "exit", "bye":
		s.persistProfile(ctx)
		return Reply{Texts: []Text{{Body: core.Farewell}}, Done: true}
	case "info":
		return Reply{Texts: []Text{{Body: s.ProfileSnapshot()}}}
	}

	if s.selector.State() != core.StateIdle {
		return s.handleSelection(ctx, trimmed)
	}

	if s.messageCap > 0 && s.userTurns >= s.messageCap {
		return Reply{Texts: []Text{{Body: core.CapMessage}}}
	}
	s.userTurns++

	return Reply{Texts: s.turn(ctx, text)}
}

func (s *Session) handleSelection(ctx context.Context, input string) Reply {
	res := s.selector.HandleInput(input)
	if res.Doctor != nil {
		if err := s.store.SaveDoctorAssignment(ctx, s.id, &s.profile, *res.Doctor); err != nil {
			s.log.Error().Err(err).Int("doctor_id", res.Doctor.ID).Msg("failed to persist doctor assignment")
		}
	}
	texts := make([]Text, 0, len(res.Replies))
	for _, r := range res.Replies {
		texts = append(texts, Text{Body: r, Markdown: true})
	}
	return Reply{Texts: texts}
}

// turn runs one extraction + chat round trip and appends both sides to the
// history.
func (s *Session) turn(ctx context.Context, text string) []Text {
	s.extractor.Extract(&s.profile, text)

	userMsg := pkg.Message{Role: pkg.RoleUser, Content: text, CreatedAt: time.Now().UTC()}
	s.history = append(s.history, userMsg)
	s.persistMessage(ctx, userMsg)

	callCtx := ctx
	if s.turnTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.turnTimeout)
		defer cancel()
	}
	answer, err := s.chat.Reply(callCtx, &s.profile, s.history)
	if err != nil {
		// Reply already degraded to the apology text; the turn still counts.
		s.log.Warn().Err(err).Msg("degraded to apology reply")
	}

	botMsg := pkg.Message{Role: pkg.RoleAssistant, Content: answer, CreatedAt: time.Now().UTC()}
	s.history = append(s.history, botMsg)
	s.persistMessage(ctx, botMsg)
	s.persistProfile(ctx)

	texts := []Text{{Body: answer}}
	if err == nil && core.DetectReferral(answer) {
		texts = append(texts, Text{Body: s.selector.Begin(), Markdown: true})
	}
	return texts
}

func (s *Session) persistMessage(ctx context.Context, m pkg.Message) {
	if err := s.store.AppendMessage(ctx, s.id, m); err != nil {
		s.log.Error().Err(err).Msg("failed to persist message")
	}
}

func (s *Session) persistProfile(ctx context.Context) {
	if _, err := s.store.SaveProfile(ctx, s.id, &s.profile); err != nil {
		s.log.Error().Err(err).Msg("failed to persist profile")
	}
}
