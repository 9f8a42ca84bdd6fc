// Package session interprets line-oriented address book commands against
// a single in-memory AddressBook.
//
// One command per line, arguments separated by whitespace. Blank lines and
// lines starting with '#' are skipped. Names are single tokens.
//
//	add <name> [phone...]
//	add-phone <name> <phone>
//	remove-phone <name> <phone>
//	edit-phone <name> <old> <new>
//	find-phone <name> <phone>
//	find <name>
//	delete <name>
//	all
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// Commands understood by Exec.
const (
	CmdAdd         = "add"
	CmdAddPhone    = "add-phone"
	CmdRemovePhone = "remove-phone"
	CmdEditPhone   = "edit-phone"
	CmdFindPhone   = "find-phone"
	CmdFind        = "find"
	CmdDelete      = "delete"
	CmdAll         = "all"
)

// Subjects name what an outcome refers to.
const (
	SubjectRecord = "record"
	SubjectPhone  = "phone"
)

// Script errors. They stop a Run; domain misses and validation failures
// do not.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
)

// arity gives the accepted argument counts per command; max < 0 means
// unbounded.
var arity = map[string]struct{ min, max int }{
	CmdAdd:         {1, -1},
	CmdAddPhone:    {2, 2},
	CmdRemovePhone: {2, 2},
	CmdEditPhone:   {3, 3},
	CmdFindPhone:   {2, 2},
	CmdFind:        {1, 1},
	CmdDelete:      {1, 1},
	CmdAll:         {0, 0},
}

// RecordView is the rendered form of a Record.
type RecordView struct {
	Name   string   `json:"name" yaml:"name"`
	Phones []string `json:"phones" yaml:"phones"`
}

// Result describes the effect of one executed line.
type Result struct {
	Line    int           `json:"line" yaml:"line"`
	Command string        `json:"command" yaml:"command"`
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Phone   string        `json:"phone,omitempty" yaml:"phone,omitempty"`
	Outcome types.Outcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Subject string        `json:"subject,omitempty" yaml:"subject,omitempty"`
	Records []RecordView  `json:"records,omitempty" yaml:"records,omitempty"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`

	text string
}

// Failed reports whether the line was rejected by validation.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Miss reports whether the line found nothing to act on or changed nothing.
func (r Result) Miss() bool {
	return r.Outcome == types.OutcomeNotFound || r.Outcome == types.OutcomeAlreadyExists
}

// Message returns the human-readable line for r.
func (r Result) Message() string {
	return r.text
}

// Session executes commands against one AddressBook.
type Session struct {
	book *types.AddressBook
	log  *zap.SugaredLogger
	line int
}

// New returns a session over book. A nil logger disables logging.
func New(book *types.AddressBook, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{book: book, log: log}
}

// Book returns the address book the session mutates.
func (s *Session) Book() *types.AddressBook {
	return s.book
}

// Run executes every line read from r, calling emit for each executed
// command. It stops at the first malformed line, read error, or emit
// error.
func (s *Session) Run(r io.Reader, emit func(Result) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		res, ok, err := s.Exec(scanner.Text())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := emit(res); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read script")
	}
	return nil
}

// Exec executes a single line. ok is false for blank and comment lines.
// The returned error is non-nil only for malformed lines and carries the
// line number.
func (s *Session) Exec(line string) (res Result, ok bool, err error) {
	s.line++
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Result{}, false, nil
	}

	cmd, args := fields[0], fields[1:]
	a, known := arity[cmd]
	if !known {
		return Result{}, false, errors.Wrapf(ErrUnknownCommand, "line %d: %q", s.line, cmd)
	}
	if len(args) < a.min || (a.max >= 0 && len(args) > a.max) {
		return Result{}, false, errors.Wrapf(ErrArgCount, "line %d: %s takes %s", s.line, cmd, arityText(a.min, a.max))
	}

	s.log.Debugw("exec", "line", s.line, "command", cmd, "args", args)

	res = Result{Line: s.line, Command: cmd}
	switch cmd {
	case CmdAdd:
		s.add(&res, args[0], args[1:])
	case CmdAddPhone:
		s.addPhone(&res, args[0], args[1])
	case CmdRemovePhone:
		s.removePhone(&res, args[0], args[1])
	case CmdEditPhone:
		s.editPhone(&res, args[0], args[1], args[2])
	case CmdFindPhone:
		s.findPhone(&res, args[0], args[1])
	case CmdFind:
		s.find(&res, args[0])
	case CmdDelete:
		s.deleteRecord(&res, args[0])
	case CmdAll:
		s.all(&res)
	}

	if res.Failed() {
		s.log.Infow("rejected", "line", s.line, "command", cmd, "error", res.Error)
	}
	return res, true, nil
}

// add builds a complete record before storing it, so an invalid phone
// leaves the book untouched.
func (s *Session) add(res *Result, name string, phones []string) {
	res.Name = name
	rec, err := types.NewRecord(name)
	if err != nil {
		fail(res, err)
		return
	}
	for _, p := range phones {
		if _, err := rec.AddPhone(p); err != nil {
			fail(res, err)
			return
		}
	}
	s.book.AddRecord(rec)
	res.Outcome = types.OutcomeAdded
	res.Subject = SubjectRecord
	res.Records = []RecordView{view(rec)}
	res.text = fmt.Sprintf("Record %s added.", name)
}

func (s *Session) addPhone(res *Result, name, phone string) {
	rec := s.lookup(res, name)
	if rec == nil {
		return
	}
	res.Phone = phone
	outcome, err := rec.AddPhone(phone)
	if err != nil {
		fail(res, err)
		return
	}
	phoneOutcome(res, outcome)
}

func (s *Session) removePhone(res *Result, name, phone string) {
	rec := s.lookup(res, name)
	if rec == nil {
		return
	}
	res.Phone = phone
	phoneOutcome(res, rec.RemovePhone(phone))
}

func (s *Session) editPhone(res *Result, name, oldPhone, newPhone string) {
	rec := s.lookup(res, name)
	if rec == nil {
		return
	}
	res.Phone = newPhone
	outcome, err := rec.EditPhone(oldPhone, newPhone)
	if err != nil {
		fail(res, err)
		return
	}
	if outcome == types.OutcomeNotFound {
		res.Phone = oldPhone
	}
	phoneOutcome(res, outcome)
}

func (s *Session) findPhone(res *Result, name, phone string) {
	rec := s.lookup(res, name)
	if rec == nil {
		return
	}
	p, found := rec.FindPhone(phone)
	if !found {
		res.Phone = phone
		phoneOutcome(res, types.OutcomeNotFound)
		return
	}
	res.Phone = p.String()
	res.Subject = SubjectPhone
	res.text = fmt.Sprintf("%s: %s", rec.Name(), p)
}

func (s *Session) find(res *Result, name string) {
	rec := s.lookup(res, name)
	if rec == nil {
		return
	}
	res.Subject = SubjectRecord
	res.Records = []RecordView{view(rec)}
	res.text = rec.String()
}

func (s *Session) deleteRecord(res *Result, name string) {
	res.Name = name
	res.Subject = SubjectRecord
	res.Outcome = s.book.Delete(name)
	if res.Outcome == types.OutcomeDeleted {
		res.text = fmt.Sprintf("Record %s deleted.", name)
		return
	}
	res.text = fmt.Sprintf("Record %s not found.", name)
}

func (s *Session) all(res *Result) {
	records := s.book.Records()
	res.Subject = SubjectRecord
	res.Records = make([]RecordView, len(records))
	lines := make([]string, len(records))
	for i, rec := range records {
		res.Records[i] = view(rec)
		lines[i] = rec.String()
	}
	if len(lines) == 0 {
		res.text = "Address book is empty."
		return
	}
	res.text = strings.Join(lines, "\n")
}

// lookup finds name in the book, recording a record miss in res when it
// is absent.
func (s *Session) lookup(res *Result, name string) *types.Record {
	res.Name = name
	rec, ok := s.book.Find(name)
	if !ok {
		res.Outcome = types.OutcomeNotFound
		res.Subject = SubjectRecord
		res.text = fmt.Sprintf("Record %s not found.", name)
		return nil
	}
	return rec
}

var phoneMessages = map[types.Outcome]string{
	types.OutcomeAdded:         "Phone added.",
	types.OutcomeAlreadyExists: "Phone already exists.",
	types.OutcomeRemoved:       "Phone removed.",
	types.OutcomeEdited:        "Phone edited.",
	types.OutcomeNotFound:      "Phone not found.",
}

func phoneOutcome(res *Result, outcome types.Outcome) {
	res.Outcome = outcome
	res.Subject = SubjectPhone
	res.text = phoneMessages[outcome]
}

func fail(res *Result, err error) {
	res.Error = err.Error()
	res.text = res.Error
}

func view(rec *types.Record) RecordView {
	phones := rec.Phones()
	v := RecordView{Name: rec.Name().String(), Phones: make([]string, len(phones))}
	for i, p := range phones {
		v.Phones[i] = p.String()
	}
	return v
}

func arityText(lo, hi int) string {
	switch {
	case hi < 0:
		return fmt.Sprintf("at least %d argument(s)", lo)
	case lo == hi:
		return fmt.Sprintf("%d argument(s)", lo)
	default:
		return fmt.Sprintf("%d to %d arguments", lo, hi)
	}
}
