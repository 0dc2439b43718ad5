package deallog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arcanaland/dealer/internal/card"
)

// timestamp layouts
const (
	DateLayout     = "01/02/2006"
	DateTimeLayout = "01/02/2006 15:04:05"
)

// Record is one deal read back from the log
type Record struct {
	Time  time.Time
	Stamp string // the date line as written
	Cards card.Hand
	Line  int // line number of the date line
}

// Log appends dealt hands to a text file
type Log struct {
	path     string
	withTime bool
	now      func() time.Time
	logger   logrus.FieldLogger
}

// Option configures a Log
type Option func(*Log)

// WithTime controls whether the time of day is written after the date
func WithTime(b bool) Option {
	return func(l *Log) {
		l.withTime = b
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// WithLogger sets where write failures are reported
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// New returns a Log writing to path
func New(path string, opts ...Option) *Log {
	l := &Log{
		path:     path,
		withTime: true,
		now:      time.Now,
		logger:   logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Path returns the log file path
func (l *Log) Path() string {
	return l.path
}

func (l *Log) layout() string {
	if l.withTime {
		return DateTimeLayout
	}
	return DateLayout
}

// Append writes the hand to the log. Failures are reported to the logger and
// otherwise ignored so the caller can keep dealing.
func (l *Log) Append(hand card.Hand) {
	if err := l.Write(hand); err != nil {
		l.logger.WithError(err).WithField("path", l.path).Error("Error writing dealt cards")
	}
}

// Write appends a date line and a card line for the hand.
// An empty hand writes nothing and does not create the file.
func (l *Log) Write(hand card.Hand) (err error) {
	if hand.Empty() {
		return nil
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating log directory: %w", err)
		}
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing log file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, l.now().Format(l.layout()))
	fmt.Fprintln(w, hand.String())
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing log file: %w", err)
	}

	return nil
}

// Records reads every deal back from the log. A missing log has no records.
func (l *Log) Records() ([]Record, error) {
	file, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Last returns at most n of the most recent records
func (l *Log) Last(n int) ([]Record, error) {
	records, err := l.Records()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(records) > n {
		records = records[len(records)-n:]
	}
	return records, nil
}

// ParseTime accepts both timestamp layouts
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateLayout, s, time.Local)
}
