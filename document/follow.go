package document

import (
	"io"
	stdlog "log"
	"sync"

	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"
)

// Follower streams lines appended to a file after it was opened.
type Follower struct {
	path   string
	t      *tail.Tail
	lines  chan string
	logger *logrus.Entry
	once   sync.Once
}

// Follow starts tailing path from its current end. Truncation and
// re-creation are followed.
func Follow(path string, logger *logrus.Entry) (*Follower, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:   stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return nil, err
	}

	f := &Follower{
		path:   path,
		t:      t,
		lines:  make(chan string, 100),
		logger: logger.WithField("path", path),
	}
	go f.pump()
	return f, nil
}

func (f *Follower) pump() {
	defer close(f.lines)
	for line := range f.t.Lines {
		if line.Err != nil {
			f.logger.WithError(line.Err).Warn("Follow read failed")
			continue
		}
		f.lines <- line.Text
	}
}

// Lines delivers appended lines. It is closed once the follower stops.
func (f *Follower) Lines() <-chan string {
	return f.lines
}

// Path returns the followed file.
func (f *Follower) Path() string {
	return f.path
}

// Stop ends tailing. It is safe to call more than once.
func (f *Follower) Stop() {
	f.once.Do(func() {
		if err := f.t.Stop(); err != nil {
			f.logger.WithError(err).Debug("Stopping follower")
		}
		f.t.Cleanup()
	})
}
