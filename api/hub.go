package api

import (
	"sync"

	"github.com/battlesnakeio/gridsnake/rules"
	log "github.com/sirupsen/logrus"
)

// Hub collects the frames published by running sessions and fans them out to
// spectators. Publish is meant to be used as worker.Worker.OnFrame and never
// blocks: a spectator that falls behind by more than the buffer misses frames.
type Hub struct {
	sync.RWMutex
	sessions map[string]*frameHolder
	order    []string
	buffer   int
}

// NewHub creates a hub giving every spectator buffer frames of slack.
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		sessions: map[string]*frameHolder{},
		buffer:   buffer,
	}
}

// Publish records f and forwards it to the session's spectators.
func (h *Hub) Publish(f *rules.Frame) {
	h.holder(f.ID, true).append(f)
}

// Close ends the stream for a session that stopped without finishing.
func (h *Hub) Close(id string) {
	if fh := h.holder(id, false); fh != nil {
		fh.close()
	}
}

// Latest returns the newest frame of every known session, oldest session
// first.
func (h *Hub) Latest() []*rules.Frame {
	h.RLock()
	defer h.RUnlock()

	out := []*rules.Frame{}
	for _, id := range h.order {
		if f := h.sessions[id].last(); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// Frame returns the newest frame of a session.
func (h *Hub) Frame(id string) (*rules.Frame, bool) {
	fh := h.holder(id, false)
	if fh == nil {
		return nil, false
	}
	f := fh.last()
	return f, f != nil
}

// Frames returns every frame of a session so far.
func (h *Hub) Frames(id string) ([]*rules.Frame, bool) {
	fh := h.holder(id, false)
	if fh == nil {
		return nil, false
	}
	return fh.all(), true
}

// Subscribe returns the frames published so far and a channel carrying the
// following ones. The channel is closed once the session ends or cancel is
// called.
func (h *Hub) Subscribe(id string) (backlog []*rules.Frame, updates <-chan *rules.Frame, cancel func(), ok bool) {
	fh := h.holder(id, false)
	if fh == nil {
		return nil, nil, nil, false
	}
	backlog, ch := fh.subscribe(h.buffer)
	return backlog, ch, func() { fh.unsubscribe(ch) }, true
}

func (h *Hub) holder(id string, create bool) *frameHolder {
	h.RLock()
	fh, ok := h.sessions[id]
	h.RUnlock()
	if ok || !create {
		return fh
	}

	h.Lock()
	defer h.Unlock()
	if fh, ok = h.sessions[id]; ok {
		return fh
	}
	fh = &frameHolder{id: id, subs: map[chan *rules.Frame]struct{}{}}
	h.sessions[id] = fh
	h.order = append(h.order, id)
	return fh
}

type frameHolder struct {
	sync.RWMutex
	id     string
	frames []*rules.Frame
	subs   map[chan *rules.Frame]struct{}
	done   bool
}

func (fh *frameHolder) append(frame *rules.Frame) {
	fh.Lock()
	defer fh.Unlock()

	if fh.done {
		return
	}
	fh.frames = append(fh.frames, frame)
	for ch := range fh.subs {
		select {
		case ch <- frame:
		default:
			log.WithFields(log.Fields{
				"SessionID": fh.id,
				"Turn":      frame.Turn,
			}).Warn("spectator too slow, frame dropped")
		}
	}
	if frame.Done() {
		fh.finish()
	}
}

func (fh *frameHolder) close() {
	fh.Lock()
	defer fh.Unlock()
	fh.finish()
}

// finish must be called with the lock held.
func (fh *frameHolder) finish() {
	fh.done = true
	for ch := range fh.subs {
		close(ch)
		delete(fh.subs, ch)
	}
}

func (fh *frameHolder) subscribe(buffer int) ([]*rules.Frame, chan *rules.Frame) {
	fh.Lock()
	defer fh.Unlock()

	backlog := make([]*rules.Frame, len(fh.frames))
	copy(backlog, fh.frames)
	ch := make(chan *rules.Frame, buffer)
	if fh.done {
		close(ch)
	} else {
		fh.subs[ch] = struct{}{}
	}
	return backlog, ch
}

func (fh *frameHolder) unsubscribe(ch chan *rules.Frame) {
	fh.Lock()
	defer fh.Unlock()

	if _, ok := fh.subs[ch]; ok {
		close(ch)
		delete(fh.subs, ch)
	}
}

func (fh *frameHolder) last() *rules.Frame {
	fh.RLock()
	defer fh.RUnlock()

	if len(fh.frames) == 0 {
		return nil
	}
	return fh.frames[len(fh.frames)-1]
}

func (fh *frameHolder) all() []*rules.Frame {
	fh.RLock()
	defer fh.RUnlock()

	out := make([]*rules.Frame, len(fh.frames))
	copy(out, fh.frames)
	return out
}
