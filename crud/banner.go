package crud

import "sync"

// Banner holds the most recent failure message shared by every controller of
// a workspace.
type Banner struct {
	mu  sync.Mutex
	msg string
}

func (b *Banner) Set(msg string) {
	b.mu.Lock()
	b.msg = msg
	b.mu.Unlock()
}

func (b *Banner) Clear() {
	b.Set("")
}

func (b *Banner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}
