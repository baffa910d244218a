package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/hupe1980/careermentor/chat"
)

// terminalUI prints chat messages line by line. A terminal cannot edit what
// it already printed, so the placeholder stays visible and updates are
// printed as a new assistant message.
type terminalUI struct {
	out  io.Writer
	mu   sync.Mutex
	next int
}

var _ chat.UI = (*terminalUI)(nil)

func newTerminalUI(out io.Writer) *terminalUI {
	return &terminalUI{out: out}
}

func (u *terminalUI) Send(_ context.Context, msg chat.Message) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.next++
	id := strconv.Itoa(u.next)

	if msg.Content == chat.ThinkingPlaceholder {
		_, err := fmt.Fprintf(u.out, "%s\n", msg.Content)
		return id, err
	}

	_, err := fmt.Fprintf(u.out, "\n%s:\n%s\n\n", msg.Author, msg.Content)

	return id, err
}

func (u *terminalUI) Update(_ context.Context, _ string, content string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	_, err := fmt.Fprintf(u.out, "\n%s:\n%s\n\n", chat.AssistantAuthor, content)

	return err
}
