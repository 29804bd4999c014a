package bot

import (
	"io"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of the Telegram API the handlers use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// chatIO is the table IO of one chat. Lines typed in the chat or pressed on
// a keyboard arrive on lines; everything the table prints is buffered and
// sent as one message when the table waits for input.
type chatIO struct {
	chatID  int64
	bot     sender
	choices tgbotapi.InlineKeyboardMarkup

	lines chan string // holds the one answer Push accepted
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	buf     strings.Builder
	waiting bool
}

func newChatIO(chatID int64, bot sender, choices tgbotapi.InlineKeyboardMarkup) *chatIO {
	return &chatIO{
		chatID:  chatID,
		bot:     bot,
		choices: choices,
		lines:   make(chan string, 1),
		done:    make(chan struct{}),
	}
}

func (c *chatIO) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *chatIO) ReadLine() (string, error) {
	c.expect()
	c.Flush(nil)
	return c.wait()
}

func (c *chatIO) ReadChoice() (string, error) {
	c.expect()
	c.Flush(&c.choices)
	return c.wait()
}

// expect opens the table for exactly one line. It is called before the
// prompt goes out so an answer to it is never turned away.
func (c *chatIO) expect() {
	c.mu.Lock()
	c.waiting = true
	c.mu.Unlock()
}

func (c *chatIO) wait() (string, error) {
	select {
	case line := <-c.lines:
		return line, nil
	case <-c.done:
		return "", io.EOF
	}
}

// Push hands a line to the table. It reports false when the table is not
// waiting for one or already got its answer, so stray taps and messages
// never carry over to a later prompt.
func (c *chatIO) Push(line string) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.waiting {
		return false
	}
	c.waiting = false
	c.lines <- line
	return true
}

// Drain empties the output buffer and returns what the table printed.
func (c *chatIO) Drain() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := strings.TrimSpace(c.buf.String())
	c.buf.Reset()
	return text
}

// Flush sends whatever the table printed, with an optional keyboard.
func (c *chatIO) Flush(kb *tgbotapi.InlineKeyboardMarkup) {
	text := c.Drain()
	if text == "" {
		return
	}

	msg := tgbotapi.NewMessage(c.chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := c.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// Close makes every pending and future read return io.EOF.
func (c *chatIO) Close() {
	c.once.Do(func() { close(c.done) })
}

// tables tracks the running table of every chat.
type tables struct {
	open map[int64]*chatIO
	mu   sync.RWMutex
}

func newTables() *tables {
	return &tables{
		open: make(map[int64]*chatIO),
	}
}

func (t *tables) Get(chatID int64) *chatIO {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.open[chatID]
}

// Open registers a table unless the chat already has one.
func (t *tables) Open(chatID int64, c *chatIO) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.open[chatID]; ok {
		return false
	}
	t.open[chatID] = c
	return true
}

func (t *tables) Delete(chatID int64, c *chatIO) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.open[chatID] == c {
		delete(t.open, chatID)
	}
}
