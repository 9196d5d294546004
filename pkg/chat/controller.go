package chat

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"roni/models"
)

// Mode selects the dispatch path for a submission.
type Mode string

const (
	ModeText         Mode = models.TypeText
	ModeImage        Mode = models.TypeImage
	ModeImageToImage Mode = models.TypeImageToImage
)

// Fallback texts shown when a reply cannot be obtained. The transport
// fallback covers failures reaching a gateway at all; the other two cover a
// gateway answering with neither a result nor an error field.
const (
	transportFallback  = "Sorry, I encountered an error processing your request. Please try again."
	chatEmptyFallback  = "Unable to get response."
	imageEmptyFallback = "Unable to process image request."
)

// Gateway reaches the two AI endpoints. Both return the reply text, which
// may originate from the gateway's error field; a non-nil error means the
// call itself failed (network, malformed response).
type Gateway interface {
	Chat(ctx context.Context, message, image string) (string, error)
	GenerateImage(ctx context.Context, prompt, sourceImage string) (string, error)
}

// Store mirrors the conversation log. Writes are best-effort: the
// controller never blocks on them and discards their errors.
type Store interface {
	Insert(ctx context.Context, m models.Message) error
	List(ctx context.Context) ([]models.Message, error)
}

// Controller owns the in-memory conversation and dispatches submissions.
// At most one dispatch runs at a time; Submit is a no-op while one is in
// flight.
type Controller struct {
	mu       sync.Mutex
	messages []models.Message
	loading  bool

	gw    Gateway
	store Store

	now   func() time.Time
	newID func() string
}

func New(gw Gateway, st Store) *Controller {
	return &Controller{
		gw:    gw,
		store: st,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load replaces local state wholesale from the store. Call once at startup.
func (c *Controller) Load(ctx context.Context) error {
	msgs, err := c.store.List(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.messages = msgs
	c.mu.Unlock()
	return nil
}

// Messages returns a snapshot copy of the conversation.
func (c *Controller) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Loading reports whether a dispatch is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Submit appends a user message, dispatches it to the matching gateway, and
// appends exactly one assistant reply, success or failure. Blank content and
// overlapping calls are ignored silently. Submit blocks until the reply is
// appended; ctx bounds the gateway call.
func (c *Controller) Submit(ctx context.Context, content string, image []byte, mode Mode) {
	if strings.TrimSpace(content) == "" {
		return
	}

	var imageB64 string
	if len(image) > 0 {
		imageB64 = base64.StdEncoding.EncodeToString(image)
	}

	user := models.Message{
		ID:          c.newID(),
		Role:        models.RoleUser,
		Content:     content,
		Timestamp:   c.now(),
		ImageURL:    imageB64,
		MessageType: string(mode),
	}

	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.messages = append(c.messages, user)
	c.mu.Unlock()

	c.persist(user)

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	reply := c.dispatch(ctx, content, imageB64, mode)

	c.mu.Lock()
	c.messages = append(c.messages, reply)
	c.mu.Unlock()

	c.persist(reply)
}

// dispatch routes to the matching gateway and folds every failure into a
// normal assistant message.
func (c *Controller) dispatch(ctx context.Context, content, imageB64 string, mode Mode) models.Message {
	var (
		text        string
		err         error
		messageType string
	)
	switch mode {
	case ModeImage, ModeImageToImage:
		text, err = c.gw.GenerateImage(ctx, content, imageB64)
		messageType = string(mode)
		if err == nil && strings.TrimSpace(text) == "" {
			text = imageEmptyFallback
		}
	default:
		text, err = c.gw.Chat(ctx, content, imageB64)
		messageType = models.TypeText
		if err == nil && strings.TrimSpace(text) == "" {
			text = chatEmptyFallback
		}
	}
	if err != nil {
		text = transportFallback
		messageType = models.TypeText
	}

	return models.Message{
		ID:          c.newID(),
		Role:        models.RoleAssistant,
		Content:     text,
		Timestamp:   c.now(),
		MessageType: messageType,
	}
}

// persist mirrors a message to the store without blocking the submission;
// the local list stays authoritative for the session either way.
func (c *Controller) persist(m models.Message) {
	go func() {
		_ = c.store.Insert(context.Background(), m)
	}()
}
