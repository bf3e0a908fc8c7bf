package hub

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Client frame actions
const (
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
)

// Server frame types, besides realtime.EventInsert
const (
	FrameSubscribed   = "subscribed"
	FrameUnsubscribed = "unsubscribed"
	FrameError        = "error"
)

// ClientFrame is sent by browsers to manage their subscriptions
type ClientFrame struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

// ServerFrame acknowledges or rejects a client frame
type ServerFrame struct {
	Type    string `json:"type"`
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message,omitempty"`
}

// Instrumentation receives hub activity, typically prometheus collectors
type Instrumentation interface {
	ConnectionOpened()
	ConnectionClosed()
	ChangePublished(table string)
	ChangeDropped()
}

type nopInstrumentation struct{}

func (nopInstrumentation) ConnectionOpened()      {}
func (nopInstrumentation) ConnectionClosed()      {}
func (nopInstrumentation) ChangePublished(string) {}
func (nopInstrumentation) ChangeDropped()         {}

// Options tune the per-connection behavior
type Options struct {
	SendBuffer   int
	PingInterval time.Duration
	WriteTimeout time.Duration
}

// OptionsFromSettings maps the realtime settings to hub options
func OptionsFromSettings(s config.RealtimeSettings) Options {
	return Options{
		SendBuffer:   s.SendBuffer,
		PingInterval: s.PingInterval,
		WriteTimeout: s.WriteTimeout,
	}
}

// Client is one websocket connection of a user
type Client struct {
	UserID string
	conn   *websocket.Conn
	send   chan interface{}

	mu     sync.RWMutex
	topics map[string]struct{}

	ctx    context.Context
	cancel context.CancelFunc
	opts   Options
}

func newClient(ctx context.Context, userID string, conn *websocket.Conn, opts Options) *Client {
	ctx, cancel := context.WithCancel(ctx)
	return &Client{
		UserID: userID,
		conn:   conn,
		send:   make(chan interface{}, opts.SendBuffer),
		topics: map[string]struct{}{},
		ctx:    ctx,
		cancel: cancel,
		opts:   opts,
	}
}

func (c *Client) subscribe(topic string) {
	c.mu.Lock()
	c.topics[topic] = struct{}{}
	c.mu.Unlock()
}

func (c *Client) unsubscribe(topic string) {
	c.mu.Lock()
	delete(c.topics, topic)
	c.mu.Unlock()
}

func (c *Client) subscribed(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.topics[topic]
	return ok
}

// enqueue never blocks; it reports false when the buffer is full
func (c *Client) enqueue(frame interface{}) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case frame := <-c.send:
			writeCtx, cancel := context.WithTimeout(c.ctx, c.opts.WriteTimeout)
			err := wsjson.Write(writeCtx, c.conn, frame)
			cancel()
			if err != nil {
				c.cancel()
				return
			}
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(c.ctx, c.opts.WriteTimeout)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				c.cancel()
				return
			}
		}
	}
}

// Hub tracks the websocket connections of every user and fans changes out to them
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}

	authorizer realtime.SubscriptionAuthorizer
	instr      Instrumentation
	logger     logger.Logger
	opts       Options
}

// NewHub creates a Hub. instr may be nil.
func NewHub(authorizer realtime.SubscriptionAuthorizer, instr Instrumentation, logger logger.Logger, opts Options) *Hub {
	if instr == nil {
		instr = nopInstrumentation{}
	}
	return &Hub{
		clients:    map[string]map[*Client]struct{}{},
		authorizer: authorizer,
		instr:      instr,
		logger:     logger,
		opts:       opts,
	}
}

// Serve runs the connection of userID until it is closed or ctx is done
func (h *Hub) Serve(ctx context.Context, userID string, conn *websocket.Conn) error {
	c := newClient(ctx, userID, conn, h.opts)
	h.add(c)
	defer h.remove(c, websocket.StatusNormalClosure, "bye")

	go c.writeLoop()
	go c.keepAliveLoop()

	for {
		var frame ClientFrame
		if err := wsjson.Read(c.ctx, conn, &frame); err != nil {
			if isClosed(err) {
				return nil
			}
			return err
		}
		h.handleFrame(c, frame)
	}
}

func isClosed(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return errors.Is(err, context.Canceled)
}

func (h *Hub) handleFrame(c *Client, frame ClientFrame) {
	var reply ServerFrame
	switch frame.Action {
	case ActionSubscribe:
		if frame.Topic == "" {
			reply = ServerFrame{Type: FrameError, Message: "topic is required"}
			break
		}
		if err := h.authorizer.Authorize(c.ctx, c.UserID, frame.Topic); err != nil {
			h.logger.Warn("Rejected subscription of user ", c.UserID, " to ", frame.Topic, ": ", err)
			reply = ServerFrame{Type: FrameError, Topic: frame.Topic, Message: subscriptionError(err)}
			break
		}
		c.subscribe(frame.Topic)
		reply = ServerFrame{Type: FrameSubscribed, Topic: frame.Topic}
	case ActionUnsubscribe:
		c.unsubscribe(frame.Topic)
		reply = ServerFrame{Type: FrameUnsubscribed, Topic: frame.Topic}
	default:
		reply = ServerFrame{Type: FrameError, Message: "unknown action " + frame.Action}
	}

	if !c.enqueue(reply) {
		h.logger.Warn("Dropped ", reply.Type, " reply to user ", c.UserID, ": send buffer full")
	}
}

// subscriptionError keeps storage failures out of client frames
func subscriptionError(err error) string {
	if errors.Is(err, shared.ErrForbidden) || errors.Is(err, shared.ErrValidation) || errors.Is(err, shared.ErrNotFound) {
		return err.Error()
	}
	return "subscription failed"
}

// Publish delivers change to the connections of recipients subscribed to its topic.
// Connections with a full send buffer miss the change.
func (h *Hub) Publish(_ context.Context, change realtime.Change, recipients []string) {
	h.instr.ChangePublished(change.Table)

	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]struct{}, len(recipients))
	for _, userID := range recipients {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		for c := range h.clients[userID] {
			if !c.subscribed(change.Topic) {
				continue
			}
			if !c.enqueue(change) {
				h.instr.ChangeDropped()
				h.logger.Warn("Dropped ", change.Table, " change for user ", userID, ": send buffer full")
			}
		}
	}
}

// Connections returns the number of open connections
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.RLock()
	var all []*Client
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range all {
		h.remove(c, websocket.StatusGoingAway, "server shutting down")
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = map[*Client]struct{}{}
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()

	h.instr.ConnectionOpened()
}

func (h *Hub) remove(c *Client, status websocket.StatusCode, reason string) {
	c.cancel()

	h.mu.Lock()
	set, ok := h.clients[c.UserID]
	if ok {
		if _, present := set[c]; !present {
			ok = false
		}
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()

	if !ok {
		return
	}
	h.instr.ConnectionClosed()
	if c.conn != nil {
		_ = c.conn.Close(status, reason)
	}
}
