// Package http exposes the game over a websocket. The handler is the driving
// collaborator for the state machine: it forwards client intents as
// transitions, runs the one-second countdown clock, and relays notifications.
package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"dictionduel/internal/bank"
	"dictionduel/internal/game"
	"dictionduel/internal/leaderboard"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	bank     *bank.Bank
	scores   *leaderboard.Store
	rules    game.Rules
	upgrader websocket.Upgrader
}

func NewWSHandler(b *bank.Bank, scores *leaderboard.Store, rules game.Rules) *WSHandler {
	return &WSHandler{
		bank:   b,
		scores: scores,
		rules:  rules,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type namePayload struct {
	Name string `json:"name"`
}

type answerPayload struct {
	Option int `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// sendNotifier forwards game notifications to the connection's write pump.
// Sends never block a transition; a toast lost under backpressure is fine.
type sendNotifier struct {
	send chan<- outboundMessage[any]
}

func (n sendNotifier) Notify(note game.Notification) {
	select {
	case n.send <- outboundMessage[any]{Type: "toast", Payload: note}:
	default:
	}
}

// ServeWS upgrades the request and runs one game session per connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	ctx := r.Context()

	pool, err := h.bank.Questions(ctx)
	if err != nil {
		// Empty pool is a display state, not a fatal error: the client gets
		// a session whose StartGame reports "no questions available".
		log.Printf("ws session %s: question pool unavailable: %v", sessionID, err)
	}

	send := make(chan outboundMessage[any], 16)
	session := game.NewSession(ctx, pool, h.scores, sendNotifier{send: send}, h.rules)

	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	tickerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws session %s: write error: %v", sessionID, err)
				return
			}
		}
	}()

	// Countdown clock: one Tick per second while a question is open. The
	// machine ignores ticks once the question is resolved.
	go func() {
		defer close(tickerDone)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if session.Tick() {
					select {
					case send <- outboundMessage[any]{Type: "state", Payload: session.Snapshot()}:
					case <-closeSignals:
						return
					}
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "state", Payload: session.Snapshot()}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}

		switch inbound.Type {
		case "setName":
			var payload namePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid name payload"}}
				continue
			}
			session.SetPlayerName(payload.Name)
		case "start":
			var payload namePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid start payload"}}
				continue
			}
			if err := session.StartGame(payload.Name); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			session.SubmitAnswer(payload.Option)
		case "next":
			session.NextQuestion(ctx)
		case "finish":
			session.FinishGame(ctx)
		case "playAgain":
			if err := session.PlayAgain(); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
		case "home":
			session.ReturnToWelcome(ctx)
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
			continue
		}

		send <- outboundMessage[any]{Type: "state", Payload: session.Snapshot()}
	}

	close(closeSignals)
	<-tickerDone
	close(send)
	<-writerDone
}
