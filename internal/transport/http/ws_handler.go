package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"quiz-taker-service/internal/app"
)

// WSHandler drives one attempt per websocket connection.
type WSHandler struct {
	service  *app.AttemptService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.AttemptService) *WSHandler {
	return &WSHandler{
		service: service,
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

type explainPayload struct {
	QuestionID string `json:"questionId"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the attempt use cases.
// The attempt starts on connect and is discarded when the connection closes.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	if quizID == "" {
		http.Error(w, "missing quizId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	view, err := h.service.Start(ctx, quizID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.Abandon(context.Background(), view.AttemptID)

	if err := conn.WriteJSON(outboundMessage[any]{Type: "loaded", Payload: view}); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	// Events are read and applied one at a time, so replies need no separate writer.
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		reply := h.handle(ctx, view.AttemptID, inbound)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

func (h *WSHandler) handle(ctx context.Context, attemptID string, inbound inboundMessage) outboundMessage[any] {
	switch inbound.Type {
	case "answer":
		var payload answerRequest
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.QuestionID == "" {
			return errorMessage("invalid answer payload")
		}
		values, err := h.service.RecordAnswer(ctx, attemptID, payload.QuestionID, payload.Value)
		if err != nil {
			return errorMessage(err.Error())
		}
		return outboundMessage[any]{Type: "answerRecorded", Payload: answerResponse{
			QuestionID: payload.QuestionID,
			Values:     values,
		}}
	case "submit":
		report, err := h.service.Submit(ctx, attemptID)
		if err != nil {
			return errorMessage(err.Error())
		}
		return outboundMessage[any]{Type: "score", Payload: report}
	case "explain":
		var payload explainPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.QuestionID == "" {
			return errorMessage("invalid explain payload")
		}
		text, err := h.service.Explain(ctx, attemptID, payload.QuestionID)
		if err != nil {
			return errorMessage(err.Error())
		}
		return outboundMessage[any]{Type: "explanation", Payload: explanationResponse{
			QuestionID:  payload.QuestionID,
			Explanation: text,
		}}
	default:
		return errorMessage("unsupported message type")
	}
}

func errorMessage(msg string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: msg}}
}
