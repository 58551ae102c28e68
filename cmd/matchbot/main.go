package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"gamehub/internal/config"
	"gamehub/internal/realtime"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
)

// matchbot connects as a regular player and plays random legal moves.
// Point two of them at the same room code for an unattended match.
func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.UserID == 0 {
		log.Fatal("BOT_USER_ID is required")
	}

	conn, _, err := websocket.DefaultDialer.Dial(cfg.WSURL, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	send(conn, realtime.RegisterMessage{Type: realtime.EvRegister, UserID: cfg.UserID, Username: cfg.Username})
	if cfg.RoomCode != "" {
		send(conn, realtime.JoinRoomMessage{Type: realtime.EvJoinRoom, Code: cfg.RoomCode, UserID: cfg.UserID})
	} else {
		send(conn, realtime.CreateRoomMessage{Type: realtime.EvCreateRoom, UserID: cfg.UserID})
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	seat := 0 // 1 = playerOne, 2 = playerTwo
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var base struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &base); err != nil {
			continue
		}
		switch base.Type {
		case realtime.EvRoomCreated:
			var msg realtime.RoomCreated
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			log.Printf("room created, code %s", msg.Code)
		case realtime.EvRoomState:
			var snap realtime.RoomSnapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				continue
			}
			if snap.PlayerOne == cfg.UserID {
				seat = 1
			} else if snap.PlayerTwo == cfg.UserID {
				seat = 2
			}
			if snap.PlayerTwo == 0 {
				continue
			}
			myTurn := (snap.Turn%2 == 0 && seat == 1) || (snap.Turn%2 == 1 && seat == 2)
			if !myTurn {
				continue
			}
			cell, ok := pickCell(rnd, snap.Board)
			if !ok {
				continue
			}
			send(conn, realtime.MoveMessage{Type: realtime.EvMove, Code: snap.Code, UserID: cfg.UserID, Cell: cell})
		case realtime.EvGameWon:
			log.Print("won")
			return
		case realtime.EvGameLost:
			log.Print("lost")
			return
		case realtime.EvGameDraw:
			log.Print("draw")
			return
		case realtime.EvRoomExpired, realtime.EvInvalidCode:
			log.Printf("giving up: %s", base.Type)
			return
		}
	}
}

func pickCell(rnd *rand.Rand, board []string) (int, bool) {
	empty := make([]int, 0, len(board))
	for i, c := range board {
		if c == "" {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return 0, false
	}
	return empty[rnd.Intn(len(empty))], true
}

func send(conn *websocket.Conn, v any) {
	payload, _ := json.Marshal(v)
	_ = conn.WriteMessage(websocket.TextMessage, payload)
}
