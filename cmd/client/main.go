// Command client is a development client for the notification server:
// it mints (or accepts) a bearer token, connects, sends heartbeats and
// prints every envelope it receives.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"

	"notify-lab/auth"
	"notify-lab/domain/notification"
)

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws/notifications", "server endpoint")
	token := flag.String("token", "", "bearer token (minted from -secret and -user when empty)")
	secret := flag.String("secret", "", "JWT secret used to mint a dev token")
	user := flag.Int64("user", 1, "user id for the minted token")
	interval := flag.Duration("heartbeat", 30*time.Second, "heartbeat interval")
	flag.Parse()

	bearer := *token
	if bearer == "" {
		if *secret == "" {
			log.Fatal("either -token or -secret is required")
		}
		minted, err := auth.IssueToken(*secret, *user, time.Hour)
		if err != nil {
			log.Fatalf("mint token: %v", err)
		}
		bearer = minted
	}

	conn, _, err := websocket.DefaultDialer.Dial(*addr+"?token="+bearer, nil)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var env notification.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				log.Printf("read: %v", err)
				return
			}
			printEnvelope(env)
		}
	}()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.TextMessage, []byte("heartbeat")); err != nil {
				log.Printf("heartbeat: %v", err)
				return
			}
		case <-interrupt:
			// Clean close so the server deregisters us immediately
			// instead of waiting for the sweep.
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		}
	}
}

func printEnvelope(env notification.Envelope) {
	ts := env.Timestamp.Local().Format("15:04:05")
	switch env.Type {
	case notification.KindNotification:
		color.Green.Printf("%s [%s] %s: %v\n", ts, env.Type, env.Title, env.Content)
	case notification.KindError:
		color.Red.Printf("%s [%s] %v\n", ts, env.Type, env.Content)
	case notification.KindHeartbeat:
		color.Gray.Printf("%s [%s] %v\n", ts, env.Type, env.Content)
	default:
		color.Cyan.Printf("%s [%s] %s: %v\n", ts, env.Type, env.Title, env.Content)
	}
}
