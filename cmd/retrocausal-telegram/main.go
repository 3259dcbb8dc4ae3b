// A delayed-choice quantum eraser you steer from a Telegram chat. The
// bot waits for "erase" or "keep", samples photon pairs with that idler
// measurement, and replies with the sorted statistics. The marginal stays
// 50/50 either way: the fringes only exist after coincidence sorting, so
// no message from the future is ever sent, only to the chat.
//
// Needs TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID in the environment.
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/fijjas/go-experiments/internal/quantum"
	"github.com/fijjas/go-experiments/internal/telegram"
)

const (
	phase   = math.Pi / 3
	photons = 100_000
)

func main() {
	cfg, err := telegram.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	client := telegram.New(cfg, nil)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	err = client.SendMessage(ctx, `Eraser armed: phase π/3, 100k pairs. Reply "erase" or "keep".`)
	if err != nil {
		log.Fatal(err)
	}

	choice, err := client.AwaitCommand(ctx, "erase", "keep")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("choice received:", choice)

	eraser := quantum.NewEraser(phase, time.Now().UnixNano())
	stats := eraser.Sample(choice == "erase", photons)

	report := fmt.Sprintf(
		"choice=%s\nD1=%d D2=%d (marginal %.3f)\nidler+: D1=%d D2=%d\nidler-: D1=%d D2=%d\nvisibility=%.3f",
		choice, stats.D1, stats.D2, stats.Marginal(),
		stats.PlusD1, stats.PlusD2, stats.MinusD1, stats.MinusD2,
		stats.Visibility(),
	)
	fmt.Println(report)

	if err := client.SendMessage(ctx, report); err != nil {
		log.Fatal(err)
	}
}
