// Command ronicli is a line-oriented chat client for a running R.O.N.I
// server. Plain input is sent as text; /image asks for a generated image
// description and /blend does the same seeded with a local image file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"roni/models"
	"roni/pkg/chat"
	"roni/pkg/client"
)

func main() {
	baseURL := flag.String("url", envOr("RONI_URL", "http://127.0.0.1:5000"), "server base URL")
	token := flag.String("token", os.Getenv("RONI_TOKEN"), "bearer token")
	flag.Parse()

	api := client.New(*baseURL, *token)
	ctrl := chat.New(api, api)

	ctx := context.Background()
	if err := ctrl.Load(ctx); err != nil {
		log.Printf("[cli] could not load history: %v", err)
	}
	for _, m := range ctrl.Messages() {
		printMessage(m)
	}

	fmt.Println("R.O.N.I ready. Commands: /image <prompt>, /blend <file> <prompt>, /quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		content := line
		mode := chat.ModeText
		var image []byte

		switch {
		case line == "/quit":
			return
		case strings.HasPrefix(line, "/image "):
			content = strings.TrimSpace(strings.TrimPrefix(line, "/image "))
			mode = chat.ModeImage
		case strings.HasPrefix(line, "/blend "):
			rest := strings.TrimSpace(strings.TrimPrefix(line, "/blend "))
			path, prompt, ok := strings.Cut(rest, " ")
			if !ok {
				fmt.Println("usage: /blend <file> <prompt>")
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("could not read %s: %v\n", path, err)
				continue
			}
			content = strings.TrimSpace(prompt)
			image = data
			mode = chat.ModeImageToImage
		}

		before := len(ctrl.Messages())
		fmt.Println("R.O.N.I is thinking...")
		ctrl.Submit(ctx, content, image, mode)

		msgs := ctrl.Messages()
		for _, m := range msgs[before:] {
			if m.Role == models.RoleAssistant {
				printMessage(m)
			}
		}
	}
}

func printMessage(m models.Message) {
	who := "you"
	if m.Role == models.RoleAssistant {
		who = "R.O.N.I"
	}
	fmt.Printf("[%s] %s\n", who, m.Content)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
