package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"astra-kilimo/pkg/httpBotter"
)

// Lines starting with "/image <url> [content-type]" are sent as an attachment

func main() {
	reader := bufio.NewReader(os.Stdin)
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)

	serverURL := "http://127.0.0.1:5000"
	if os.Getenv("SERVER_URL") != "" {
		serverURL = os.Getenv("SERVER_URL")
	}
	botter := httpBotter.New(serverURL)

	for {
		fmt.Print("> ")
		input, _, err := reader.ReadLine()
		if err != nil {
			fmt.Println("Error reading input:", err)
			return
		}

		msg, media := parseInput(string(input))

		spin.Start()
		response, err := botter.Send("whatsapp:client-cli", msg, media)
		spin.Stop()
		if err != nil {
			fmt.Println("Error during receiving response:", err)

			continue
		}

		fmt.Print(">> ", response, "\n")
	}
}

func parseInput(input string) (string, *httpBotter.Media) {
	fields := strings.Fields(input)
	if len(fields) < 2 || fields[0] != "/image" {
		return input, nil
	}

	contentType := "image/jpeg"
	if len(fields) > 2 {
		contentType = fields[2]
	}

	return "", &httpBotter.Media{URL: fields[1], ContentType: contentType}
}
