package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000"

// Simplified DTOs for the script
type chatRequest struct {
	Question       string `json:"question"`
	ConversationId string `json:"conversation_id,omitempty"`
}

type chatResponse struct {
	Reponse        string `json:"reponse"`
	ConversationId string `json:"conversation_id"`
	Documents      []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"documents"`
}

func main() {
	color.Cyan("🚀 Wealth Advisor Funnel Simulation\n")
	fmt.Println("Type your messages; 'quit' exits. The first reply prints the conversation id.")

	scanner := bufio.NewScanner(os.Stdin)
	conversationId := ""

	for {
		color.Yellow("\nVOUS: ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" {
			break
		}

		start := time.Now()
		res, err := sendChat(conversationId, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		if conversationId == "" {
			conversationId = res.ConversationId
			color.Green("Conversation: %s", conversationId)
		}

		color.Green("CONSEILLER (%v): %s", elapsed.Round(time.Millisecond), res.Reponse)
		for _, doc := range res.Documents {
			fmt.Printf("  📄 %s (%s)\n", doc.Title, doc.URL)
		}
	}
}

func sendChat(conversationId, text string) (*chatResponse, error) {
	payload := chatRequest{
		Question:       text,
		ConversationId: conversationId,
	}
	jsonBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", baseURL+"/api/chat", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
