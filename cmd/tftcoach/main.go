// File path: cmd/tftcoach/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/penguinworks/tftcoach/internal/api"
	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/llm"
	"github.com/penguinworks/tftcoach/internal/memory"
	"github.com/penguinworks/tftcoach/internal/meta"
	"github.com/penguinworks/tftcoach/internal/retriever"
	"github.com/penguinworks/tftcoach/internal/vector"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("tftcoach: .env file not loaded", "error", err)
	} else {
		logger.Info("tftcoach: environment loaded from .env")
	}

	addr := flag.String("addr", ":8090", "listen address")
	deckPath := flag.String("decks", defaultDeckPath(), "path to the merged deck collection")
	itemPath := flag.String("items", defaultItemPath(), "path to the item collection")
	champPath := flag.String("champions", defaultChampionPath(), "path to the merged champion collection")
	historyPath := flag.String("history", defaultHistoryPath(), "path to the conversation SQLite database (empty disables history)")
	vectorK := flag.Int("vector-k", 5, "similarity matches requested per query")
	flag.Parse()

	logger.Info("tftcoach: startup initiated", "addr", *addr)

	embedCfg, err := vector.LoadConfig()
	if err != nil {
		logger.Error("tftcoach: embedding config load failed", "error", err)
		fmt.Println("embedding config error:", err)
		os.Exit(1)
	}
	embedder, err := vector.NewOpenAIEmbedder(embedCfg)
	if err != nil {
		logger.Error("tftcoach: embedder initialization failed", "error", err)
		fmt.Println("embedder error:", err)
		os.Exit(1)
	}

	corpus := meta.NewCorpus(meta.Paths{
		Decks:     *deckPath,
		Items:     *itemPath,
		Champions: *champPath,
	})
	retr := retriever.New(corpus, embedder, retriever.WithVectorK(*vectorK))
	if err := retr.Rebuild(ctx); err != nil {
		logger.Error("tftcoach: initial index build failed", "error", err)
		fmt.Println("index build error:", err)
		os.Exit(1)
	}

	provider := llm.NewProvider()
	logger.Info("tftcoach: llm provider ready", "provider", provider.Name())

	var store *memory.Store
	if trimmed := strings.TrimSpace(*historyPath); trimmed != "" {
		store, err = memory.Open(trimmed)
		if err != nil {
			logger.Error("tftcoach: conversation store unavailable", "path", trimmed, "error", err)
			fmt.Println("conversation store error:", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	server := api.NewServer(retr, provider, store)

	logger.Info("tftcoach: server listening", "addr", *addr, "health", "/api/health")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("tftcoach: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDeckPath() string {
	return filepath.Join("data", "meta", "merged_decks.json")
}

func defaultItemPath() string {
	return filepath.Join("data", "item", "lolchess_items.json")
}

func defaultChampionPath() string {
	return filepath.Join("data", "champion", "champion_data.json")
}

func defaultHistoryPath() string {
	return filepath.Join("data", "chat_history.db")
}
