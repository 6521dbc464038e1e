package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"social-sync/auth"
	"social-sync/call"
	"social-sync/domain"
	"social-sync/enrich"
	"social-sync/history"
	"social-sync/internal"
	"social-sync/moderation"
	"social-sync/notify"
	"social-sync/projection"
	"social-sync/repositories"
	"social-sync/search"
	"social-sync/transport"
	"social-sync/wire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the session lifecycle. Keeping
// the logic out of main ensures deferred cleanup (database, sockets) always
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Session stores. Both the profile cache and the search index are
	// in-memory: nothing outlives the process.
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := search.NewInMemoryIndex()
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() { _ = index.Close() }()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Core components. The chat socket multiplexes chat frames and call
	// signaling, so its handler is bound after both consumers exist.
	// Malformed or unknown frames are logged and dropped, never fatal.
	provider := auth.NewProvider()
	fetcher := history.NewFetcher(config.APIBaseURL, provider, log)
	cache := repositories.NewProfileCache(db)
	enricher := enrich.NewEnricher(provider, fetcher, cache, log)

	var (
		chatState *projection.ChatState
		machine   *call.Machine
	)
	chatChannel := transport.NewChannel("chat", config.ChatSocketURL, provider,
		func(data []byte) {
			frame, err := wire.Decode(data)
			if err != nil {
				log.Warn("Dropping inbound frame", "err", err)
				return
			}
			if sig, ok := frame.(wire.Signal); ok {
				machine.HandleSignal(ctx, sig)
				return
			}
			chatState.HandleFrame(ctx, frame)
		}, config.ReconnectDelay, log)

	chatState = projection.NewChatState(provider, fetcher, chatChannel, enricher, log).
		WithIndex(index).
		WithPageSize(config.PageSize)

	machine = call.NewMachine(provider, fetcher, chatChannel, noopMediaSession{}, chatState, log).
		WithNotice(func(text string) { log.Info("Call notice", "text", text) })

	center := notify.NewCenter(provider, fetcher, log).
		WithToastDuration(config.ToastDuration)
	center.WithChannel(func() notify.Connector {
		return transport.NewChannel("notifications", config.NotificationSocketURL,
			provider, center.HandleRaw, config.ReconnectDelay, log)
	})

	if words := config.MutedWordList(); len(words) > 0 {
		moderator, err := moderation.NewModerator(words, []rune(config.MaskCharacter)[0])
		if err != nil {
			return fmt.Errorf("muted words setup failed: %w", err)
		}
		center.WithModerator(moderator)
	}

	// 5. Optional diagnostics endpoint
	if config.DebugPort > 0 {
		internal.StartInspector(cache, config.DebugPort, func() map[string]any {
			return map[string]any{
				"chat_connected":    chatChannel.Connected(),
				"reconnect_pending": chatChannel.ReconnectPending(),
				"conversations":     len(chatState.Conversations()),
				"unread":            center.Unread(),
				"call_state":        string(machine.Session().State),
				"time":              time.Now().Format(time.RFC822),
			}
		})
		log.Info("Inspector started", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
	}

	// 6. Bring the session up
	if config.AuthToken != "" {
		provider.SetToken(config.AuthToken)
	}
	center.Start(ctx)
	chatChannel.Connect(ctx)
	chatState.LoadConversations(ctx)

	// 7. Render loop until shutdown
	ticker := time.NewTicker(config.RenderInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down gracefully...")
			chatChannel.Close()
			center.Close()
			log.Info("Program stopped cleanly")
			return nil
		case <-ticker.C:
			renderDashboard(os.Stdout, chatState, center)
		}
	}
}

// noopMediaSession stands in for a WebRTC provider SDK. Signaling still
// flows; only the media plane is absent.
type noopMediaSession struct{}

func (noopMediaSession) Join(ctx context.Context, cred domain.CallCredential, kind domain.CallKind) error {
	return nil
}
func (noopMediaSession) Leave(ctx context.Context) error { return nil }
func (noopMediaSession) ReleaseLocalMedia()              {}
