package internal

import (
	"strings"
	"time"
)

type Config struct {
	APIBaseURL            string        `env:"API_BASE_URL,required=true"`
	ChatSocketURL         string        `env:"CHAT_WS_URL,required=true"`
	NotificationSocketURL string        `env:"NOTIFICATION_WS_URL,required=true"`
	LogLevel              string        `env:"LOG_LEVEL,required=true"`
	AuthToken             string        `env:"AUTH_TOKEN"`
	ReconnectDelay        time.Duration `env:"RECONNECT_DELAY,default=3s"`
	PageSize              int           `env:"PAGE_SIZE,default=50"`
	ToastDuration         time.Duration `env:"TOAST_DURATION,default=5s"`
	RenderInterval        time.Duration `env:"RENDER_INTERVAL,default=10s"`
	MutedWords            string        `env:"MUTED_WORDS"`
	MaskCharacter         string        `env:"MASK_CHARACTER,default=*"`
	DebugPort             int           `env:"DEBUG_PORT"`
}

// MutedWordList splits the comma-separated mute list, dropping empties.
func (c Config) MutedWordList() []string {
	var words []string
	for _, w := range strings.Split(c.MutedWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
