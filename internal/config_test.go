package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_MutedWordList(t *testing.T) {
	req := require.New(t)

	req.Nil(Config{}.MutedWordList())
	req.Equal([]string{"spam", "spoiler"}, Config{MutedWords: "spam, spoiler"}.MutedWordList())
	req.Equal([]string{"spam"}, Config{MutedWords: ",spam,,"}.MutedWordList())
}
