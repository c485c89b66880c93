package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Scan_Finds_Flagged_Terms(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"refund scam", "crypto"}, '*')
	req.NoError(err)

	terms := moderator.Scan("Special CRYPTO deal, this is not a refund scam I promise")
	req.ElementsMatch([]string{"crypto", "refund scam"}, terms)

	req.Empty(moderator.Scan("hello, just asking about my order"))
	req.Empty(moderator.Scan(""))
}

func Test_Scan_Is_Accent_Insensitive(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"credit"}, '*')
	req.NoError(err)

	req.Equal([]string{"credit"}, moderator.Scan("offre de crédit gratuite"))
}

func Test_Censor_Masks_Matches(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"scam"}, '*')
	req.NoError(err)

	req.Equal("this is a ****", moderator.Censor("this is a SCAM"))
	req.Equal("clean text", moderator.Censor("clean text"))
}
