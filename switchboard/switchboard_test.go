package switchboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwitchboard_Defaults(t *testing.T) {
	req := require.New(t)
	board := New()

	config := board.GetWithDefault("unknown")
	req.False(config.Enabled)
	req.Equal(ProviderSimulated, config.Provider)

	_, ok := board.Get("unknown")
	req.False(ok)
	req.False(board.HasRealProviderEnabled("unknown"))
	req.Nil(board.ProviderDetails("unknown"))
}

func TestSwitchboard_Set_FillsDefaultModel(t *testing.T) {
	req := require.New(t)
	board := New()

	board.Set("p1", Config{Enabled: true, Provider: ProviderOpenAI})
	board.Set("p2", Config{Enabled: true, Provider: ProviderAnthropic, Model: "claude-3-opus-20240229"})
	board.Set("p3", Config{Enabled: true, Provider: ProviderSimulated})

	config, ok := board.Get("p1")
	req.True(ok)
	req.Equal("gpt-4o-mini", config.Model)

	config, _ = board.Get("p2")
	req.Equal("claude-3-opus-20240229", config.Model)

	// Simulated mode never carries a model
	config, _ = board.Get("p3")
	req.Empty(config.Model)
}

func TestSwitchboard_ProviderDetails(t *testing.T) {
	req := require.New(t)
	board := New()

	board.Set("real", Config{Enabled: true, Provider: ProviderAnthropic})
	board.Set("disabled", Config{Enabled: false, Provider: ProviderOpenAI, Model: "gpt-4o"})
	board.Set("sim", Config{Enabled: true, Provider: ProviderSimulated})

	details := board.ProviderDetails("real")
	req.NotNil(details)
	req.Equal(ProviderAnthropic, details.Provider)
	req.Equal("claude-3-haiku-20240307", details.Model)

	// Disabled means simulated regardless of the stored provider
	req.Nil(board.ProviderDetails("disabled"))
	req.False(board.HasRealProviderEnabled("disabled"))

	details = board.ProviderDetails("sim")
	req.NotNil(details)
	req.Equal(ProviderSimulated, details.Provider)
	req.Empty(details.Model)
	req.False(board.HasRealProviderEnabled("sim"))

	req.True(board.HasRealProviderEnabled("real"))
}

func TestSwitchboard_SetMany_All_Clear(t *testing.T) {
	req := require.New(t)
	board := New()

	board.SetMany(map[string]Config{
		"p1": {Enabled: true, Provider: ProviderOpenAI},
		"p2": {Enabled: true, Provider: ProviderAnthropic},
	})

	all := board.All()
	req.Len(all, 2)
	req.Equal("gpt-4o-mini", all["p1"].Model)

	// All returns a snapshot, not the live map
	all["p3"] = Config{}
	req.Len(board.All(), 2)

	board.Clear()
	req.Empty(board.All())
}
