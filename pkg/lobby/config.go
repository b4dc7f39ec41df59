package lobby

const (
	DefaultHistoryLimit = 200
	DefaultMaxPlayers   = 8
	DefaultPlayerName   = "Guest"
)

type configuration struct {
	PlayerName   string
	IsHost       bool
	HistoryLimit int
	MaxPlayers   int
}

var defaultConfig = configuration{
	PlayerName:   "",
	IsHost:       false,
	HistoryLimit: DefaultHistoryLimit,
	MaxPlayers:   DefaultMaxPlayers,
}
