package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const logsDirectory = "logs"
const envFileName = ".env"

const VendorName = "blackcrown"
const ApplicationName = "lobby"

const UserColor = lipgloss.Color("#6c8fff")
const ForegroundShadeColor = lipgloss.Color("#555555")

var playerName string
var debug bool
var anonymous bool
var demo bool
var demoBots int

var Logger *zap.Logger
var LogFilePath string

// Environment is read from LOBBY_* variables, optionally seeded from a .env file.
type Environment struct {
	WSURL            string          `env:"LOBBY_WS_URL"              envDefault:"mock://lobby"`
	ChatMaxLength    int             `env:"LOBBY_CHAT_MAX_LENGTH"     envDefault:"200"`
	ChatMinInterval  time.Duration   `env:"LOBBY_CHAT_MIN_INTERVAL"   envDefault:"1500ms"`
	ChatWindow       time.Duration   `env:"LOBBY_CHAT_WINDOW"         envDefault:"8s"`
	ChatMaxPerWindow int             `env:"LOBBY_CHAT_MAX_PER_WINDOW" envDefault:"5"`
	HistoryLimit     int             `env:"LOBBY_HISTORY_LIMIT"       envDefault:"200"`
	MaxPlayers       int             `env:"LOBBY_MAX_PLAYERS"         envDefault:"8"`
	Flags            map[string]bool `env:"LOBBY_FLAGS"`
}

func SetupLogger() {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	LogFilePath = createLogFile()
	c.OutputPaths = []string{LogFilePath}
	c.Development = false
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

func createLogFile() string {
	name := fmt.Sprintf("lobby-%s.log", time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, name)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		panic(err)
	}

	if _, err := os.Create(path); err != nil {
		panic(err)
	}

	return path
}

// BindFlags registers the persistent command line flags.
func BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&playerName, "name", "", "Player name")
	flags.BoolVar(&debug, "debug", false, "Write debug logs")
	flags.BoolVar(&anonymous, "anonymous", false, "Do not read or write local settings")
	flags.BoolVar(&demo, "demo", false, "Fill the lobby with in-process bots")
	flags.IntVar(&demoBots, "demo-bots", 3, "Number of demo bots")
}

// LoadEnvironment parses LOBBY_* variables. A missing .env file is not an error.
func LoadEnvironment() (Environment, error) {
	_ = godotenv.Load(envFileName)

	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, errors.Wrap(err, "failed to parse environment")
	}

	if err := e.validate(); err != nil {
		return Environment{}, err
	}

	for key, value := range e.Flags {
		SetFlag(FlagKey(strings.ToUpper(key)), value)
	}

	return e, nil
}

func (e Environment) validate() error {
	positive := []struct {
		name  string
		value int64
	}{
		{"LOBBY_CHAT_MAX_LENGTH", int64(e.ChatMaxLength)},
		{"LOBBY_CHAT_WINDOW", int64(e.ChatWindow)},
		{"LOBBY_CHAT_MAX_PER_WINDOW", int64(e.ChatMaxPerWindow)},
		{"LOBBY_HISTORY_LIMIT", int64(e.HistoryLimit)},
		{"LOBBY_MAX_PLAYERS", int64(e.MaxPlayers)},
	}
	for _, v := range positive {
		if v.value <= 0 {
			return errors.Errorf("%s must be positive, got %d", v.name, v.value)
		}
	}
	if e.ChatMinInterval < 0 {
		return errors.Errorf("LOBBY_CHAT_MIN_INTERVAL must not be negative, got %s", e.ChatMinInterval)
	}
	return nil
}

func PlayerName() string {
	return playerName
}

func Debug() bool {
	return debug
}

func Anonymous() bool {
	return anonymous
}

func Demo() bool {
	return demo
}

func DemoBots() int {
	return demoBots
}
