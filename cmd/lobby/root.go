package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/internal/config"
	"github.com/blackcrown/lobby/internal/demo"
	"github.com/blackcrown/lobby/internal/transport"
	"github.com/blackcrown/lobby/internal/version"
	"github.com/blackcrown/lobby/internal/view"
	"github.com/blackcrown/lobby/pkg/admission"
	"github.com/blackcrown/lobby/pkg/lobby"
	"github.com/blackcrown/lobby/pkg/protocol"
	"github.com/blackcrown/lobby/pkg/storage"
)

var exitCode int

var rootCmd = &cobra.Command{
	Use:           "lobby",
	Short:         "Pre-game lobby with chat and ready checks",
	Version:       version.Version(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), "", false)
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <address>",
	Short: "Join an existing lobby, e.g. mock://room-1 or wss://host/lobby",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := protocol.ParseAddress(args[0])
		if err != nil {
			return err
		}
		return run(cmd.Context(), address, false)
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Open a new in-process lobby and host it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := protocol.NewRoomAddress()
		if err != nil {
			return err
		}
		return run(cmd.Context(), address, true)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	config.BindFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(joinCmd, newCmd)
}

func execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
		return 1
	}
	return exitCode
}

// run wires the lobby for the address. An empty address means the one from the environment.
func run(ctx context.Context, address protocol.Address, host bool) error {
	config.SetupLogger()
	defer func() { _ = config.Logger.Sync() }()

	environment, err := config.LoadEnvironment()
	if err != nil {
		return err
	}

	if address.Empty() {
		address, err = protocol.ParseAddress(environment.WSURL)
		if err != nil {
			return errors.Wrap(err, "invalid LOBBY_WS_URL")
		}
	}

	// The local player hosts the demo room.
	if config.Demo() {
		host = true
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	settings, err := createStorage()
	if err != nil {
		return err
	}

	options := []lobby.Option{
		lobby.WithConnection(transport.Dial(address,
			transport.WithContext(ctx),
			transport.WithLogger(config.Logger),
		)),
		lobby.WithLogger(config.Logger),
		lobby.WithHost(host),
		lobby.WithHistoryLimit(environment.HistoryLimit),
		lobby.WithMaxPlayers(environment.MaxPlayers),
		lobby.WithAdmission(admission.NewPolicy(admission.WithConfig(admission.Config{
			MaxLength:    environment.ChatMaxLength,
			MinInterval:  environment.ChatMinInterval,
			Window:       environment.ChatWindow,
			MaxPerWindow: environment.ChatMaxPerWindow,
		}))),
	}
	if settings != nil {
		options = append(options, lobby.WithStorage(settings))
	}
	if name := config.PlayerName(); name != "" {
		options = append(options, lobby.WithPlayerName(name))
	}

	l := lobby.New(options...)
	if l == nil {
		return errors.New("failed to create lobby")
	}
	defer l.Leave()

	if config.Demo() {
		fleet, err := demo.Start(ctx, address,
			demo.WithLogger(config.Logger),
			demo.WithBotsCount(config.DemoBots()),
		)
		if err != nil {
			return err
		}
		defer fleet.Stop()
	}

	config.Logger.Info("lobby starting",
		zap.String("address", address.String()),
		zap.Bool("host", host),
		zap.String("version", version.Version()),
	)

	var service storage.Service
	if settings != nil {
		service = settings
	}
	exitCode = view.Run(l, service)
	return nil
}

func createStorage() (*storage.LocalStorage, error) {
	if config.Anonymous() {
		return nil, nil
	}

	s := storage.NewLocalStorage("")
	if s == nil {
		return nil, errors.New("failed to create storage")
	}

	err := s.Initialize()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize storage")
	}

	if name := config.PlayerName(); name != "" {
		if err := s.SetNickname(name); err != nil {
			config.Logger.Warn("failed to save nickname", zap.Error(err))
		}
	}

	return s, nil
}
