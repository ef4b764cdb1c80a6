package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/bidaya/internal/backup"
	"github.com/julianstephens/bidaya/internal/cli"
	"github.com/julianstephens/bidaya/internal/clock"
	"github.com/julianstephens/bidaya/internal/config"
	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/keyring"
	"github.com/julianstephens/bidaya/internal/logger"
	"github.com/julianstephens/bidaya/internal/notifier"
	"github.com/julianstephens/bidaya/internal/providers/advice"
	"github.com/julianstephens/bidaya/internal/providers/prayertimes"
	"github.com/julianstephens/bidaya/internal/remote"
	"github.com/julianstephens/bidaya/internal/storage"
	"github.com/julianstephens/bidaya/internal/storage/sqlite"
)

var CLI struct {
	Version  kong.VersionFlag
	Home     string `help:"Data directory." type:"path" default:"${home}"`
	Backend  string `help:"Local storage backend." enum:"json,sqlite" default:"${backend}"`
	Timezone string `help:"IANA timezone that decides when a new day starts." default:"${timezone}"`
	Debug    bool   `help:"Log to stderr at debug level." default:"${debug}"`

	RemoteFirst bool `help:"Write each change to the remote store first. A failed write leaves local data unchanged." default:"${remoteFirst}"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize bidaya storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status cli.StatusCmd `cmd:"" help:"Show today's Cahaya Amal battery and stats."`
	Task   struct {
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a daily adab task."`
		List   cli.TaskListCmd   `cmd:"" help:"List daily tasks." default:"1"`
	} `cmd:"" help:"Daily routine tasks."`
	Scan struct {
		Toggle cli.ScanToggleCmd `cmd:"" help:"Record or retract a lapse for a body part."`
		List   cli.ScanListCmd   `cmd:"" help:"List today's body scan." default:"1"`
	} `cmd:"" help:"Muhasabah body scan."`
	Heart struct {
		Set  cli.HeartSetCmd  `cmd:"" help:"Set a heart disease level."`
		List cli.HeartListCmd `cmd:"" help:"List heart disease levels." default:"1"`
	} `cmd:"" help:"Heart disease self-assessment."`
	Wirid struct {
		Set  cli.WiridSetCmd  `cmd:"" help:"Set a wirid count."`
		Inc  cli.WiridIncCmd  `cmd:"" help:"Add to a wirid count."`
		Dec  cli.WiridDecCmd  `cmd:"" help:"Subtract from a wirid count."`
		List cli.WiridListCmd `cmd:"" help:"List wirid counts." default:"1"`
	} `cmd:"" help:"Daily remembrance counters."`
	Prayer struct {
		Set  cli.PrayerSetCmd  `cmd:"" help:"Mark a prayer as performed."`
		Show cli.PrayerShowCmd `cmd:"" help:"Show recent prayer history." default:"1"`
	} `cmd:"" help:"Daily prayers."`
	Adab struct {
		Toggle cli.AdabToggleCmd `cmd:"" help:"Toggle a network protocol."`
		List   cli.AdabListCmd   `cmd:"" help:"List network protocols." default:"1"`
	} `cmd:"" help:"Adab toward Allah and people."`
	Reset  cli.ResetCmd  `cmd:"" help:"Reset all progress to the starting state."`
	Export cli.ExportCmd `cmd:"" help:"Export state as JSON."`
	Import cli.ImportCmd `cmd:"" help:"Import state from an exported JSON file."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage state snapshots."`
	Sync struct {
		Login  cli.SyncLoginCmd  `cmd:"" help:"Sign in and reconcile with the remote store."`
		Logout cli.SyncLogoutCmd `cmd:"" help:"Sign out, keeping local data."`
		Push   cli.SyncPushCmd   `cmd:"" help:"Upload local state now."`
		Pull   cli.SyncPullCmd   `cmd:"" help:"Replace local state with the remote copy."`
	} `cmd:"" help:"Remote account sync."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Advice cli.AdviceCmd `cmd:"" help:"Receive a nasihat for your heart."`
	Times  cli.TimesCmd  `cmd:"" help:"Show today's prayer times."`
	Daemon cli.DaemonCmd `cmd:"" help:"Run the midnight rollover and daily reminder in the foreground."`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Bidayatul Hidayah daily habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"home":        cfg.Home,
			"backend":     cfg.Backend,
			"timezone":    cfg.Timezone,
			"debug":       fmt.Sprint(cfg.Debug),
			"remoteFirst": fmt.Sprint(cfg.RemoteFirst),
			"latitude":    fmt.Sprint(cfg.Latitude),
			"longitude":   fmt.Sprint(cfg.Longitude),
			"remind":      cfg.RemindCron,
		},
	)

	home, err := config.ExpandHome(CLI.Home)
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, HomeDir: home}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	clk, err := clock.NewSystem(CLI.Timezone)
	if err != nil {
		errors.Fatal(err)
	}

	var backend storage.Backend
	path := config.DocumentPath(home, CLI.Backend)
	if CLI.Backend == constants.BackendSQLite {
		backend = sqlite.NewStore(path)
	} else {
		backend = storage.NewJSONStore(path)
	}

	adapter := openRemote(cfg)
	n := notifier.New()
	opts := []storage.Option{storage.WithNotifier(n.NotifyOrLog)}
	if adapter != nil {
		opts = append(opts, storage.WithRemote(adapter, keyring.SessionUser))
	}
	store := storage.NewStateStore(backend, clk, opts...)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg.Home, cfg.Backend, cfg.Timezone = home, CLI.Backend, CLI.Timezone
	appCtx := &cli.Context{
		Ctx:         runCtx,
		Config:      cfg,
		Home:        home,
		Clock:       clk,
		Store:       store,
		Backups:     backup.NewManager(home, backend, clk),
		Remote:      adapter,
		Advice:      advice.NewQuoteProvider(),
		PrayerTimes: prayertimes.NewClient(cfg.PrayerAPI, cfg.HTTPTimeout),
		Notify:      n.NotifyOrLog,
		RemoteFirst: CLI.RemoteFirst,
	}

	err = ctx.Run(appCtx)
	appCtx.Close()
	errors.Fatal(err)
}

// openRemote prefers BIDAYA_REMOTE_DSN over the keyring. A bad remote
// setting never blocks local use.
func openRemote(cfg config.Config) remote.Adapter {
	dsn, fromKeyring := cfg.RemoteDSN, false
	if dsn == "" {
		stored, err := keyring.GetConnectionString()
		if err != nil {
			return nil
		}
		dsn, fromKeyring = stored, true
	}
	adapter, err := cli.OpenRemote(dsn, fromKeyring)
	if err != nil {
		logger.Warn("Remote store disabled", "error", err)
		return nil
	}
	return adapter
}
