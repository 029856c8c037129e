package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "adjudicatord.conf"
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "adjudicatord.log"
	defaultRPCPort        = 9731
	defaultRESTPort       = 9732
	defaultMaxLogFiles    = 3
	defaultMaxLogFileSize = 10
	defaultDBBackend      = "bolt"

	shutdownTimeout = 5 * time.Second
)

// config mirrors the teacher's flat, flags-tagged config struct: every
// daemon knob is a field here, parsed once from the command line and the
// config file at startup and then passed down by value or by the narrow
// sub-config it belongs to.
type config struct {
	ConfigFile string `long:"configfile" description:"Path to configuration file"`
	DataDir    string `long:"datadir" description:"Directory to store the adjudicator's deposit and dispute database"`
	LogDir     string `long:"logdir" description:"Directory to log output"`

	RPCListen  string `long:"rpclisten" description:"Add interface/port/socket to listen for gRPC connections"`
	RESTListen string `long:"restlisten" description:"Add interface/port/socket to listen for REST connections"`
	NoREST     bool   `long:"norest" description:"Disable the REST gateway"`
	NoMacaroons bool  `long:"no-macaroons" description:"Disable macaroon authentication"`

	TLSCertPath string   `long:"tlscertpath" description:"Path to write the self-signed TLS certificate"`
	TLSKeyPath  string   `long:"tlskeypath" description:"Path to write the self-signed TLS private key"`
	TLSExtraIP  []string `long:"tlsextraip" description:"Add an IP to the generated certificate"`
	TLSExtraDomain []string `long:"tlsextradomain" description:"Add a hostname to the generated certificate"`

	MacaroonPath string `long:"macaroonpath" description:"Path to write the admin macaroon"`

	DBBackend  string `long:"db.backend" description:"Storage backend to use for the adjudicator database (bolt|postgres)"`
	PostgresDSN string `long:"db.postgres.dsn" description:"Postgres connection string, required when db.backend=postgres"`

	BankEndpoint string `long:"bank.endpoint" description:"Address of the bank sink used to settle withdrawals"`

	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems"`
	MaxLogFiles int `long:"maxlogfiles" description:"Maximum logfiles to keep (0 for no rotation)"`
	MaxLogFileSize int `long:"maxlogfilesize" description:"Maximum logfile size in MB"`
}

// defaultConfig returns a config populated with the same defaults the
// teacher's loadConfig starts from before overlaying the config file and
// command line flags.
func defaultConfig() config {
	adjDir := defaultAdjudicatorDir()
	return config{
		ConfigFile:     filepath.Join(adjDir, defaultConfigFilename),
		DataDir:        filepath.Join(adjDir, defaultDataDirname),
		LogDir:         filepath.Join(adjDir, defaultLogDirname),
		RPCListen:      fmt.Sprintf("localhost:%d", defaultRPCPort),
		RESTListen:     fmt.Sprintf("localhost:%d", defaultRESTPort),
		TLSCertPath:    filepath.Join(adjDir, "tls.cert"),
		TLSKeyPath:     filepath.Join(adjDir, "tls.key"),
		MacaroonPath:   filepath.Join(adjDir, "admin.macaroon"),
		DBBackend:      defaultDBBackend,
		DebugLevel:     "info",
		MaxLogFiles:    defaultMaxLogFiles,
		MaxLogFileSize: defaultMaxLogFileSize,
	}
}

func defaultAdjudicatorDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".adjudicatord"
	}
	return filepath.Join(home, ".adjudicatord")
}

// loadConfig parses command line arguments over defaultConfig, following
// them with an optional config file so that command line flags always win.
// Grounded on the teacher's lndMain two-pass load: one flags.Parse for
// --configfile discovery, a second pass combining the ini file with the
// command line.
func loadConfig() (*config, error) {
	preCfg := defaultConfig()
	if _, err := flags.NewParser(&preCfg, flags.Default).Parse(); err != nil {
		return nil, err
	}

	cfg := preCfg
	if _, err := os.Stat(preCfg.ConfigFile); err == nil {
		parser := flags.NewParser(&cfg, flags.Default)
		if err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	if _, err := flags.NewParser(&cfg, flags.Default).Parse(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if cfg.DBBackend == "postgres" && cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("db.postgres.dsn is required when db.backend=postgres")
	}

	return &cfg, nil
}
