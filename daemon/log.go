package daemon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/perunnetwork/cosmwasm-adjudicator/auth"
	"github.com/perunnetwork/cosmwasm-adjudicator/certs"
	"github.com/perunnetwork/cosmwasm-adjudicator/core"
	"github.com/perunnetwork/cosmwasm-adjudicator/healthcheck"
	"github.com/perunnetwork/cosmwasm-adjudicator/rpc"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// logWriter fans out log output to both stdout and the rotator once it has
// been initialized; before that it is stdout-only so early startup errors
// are never silently dropped.
type logWriter struct {
	rotatorPipe io.WriteCloser
}

func (w *logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if w.rotatorPipe != nil {
		w.rotatorPipe.Write(p)
	}
	return len(p), nil
}

var (
	logOutput = &logWriter{}
	backendLog = btclog.NewBackend(logOutput)
	logRotator *rotator.Rotator

	adjrLog = backendLog.Logger("ADJR") // core adjudicator operations
	storLog = backendLog.Logger("STOR") // kvdb-backed store
	rpcsLog = backendLog.Logger("RPCS") // gRPC/REST surface
	authLog = backendLog.Logger("AUTH") // macaroon authentication
	hlthLog = backendLog.Logger("HLTH") // healthcheck monitor
	certLog = backendLog.Logger("CERT") // TLS certificate bootstrap
	mainLog = backendLog.Logger("ADJD") // daemon orchestration
)

var subsystemLoggers = map[string]btclog.Logger{
	"ADJR": adjrLog,
	"STOR": storLog,
	"RPCS": rpcsLog,
	"AUTH": authLog,
	"HLTH": hlthLog,
	"CERT": certLog,
	"ADJD": mainLog,
}

func init() {
	core.UseLogger(adjrLog)
	store.UseLogger(storLog)
	rpc.UseLogger(rpcsLog)
	auth.UseLogger(authLog)
	healthcheck.UseLogger(hlthLog)
	certs.UseLogger(certLog)
}

// initLogRotator points the shared log backend at logFile, rolling it once
// it exceeds maxFileSize MiB and keeping at most maxFiles old copies.
func initLogRotator(logFile string, maxFileSize, maxFiles int) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	r, err := rotator.New(logFile, int64(maxFileSize*1024), false, maxFiles)
	if err != nil {
		return fmt.Errorf("create log rotator: %w", err)
	}

	pr, pw := io.Pipe()
	go r.Run(pr)

	logOutput.rotatorPipe = pw
	logRotator = r
	return nil
}

// setLogLevels applies logLevel ("trace", "debug", "info", "warn", "error",
// "critical", "off") to every registered subsystem logger.
func setLogLevels(logLevel string) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		level = btclog.LevelInfo
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
