// Package daemon orchestrates adjudicatord: load config, open the store,
// construct the core.Adjudicator, stand up the gRPC/REST surface with
// metrics, auth and TLS attached, and block until shutdown. Grounded on
// the teacher's lnd.go lndMain — same load-config/open-db/build-server/
// start-listeners/wait-for-shutdown shape, generalised from a Lightning
// node to the on-chain adjudicator.
package daemon

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/perunnetwork/cosmwasm-adjudicator/auth"
	"github.com/perunnetwork/cosmwasm-adjudicator/bank"
	"github.com/perunnetwork/cosmwasm-adjudicator/certs"
	"github.com/perunnetwork/cosmwasm-adjudicator/clockshim"
	"github.com/perunnetwork/cosmwasm-adjudicator/healthcheck"
	"github.com/perunnetwork/cosmwasm-adjudicator/metrics"
	"github.com/perunnetwork/cosmwasm-adjudicator/rpc"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// Main is the daemon's true entry point, called from cmd/adjudicatord's
// main() so deferred cleanups run even when the process exits early
// (mirroring the teacher's lndMain/main split).
func Main() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogRotator(
		fmt.Sprintf("%s/%s", cfg.LogDir, defaultLogFilename),
		cfg.MaxLogFileSize, cfg.MaxLogFiles,
	); err != nil {
		return err
	}
	setLogLevels(cfg.DebugLevel)
	mainLog.Infof("adjudicatord starting, datadir=%s", cfg.DataDir)

	db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	sink, sinkCloser, err := openBankSink(cfg)
	if err != nil {
		return fmt.Errorf("opening bank sink: %w", err)
	}
	if sinkCloser != nil {
		defer sinkCloser.Close()
	}

	registry := prometheus.NewRegistry()
	collectors := metrics.New(registry)

	_, server := rpc.NewServerWithEvents(db, clockshim.NewDefault(), sink, collectors)

	macaroonSvc, err := setUpAuth(cfg)
	if err != nil {
		return fmt.Errorf("setting up macaroon auth: %w", err)
	}

	grpcServer, err := newGRPCServer(cfg, collectors, macaroonSvc)
	if err != nil {
		return fmt.Errorf("constructing gRPC server: %w", err)
	}
	rpc.RegisterAdjudicatorServer(grpcServer, server)
	grpc_prometheus.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.RPCListen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.RPCListen, err)
	}
	defer lis.Close()

	go func() {
		rpcsLog.Infof("gRPC server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			rpcsLog.Errorf("gRPC server exited: %v", err)
		}
	}()
	defer grpcServer.GracefulStop()

	var restServer *http.Server
	if !cfg.NoREST {
		restServer = newRESTServer(cfg, server, registry)
		go func() {
			rpcsLog.Infof("REST gateway listening on %s", cfg.RESTListen)
			if err := restServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				rpcsLog.Errorf("REST gateway exited: %v", err)
			}
		}()
	}

	monitor := healthcheck.NewMonitor(db, sink, func(name string, err error) {
		hlthLog.Criticalf("healthcheck %q failed: %v", name, err)
	})
	if err := monitor.Start(); err != nil {
		return fmt.Errorf("starting healthcheck monitor: %w", err)
	}
	defer monitor.Stop()

	return waitForShutdown(restServer)
}

func openStore(cfg *config) (*store.DB, error) {
	if cfg.DBBackend == "postgres" {
		return store.OpenPostgres(cfg.PostgresDSN, "adjudicator")
	}
	return store.Open(fmt.Sprintf("%s/adjudicator.db", cfg.DataDir))
}

func openBankSink(cfg *config) (bank.Sink, *grpc.ClientConn, error) {
	if cfg.BankEndpoint == "" {
		mainLog.Warnf("no bank.endpoint configured, using in-memory bank sink")
		return bank.NewMemSink(), nil, nil
	}
	sink, cc, err := bank.Dial(cfg.BankEndpoint, grpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	return sink, cc, nil
}

func setUpAuth(cfg *config) (*auth.Service, error) {
	if cfg.NoMacaroons {
		return nil, nil
	}
	if raw, err := os.ReadFile(cfg.MacaroonPath + ".key"); err == nil {
		return auth.NewServiceFromKey(raw), nil
	}
	svc, err := auth.NewService()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cfg.MacaroonPath+".key", svc.RootKey(), 0600); err != nil {
		return nil, err
	}
	adminMac, err := svc.Bake("adjudicatord", auth.CaveatWrite)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cfg.MacaroonPath, adminMac, 0600); err != nil {
		return nil, err
	}
	authLog.Infof("wrote admin macaroon to %s", cfg.MacaroonPath)
	return svc, nil
}

func newGRPCServer(cfg *config, collectors *metrics.Collectors, macaroonSvc *auth.Service) (*grpc.Server, error) {
	tlsCert, err := certs.Load(certs.Config{
		CertPath: cfg.TLSCertPath,
		KeyPath:  cfg.TLSKeyPath,
		ExtraIPs: cfg.TLSExtraIP,
		ExtraDNS: cfg.TLSExtraDomain,
	})
	if err != nil {
		return nil, fmt.Errorf("loading TLS certificate: %w", err)
	}

	unaryInterceptors := []grpc.UnaryServerInterceptor{
		grpc_prometheus.UnaryServerInterceptor,
		collectors.UnaryServerInterceptor(),
	}
	streamInterceptors := []grpc.StreamServerInterceptor{
		grpc_prometheus.StreamServerInterceptor,
	}
	if macaroonSvc != nil {
		unaryInterceptors = append(unaryInterceptors, macaroonSvc.UnaryInterceptor())
		streamInterceptors = append(streamInterceptors, macaroonSvc.StreamInterceptor())
	}

	opts := []grpc.ServerOption{
		grpc.Creds(credentials.NewServerTLSFromCert(&tlsCert)),
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(unaryInterceptors...)),
		grpc.StreamInterceptor(grpc_middleware.ChainStreamServer(streamInterceptors...)),
	}
	return grpc.NewServer(opts...), nil
}

func newRESTServer(cfg *config, server rpc.AdjudicatorServer, registry *prometheus.Registry) *http.Server {
	cc := rpc.NewInProcessConn(server)
	mux := http.NewServeMux()
	mux.Handle("/v1/", rpc.NewGatewayMux(rpc.NewAdjudicatorClient(cc)))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &http.Server{Addr: cfg.RESTListen, Handler: mux}
}

func waitForShutdown(restServer *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	mainLog.Infof("shutdown signal received")
	if restServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := restServer.Shutdown(ctx); err != nil {
			rpcsLog.Errorf("REST gateway shutdown: %v", err)
		}
	}
	return nil
}
