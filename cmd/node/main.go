package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dialogs/dialog-node-lib/config"
	"github.com/dialogs/dialog-node-lib/logger"
	"github.com/dialogs/dialog-node-lib/node"
	"github.com/dialogs/dialog-node-lib/qosmetrics"
	"github.com/dialogs/dialog-node-lib/service"
	"github.com/dialogs/dialog-node-lib/service/info"
	"github.com/dialogs/dialog-node-lib/service/router"
	"github.com/dialogs/dialog-node-lib/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// set by -ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const (
	envPrefix       = "NODE"
	metricNamespace = "node"
	adminTimeout    = 5 * time.Second
)

func main() {
	os.Exit(start(os.Args[1:]))
}

// start runs the node and returns the process exit code. Deferred calls
// (the logger flush) complete before main exits.
func start(args []string) int {

	v, err := loadConfig(args)
	if err != nil {
		log.Println(err)
		return 1
	}

	l, err := logger.New(logger.Config{
		Debug: v.GetBool("log_debug"),
		Level: v.GetString("log_level"),
	})
	if err != nil {
		log.Println(err)
		return 1
	}
	defer l.Sync()

	if err := run(v, l); err != nil {
		l.Error("node failed", zap.Error(err))
		return 1
	}

	return 0
}

func newFlagSet() *flag.FlagSet {

	fs := flag.NewFlagSet("node", flag.ContinueOnError)
	fs.String("address", "127.0.0.1", "listen address")
	fs.Int("port", 8080, "listen port (0 for an ephemeral port)")
	fs.Int("pool-size", node.DefaultPoolSize, "number of workers")
	fs.Int("read-buffer", node.DefaultReadBuffer, "bytes read once from a connection")
	fs.String("tls-cert", "", "pem certificate file")
	fs.String("tls-key", "", "pem private key file")
	fs.String("tls-p12", "", "p12(pfx) certificate file, instead of tls-cert and tls-key")
	fs.String("tls-p12-password", "", "p12(pfx) password")
	fs.String("admin-address", "127.0.0.1:8081", "admin http address, empty to disable")
	fs.String("log-level", "info", "logger level (debug, info, warn, error)")
	fs.Bool("log-debug", false, "logger develop mode")

	return fs
}

// loadConfig merges the NODE_* environment and the command line flags
func loadConfig(args []string) (*viper.Viper, error) {

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := config.New(envPrefix, true)
	if err := config.BindFlags(v, fs); err != nil {
		return nil, err
	}

	return v, nil
}

func run(v *viper.Viper, l *zap.Logger) error {

	cfg, err := node.NewConfig(v)
	if err != nil {
		return err
	}

	readBuffer, err := config.GetInt(v, "read_buffer")
	if err != nil {
		return err
	}

	adminAddr, err := config.GetString(v, "admin_address")
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	poolMetric, err := qosmetrics.NewPoolMetric(metricNamespace, reg)
	if err != nil {
		return err
	}

	nodeMetric, err := qosmetrics.NewNodeMetric(metricNamespace, reg)
	if err != nil {
		return err
	}

	n, err := node.NewWithConfig(cfg,
		node.WithLogger(l),
		node.WithMetric(nodeMetric),
		node.WithPoolOptions(worker.WithMetric(poolMetric)))
	if err != nil {
		return err
	}

	if err := qosmetrics.RegisterPoolGauges(metricNamespace, reg, n.Pool()); err != nil {
		n.Close()
		return err
	}

	tasks := []service.GroupTask{
		func(ctx context.Context) error {
			return n.Serve(ctx, node.LogHandler(readBuffer))
		},
		waitSignal,
	}

	if adminAddr != "" {
		admin := router.NewAdminRouter(info.New("node", version, commit, buildDate))
		admin.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		admin.HandleJSON("/stats", func() interface{} {
			return n.Pool().Stats()
		})

		svc := service.NewHTTP(admin, adminTimeout)
		svc.SetLogger(l)

		tasks = append(tasks, func(ctx context.Context) error {
			go func() {
				<-ctx.Done()
				svc.Close()
			}()

			if err := svc.ListenAndServeAddr(adminAddr); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	var retval error

	chErr, cancel := service.RunGroup(context.Background(), tasks...)
	for err := range chErr {
		cancel()
		if err != nil && retval == nil {
			retval = err
		}
	}

	n.Close()
	n.Wait()

	return retval
}

func waitSignal(ctx context.Context) error {

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case <-ch:
	case <-ctx.Done():
	}

	return nil
}
