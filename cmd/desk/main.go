package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/yanun0323/logs"

	"main/internal/algoexec"
	"main/internal/algostream"
	"main/internal/bond"
	"main/internal/booking"
	"main/internal/execution"
	"main/internal/fabric"
	"main/internal/gui"
	"main/internal/hist"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/model"
	"main/internal/ops"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/risk"
	"main/internal/streaming"
	"main/pkg/conn"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to JSON config")
	dataDir := flag.String("data-dir", "", "Feed file directory (overrides config)")
	outDir := flag.String("out-dir", "", "Historical output directory (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logs.Errorf("load config, err: %+v", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	if err := run(cfg); err != nil {
		logs.Errorf("desk run, err: %+v", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (ops.Loaded, error) {
	if path == "" {
		return ops.Default(), nil
	}
	return ops.Load(path)
}

// sinks bundles the per-kind historical outputs and their shared
// resources so they can be flushed together.
type sinks struct {
	appenders []*hist.FileAppender
	pg        *conn.Client
	err       error

	positions  fabric.Publisher[model.Position]
	risk       fabric.Publisher[model.PV01]
	executions fabric.Publisher[model.ExecutionOrder]
	streaming  fabric.Publisher[model.PriceStream]
	inquiries  fabric.Publisher[model.Inquiry]
	gui        fabric.Publisher[model.PriceUpdate]
}

func (s *sinks) Close() {
	for _, a := range s.appenders {
		if err := a.Close(); err != nil {
			logs.Errorf("close sink, err: %+v", err)
		}
	}
	if s.pg != nil {
		if err := s.pg.Close(); err != nil {
			logs.Errorf("close postgres, err: %+v", err)
		}
	}
}

func run(cfg ops.Loaded) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	reg := bond.NewRegistry()
	out, err := buildSinks(cfg)
	if err != nil {
		return err
	}
	defer out.Close()

	// Price pipeline: pricing fans out to the algo streamer and the
	// throttled display; streamed quotes trail into history.
	pricingSvc := pricing.NewService()
	algostreamSvc := algostream.NewService()
	streamingSvc := streaming.NewService()
	histStreaming := hist.NewService(
		func(s model.PriceStream) string { return s.Product.ID() }, out.streaming)

	guiSinks := []fabric.Publisher[model.PriceUpdate]{out.gui}
	if cfg.WebSocket != nil {
		hub := gui.NewHub()
		go hub.Run(context.Background())
		go serveHub(cfg.WebSocket.Addr, hub)
		guiSinks = append(guiSinks, hub)
	}
	guiSvc := gui.NewService(cfg.Throttle, guiSinks...)

	pricingSvc.AddListener(algostream.NewPriceListener(algostreamSvc))
	pricingSvc.AddListener(gui.NewPriceListener(guiSvc))
	algostreamSvc.AddListener(streaming.NewAlgoListener(streamingSvc))
	streamingSvc.AddListener(hist.NewListener(histStreaming))

	// Trade pipeline: books trigger algo executions, executions book as
	// trades, trades roll into positions and bucketed risk.
	marketdataSvc := marketdata.NewService(cfg.BookDepth)
	algoexecSvc := algoexec.NewService(cfg.SpreadThreshold)
	executionSvc := execution.NewService()
	bookingSvc := booking.NewService()
	positionSvc := position.NewService()
	riskSvc := risk.NewService(reg)
	histExec := hist.NewService(
		func(o model.ExecutionOrder) string { return o.OrderID }, out.executions)
	histPosition := hist.NewService(
		func(p model.Position) string { return p.Product.ID() }, out.positions)
	histRisk := hist.NewService(
		func(p model.PV01) string { return p.Product.ID() }, out.risk)

	if cfg.Features.EnableAlgo {
		marketdataSvc.AddListener(algoexec.NewBookListener(algoexecSvc))
	}
	algoexecSvc.AddListener(execution.NewAlgoListener(executionSvc))
	executionSvc.AddListener(booking.NewExecutionListener(bookingSvc, cfg.Books))
	executionSvc.AddListener(hist.NewListener(histExec))
	bookingSvc.AddListener(position.NewTradeListener(positionSvc))
	positionSvc.AddListener(risk.NewPositionListener(riskSvc))
	positionSvc.AddListener(hist.NewListener(histPosition))
	riskSvc.AddListener(hist.NewListener(histRisk))

	// Inquiry pipeline.
	inquirySvc := inquiry.NewService()
	histInquiry := hist.NewService(
		func(i model.Inquiry) string { return i.InquiryID }, out.inquiries)
	inquirySvc.AddListener(hist.NewListener(histInquiry))

	feeds := []struct {
		name      string
		enabled   bool
		connector fabric.Subscriber
	}{
		{"prices.txt", true, pricing.NewFeedConnector(pricingSvc, reg)},
		{"trades.txt", true, booking.NewFeedConnector(bookingSvc, reg)},
		{"marketdata.txt", true, marketdata.NewFeedConnector(marketdataSvc, reg)},
		{"inquiries.txt", cfg.Features.EnableInquiries, inquirySvc.Connector().WithRegistry(reg)},
	}
	for _, f := range feeds {
		if !f.enabled {
			continue
		}
		if err := runFeed(filepath.Join(cfg.DataDir, f.name), f.connector); err != nil {
			return err
		}
	}

	for _, sector := range risk.CurveSectors(reg) {
		sr := riskSvc.BucketedRisk(sector)
		logs.Infof("bucketed risk %s: %s", sr.Sector.Name, sr.Value.String())
	}
	return nil
}

func runFeed(path string, connector fabric.Subscriber) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return connector.Subscribe(file)
}

func buildSinks(cfg ops.Loaded) (*sinks, error) {
	out := &sinks{}

	var db *conn.Client
	if option, ok := postgresOption(cfg); ok {
		client, err := conn.New(option)
		if err != nil {
			return nil, err
		}
		if err := hist.Migrate(client.DB()); err != nil {
			_ = client.Close()
			return nil, err
		}
		db = client
		out.pg = client
	}

	out.positions = newSink[model.Position](out, cfg, db, "positions",
		func(p model.Position) string { return p.Product.ID() })
	out.risk = newSink[model.PV01](out, cfg, db, "risk",
		func(p model.PV01) string { return p.Product.ID() })
	out.executions = newSink[model.ExecutionOrder](out, cfg, db, "executions",
		func(o model.ExecutionOrder) string { return o.OrderID })
	out.streaming = newSink[model.PriceStream](out, cfg, db, "streaming",
		func(s model.PriceStream) string { return s.Product.ID() })
	out.inquiries = newSink[model.Inquiry](out, cfg, db, "allinquiries",
		func(i model.Inquiry) string { return i.InquiryID })
	out.gui = newSink[model.PriceUpdate](out, cfg, db, "gui",
		func(p model.PriceUpdate) string { return p.Product.ID() })

	if out.err != nil {
		out.Close()
		return nil, out.err
	}
	return out, nil
}

// postgresOption resolves the historical database settings: an explicit
// config block wins, otherwise PG_* variables from the loaded environment.
func postgresOption(cfg ops.Loaded) (conn.Option, bool) {
	if cfg.Postgres != nil {
		return conn.Option{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
			SSLMode:  cfg.Postgres.SSLMode,
		}, true
	}
	option := conn.FromEnv()
	return option, option.Database != "" || option.ConnString != ""
}

// newSink builds one record kind's historical output: always the append
// file, plus the database when one is connected. The first failure
// sticks on the bundle.
func newSink[V hist.Record](out *sinks, cfg ops.Loaded, db *conn.Client, kind string, key func(V) string) fabric.Publisher[V] {
	if out.err != nil {
		return nil
	}

	appender, err := hist.NewFileAppender(filepath.Join(cfg.OutputDir, kind+".txt"))
	if err != nil {
		out.err = err
		return nil
	}
	out.appenders = append(out.appenders, appender)

	fileSink := hist.NewFileSink[V](appender)
	if db == nil {
		return fileSink
	}
	return hist.NewMultiSink[V](fileSink, hist.NewPGSink(db.DB(), kind, key))
}

func serveHub(addr string, hub *gui.Hub) {
	mux := http.NewServeMux()
	mux.Handle("/prices", hub)
	logs.Infof("gui websocket listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logs.Errorf("gui websocket server, err: %+v", err)
	}
}
