package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/walletsweep/internal/chain"
	"github.com/goodnatureofminers/walletsweep/internal/chain/account"
	"github.com/goodnatureofminers/walletsweep/internal/chain/utxo"
	"github.com/goodnatureofminers/walletsweep/internal/explorer"
	"github.com/goodnatureofminers/walletsweep/internal/metrics"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"github.com/goodnatureofminers/walletsweep/internal/pkg/ethclient"
	"github.com/goodnatureofminers/walletsweep/internal/service/sweep"
	"github.com/goodnatureofminers/walletsweep/internal/store"
	"github.com/goodnatureofminers/walletsweep/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	mnemonicEnv = "WALLETSWEEP_MNEMONIC"
	passwordEnv = "WALLETSWEEP_PASSWORD"
	infuraURL   = "https://mainnet.infura.io/v3/"
)

type config struct {
	AddrCount int    `long:"addr-count" env:"WALLETSWEEP_ADDR_COUNT" description:"addresses derived per chain and word order (1-100)" default:"3"`
	PermCount int    `long:"perm-count" env:"WALLETSWEEP_PERM_COUNT" description:"word orders checked, original included (1-10)" default:"2"`
	BTCDest   string `long:"btc-dest" env:"WALLETSWEEP_BTC_DEST" description:"Bitcoin sweep destination"`
	ETHDest   string `long:"eth-dest" env:"WALLETSWEEP_ETH_DEST" description:"Ethereum sweep destination"`
	LTCDest   string `long:"ltc-dest" env:"WALLETSWEEP_LTC_DEST" description:"Litecoin sweep destination"`
	DOGEDest  string `long:"doge-dest" env:"WALLETSWEEP_DOGE_DEST" description:"Dogecoin sweep destination"`

	ETHRPCURL        string `long:"eth-rpc-url" env:"WALLETSWEEP_ETH_RPC_URL" description:"Ethereum JSON-RPC URL, overrides --infura-project-id"`
	InfuraProjectID  string `long:"infura-project-id" env:"WALLETSWEEP_INFURA_PROJECT_ID" description:"Infura project id for Ethereum mainnet"`
	ETHChainID       int64  `long:"eth-chain-id" env:"WALLETSWEEP_ETH_CHAIN_ID" description:"EIP-155 chain id used for signing" default:"1"`
	BlockCypherToken string `long:"blockcypher-token" env:"WALLETSWEEP_BLOCKCYPHER_TOKEN" description:"BlockCypher API token"`
	EtherscanAPIKey  string `long:"etherscan-api-key" env:"WALLETSWEEP_ETHERSCAN_API_KEY" description:"Etherscan API key (reported only)"`

	BlockchainInfoURL string `long:"blockchain-info-url" env:"WALLETSWEEP_BLOCKCHAIN_INFO_URL" description:"blockchain.info API root"`
	BlockCypherURL    string `long:"blockcypher-url" env:"WALLETSWEEP_BLOCKCYPHER_URL" description:"BlockCypher Litecoin API root"`
	DogechainURL      string `long:"dogechain-url" env:"WALLETSWEEP_DOGECHAIN_URL" description:"dogechain.info API root"`

	Proxy       string        `long:"proxy" env:"WALLETSWEEP_PROXY" description:"outbound proxy, http://, https:// or socks5://"`
	RateCalls   int           `long:"rate-calls" env:"WALLETSWEEP_RATE_CALLS" description:"outbound calls admitted per rate window" default:"10"`
	RateWindow  time.Duration `long:"rate-window" env:"WALLETSWEEP_RATE_WINDOW" description:"outbound rate window" default:"60s"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"WALLETSWEEP_HTTP_TIMEOUT" description:"timeout of every outbound call" default:"15s"`
	MetricsAddr string        `long:"metrics-addr" env:"WALLETSWEEP_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
	Output      string        `long:"output" env:"WALLETSWEEP_OUTPUT" description:"encrypted results file" default:"walletsweep-results.enc"`
}

func (c config) destinations() map[model.Chain]string {
	return map[model.Chain]string{
		model.Bitcoin:  c.BTCDest,
		model.Ethereum: c.ETHDest,
		model.Litecoin: c.LTCDest,
		model.Dogecoin: c.DOGEDest,
	}
}

func (c config) ethRPCURL() string {
	if c.ETHRPCURL != "" {
		return c.ETHRPCURL
	}
	if c.InfuraProjectID != "" {
		return infuraURL + c.InfuraProjectID
	}
	return ""
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("walletsweep failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	phrase, err := readSecret(mnemonicEnv, "Seed phrase: ")
	if err != nil {
		return fmt.Errorf("read seed phrase: %w", err)
	}
	password, err := readSecret(passwordEnv, "Results password: ")
	if err != nil {
		return fmt.Errorf("read results password: %w", err)
	}
	writer, err := store.NewEncryptedFile(cfg.Output, []byte(password))
	if err != nil {
		return fmt.Errorf("init results store: %w", err)
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	httpClient, err := transport.NewClient(transport.Config{
		Timeout:  cfg.HTTPTimeout,
		ProxyURL: cfg.Proxy,
		Limiter:  transport.NewLimiter(cfg.RateCalls, cfg.RateWindow),
	})
	if err != nil {
		return fmt.Errorf("init http client: %w", err)
	}
	explorerClient := explorer.NewClient(httpClient, metrics.NewExplorerClient(), logger)

	chains, closeChains, err := newChains(ctx, cfg, httpClient, explorerClient, logger)
	if err != nil {
		return err
	}
	defer closeChains()
	reportCredentials(cfg, logger)

	worker := sweep.NewWorker(chains, writer, metrics.NewWorker(), metrics.NewOracle(), logger)
	done := make(chan outcome, 1)
	jobID, err := worker.Start(context.WithoutCancel(ctx), model.JobParams{
		Mnemonic:         phrase,
		AddressCount:     cfg.AddrCount,
		PermutationCount: cfg.PermCount,
		Destinations:     cfg.destinations(),
	}, newProgressPrinter(os.Stderr), func(results model.Results, err error) {
		done <- outcome{results: results, err: err}
	})
	if err != nil {
		return fmt.Errorf("start sweep job: %w", err)
	}
	logger.Info("sweep job started", zap.String("job_id", jobID), zap.String("output", writer.Path()))

	var res outcome
	select {
	case res = <-done:
	case <-ctx.Done():
		logger.Warn("interrupt received, cancelling sweep job")
		worker.Cancel()
		res = <-done
	}
	if err := worker.Wait(context.Background()); err != nil {
		return err
	}

	snap := worker.Snapshot()
	if res.err != nil {
		return fmt.Errorf("sweep job %s: %w", snap.State, res.err)
	}
	printReport(os.Stdout, snap.State, res.results)
	return nil
}

type outcome struct {
	results model.Results
	err     error
}

// newChains builds the fixed chain set over the shared client. The returned func releases the RPC connection.
func newChains(ctx context.Context, cfg config, httpClient *http.Client, explorerClient *explorer.Client, logger *zap.Logger) ([]sweep.Chain, func(), error) {
	closeFn := func() {}

	var ethClient account.Client
	if rawURL := cfg.ethRPCURL(); rawURL != "" {
		c, err := ethclient.Dial(ctx, rawURL, metrics.NewRPCClient(model.Ethereum), rpc.WithHTTPClient(httpClient))
		if err != nil {
			return nil, closeFn, fmt.Errorf("dial ethereum rpc: %w", err)
		}
		ethClient = c
		closeFn = c.Close
	}

	all := []chain.Chain{
		utxo.New(utxo.BitcoinParams(), utxo.NewBlockchainInfo(explorerClient, cfg.BlockchainInfoURL), logger),
		account.New(ethClient, explorerClient, logger, account.WithChainID(big.NewInt(cfg.ETHChainID))),
		utxo.New(utxo.LitecoinParams(), utxo.NewBlockCypher(explorerClient, model.Litecoin, cfg.BlockCypherURL, cfg.BlockCypherToken), logger),
		utxo.New(utxo.DogecoinParams(), utxo.NewDogechain(explorerClient, cfg.DogechainURL), logger),
	}

	ordered := chain.Ordered(all)
	out := make([]sweep.Chain, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, c)
	}
	return out, closeFn, nil
}

func reportCredentials(cfg config, logger *zap.Logger) {
	configured := func(v string) bool { return v != "" }
	logger.Info("credentials",
		zap.Bool("ethereum_rpc", configured(cfg.ethRPCURL())),
		zap.Bool("blockcypher", configured(cfg.BlockCypherToken)),
		zap.Bool("etherscan", configured(cfg.EtherscanAPIKey)),
	)
	if cfg.ethRPCURL() == "" {
		logger.Warn("ethereum disabled, set --infura-project-id or --eth-rpc-url")
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
